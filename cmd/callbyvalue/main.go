// Pass-by-value: f gets a private copy of the argument, so its assignment
// never reaches the caller's variable.
package main

import (
	"fmt"
	"io"
	"os"
)

func f(r int) {
	r = 42 // modifies the local copy only
}

func run(w io.Writer) error {
	a := 23
	f(a)
	_, err := fmt.Fprintf(w, "%d\n", a) // still 23
	return err
}

func main() {
	if err := run(os.Stdout); err != nil {
		os.Exit(1)
	}
}
