// Pass-by-reference, address form: the caller hands f the address of its
// variable and f writes through the pointer, so the mutation is visible.
package main

import (
	"fmt"
	"io"
	"os"
)

func f(r *int) {
	*r = 42 // modifies the caller's variable
}

func run(w io.Writer) error {
	a := 23
	f(&a)
	_, err := fmt.Fprintf(w, "%d\n", a) // 42
	return err
}

func main() {
	if err := run(os.Stdout); err != nil {
		os.Exit(1)
	}
}
