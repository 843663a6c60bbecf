// Pass-by-reference, alias form. Go has no reference parameters, so the
// alias is a one-element slice: the callee's header is a copy, but it names
// the same backing cell as the caller's, and the write lands in that cell.
package main

import (
	"fmt"
	"io"
	"os"
)

func f(r []int) {
	r[0] = 42 // modifies the shared backing array
}

func run(w io.Writer) error {
	a := []int{23} // a[0] is the shared cell
	f(a)
	_, err := fmt.Fprintf(w, "%d\n", a[0]) // 42
	return err
}

func main() {
	if err := run(os.Stdout); err != nil {
		os.Exit(1)
	}
}
