package main

import (
	"callsemantics/examples"
	"fmt"
	"runtime"
)

func main() {

	fmt.Println("Go Parameter Passing Examples")
	fmt.Printf("Go version: %s\n", runtime.Version())

	fmt.Println("\n--- Passing an int ---")

	fmt.Printf("After assignment inside a by-value callee:  %d\n", examples.AssignToCopy(23, 42))
	fmt.Printf("After assignment through a pointer:         %d\n", examples.AssignThroughPointer(23, 42))
	fmt.Printf("After assignment through a shared slice:    %d\n", examples.AssignThroughSlice(23, 42))

	fmt.Println("\n--- Collections ---")

	before, after := examples.SliceSharesBacking()
	fmt.Printf("Slice element before/after callee write: %d -> %d\n", before, after)

	fmt.Printf("Append inside callee left caller's view at: %v\n", examples.AppendDoesNotGrowCallerView())
	fmt.Printf("Array after callee mutation (still a copy): %v\n", examples.ArrayIsCopied())
	fmt.Printf("Map entry after callee write: %d\n", examples.MapSharesStorage())

	fmt.Println("\n--- Closures ---")

	fmt.Printf("Closures over one shared variable see: %v\n", examples.CaptureSharedVariable())
	fmt.Printf("Closures over the loop variable see:   %v\n", examples.CapturePerIteration())

	fmt.Println("\n--- Method receivers ---")

	fmt.Printf("Counter after value-receiver increment:   %d\n", examples.IncrementByValue())
	fmt.Printf("Counter after pointer-receiver increment: %d\n", examples.IncrementByPointer())
}
