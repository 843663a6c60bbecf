package main

import (
	"bytes"
	"testing"
)

func TestRunPrintsMutatedValue(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got := out.String(); got != "42\n" {
		t.Errorf("output = %q, want %q", got, "42\n")
	}
}

func TestRunIsDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	if err := run(&first); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := run(&second); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("outputs differ: %q vs %q", first.String(), second.String())
	}
}
