package tour

import (
	"context"
	"fmt"
	"io"
)

// runHeap allocates an int and a string behind single-owner pointers, then
// lets a second reference share one heap value. The garbage collector plays
// the reference counter: each value lives exactly as long as something can
// still reach it, and nothing here creates a cycle.
func (r *Runner) runHeap(ctx context.Context, w io.Writer) error {
	boxed := new(int)
	*boxed = 42
	fmt.Fprintf(w, "Heap int: %d\n", *boxed)

	label := new(string)
	*label = "heap string"
	fmt.Fprintf(w, "Heap string: %s\n", *label)

	owned := "Shared"
	first := &owned
	second := first
	fmt.Fprintf(w, "Shared value: %s (two references, one backing value)\n", *second)
	return nil
}
