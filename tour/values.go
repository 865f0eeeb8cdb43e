package tour

import (
	"context"
	"fmt"
	"io"
)

// OwnedLength reports the length of the string s points at. The function
// only reads through the pointer; the caller keeps its value.
func OwnedLength(s *string) int {
	return len(*s)
}

// runValues hands a read-only reference to a function and shows the owning
// variable is still intact afterwards: it prints fine once the length has
// been computed through the pointer.
func (r *Runner) runValues(ctx context.Context, w io.Writer) error {
	owned := "I am owned!"
	length := OwnedLength(&owned)
	fmt.Fprintf(w, "Length of %q is %d\n", owned, length)
	return nil
}
