package tour

import (
	"context"
	"fmt"
	"io"
)

// Map returns a new slice holding f applied to every element of s, in order.
func Map[T, U any](s []T, f func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

// Filter returns the elements of s for which keep returns true, preserving
// their relative order.
func Filter[T any](s []T, keep func(T) bool) []T {
	var out []T
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Doubled returns every element of s multiplied by two, in order.
func Doubled(s []int) []int {
	return Map(s, func(n int) int { return n * 2 })
}

// Evens returns the even elements of s in their original order.
func Evens(s []int) []int {
	return Filter(s, func(n int) bool { return n%2 == 0 })
}

// runSequences derives two independent slices from the same literal: a
// doubled copy and an even-only copy. Neither derivation feeds the other,
// and the source slice is left as written.
func (r *Runner) runSequences(ctx context.Context, w io.Writer) error {
	numbers := []int{1, 2, 3, 4}
	fmt.Fprintf(w, "Doubled numbers: %v\n", Doubled(numbers))
	fmt.Fprintf(w, "Even numbers: %v\n", Evens(numbers))
	return nil
}
