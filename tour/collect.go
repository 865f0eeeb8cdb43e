package tour

import (
	"context"
	"fmt"
	"io"
)

// runCollect builds a two-entry map and prints every pair. Go randomizes
// map iteration order on purpose; neither this output nor the tests depend
// on which line comes first.
func (r *Runner) runCollect(ctx context.Context, w io.Writer) error {
	scores := map[string]int{
		"Key1": 100,
		"Key2": 200,
	}
	for key, value := range scores {
		fmt.Fprintf(w, "%s: %d\n", key, value)
	}
	return nil
}
