package tour

import (
	"context"
	"fmt"
	"io"
)

// runArgs echoes the configured argument list in order, or a fixed line
// when there is nothing to echo.
func (r *Runner) runArgs(ctx context.Context, w io.Writer) error {
	if len(r.config.Args) > 0 {
		fmt.Fprintf(w, "Arguments: %v\n", r.config.Args)
		return nil
	}
	fmt.Fprintln(w, "No arguments provided.")
	return nil
}
