package tour

import (
	"context"
	"fmt"
	"io"
	"os"
)

// runReadFile makes the tour's only fallible call: reading a file that is
// not expected to exist. The failure is the demonstration, so it is printed
// and the tour carries on. If the file happens to exist, its contents are
// printed instead.
func (r *Runner) runReadFile(ctx context.Context, w io.Writer) error {
	content, err := os.ReadFile(r.config.FilePath)
	if err != nil {
		fmt.Fprintf(w, "Error reading file: %v\n", err)
		return nil
	}
	fmt.Fprintf(w, "File content: %s\n", content)
	return nil
}
