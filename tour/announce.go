package tour

import (
	"context"
	"fmt"
	"io"
)

// Announce writes msg behind a fixed prefix. Languages with compile-time
// macros expand this kind of helper into the call site; in Go a plain
// function produces the identical line at runtime.
func Announce(w io.Writer, msg string) {
	fmt.Fprintf(w, "Announcement: %s\n", msg)
}

func (r *Runner) runAnnounce(ctx context.Context, w io.Writer) error {
	Announce(w, "Hello from a plain function!")
	return nil
}
