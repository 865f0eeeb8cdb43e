package tour

import (
	"context"
	"fmt"
	"io"
	"time"
)

// runTask spawns one goroutine that announces itself, suspends on a timer,
// and announces completion. The caller blocks on the done channel until the
// goroutine finishes, so the next section never starts early. Cancelling
// ctx during the suspension ends the task without the finish line.
func (r *Runner) runTask(ctx context.Context, w io.Writer) error {
	done := make(chan struct{})
	var taskErr error

	go func() {
		defer close(done)
		fmt.Fprintln(w, "Task started...")
		select {
		case <-time.After(r.config.TaskDelay):
		case <-ctx.Done():
			taskErr = ctx.Err()
			return
		}
		fmt.Fprintln(w, "Task finished!")
	}()

	<-done
	return taskErr
}
