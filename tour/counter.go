package tour

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// ParallelCount increments a zeroed shared counter once per worker, each
// increment inside its own lock/unlock cycle, and returns the final value.
// The mutex serializes the read-modify-write, so no update is ever lost:
// the result equals workers regardless of how the goroutines interleave.
// WaitGroup.Wait orders every increment before the final read.
func ParallelCount(workers int) int {
	var (
		mu      sync.Mutex
		counter int
		wg      sync.WaitGroup
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			mu.Lock()
			defer mu.Unlock()
			counter++
		}()
	}

	wg.Wait()
	return counter
}

// runCounter fans out the configured number of workers over one shared
// counter and prints the deterministic total.
func (r *Runner) runCounter(ctx context.Context, w io.Writer) error {
	fmt.Fprintf(w, "Counter value: %d\n", ParallelCount(r.config.Workers))
	return nil
}
