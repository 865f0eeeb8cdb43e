package tour

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

const defaultFilePath = "nonexistent_file.txt"

// ErrUnknownSection reports a RunSection title that matches no section.
var ErrUnknownSection = errors.New("unknown section")

// Config controls where the tour writes and the few knobs sections read.
// The zero value runs the canonical tour against standard output.
type Config struct {
	Output    io.Writer     // destination for all section output; defaults to os.Stdout
	Args      []string      // echoed by the final section; nil defaults to os.Args[1:]
	TaskDelay time.Duration // suspension of the goroutine section; defaults to 2s
	Workers   int           // goroutines spawned by the counter section; defaults to 5
	FilePath  string        // path read by the error-handling section; defaults to a missing file
}

// Runner executes the tour sections in their fixed order.
type Runner struct {
	config   Config
	sections []Section
}

// Section is one self-contained demonstration. Run writes the section's
// output to w; demo-level failures are part of that output, so a non-nil
// error means the section itself could not proceed.
type Section struct {
	Title string
	Run   func(ctx context.Context, w io.Writer) error
}

// NewRunner fills in zero-value defaults and builds the section list.
func NewRunner(cfg Config) *Runner {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Args == nil {
		cfg.Args = os.Args[1:]
	}
	if cfg.TaskDelay <= 0 {
		cfg.TaskDelay = 2 * time.Second
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 5
	}
	if cfg.FilePath == "" {
		cfg.FilePath = defaultFilePath
	}

	r := &Runner{config: cfg}
	r.sections = []Section{
		{Title: "Values and Pointers", Run: r.runValues},
		{Title: "Generics and Interfaces", Run: r.runShapes},
		{Title: "Enums and Switch", Run: r.runMessages},
		{Title: "Error Handling", Run: r.runReadFile},
		{Title: "Map and Filter", Run: r.runSequences},
		{Title: "Goroutines and Channels", Run: r.runTask},
		{Title: "Mutex and WaitGroup", Run: r.runCounter},
		{Title: "Pointers and the Heap", Run: r.runHeap},
		{Title: "Maps", Run: r.runCollect},
		{Title: "Formatted Printing", Run: r.runAnnounce},
		{Title: "Command-Line Arguments", Run: r.runArgs},
	}
	return r
}

// Run executes every section in listed order against the configured output.
// A failing section is reported in the output and the tour moves on; Run
// returns early only when ctx ends.
func (r *Runner) Run(ctx context.Context) error {
	fmt.Fprintln(r.config.Output, "--- Welcome to the Go Feature Tour ---")
	for _, section := range r.sections {
		if err := r.runOne(ctx, section); err != nil {
			return err
		}
	}
	return nil
}

// RunSection executes the single section whose Title equals title.
func (r *Runner) RunSection(ctx context.Context, title string) error {
	for _, section := range r.sections {
		if section.Title == title {
			return r.runOne(ctx, section)
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownSection, title)
}

// Titles returns the section titles in run order.
func (r *Runner) Titles() []string {
	titles := make([]string, len(r.sections))
	for i, section := range r.sections {
		titles[i] = section.Title
	}
	return titles
}

func (r *Runner) runOne(ctx context.Context, section Section) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w := r.config.Output
	fmt.Fprintf(w, "\n--- %s ---\n", section.Title)
	if err := section.Run(ctx, w); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		fmt.Fprintf(w, "section failed: %v\n", err)
	}
	return nil
}
