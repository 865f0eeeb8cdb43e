package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rajtank4457/gotour/tour"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	fs := flag.NewFlagSet("gotour", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	interactive := fs.Bool("interactive", false, "browse sections in a terminal UI instead of running them all")
	list := fs.Bool("list", false, "print the numbered section list and exit")
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage()
			return nil
		}
		printUsage()
		return err
	}

	// Everything after the flags is echoed by the final section, never
	// treated as a subcommand.
	echo := append([]string{}, fs.Args()...)

	switch {
	case *list:
		return listSections()
	case *interactive:
		return runBrowser(echo)
	default:
		return runTour(echo)
	}
}

func runTour(echoArgs []string) error {
	runner := tour.NewRunner(tour.Config{Args: echoArgs})
	return runner.Run(context.Background())
}

func listSections() error {
	runner := tour.NewRunner(tour.Config{Args: []string{}})
	for i, title := range runner.Titles() {
		fmt.Printf("%2d. %s\n", i+1, title)
	}
	return nil
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] [args...]\n", prog)
	fmt.Fprintln(os.Stderr, "Runs every section of the Go feature tour in order; trailing args are")
	fmt.Fprintln(os.Stderr, "echoed by the final section.")
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  -interactive")
	fmt.Fprintln(os.Stderr, "    browse and run sections one at a time in a terminal UI")
	fmt.Fprintln(os.Stderr, "  -list")
	fmt.Fprintln(os.Stderr, "    print the numbered section list and exit")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
