package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestRunCLIEchoesTrailingArguments(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return runCLI([]string{"gotour", "alpha", "beta"})
	})
	if err != nil {
		t.Fatalf("runCLI failed: %v", err)
	}
	if !strings.Contains(out, "--- Welcome to the Go Feature Tour ---") {
		t.Fatalf("welcome banner missing from output: %q", out)
	}
	if !strings.Contains(out, "Arguments: [alpha beta]") {
		t.Fatalf("trailing args not echoed: %q", out)
	}
}

func TestRunCLIWithoutArguments(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return runCLI([]string{"gotour"})
	})
	if err != nil {
		t.Fatalf("runCLI failed: %v", err)
	}
	if !strings.Contains(out, "No arguments provided.") {
		t.Fatalf("no-arguments line missing from output: %q", out)
	}
}

func TestRunCLIListPrintsNumberedSections(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return runCLI([]string{"gotour", "-list"})
	})
	if err != nil {
		t.Fatalf("runCLI -list failed: %v", err)
	}
	if !strings.Contains(out, " 1. Values and Pointers") {
		t.Fatalf("first section missing from list: %q", out)
	}
	if !strings.Contains(out, "11. Command-Line Arguments") {
		t.Fatalf("last section missing from list: %q", out)
	}
	if strings.Contains(out, "Welcome") {
		t.Fatalf("-list should not run the tour: %q", out)
	}
}

func TestRunCLIHelpFlag(t *testing.T) {
	if err := runCLI([]string{"gotour", "-h"}); err != nil {
		t.Fatalf("-h should not be an error: %v", err)
	}
}

func TestRunCLIUnknownFlag(t *testing.T) {
	if err := runCLI([]string{"gotour", "-bogus"}); err == nil {
		t.Fatalf("expected an error for an unknown flag")
	}
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	_ = w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	if _, copyErr := io.Copy(&buf, r); copyErr != nil {
		t.Fatalf("read captured stdout: %v", copyErr)
	}
	_ = r.Close()

	return buf.String(), runErr
}
