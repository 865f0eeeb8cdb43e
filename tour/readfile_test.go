package tour

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFileSectionPrintsErrorForMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")
	out := sectionOutput(t, Config{FilePath: missing}, "Error Handling")
	if !strings.Contains(out, "Error reading file:") {
		t.Fatalf("expected printed read error, got %q", out)
	}
}

func TestReadFileSectionPrintsContentWhenPresent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greeting.txt")
	if err := os.WriteFile(path, []byte("hello from disk"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out := sectionOutput(t, Config{FilePath: path}, "Error Handling")
	if !strings.Contains(out, "File content: hello from disk") {
		t.Fatalf("expected file contents, got %q", out)
	}
}
