package tour

import (
	"strings"
	"testing"
)

func TestOwnedLength(t *testing.T) {
	owned := "Rust"
	if got := OwnedLength(&owned); got != 4 {
		t.Fatalf("length of %q: got %d want 4", owned, got)
	}
	if owned != "Rust" {
		t.Fatalf("owner changed by read-only call: %q", owned)
	}
}

func TestOwnedLengthMatchesLen(t *testing.T) {
	for _, s := range []string{"", "a", "hello", "I am owned!"} {
		if got, want := OwnedLength(&s), len(s); got != want {
			t.Fatalf("length of %q: got %d want %d", s, got, want)
		}
	}
}

func TestValuesSectionPrintsOwnerAndLength(t *testing.T) {
	out := sectionOutput(t, Config{}, "Values and Pointers")
	if !strings.Contains(out, `Length of "I am owned!" is 11`) {
		t.Fatalf("unexpected section output: %q", out)
	}
}
