package tour

import (
	"strings"
	"testing"
)

func TestHeapSectionPrintsAllThreeAllocations(t *testing.T) {
	out := sectionOutput(t, Config{}, "Pointers and the Heap")

	for _, want := range []string{
		"Heap int: 42",
		"Heap string: heap string",
		"Shared value: Shared",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("line %q missing from %q", want, out)
		}
	}
}
