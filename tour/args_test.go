package tour

import (
	"strings"
	"testing"
)

func TestArgsSectionEchoesArgumentsInOrder(t *testing.T) {
	out := sectionOutput(t, Config{Args: []string{"alpha", "beta", "gamma"}}, "Command-Line Arguments")
	if !strings.Contains(out, "Arguments: [alpha beta gamma]") {
		t.Fatalf("unexpected echo: %q", out)
	}
}

func TestArgsSectionWithNothingToEcho(t *testing.T) {
	out := sectionOutput(t, Config{Args: []string{}}, "Command-Line Arguments")
	if !strings.Contains(out, "No arguments provided.") {
		t.Fatalf("expected fixed no-arguments line, got %q", out)
	}
	if strings.Contains(out, "Arguments:") {
		t.Fatalf("echo line printed with no arguments: %q", out)
	}
}
