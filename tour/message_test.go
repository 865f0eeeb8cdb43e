package tour

import (
	"bytes"
	"strings"
	"testing"
)

func TestDispatchGreeting(t *testing.T) {
	var buf bytes.Buffer
	Dispatch(&buf, NewGreeting("Rust"))

	out := buf.String()
	if !strings.Contains(out, "Rust") {
		t.Fatalf("greeting output missing payload: %q", out)
	}
	if strings.Contains(out, "Quitting") {
		t.Fatalf("greeting took the quit branch: %q", out)
	}
}

func TestDispatchQuit(t *testing.T) {
	var buf bytes.Buffer
	Dispatch(&buf, NewQuit())

	if got, want := buf.String(), "Quitting\n"; got != want {
		t.Fatalf("quit output: got %q want %q", got, want)
	}
}

func TestMessageAccessors(t *testing.T) {
	greeting := NewGreeting("hello")
	if greeting.Kind() != KindGreeting || greeting.Text() != "hello" {
		t.Fatalf("unexpected greeting: kind=%v text=%q", greeting.Kind(), greeting.Text())
	}

	quit := NewQuit()
	if quit.Kind() != KindQuit || quit.Text() != "" {
		t.Fatalf("unexpected quit: kind=%v text=%q", quit.Kind(), quit.Text())
	}
}

func TestDispatchPanicsOnUnknownKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range kind")
		}
	}()
	Dispatch(&bytes.Buffer{}, Message{kind: MessageKind(99)})
}

func TestMessagesSectionGreetsAtTopLevel(t *testing.T) {
	out := sectionOutput(t, Config{}, "Enums and Switch")
	if !strings.Contains(out, "Received message: Rust") {
		t.Fatalf("unexpected section output: %q", out)
	}
}
