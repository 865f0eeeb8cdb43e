package tour

import (
	"context"
	"fmt"
	"io"
)

// MessageKind discriminates the closed set of Message variants.
type MessageKind int

const (
	KindGreeting MessageKind = iota
	KindQuit
)

// Message is a tagged value: exactly one kind, with a text payload carried
// only by greetings. The zero value is a greeting with empty text.
type Message struct {
	kind MessageKind
	text string
}

// NewGreeting returns a greeting Message carrying text.
func NewGreeting(text string) Message {
	return Message{kind: KindGreeting, text: text}
}

// NewQuit returns the payload-free quit Message.
func NewQuit() Message {
	return Message{kind: KindQuit}
}

// Kind reports which variant m is.
func (m Message) Kind() MessageKind {
	return m.kind
}

// Text returns the greeting payload, or "" for kinds that carry none.
func (m Message) Text() string {
	return m.text
}

// Dispatch switches over every Message kind and writes the matching line.
// The kind set is closed; an out-of-range kind panics so that adding a
// variant without extending the switch fails loudly.
func Dispatch(w io.Writer, m Message) {
	switch m.kind {
	case KindGreeting:
		fmt.Fprintf(w, "Received message: %s\n", m.text)
	case KindQuit:
		fmt.Fprintln(w, "Quitting")
	default:
		panic(fmt.Sprintf("tour: unhandled message kind %d", m.kind))
	}
}

// runMessages exercises the greeting branch; the quit branch stays for
// Dispatch callers and the tests.
func (r *Runner) runMessages(ctx context.Context, w io.Writer) error {
	Dispatch(w, NewGreeting("Rust"))
	return nil
}
