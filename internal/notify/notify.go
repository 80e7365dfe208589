package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Notifier delivers a short text message.
type Notifier interface {
	Notify(ctx context.Context, title, message string) error
}

// Nop drops every message. Used when no delivery channel is configured.
type Nop struct{}

// Notify does nothing.
func (Nop) Notify(context.Context, string, string) error { return nil }

// WriterNotifier prints messages to a writer, one block per message.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterNotifier returns a notifier printing to w.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// Notify writes the title and message.
func (n *WriterNotifier) Notify(ctx context.Context, title, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if title != "" {
		if _, err := fmt.Fprintln(n.w, title); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(n.w, message)
	return err
}
