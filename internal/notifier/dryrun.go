package notifier

import (
	"context"
	"fmt"
	"io"
)

// DryRunNotifier prints what would be sent without sending it
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a dry-run notifier writing to out
func NewDryRunNotifier(out io.Writer) *DryRunNotifier {
	return &DryRunNotifier{out: out}
}

// Name implements Notifier
func (n *DryRunNotifier) Name() string {
	return "dry-run"
}

// Notify prints the message and its length
func (n *DryRunNotifier) Notify(ctx context.Context, text string) error {
	fmt.Fprintln(n.out, "--- Message ---")
	fmt.Fprintln(n.out, text)
	fmt.Fprintf(n.out, "(Length: %d characters)\n", len([]rune(text)))
	return nil
}
