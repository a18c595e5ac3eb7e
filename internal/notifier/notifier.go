package notifier

import "context"

// Notifier delivers a formatted message to one channel
type Notifier interface {
	// Name identifies the channel in logs
	Name() string
	// Notify makes a single delivery attempt for text
	Notify(ctx context.Context, text string) error
}
