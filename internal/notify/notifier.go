package notify

import "context"

// Notifier is an advisory side-effect: callers may discard the returned
// error. Implementations must not retry.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Nop is installed when no notification channel is configured.
type Nop struct{}

func (Nop) Send(context.Context, string) error { return nil }
