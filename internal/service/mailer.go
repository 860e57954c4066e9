package service

import "context"

// Mailer sends plain-text mail. Implementations must be safe for
// concurrent use.
type Mailer interface {
	// Send delivers a message to a single recipient. It respects
	// cancellation via ctx and returns an error on delivery failure.
	Send(ctx context.Context, to, subject, body string) error
}
