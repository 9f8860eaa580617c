// Package mail sends transactional email through an SMTP relay over
// implicit TLS. Delivery is synchronous and failures surface directly to the
// caller; there is no queue and no retry.
package mail

import "context"

// Sender delivers a single plain-text message.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}
