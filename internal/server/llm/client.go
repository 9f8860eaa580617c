// Package llm wraps the hosted completion API used by the chat endpoint.
package llm

import "context"

// Client sends a single prompt to the completion upstream and returns the
// reply text. No conversation state is kept between calls.
type Client interface {
	Ask(ctx context.Context, prompt string) (string, error)
}
