// Package llm wraps the hosted language model providers the service can call.
package llm

import "context"

// Client performs a single-turn text completion.
type Client interface {
	Infer(ctx context.Context, model, prompt string) (string, error)
	Close() error
}
