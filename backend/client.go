// Package backend holds the clients for the generative services behind the
// assist pipeline. Both backends speak the same contract: an ordered list
// of role-tagged messages in, a raw text reply out. The pipeline treats the
// reply opaquely and only expects it to contain a JSON document.
package backend

import "context"

// Message is one role-tagged entry of a chat exchange.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options tune a single generation call.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// Generator is the single operation both backends expose.
type Generator interface {
	// Name identifies the backend in logs and results.
	Name() string
	// Generate sends the framed messages and returns the raw text reply.
	Generate(ctx context.Context, messages []Message, opts Options) (string, error)
}
