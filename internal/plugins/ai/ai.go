// Package ai defines the vendor abstraction for text-generation
// providers. Vendors return raw text; making sense of it is the
// normalization engine's problem.
package ai

import "context"

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one chat message sent to a provider.
type Message struct {
	Role    string
	Content string
}

// Options tune a single completion request.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// Vendor is a text-generation provider. Send issues one synchronous
// completion request; there is no retry at this layer.
type Vendor interface {
	Name() string
	Send(ctx context.Context, msgs []Message, opts Options) (string, error)
}
