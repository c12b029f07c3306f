// Package generation builds segment- and audience-specific prompts and
// routes them to whichever text-generation provider is configured, falling
// back across models when the requested one is unavailable.
package generation

import "context"

// Logger defines the logging interface for the generation facade.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Request is one generation call to a provider.
type Request struct {
	Prompt      string
	Model       string // display name, e.g. "Claude 3.5 Sonnet"
	MaxTokens   int
	Temperature float64
}

// Provider is a text-generation backend. Implementations live in
// internal/llm.
type Provider interface {
	// Generate blocks until the provider returns the full text. The caller
	// supplies cancellation and deadlines through ctx.
	Generate(ctx context.Context, req Request) (string, error)

	// Models returns the display names of the models this provider offers,
	// in fallback-priority order.
	Models() []string

	// Name identifies the provider in logs.
	Name() string
}
