package ai

import (
	"context"

	"github.com/poiesic/docmerge/core"
)

// Summarizer is the capability interface over interchangeable
// summarization backends. Implementations must be thread-safe for
// concurrent use.
type Summarizer interface {
	// Summarize produces a summary of the given text. maxLength is an
	// approximate word budget passed through to the prompt.
	// Returns an error if generation fails; callers classify and retry
	// via the Gateway.
	Summarize(ctx context.Context, text string, summaryType core.SummaryType, maxLength int) (string, error)

	// GenerateContent generates free-form content from a prompt.
	// Exposed for the non-merge content generation contract.
	GenerateContent(ctx context.Context, prompt string) (string, error)

	// IsAvailable performs a lightweight provider-specific probe
	// (endpoint ping, credential presence) without the cost of a full
	// summarization call.
	IsAvailable(ctx context.Context) bool

	// Name identifies the provider in results and logs.
	Name() string

	// Close releases resources held by the provider.
	Close() error
}
