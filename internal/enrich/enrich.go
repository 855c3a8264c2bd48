package enrich

import "context"

// Suggester proposes metadata for a post when the source has none.
// Implementations absorb their own failures: a backend error and "no
// data" are both reported as an empty result, so callers never branch on
// enrichment being configured or healthy.
type Suggester interface {
	SuggestDescription(ctx context.Context, body, title string) string
	SuggestTags(ctx context.Context, body, title string) []string
}

// Noop is the Suggester used when enrichment is disabled. It performs no
// I/O and always reports no data.
type Noop struct{}

func (Noop) SuggestDescription(context.Context, string, string) string { return "" }

func (Noop) SuggestTags(context.Context, string, string) []string { return nil }

// Backend turns a prompt into generated text. Any synchronous
// "prompt in, text out" service qualifies.
type Backend interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}
