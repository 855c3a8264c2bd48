package enrich

import (
	"context"
	"errors"
	"strings"

	"github.com/jverhoeks/zola2astro/internal/logger"
)

// Token budgets per call: a description is a sentence or two, tags are a
// short comma list.
const (
	descriptionMaxTokens = 200
	tagsMaxTokens        = 100
)

// Generator implements Suggester on top of a text-generation Backend.
type Generator struct {
	backend Backend
}

// NewGenerator creates a Generator bound to the given backend.
func NewGenerator(backend Backend) (*Generator, error) {
	if backend == nil {
		return nil, errors.New("backend is required")
	}
	return &Generator{backend: backend}, nil
}

// SuggestDescription asks the backend for a short description of the
// post. Backend failures are logged and reported as no data.
func (g *Generator) SuggestDescription(ctx context.Context, body, title string) string {
	text, err := g.backend.Generate(ctx, descriptionPrompt(title, promptText(body)), descriptionMaxTokens)
	if err != nil {
		logger.Warn("description generation failed", logger.Err(err))
		return ""
	}
	return strings.TrimSpace(text)
}

// SuggestTags asks the backend for 3-6 tags. The comma-separated reply is
// split, trimmed and lowercased; deduplication is left to the caller.
// Backend failures are logged and reported as no data.
func (g *Generator) SuggestTags(ctx context.Context, body, title string) []string {
	text, err := g.backend.Generate(ctx, tagsPrompt(title, promptText(body)), tagsMaxTokens)
	if err != nil {
		logger.Warn("tag generation failed", logger.Err(err))
		return nil
	}

	var tags []string
	for _, part := range strings.Split(text, ",") {
		if tag := strings.ToLower(strings.TrimSpace(part)); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
