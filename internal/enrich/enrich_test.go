package enrich

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

type fakeBackend struct {
	reply string
	err   error

	prompts []string
	maxes   []int
}

func (f *fakeBackend) Generate(_ context.Context, prompt string, maxTokens int) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.maxes = append(f.maxes, maxTokens)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestNewGeneratorRequiresBackend(t *testing.T) {
	if _, err := NewGenerator(nil); err == nil {
		t.Fatal("NewGenerator(nil) expected error")
	}
}

func TestSuggestDescription(t *testing.T) {
	backend := &fakeBackend{reply: "  A crisp summary of the post.  "}
	g, err := NewGenerator(backend)
	if err != nil {
		t.Fatalf("NewGenerator() failed: %v", err)
	}

	got := g.SuggestDescription(context.Background(), "Some body text.", "My Post")
	if got != "A crisp summary of the post." {
		t.Errorf("SuggestDescription() = %q", got)
	}
	if len(backend.prompts) != 1 {
		t.Fatalf("backend called %d times, expected 1", len(backend.prompts))
	}
	if !strings.Contains(backend.prompts[0], `"My Post"`) {
		t.Errorf("prompt missing title: %q", backend.prompts[0])
	}
	if !strings.Contains(backend.prompts[0], "Some body text.") {
		t.Errorf("prompt missing body prose: %q", backend.prompts[0])
	}
	if backend.maxes[0] != descriptionMaxTokens {
		t.Errorf("max tokens = %d, expected %d", backend.maxes[0], descriptionMaxTokens)
	}
}

func TestSuggestDescriptionFailureIsEmpty(t *testing.T) {
	g, _ := NewGenerator(&fakeBackend{err: errors.New("rate limited")})
	if got := g.SuggestDescription(context.Background(), "body", "title"); got != "" {
		t.Errorf("SuggestDescription() = %q, expected empty on failure", got)
	}
}

func TestSuggestTags(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		expected []string
	}{
		{
			name:     "mixed case with spaces",
			reply:    "a, b, B, c",
			expected: []string{"a", "b", "b", "c"},
		},
		{
			name:     "empty segments dropped",
			reply:    "go,, rust ,",
			expected: []string{"go", "rust"},
		},
		{
			name:     "single tag",
			reply:    "Databases",
			expected: []string{"databases"},
		},
		{
			name:     "blank reply",
			reply:    "   ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := NewGenerator(&fakeBackend{reply: tt.reply})
			got := g.SuggestTags(context.Background(), "body", "title")
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SuggestTags() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSuggestTagsFailureIsEmpty(t *testing.T) {
	g, _ := NewGenerator(&fakeBackend{err: errors.New("boom")})
	if got := g.SuggestTags(context.Background(), "body", "title"); got != nil {
		t.Errorf("SuggestTags() = %v, expected nil on failure", got)
	}
}

func TestNoop(t *testing.T) {
	var s Suggester = Noop{}
	if got := s.SuggestDescription(context.Background(), "body", "title"); got != "" {
		t.Errorf("Noop description = %q", got)
	}
	if got := s.SuggestTags(context.Background(), "body", "title"); got != nil {
		t.Errorf("Noop tags = %v", got)
	}
}
