package enrich

import (
	"context"
	"errors"
	"fmt"
	"os"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const openaiDefaultModel = "gpt-4o-mini"

// OpenAIBackend generates text via the OpenAI chat completions API using
// the official SDK.
type OpenAIBackend struct {
	model string
	opts  []option.RequestOption
}

// NewOpenAIBackend creates an OpenAI backend. An empty apiKey falls back
// to the OPENAI_API_KEY environment variable; an empty model uses the
// default.
func NewOpenAIBackend(apiKey, model string) (*OpenAIBackend, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key missing: pass --openai-key or set OPENAI_API_KEY")
	}
	if model == "" {
		model = openaiDefaultModel
	}

	return &OpenAIBackend{
		model: model,
		opts:  []option.RequestOption{option.WithAPIKey(apiKey)},
	}, nil
}

// Generate sends a single user message and returns the text reply.
func (b *OpenAIBackend) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	client := openai.NewClient(b.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(b.model),
		MaxCompletionTokens: openai.Int(int64(maxTokens)),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
