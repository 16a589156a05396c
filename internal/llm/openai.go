package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

type OpenAIConfig struct {
	BaseURL string // any OpenAI-compatible endpoint, e.g. vLLM or llama.cpp server
	Model   string
	APIKey  string
	Timeout time.Duration
}

// serves completions through an OpenAI-compatible chat completions API.
// input truncation is left to the server.
type OpenAIBackend struct {
	config OpenAIConfig
	client openai.Client
}

func NewOpenAIBackend(config OpenAIConfig) *OpenAIBackend {
	opts := []option.RequestOption{
		option.WithMaxRetries(0),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.APIKey != "" {
		opts = append(opts, option.WithAPIKey(config.APIKey))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(config.Timeout))
	}

	return &OpenAIBackend{
		config: config,
		client: openai.NewClient(opts...),
	}
}

func (b *OpenAIBackend) Name() string {
	return "openai"
}

func (b *OpenAIBackend) Model() string {
	return b.config.Model
}

func (b *OpenAIBackend) Load(ctx context.Context) error {
	model, err := b.client.Models.Get(ctx, b.config.Model)
	if err != nil {
		return fmt.Errorf("failed to look up model %q: %w", b.config.Model, err)
	}

	if model.ID != b.config.Model {
		return fmt.Errorf("endpoint returned model %q, expected %q", model.ID, b.config.Model)
	}

	return nil
}

func (b *OpenAIBackend) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	completion, err := b.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(b.config.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		MaxCompletionTokens: openai.Int(int64(req.MaxNewTokens)),
		Temperature:         openai.Float(req.Temperature),
		TopP:                openai.Float(req.TopP),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
