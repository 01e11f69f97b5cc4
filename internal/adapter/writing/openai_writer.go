package writing

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"trendpost-bot/internal/domain/model"
	"trendpost-bot/internal/domain/ports"
)

// OpenAIWriter drafts posts with the OpenAI chat completions API.
type OpenAIWriter struct {
	client    *openai.Client
	modelName string
	logger    ports.Logger
}

var _ ports.PostGenerator = (*OpenAIWriter)(nil)

// NewOpenAIWriter constructs an OpenAIWriter. Without an API key every call
// fails with model.ErrMissingConfig.
func NewOpenAIWriter(apiKey, modelName, baseURL string, timeout time.Duration, logger ports.Logger) *OpenAIWriter {
	w := &OpenAIWriter{modelName: modelName, logger: logger}
	if apiKey == "" {
		return w
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	w.client = openai.NewClientWithConfig(cfg)
	return w
}

// Generate asks the chat model for a post about topic, grounded on summary.
func (o *OpenAIWriter) Generate(ctx context.Context, topic, summary string) (string, error) {
	if o.client == nil {
		return "", fmt.Errorf("OPENAI_API_KEY: %w", model.ErrMissingConfig)
	}

	prompt := BuildPrompt(topic, summary)
	if o.logger != nil {
		o.logger.Info(ctx, "calling openai API", "model", o.modelName, "promptSize", len(prompt))
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.modelName,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: openai: %w", model.ErrGenerate, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai returned no choices", model.ErrGenerate)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: openai returned empty text", model.ErrGenerate)
	}
	return text, nil
}
