package writing

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"trendpost-bot/internal/domain/model"
	"trendpost-bot/internal/domain/ports"
)

const claudeMaxTokens = 1024

// ClaudeWriter drafts posts with Anthropic's Messages API.
type ClaudeWriter struct {
	client    *anthropic.Client
	modelName string
	logger    ports.Logger
}

var _ ports.PostGenerator = (*ClaudeWriter)(nil)

// NewClaudeWriter constructs a ClaudeWriter. Without an API key every call
// fails with model.ErrMissingConfig.
func NewClaudeWriter(apiKey, modelName, baseURL string, timeout time.Duration, logger ports.Logger) *ClaudeWriter {
	w := &ClaudeWriter{modelName: modelName, logger: logger}
	if apiKey == "" {
		return w
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := anthropic.NewClient(opts...)
	w.client = &client
	return w
}

// Generate asks Claude for a post about topic, grounded on summary.
func (c *ClaudeWriter) Generate(ctx context.Context, topic, summary string) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("ANTHROPIC_API_KEY: %w", model.ErrMissingConfig)
	}

	prompt := BuildPrompt(topic, summary)
	if c.logger != nil {
		c.logger.Info(ctx, "calling claude API", "model", c.modelName, "promptSize", len(prompt))
	}

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.modelName),
		MaxTokens: claudeMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: claude: %w", model.ErrGenerate, err)
	}

	var builder strings.Builder
	for _, block := range message.Content {
		if textBlock, ok := block.AsAny().(anthropic.TextBlock); ok {
			builder.WriteString(textBlock.Text)
		}
	}

	text := strings.TrimSpace(builder.String())
	if text == "" {
		return "", fmt.Errorf("%w: claude returned empty text", model.ErrGenerate)
	}
	return text, nil
}
