package writing

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"trendpost-bot/internal/domain/model"
	"trendpost-bot/internal/domain/ports"
)

// GeminiWriter drafts posts with Google Gemini.
type GeminiWriter struct {
	httpClient *http.Client
	apiKey     string
	modelName  string
	baseURL    string
	logger     ports.Logger

	mu     sync.Mutex
	client *genai.Client
}

var _ ports.PostGenerator = (*GeminiWriter)(nil)

// NewGeminiWriter constructs a GeminiWriter. An empty baseURL uses the public endpoint.
func NewGeminiWriter(apiKey, modelName, baseURL string, timeout time.Duration, logger ports.Logger) *GeminiWriter {
	return &GeminiWriter{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		modelName:  modelName,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// Generate asks Gemini for a post about topic, grounded on summary.
func (g *GeminiWriter) Generate(ctx context.Context, topic, summary string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY: %w", model.ErrMissingConfig)
	}

	client, err := g.ensureClient(ctx)
	if err != nil {
		return "", err
	}

	prompt := BuildPrompt(topic, summary)
	if g.logger != nil {
		g.logger.Info(ctx, "calling gemini API", "model", g.modelName, "promptSize", len(prompt))
	}

	resp, err := client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %w", model.ErrGenerate, err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("%w: gemini returned empty text", model.ErrGenerate)
	}

	return text, nil
}

func (g *GeminiWriter) ensureClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      g.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  g.httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: g.baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create gemini client: %w", model.ErrGenerate, err)
	}

	g.client = client
	return client, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		var builder strings.Builder
		for _, part := range candidate.Content.Parts {
			if part != nil {
				builder.WriteString(part.Text)
			}
		}
		if text := strings.TrimSpace(builder.String()); text != "" {
			return text
		}
	}
	return ""
}
