package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"trendpost-bot/internal/domain/model"
)

// Post generation backends.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Output formats of the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config contains runtime configuration values.
// Secrets are not validated here; adapters report them missing on first use.
type Config struct {
	Defaults

	GeminiAPIKey    string
	GeminiModel     string
	OpenAIAPIKey    string
	OpenAIModel     string
	AnthropicAPIKey string
	AnthropicModel  string
	PexelsAPIKey    string

	PostProvider      string
	MediaKind         model.MediaKind
	RequestTimeout    time.Duration
	OutputFormat      string
	LogLevel          string
	LogFormat         string
	DiscordWebhookURL string
}

const (
	defaultTimeout        = 30 * time.Second
	defaultGeminiModel    = "gemini-2.5-flash"
	defaultOpenAIModel    = "gpt-4o-mini"
	defaultAnthropicModel = "claude-sonnet-4-5"
	defaultProvider       = ProviderGemini
	defaultMediaKind      = "photo"
	defaultLimit          = 5
)

// Load builds a Config from environment variables with sane defaults.
func Load() (*Config, error) {
	defaults, err := LoadDefaults(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Defaults:          defaults,
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       getenvDefault("GEMINI_MODEL", defaultGeminiModel),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:       getenvDefault("OPENAI_MODEL", defaultOpenAIModel),
		AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:    getenvDefault("ANTHROPIC_MODEL", defaultAnthropicModel),
		PexelsAPIKey:      os.Getenv("PEXELS_API_KEY"),
		PostProvider:      strings.ToLower(getenvDefault("POST_PROVIDER", defaultProvider)),
		RequestTimeout:    parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		OutputFormat:      strings.ToLower(getenvDefault("OUTPUT_FORMAT", OutputText)),
		LogLevel:          getenvDefault("LOG_LEVEL", "info"),
		LogFormat:         getenvDefault("LOG_FORMAT", "json"),
		DiscordWebhookURL: os.Getenv("DISCORD_WEBHOOK_URL"),
	}

	cfg.SeedKeyword = getenvDefault("SEED_KEYWORD", cfg.SeedKeyword)
	cfg.TrendTimeframe = getenvDefault("TREND_TIMEFRAME", cfg.TrendTimeframe)
	cfg.FeedURL = getenvDefault("FEED_URL", cfg.FeedURL)

	kind, err := model.ParseMediaKind(getenvDefault("MEDIA_KIND", defaultMediaKind))
	if err != nil {
		return nil, err
	}
	cfg.MediaKind = kind

	switch cfg.PostProvider {
	case ProviderGemini, ProviderOpenAI, ProviderAnthropic:
	default:
		return nil, fmt.Errorf("POST_PROVIDER %q is not supported", cfg.PostProvider)
	}

	switch cfg.OutputFormat {
	case OutputText, OutputJSON:
	default:
		return nil, fmt.Errorf("OUTPUT_FORMAT %q is not supported", cfg.OutputFormat)
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if cfg.TrendLimit <= 0 {
		cfg.TrendLimit = defaultLimit
	}

	if cfg.ArticleLimit <= 0 {
		cfg.ArticleLimit = defaultLimit
	}

	if err := cfg.Defaults.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		if n, err := strconv.Atoi(val); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return fallback
}
