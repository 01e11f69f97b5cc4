package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendpost-bot/internal/domain/model"
)

var configEnv = []string{
	"CONFIG_FILE", "GEMINI_API_KEY", "GEMINI_MODEL", "OPENAI_API_KEY", "OPENAI_MODEL",
	"ANTHROPIC_API_KEY", "ANTHROPIC_MODEL", "PEXELS_API_KEY", "POST_PROVIDER", "MEDIA_KIND",
	"REQUEST_TIMEOUT", "OUTPUT_FORMAT", "LOG_LEVEL", "LOG_FORMAT", "DISCORD_WEBHOOK_URL",
	"SEED_KEYWORD", "TREND_TIMEFRAME", "FEED_URL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "VLSI design", cfg.SeedKeyword)
	assert.Equal(t, "now 7-d", cfg.TrendTimeframe)
	assert.Equal(t, 5, cfg.TrendLimit)
	assert.Equal(t, []string{"VLSI Design", "Semiconductor Fabrication", "Chip Architecture"}, cfg.FallbackTrends)
	assert.Equal(t, "https://spectrum.ieee.org/rss/semiconductors.xml", cfg.FeedURL)
	assert.Equal(t, 5, cfg.ArticleLimit)
	assert.Equal(t, FallbackArticle{
		Title:   "The Future of VLSI",
		Link:    "https://example.com/future-vlsi",
		Summary: "A quick summary about advances in VLSI design and fabrication.",
	}, cfg.FallbackArticle)
	assert.Equal(t, "https://trends.google.com", cfg.Trends.BaseURL)
	assert.Equal(t, "https://api.pexels.com", cfg.PexelsBaseURL)
	assert.Equal(t, model.MediaPhoto, cfg.MediaKind)
	assert.Equal(t, ProviderGemini, cfg.PostProvider)
	assert.Equal(t, OutputText, cfg.OutputFormat)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
}

func TestLoad_MissingSecretsAreNotValidated(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Empty(t, cfg.PexelsAPIKey)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MEDIA_KIND", "video")
	t.Setenv("POST_PROVIDER", "Anthropic")
	t.Setenv("REQUEST_TIMEOUT", "12s")
	t.Setenv("OUTPUT_FORMAT", "json")
	t.Setenv("SEED_KEYWORD", "RISC-V")
	t.Setenv("FEED_URL", "https://example.com/feed.xml")
	t.Setenv("PEXELS_API_KEY", "pk")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, model.MediaVideo, cfg.MediaKind)
	assert.Equal(t, ProviderAnthropic, cfg.PostProvider)
	assert.Equal(t, 12*time.Second, cfg.RequestTimeout)
	assert.Equal(t, OutputJSON, cfg.OutputFormat)
	assert.Equal(t, "RISC-V", cfg.SeedKeyword)
	assert.Equal(t, "https://example.com/feed.xml", cfg.FeedURL)
	assert.Equal(t, "pk", cfg.PexelsAPIKey)
}

func TestLoad_TimeoutInSeconds(t *testing.T) {
	clearEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "15")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"MEDIA_KIND":    "gif",
		"POST_PROVIDER": "llama",
		"OUTPUT_FORMAT": "xml",
	}

	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_ConfigFileOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
seedKeyword: Chiplet
fallbackTrends:
  - Chiplet Design
articleLimit: 3
`), 0o644))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Chiplet", cfg.SeedKeyword)
	assert.Equal(t, []string{"Chiplet Design"}, cfg.FallbackTrends)
	assert.Equal(t, 3, cfg.ArticleLimit)
	// untouched keys keep their embedded values
	assert.Equal(t, "now 7-d", cfg.TrendTimeframe)
	assert.Equal(t, "https://example.com/future-vlsi", cfg.FallbackArticle.Link)
}

func TestLoad_ConfigFileErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fallbackArticle:\n  link: /relative\n"), 0o644))
	t.Setenv("CONFIG_FILE", path)
	_, err = Load()
	require.Error(t, err)
}
