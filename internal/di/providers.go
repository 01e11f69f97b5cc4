package di

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"trendpost-bot/internal/adapter/discord"
	"trendpost-bot/internal/adapter/feed"
	"trendpost-bot/internal/adapter/logging"
	"trendpost-bot/internal/adapter/media"
	"trendpost-bot/internal/adapter/trends"
	"trendpost-bot/internal/adapter/writing"
	"trendpost-bot/internal/app"
	"trendpost-bot/internal/config"
	"trendpost-bot/internal/domain/model"
	"trendpost-bot/internal/domain/ports"
	"trendpost-bot/internal/usecase"
)

// provideSlogLogger logs to stderr so stdout only carries the post.
func provideSlogLogger(cfg *config.Config) *slog.Logger {
	handler := logging.NewHandler(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	return slog.New(handler).With("run_id", uuid.NewString())
}

func provideTrendSource(cfg *config.Config, logger ports.Logger) ports.TrendSource {
	return trends.New(trends.Options{
		BaseURL:  cfg.Trends.BaseURL,
		Language: cfg.Trends.Language,
		Timezone: cfg.Trends.Timezone,
		Geo:      cfg.Trends.Geo,
		Limit:    cfg.TrendLimit,
		Fallback: cfg.FallbackTrends,
		Timeout:  cfg.RequestTimeout,
	}, logger)
}

func provideArticleSource(cfg *config.Config, logger ports.Logger) ports.ArticleSource {
	fallback := model.Article{
		Title:   cfg.FallbackArticle.Title,
		Link:    cfg.FallbackArticle.Link,
		Summary: cfg.FallbackArticle.Summary,
	}
	return feed.New(cfg.RequestTimeout, cfg.ArticleLimit, fallback, logger)
}

func provideMediaLocator(cfg *config.Config, logger ports.Logger) ports.MediaLocator {
	return media.NewPexels(cfg.PexelsBaseURL, cfg.PexelsAPIKey, cfg.RequestTimeout, logger)
}

func providePostGenerator(cfg *config.Config, logger ports.Logger) ports.PostGenerator {
	switch cfg.PostProvider {
	case config.ProviderOpenAI:
		return writing.NewOpenAIWriter(cfg.OpenAIAPIKey, cfg.OpenAIModel, "", cfg.RequestTimeout, logger)
	case config.ProviderAnthropic:
		return writing.NewClaudeWriter(cfg.AnthropicAPIKey, cfg.AnthropicModel, "", cfg.RequestTimeout, logger)
	default:
		return writing.NewGeminiWriter(cfg.GeminiAPIKey, cfg.GeminiModel, "", cfg.RequestTimeout, logger)
	}
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	if cfg.DiscordWebhookURL == "" {
		return nil
	}
	return discord.NewWebhook(cfg.DiscordWebhookURL, cfg.RequestTimeout, logger)
}

func providePostCreatorConfig(cfg *config.Config) usecase.PostCreatorConfig {
	return usecase.PostCreatorConfig{
		SeedKeyword: cfg.SeedKeyword,
		TrendWindow: cfg.TrendTimeframe,
		FeedURL:     cfg.FeedURL,
		CallTimeout: cfg.RequestTimeout,
	}
}

func provideOutput() io.Writer {
	return os.Stdout
}

func provideAppOptions(cfg *config.Config) app.Options {
	return app.Options{
		MediaKind:    cfg.MediaKind,
		OutputFormat: cfg.OutputFormat,
	}
}
