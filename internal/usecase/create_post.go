package usecase

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"golang.org/x/sync/errgroup"

	"trendpost-bot/internal/domain/model"
	"trendpost-bot/internal/domain/ports"
)

// PostCreatorConfig holds the fixed inputs of a run.
type PostCreatorConfig struct {
	SeedKeyword string
	TrendWindow string
	FeedURL     string
	// CallTimeout bounds every external call. Zero disables the per-call deadline.
	CallTimeout time.Duration
}

// PostCreator orchestrates trend, article, media and text generation into one post.
type PostCreator struct {
	trends   ports.TrendSource
	articles ports.ArticleSource
	media    ports.MediaLocator
	writer   ports.PostGenerator
	logger   ports.Logger
	cfg      PostCreatorConfig
}

// NewPostCreator constructs a PostCreator use case.
func NewPostCreator(
	trends ports.TrendSource,
	articles ports.ArticleSource,
	media ports.MediaLocator,
	writer ports.PostGenerator,
	logger ports.Logger,
	cfg PostCreatorConfig,
) *PostCreator {
	return &PostCreator{
		trends:   trends,
		articles: articles,
		media:    media,
		writer:   writer,
		logger:   logger,
		cfg:      cfg,
	}
}

// Create runs the pipeline once. Media lookup and text generation run concurrently.
func (p *PostCreator) Create(ctx context.Context, kind model.MediaKind) (model.GeneratedPost, error) {
	start := time.Now()
	p.logger.Info(ctx, "creating post", "seed", p.cfg.SeedKeyword, "mediaKind", string(kind))

	trends := p.fetchTrends(ctx)
	if len(trends) == 0 {
		p.logger.Error(ctx, "trend source returned no topics despite its fallback", "seed", p.cfg.SeedKeyword)
		return model.GeneratedPost{}, model.ErrNoTrends
	}
	topic := trends[0]

	articles := p.fetchArticles(ctx)
	if len(articles) == 0 {
		p.logger.Error(ctx, "article source returned no articles despite its fallback", "feed", p.cfg.FeedURL)
		return model.GeneratedPost{}, fmt.Errorf("%w: check the feed source %s", model.ErrNoArticles, p.cfg.FeedURL)
	}
	article := articles[0]

	var (
		media model.MediaReference
		post  string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		callCtx, cancel := p.withCallTimeout(gctx)
		defer cancel()

		ref, err := p.media.FindMedia(callCtx, topic, kind)
		if err != nil {
			return classify("find media", err)
		}
		media = ref
		return nil
	})
	g.Go(func() error {
		callCtx, cancel := p.withCallTimeout(gctx)
		defer cancel()

		text, err := p.writer.Generate(callCtx, topic, article.Summary)
		if err != nil {
			return classify("generate post", err)
		}
		post = text
		return nil
	})

	if err := g.Wait(); err != nil {
		p.logger.Error(ctx, "post creation failed", "topic", topic, "error", err)
		return model.GeneratedPost{}, err
	}

	result := model.GeneratedPost{
		Topic:      topic,
		Post:       post,
		MediaURL:   media.URL,
		SourceLink: article.Link,
	}

	p.logger.Info(ctx, "post created", "topic", topic, "hasMedia", media.Found(), "duration", time.Since(start))
	return result, nil
}

func (p *PostCreator) fetchTrends(ctx context.Context) []string {
	callCtx, cancel := p.withCallTimeout(ctx)
	defer cancel()
	return p.trends.RisingQueries(callCtx, p.cfg.SeedKeyword, p.cfg.TrendWindow)
}

func (p *PostCreator) fetchArticles(ctx context.Context) []model.Article {
	callCtx, cancel := p.withCallTimeout(ctx)
	defer cancel()
	return p.articles.RecentArticles(callCtx, p.cfg.FeedURL)
}

func (p *PostCreator) withCallTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.cfg.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.cfg.CallTimeout)
}

// classify tags deadline and network timeouts with model.ErrTimeout.
func classify(op string, err error) error {
	if errors.Is(err, model.ErrTimeout) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%s: %w: %w", op, model.ErrTimeout, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
