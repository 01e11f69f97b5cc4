package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"trendpost-bot/internal/domain/model"
	"trendpost-bot/internal/domain/ports"
)

const (
	defaultLimit = 5
	userAgent    = "Mozilla/5.0 (compatible; TrendPostBot/1.0)"
)

// Client reads recent articles from an RSS or Atom feed.
// An unreachable, malformed or empty feed yields the fallback article.
type Client struct {
	httpClient *http.Client
	limit      int
	fallback   model.Article
	logger     ports.Logger
}

var _ ports.ArticleSource = (*Client)(nil)

// New builds a feed client. limit <= 0 means 5.
func New(timeout time.Duration, limit int, fallback model.Article, logger ports.Logger) *Client {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		limit:      limit,
		fallback:   fallback,
		logger:     logger,
	}
}

// RecentArticles returns at most limit entries of feedURL in feed order.
func (c *Client) RecentArticles(ctx context.Context, feedURL string) []model.Article {
	articles, err := c.fetch(ctx, feedURL)
	if err == nil && len(articles) == 0 {
		err = fmt.Errorf("feed has no entries")
	}
	if err != nil {
		if c.logger != nil {
			c.logger.Warn(ctx, "feed unavailable, using fallback article", "feed", feedURL, "error", err)
		}
		return []model.Article{c.fallback}
	}

	if c.logger != nil {
		c.logger.Info(ctx, "feed articles fetched", "feed", feedURL, "count", len(articles))
	}
	return articles
}

func (c *Client) fetch(ctx context.Context, feedURL string) ([]model.Article, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = userAgent
	fp.Client = c.httpClient

	parsed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	articles := make([]model.Article, 0, c.limit)
	for _, item := range parsed.Items {
		if len(articles) >= c.limit {
			break
		}
		if item == nil {
			continue
		}

		articles = append(articles, model.Article{
			Title:   strings.TrimSpace(item.Title),
			Link:    absoluteLink(item.Link),
			Summary: htmlToText(item.Description),
		})
	}

	return articles, nil
}

// absoluteLink keeps link only when it is an absolute URL.
func absoluteLink(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	u, err := url.Parse(link)
	if err != nil || !u.IsAbs() {
		return ""
	}
	return link
}
