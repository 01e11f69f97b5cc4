package ports

import (
	"context"

	"trendpost-bot/internal/domain/model"
)

// ArticleSource reads recent articles from a syndication feed.
// Implementations always return at least one article.
type ArticleSource interface {
	RecentArticles(ctx context.Context, feedURL string) []model.Article
}
