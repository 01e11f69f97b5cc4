package ports

import (
	"context"

	"trendpost-bot/internal/domain/model"
)

// MediaLocator finds a stock photo or video for a query.
type MediaLocator interface {
	FindMedia(ctx context.Context, query string, kind model.MediaKind) (model.MediaReference, error)
}
