package app

import (
	"context"
	"fmt"
	"io"

	"trendpost-bot/internal/domain/model"
	"trendpost-bot/internal/domain/ports"
)

// Creator produces one post per call.
type Creator interface {
	Create(ctx context.Context, kind model.MediaKind) (model.GeneratedPost, error)
}

// Options controls what a run produces and how it is printed.
type Options struct {
	MediaKind    model.MediaKind
	OutputFormat string
}

// App runs a single post creation and prints the result.
type App struct {
	creator  Creator
	notifier ports.Notifier
	logger   ports.Logger
	out      io.Writer
	opts     Options
}

// New constructs an App instance. notifier may be nil.
func New(creator Creator, notifier ports.Notifier, logger ports.Logger, out io.Writer, opts Options) *App {
	return &App{
		creator:  creator,
		notifier: notifier,
		logger:   logger,
		out:      out,
		opts:     opts,
	}
}

// Run creates the post, writes it to the output and delivers it when a notifier is set.
// Nothing is written when creation fails.
func (a *App) Run(ctx context.Context) error {
	post, err := a.creator.Create(ctx, a.opts.MediaKind)
	if err != nil {
		return err
	}

	if err := render(a.out, post, a.opts.OutputFormat); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if a.notifier == nil {
		return nil
	}

	if err := a.notifier.Send(ctx, buildNotification(post, a.opts.MediaKind)); err != nil {
		a.logger.Error(ctx, "failed to deliver post", "error", err)
		return fmt.Errorf("deliver post: %w", err)
	}

	a.logger.Info(ctx, "post delivered", "topic", post.Topic)
	return nil
}

func buildNotification(post model.GeneratedPost, kind model.MediaKind) model.Notification {
	n := model.Notification{
		Title:       post.Topic,
		Description: post.Post,
		URL:         post.SourceLink,
	}

	if post.SourceLink != "" {
		n.Fields = append(n.Fields, model.NotificationField{Name: "Source", Value: post.SourceLink})
	}

	switch {
	case post.MediaURL == "":
	case kind == model.MediaPhoto:
		n.ImageURL = post.MediaURL
	default:
		n.Fields = append(n.Fields, model.NotificationField{Name: "Video", Value: post.MediaURL})
	}

	return n
}
