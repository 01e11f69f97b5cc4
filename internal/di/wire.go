//go:build wireinject

package di

import (
	"github.com/google/wire"

	"trendpost-bot/internal/adapter/logging"
	"trendpost-bot/internal/app"
	"trendpost-bot/internal/config"
	"trendpost-bot/internal/domain/ports"
	"trendpost-bot/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideTrendSource,
		provideArticleSource,
		provideMediaLocator,
		providePostGenerator,
		provideNotifier,
		providePostCreatorConfig,
		usecase.NewPostCreator,
		wire.Bind(new(app.Creator), new(*usecase.PostCreator)),
		provideOutput,
		provideAppOptions,
		app.New,
	)
	return nil, nil
}
