//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"solaced/internal"
	"solaced/internal/controllers"
	"solaced/internal/providers"
	"solaced/internal/services"
	"solaced/internal/structures"
	"solaced/internal/sweep"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		sweep.NewZstdCompressor,
		services.NewJournalService,
		services.NewChatService,
		services.NewFeedService,
		services.NewMatchService,
		sweep.NewArchive,
		sweep.NewSweeper,
		sweep.NewFileManager,
		sweep.NewScheduler,
		controllers.NewJournalController,
		controllers.NewChatController,
		controllers.NewFeedController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
