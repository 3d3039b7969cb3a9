//go:build wireinject
// +build wireinject

package di

import (
	"MarketPulse/pkg/config"
	"MarketPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient infrastructure
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,

		// Upstream quote client
		ProvideQuoteProvider,
		ProvideScoreConfig,

		// Use cases
		ProvideOverviewUseCase,
		ProvideCommoditiesUseCase,
		ProvideSectorScanUseCase,

		// HTTP handlers
		ProvideMarketsHandler,
		ProvideSectorsHandler,
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
