package di

import (
	"fmt"
	"io"

	"MarketPulse/internal/catalog"
	"MarketPulse/internal/domain/repository"
	"MarketPulse/internal/handler/api"
	"MarketPulse/internal/sentiment"
	"MarketPulse/internal/service/quotes"
	"MarketPulse/internal/usecase"
	"MarketPulse/pkg/cache"
	"MarketPulse/pkg/config"
	applogger "MarketPulse/pkg/logger"
	"MarketPulse/pkg/metrics"
	"MarketPulse/pkg/server"
)

// ProvideLogger creates the application logger. Production runs JSON,
// everything else gets the console writer.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	format := "console"
	if cfg.Environment == "production" {
		format = "json"
	}
	l, err := applogger.New(&applogger.Config{Level: "info", Format: format, Output: "stdout"})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache creates the snapshot cache: a memory-over-Redis layered
// cache when Redis is enabled, otherwise an in-process memory cache.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if cfg.Cache.Redis.Enabled {
		c, err := cache.NewRedisCache(
			cache.WithRedisHost(cfg.Cache.Redis.Host),
			cache.WithRedisPort(cfg.Cache.Redis.Port),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
			cache.WithRedisPrefix("marketpulse"),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return cache.NewLayeredCache(c), nil
	}
	return cache.NewMemoryCache(), nil
}

// ProvideQuoteProvider creates the upstream quote client.
func ProvideQuoteProvider(cfg *config.Config, logger *applogger.Logger, m repository.Metrics) repository.QuoteProvider {
	return quotes.New(cfg.Quotes.BaseURL, cfg.Quotes.APIKey, logger,
		quotes.WithTimeout(cfg.Quotes.Timeout),
		quotes.WithRateLimit(cfg.Quotes.RateLimit, cfg.Quotes.RateBurst),
		quotes.WithMultiSupport(cfg.Quotes.Multi),
		quotes.WithMetrics(m),
	)
}

// ProvideScoreConfig builds the composite-score parameters, applying any
// VIX level overrides from config.
func ProvideScoreConfig(cfg *config.Config) sentiment.ScoreConfig {
	return catalog.ScoreConfig(sentiment.VIXLevels{
		ExtremeFear:  cfg.Sentiment.VIXLevels.ExtremeFear,
		Fear:         cfg.Sentiment.VIXLevels.Fear,
		Neutral:      cfg.Sentiment.VIXLevels.Neutral,
		Greed:        cfg.Sentiment.VIXLevels.Greed,
		ExtremeGreed: cfg.Sentiment.VIXLevels.ExtremeGreed,
	})
}

// ProvideOverviewUseCase creates the global overview use case.
func ProvideOverviewUseCase(
	provider repository.QuoteProvider,
	cacheSvc cache.Service,
	m repository.Metrics,
	logger *applogger.Logger,
	scoreCfg sentiment.ScoreConfig,
	cfg *config.Config,
) *usecase.MarketOverviewUseCase {
	return usecase.NewMarketOverviewUseCase(provider, cacheSvc, m, logger, scoreCfg, cfg.Cache.TTL.Overview)
}

// ProvideCommoditiesUseCase creates the commodities use case.
func ProvideCommoditiesUseCase(
	provider repository.QuoteProvider,
	cacheSvc cache.Service,
	m repository.Metrics,
	logger *applogger.Logger,
	cfg *config.Config,
) *usecase.CommoditiesUseCase {
	return usecase.NewCommoditiesUseCase(provider, cacheSvc, m, logger, cfg.Cache.TTL.Commodities)
}

// ProvideSectorScanUseCase creates the sector scanner use case.
func ProvideSectorScanUseCase(
	provider repository.QuoteProvider,
	cacheSvc cache.Service,
	m repository.Metrics,
	logger *applogger.Logger,
	cfg *config.Config,
) *usecase.SectorScanUseCase {
	categorizer := catalog.NewSectorCategorizer()
	if len(cfg.Sectors.Groups) > 0 {
		groups := make([]sentiment.Group, 0, len(cfg.Sectors.Groups))
		for _, g := range cfg.Sectors.Groups {
			groups = append(groups, sentiment.Group{Key: g.Key, Title: g.Title, Keywords: g.Keywords})
		}
		categorizer = sentiment.NewCategorizer(groups, catalog.DefaultGroupKey)
	}
	return usecase.NewSectorScanUseCase(provider, cacheSvc, m, logger,
		categorizer, cfg.Cache.TTL.Sectors, cfg.Cache.TTL.Stocks)
}

// ProvideMarketsHandler creates the markets HTTP handler.
func ProvideMarketsHandler(
	logger *applogger.Logger,
	overview *usecase.MarketOverviewUseCase,
	commodities *usecase.CommoditiesUseCase,
) *api.MarketsHandler {
	return api.NewMarketsHandler(logger, overview, commodities)
}

// ProvideSectorsHandler creates the sectors HTTP handler.
func ProvideSectorsHandler(logger *applogger.Logger, scan *usecase.SectorScanUseCase) *api.SectorsHandler {
	return api.NewSectorsHandler(logger, scan)
}

// ProvideHandler composes the route handlers.
func ProvideHandler(markets *api.MarketsHandler, sectors *api.SectorsHandler) *api.Handler {
	return api.NewHandler(markets, sectors)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *applogger.Logger,
	handler *api.Handler,
	cacheSvc cache.Service,
) *server.App {
	app := server.New(cfg, logger, handler)
	if c, ok := cacheSvc.(io.Closer); ok {
		app.AddCloser(c)
	}
	return app
}
