package usecase

import (
	"context"
	"fmt"
	"time"

	"MarketPulse/internal/catalog"
	"MarketPulse/internal/domain/models"
	"MarketPulse/internal/domain/repository"
	"MarketPulse/internal/sentiment"
	"MarketPulse/pkg/cache"
	applogger "MarketPulse/pkg/logger"
)

// CommoditiesUseCase builds the commodities snapshot. Commodity breadth is
// strict about zero: any positive change is bullish, any negative bearish,
// only an exact zero stays neutral.
type CommoditiesUseCase struct {
	provider repository.QuoteProvider
	cache    cache.Service
	metrics  repository.Metrics
	logger   *applogger.Logger
	ttl      time.Duration
	timeout  time.Duration
}

func NewCommoditiesUseCase(
	provider repository.QuoteProvider,
	cacheSvc cache.Service,
	metrics repository.Metrics,
	logger *applogger.Logger,
	ttl time.Duration,
) *CommoditiesUseCase {
	return &CommoditiesUseCase{
		provider: provider,
		cache:    cacheSvc,
		metrics:  metrics,
		logger:   logger,
		ttl:      ttl,
		timeout:  15 * time.Second,
	}
}

// Commodities fetches the commodity futures for one timeframe.
func (uc *CommoditiesUseCase) Commodities(ctx context.Context, tf models.Timeframe) (*models.CommoditiesView, error) {
	key := cache.GenerateKeyWithParams("commodities", tf)
	if uc.cache != nil {
		var cached models.CommoditiesView
		if err := uc.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	listings := catalog.Commodities()
	list, err := uc.provider.FetchGroup(ctx, listings, tf, 1)
	partial := false
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn("commodities: fetch degraded", applogger.Error(err))
		}
		list = unavailableInstruments(listings)
		partial = true
	} else if uc.metrics != nil {
		uc.metrics.RecordFetch(string(models.GroupCommodities), tf)
	}

	breadth := sentiment.Aggregate(list, sentiment.ChangePct, sentiment.StrictZeroBand)
	out := &models.CommoditiesView{
		Commodities: list,
		Breadth:     breadth,
		Sentiment:   sentiment.Resolve(breadth),
		Timeframe:   tf,
		Partial:     partial,
		Timestamp:   time.Now().UTC(),
	}

	if uc.cache != nil && !partial {
		if err := uc.cache.Set(ctx, key, out, uc.ttl); err != nil && uc.logger != nil {
			uc.logger.Warn("commodities: cache set failed", applogger.Error(err))
		}
	}
	return out, nil
}

// MultiTimeframe fetches every timeframe for the commodities and reports a
// strict-zero breadth per timeframe.
func (uc *CommoditiesUseCase) MultiTimeframe(ctx context.Context) (*models.MultiCommoditiesView, error) {
	key := cache.GenerateKey("commodities", "multi")
	if uc.cache != nil {
		var cached models.MultiCommoditiesView
		if err := uc.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	merged, partial, err := fetchMerged(ctx, uc.provider, uc.logger, catalog.Commodities(), models.DefaultTimeframe(), 1)
	if err != nil {
		return nil, fmt.Errorf("commodities multi fetch: %w", err)
	}

	breadths := make(map[models.Timeframe]models.Breadth, len(models.AllTimeframes()))
	for _, tf := range models.AllTimeframes() {
		breadths[tf] = sentiment.AggregateSlices(merged, tf, sentiment.StrictZeroBand)
	}

	out := &models.MultiCommoditiesView{
		Commodities: merged,
		Breadths:    breadths,
		Partial:     partial,
		Timestamp:   time.Now().UTC(),
		Mode:        "multi_timeframe",
	}

	if uc.cache != nil && !partial {
		if err := uc.cache.Set(ctx, key, out, uc.ttl); err != nil && uc.logger != nil {
			uc.logger.Warn("commodities: cache set failed", applogger.Error(err))
		}
	}
	return out, nil
}
