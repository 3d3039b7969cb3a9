package usecase

import (
	"context"
	"sync"
	"time"

	"MarketPulse/internal/catalog"
	"MarketPulse/internal/domain/models"
	"MarketPulse/internal/domain/repository"
	"MarketPulse/internal/sentiment"
	"MarketPulse/pkg/cache"
	applogger "MarketPulse/pkg/logger"
)

// MarketOverviewUseCase builds the global markets dashboard: the catalog
// groups fetched concurrently, breadth-based composite sentiment, and the
// merged all-timeframes view.
type MarketOverviewUseCase struct {
	provider repository.QuoteProvider
	cache    cache.Service
	metrics  repository.Metrics
	logger   *applogger.Logger
	scoreCfg sentiment.ScoreConfig
	ttl      time.Duration
	timeout  time.Duration
}

func NewMarketOverviewUseCase(
	provider repository.QuoteProvider,
	cacheSvc cache.Service,
	metrics repository.Metrics,
	logger *applogger.Logger,
	scoreCfg sentiment.ScoreConfig,
	ttl time.Duration,
) *MarketOverviewUseCase {
	return &MarketOverviewUseCase{
		provider: provider,
		cache:    cacheSvc,
		metrics:  metrics,
		logger:   logger,
		scoreCfg: scoreCfg,
		ttl:      ttl,
		timeout:  20 * time.Second,
	}
}

// Overview fetches every market group for one timeframe and computes the
// composite sentiment over the index groups. A group whose fetch failed
// degrades to unavailable instruments and flips the partial flag.
func (uc *MarketOverviewUseCase) Overview(ctx context.Context, tf models.Timeframe) (*models.GlobalOverview, error) {
	key := cache.GenerateKeyWithParams("overview", tf)
	if uc.cache != nil {
		var cached models.GlobalOverview
		if err := uc.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	groups, partial := uc.fetchGroups(ctx, tf)

	var indices []models.Instrument
	for _, gk := range models.IndexGroupKeys() {
		indices = append(indices, groups[gk]...)
	}

	out := &models.GlobalOverview{
		Groups:    groups,
		Sentiment: sentiment.Score(indices, uc.scoreCfg),
		Timeframe: tf,
		Partial:   partial,
		Timestamp: time.Now().UTC(),
	}
	if uc.logger != nil {
		uc.logger.Debug("overview: sentiment computed",
			applogger.String("timeframe", string(tf)),
			applogger.Float64("score", out.Sentiment.Score))
	}

	if uc.cache != nil && !partial {
		if err := uc.cache.Set(ctx, key, out, uc.ttl); err != nil && uc.logger != nil {
			uc.logger.Warn("overview: cache set failed", applogger.Error(err))
		}
	}
	return out, nil
}

// Sentiment computes the composite sentiment alone.
func (uc *MarketOverviewUseCase) Sentiment(ctx context.Context, tf models.Timeframe) (*models.Sentiment, error) {
	overview, err := uc.Overview(ctx, tf)
	if err != nil {
		return nil, err
	}
	return &overview.Sentiment, nil
}

// MultiTimeframe fetches all timeframes for every market group, merges
// them per symbol with daily as the base, and computes one sentiment per
// timeframe.
func (uc *MarketOverviewUseCase) MultiTimeframe(ctx context.Context) (*models.MultiTimeframeOverview, error) {
	key := cache.GenerateKey("overview", "multi")
	if uc.cache != nil {
		var cached models.MultiTimeframeOverview
		if err := uc.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	catalogGroups := catalog.MarketGroups()
	base := models.DefaultTimeframe()

	type result struct {
		key     models.MarketGroupKey
		merged  []models.MultiTimeframeInstrument
		partial bool
		err     error
	}
	ch := make(chan result, len(catalogGroups))
	var wg sync.WaitGroup

	for gk, listings := range catalogGroups {
		wg.Add(1)
		go func(gk models.MarketGroupKey, listings []models.Listing) {
			defer wg.Done()
			merged, partial, err := fetchMerged(ctx, uc.provider, uc.logger, listings, base, 1)
			ch <- result{key: gk, merged: merged, partial: partial, err: err}
		}(gk, listings)
	}
	go func() { wg.Wait(); close(ch) }()

	groups := make(map[models.MarketGroupKey][]models.MultiTimeframeInstrument, len(catalogGroups))
	partial := false
	for r := range ch {
		if r.err != nil {
			if uc.logger != nil {
				uc.logger.Warn("overview: group degraded",
					applogger.String("group", string(r.key)),
					applogger.Error(r.err))
			}
			groups[r.key] = unavailableMerged(catalogGroups[r.key])
			partial = true
			continue
		}
		groups[r.key] = r.merged
		partial = partial || r.partial
	}

	sentiments := make(map[models.Timeframe]models.Sentiment, len(models.AllTimeframes()))
	for _, tf := range models.AllTimeframes() {
		var indices []models.Instrument
		for _, gk := range models.IndexGroupKeys() {
			indices = append(indices, instrumentsAt(groups[gk], tf)...)
		}
		sentiments[tf] = sentiment.Score(indices, uc.scoreCfg)
	}

	out := &models.MultiTimeframeOverview{
		Groups:     groups,
		Sentiments: sentiments,
		Partial:    partial,
		Timestamp:  time.Now().UTC(),
		Mode:       "multi_timeframe",
	}

	if uc.cache != nil && !partial {
		if err := uc.cache.Set(ctx, key, out, uc.ttl); err != nil && uc.logger != nil {
			uc.logger.Warn("overview: cache set failed", applogger.Error(err))
		}
	}
	return out, nil
}

// fetchGroups fetches every catalog group concurrently for one timeframe.
func (uc *MarketOverviewUseCase) fetchGroups(ctx context.Context, tf models.Timeframe) (map[models.MarketGroupKey][]models.Instrument, bool) {
	catalogGroups := catalog.MarketGroups()

	type result struct {
		key  models.MarketGroupKey
		list []models.Instrument
		err  error
	}
	ch := make(chan result, len(catalogGroups))
	var wg sync.WaitGroup

	for gk, listings := range catalogGroups {
		wg.Add(1)
		go func(gk models.MarketGroupKey, listings []models.Listing) {
			defer wg.Done()
			list, err := uc.provider.FetchGroup(ctx, listings, tf, 1)
			ch <- result{key: gk, list: list, err: err}
		}(gk, listings)
	}
	go func() { wg.Wait(); close(ch) }()

	groups := make(map[models.MarketGroupKey][]models.Instrument, len(catalogGroups))
	partial := false
	for r := range ch {
		if r.err != nil {
			if uc.logger != nil {
				uc.logger.Warn("overview: group degraded",
					applogger.String("group", string(r.key)),
					applogger.String("timeframe", string(tf)),
					applogger.Error(r.err))
			}
			groups[r.key] = unavailableInstruments(catalogGroups[r.key])
			partial = true
			continue
		}
		if uc.metrics != nil {
			uc.metrics.RecordFetch(string(r.key), tf)
		}
		groups[r.key] = r.list
	}
	return groups, partial
}

// unavailableInstruments renders a failed group: every listing present,
// nothing classified.
func unavailableInstruments(listings []models.Listing) []models.Instrument {
	out := make([]models.Instrument, 0, len(listings))
	for _, l := range listings {
		out = append(out, models.Instrument{Symbol: l.Symbol, Name: l.Name, Short: l.Short, Error: true})
	}
	return out
}

func unavailableMerged(listings []models.Listing) []models.MultiTimeframeInstrument {
	out := make([]models.MultiTimeframeInstrument, 0, len(listings))
	for _, l := range listings {
		tfs := make(map[models.Timeframe]models.TimeframeSlice, len(models.AllTimeframes()))
		for _, tf := range models.AllTimeframes() {
			tfs[tf] = models.TimeframeSlice{Error: true}
		}
		out = append(out, models.MultiTimeframeInstrument{Symbol: l.Symbol, Name: l.Name, Short: l.Short, Timeframes: tfs})
	}
	return out
}
