package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"MarketPulse/internal/catalog"
	"MarketPulse/internal/domain/models"
	"MarketPulse/internal/domain/repository"
	"MarketPulse/internal/sentiment"
	"MarketPulse/pkg/cache"
	applogger "MarketPulse/pkg/logger"
)

var (
	// ErrUnknownGroup rejects a sector scan over an index group the
	// catalog does not define.
	ErrUnknownGroup = errors.New("sectors: unknown index group")

	// ErrUnknownSector rejects a stock scan for a sector without
	// constituent coverage.
	ErrUnknownSector = errors.New("sectors: unknown sector")
)

// SectorScanUseCase compares sector indices and their constituent stocks
// against the benchmark across all timeframes: relative strength, the
// outperforming/neutral/underperforming split, breadth and keyword
// categories.
type SectorScanUseCase struct {
	provider    repository.QuoteProvider
	cache       cache.Service
	metrics     repository.Metrics
	logger      *applogger.Logger
	categorizer *sentiment.Categorizer
	perfTTL     time.Duration
	stocksTTL   time.Duration
	timeout     time.Duration
}

func NewSectorScanUseCase(
	provider repository.QuoteProvider,
	cacheSvc cache.Service,
	metrics repository.Metrics,
	logger *applogger.Logger,
	categorizer *sentiment.Categorizer,
	perfTTL, stocksTTL time.Duration,
) *SectorScanUseCase {
	return &SectorScanUseCase{
		provider:    provider,
		cache:       cacheSvc,
		metrics:     metrics,
		logger:      logger,
		categorizer: categorizer,
		perfTTL:     perfTTL,
		stocksTTL:   stocksTTL,
		timeout:     30 * time.Second,
	}
}

// Groups returns the index groups available to Performance.
func (uc *SectorScanUseCase) Groups() map[string][]string {
	return catalog.IndexGroups()
}

// Sectors returns the sector names available to Stocks.
func (uc *SectorScanUseCase) Sectors() []string {
	return catalog.Sectors()
}

// Performance scans one index group against the benchmark. The requested
// timeframe drives status, ranking and breadth; returns and relative
// strength still cover every timeframe.
func (uc *SectorScanUseCase) Performance(ctx context.Context, group string, tf models.Timeframe, lookback int) (*models.SectorPerformance, error) {
	listings, ok := catalog.IndexGroup(group)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGroup, group)
	}

	key := cache.GenerateKeyWithParams("sectors:performance", group, tf, lookback)
	if uc.cache != nil {
		var cached models.SectorPerformance
		if err := uc.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	scan, err := uc.scan(ctx, listings, tf, lookback)
	if err != nil {
		return nil, fmt.Errorf("sector scan %s: %w", group, err)
	}
	if uc.metrics != nil {
		uc.metrics.RecordFetch("sectors_"+group, tf)
	}

	categories := make(map[string][]models.SectorData)
	for i := range scan.rows {
		category := uc.categorizer.Categorize(scan.rows[i].Name)
		scan.rows[i].Category = category
		categories[category] = append(categories[category], scan.rows[i])
	}

	outperforming, neutral, underperforming := partition(scan.rows)
	out := &models.SectorPerformance{
		Benchmark:       scan.benchmark,
		Sectors:         scan.rows,
		Outperforming:   outperforming,
		Neutral:         neutral,
		Underperforming: underperforming,
		Categories:      categories,
		Breadth:         scan.breadth,
		Sentiment:       scan.sentiment,
		Timeframe:       tf,
		Lookback:        lookback,
		Partial:         scan.partial,
		Timestamp:       time.Now().UTC(),
	}

	if uc.cache != nil && !scan.partial {
		if err := uc.cache.Set(ctx, key, out, uc.perfTTL); err != nil && uc.logger != nil {
			uc.logger.Warn("sectors: cache set failed", applogger.Error(err))
		}
	}
	return out, nil
}

// Stocks scans the constituent stocks of one sector against the benchmark.
func (uc *SectorScanUseCase) Stocks(ctx context.Context, sector string, tf models.Timeframe, lookback int) (*models.SectorStocks, error) {
	listings, ok := catalog.SectorStocks(sector)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSector, sector)
	}

	key := cache.GenerateKeyWithParams("sectors:stocks", sector, tf, lookback)
	if uc.cache != nil {
		var cached models.SectorStocks
		if err := uc.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	scan, err := uc.scan(ctx, listings, tf, lookback)
	if err != nil {
		return nil, fmt.Errorf("stock scan %s: %w", sector, err)
	}
	if uc.metrics != nil {
		uc.metrics.RecordFetch("stocks", tf)
	}

	outperforming, neutral, underperforming := partition(scan.rows)
	out := &models.SectorStocks{
		SectorName:      sector,
		Benchmark:       scan.benchmark,
		Stocks:          scan.rows,
		Outperforming:   outperforming,
		Neutral:         neutral,
		Underperforming: underperforming,
		Breadth:         scan.breadth,
		Sentiment:       scan.sentiment,
		TotalStocks:     len(scan.rows),
		Timeframe:       tf,
		Lookback:        lookback,
		Partial:         scan.partial,
		Timestamp:       time.Now().UTC(),
	}

	if uc.cache != nil && !scan.partial {
		if err := uc.cache.Set(ctx, key, out, uc.stocksTTL); err != nil && uc.logger != nil {
			uc.logger.Warn("sectors: cache set failed", applogger.Error(err))
		}
	}
	return out, nil
}

type scanResult struct {
	benchmark *models.BenchmarkData
	rows      []models.SectorData
	breadth   models.Breadth
	sentiment models.GroupSentiment
	partial   bool
}

// scan fetches benchmark plus targets across all timeframes, computes
// relative strength per timeframe and ranks the targets on the requested
// one. Relative strength comes from the provider when it sends it and is
// otherwise the difference of the return against the benchmark's.
func (uc *SectorScanUseCase) scan(ctx context.Context, targets []models.Listing, tf models.Timeframe, lookback int) (*scanResult, error) {
	listings := make([]models.Listing, 0, len(targets)+1)
	listings = append(listings, catalog.Benchmark)
	listings = append(listings, targets...)

	merged, partial, err := fetchMerged(ctx, uc.provider, uc.logger, listings, tf, lookback)
	if err != nil {
		return nil, err
	}

	var benchmarkRec *models.MultiTimeframeInstrument
	for i := range merged {
		if merged[i].Symbol == catalog.Benchmark.Symbol {
			benchmarkRec = &merged[i]
			break
		}
	}
	if benchmarkRec == nil {
		return nil, fmt.Errorf("benchmark %s missing from snapshot", catalog.Benchmark.Symbol)
	}

	benchmark := &models.BenchmarkData{
		Name:      catalog.Benchmark.Name,
		Symbol:    catalog.Benchmark.Symbol,
		Price:     benchmarkRec.Price,
		Returns:   timeframeReturns(benchmarkRec),
		Timestamp: time.Now().UTC(),
	}

	rows := make([]models.SectorData, 0, len(merged)-1)
	for i := range merged {
		rec := &merged[i]
		if rec.Symbol == catalog.Benchmark.Symbol {
			continue
		}
		row := models.SectorData{
			Name:    rec.Name,
			Symbol:  rec.Symbol,
			Price:   rec.Price,
			Returns: timeframeReturns(rec),
		}
		for _, t := range models.AllTimeframes() {
			row.RelativeStrength.Set(t, relativeStrengthAt(rec, benchmarkRec, t))
		}
		row.Status = sentiment.Status(row.RelativeStrength.Get(tf), sentiment.OutperformanceBand)
		rows = append(rows, row)
	}

	rank(rows, tf)

	classified := make([]models.Instrument, 0, len(rows))
	for _, row := range rows {
		classified = append(classified, models.Instrument{
			Symbol:           row.Symbol,
			Name:             row.Name,
			RelativeStrength: row.RelativeStrength.Get(tf),
		})
	}
	breadth := sentiment.Aggregate(classified, sentiment.RelativeStrength, sentiment.RelativeStrengthBand)

	return &scanResult{
		benchmark: benchmark,
		rows:      rows,
		breadth:   breadth,
		sentiment: sentiment.Resolve(breadth),
		partial:   partial,
	}, nil
}

func timeframeReturns(rec *models.MultiTimeframeInstrument) models.TimeframeValues {
	var v models.TimeframeValues
	for _, tf := range models.AllTimeframes() {
		if s := rec.Slice(tf); s.Available() {
			v.Set(tf, s.ChangePct)
		}
	}
	return v
}

// relativeStrengthAt prefers the provider's figure and falls back to the
// spread over the benchmark's return.
func relativeStrengthAt(rec, benchmark *models.MultiTimeframeInstrument, tf models.Timeframe) *float64 {
	s := rec.Slice(tf)
	if s.Error {
		return nil
	}
	if s.RelativeStrength != nil {
		return s.RelativeStrength
	}
	b := benchmark.Slice(tf)
	if s.ChangePct == nil || !b.Available() {
		return nil
	}
	rs := *s.ChangePct - *b.ChangePct
	return &rs
}

// rank orders rows by relative strength at tf, strongest first, rows
// without a figure last, and assigns 1-based ranks.
func rank(rows []models.SectorData, tf models.Timeframe) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].RelativeStrength.Get(tf), rows[j].RelativeStrength.Get(tf)
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
}

func partition(rows []models.SectorData) (outperforming, neutral, underperforming []models.SectorData) {
	for _, row := range rows {
		switch row.Status {
		case models.StatusOutperforming:
			outperforming = append(outperforming, row)
		case models.StatusUnderperforming:
			underperforming = append(underperforming, row)
		default:
			neutral = append(neutral, row)
		}
	}
	return outperforming, neutral, underperforming
}
