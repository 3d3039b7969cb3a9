package usecase

import (
	"context"
	"errors"
	"sync"

	"MarketPulse/internal/domain/models"
	"MarketPulse/internal/domain/repository"
	"MarketPulse/internal/sentiment"
	applogger "MarketPulse/pkg/logger"
)

// fetchMerged fetches every timeframe for the listings and merges the
// snapshots into one record per symbol. It prefers the provider's
// server-side multi shape and falls back to one concurrent fetch per
// timeframe. The boolean reports partial data: at least one timeframe
// degraded to unavailable slices.
//
// The base timeframe defines the symbol set of the result; if its fetch
// fails the whole call fails, since there is nothing to anchor the merge.
func fetchMerged(
	ctx context.Context,
	provider repository.QuoteProvider,
	logger *applogger.Logger,
	listings []models.Listing,
	base models.Timeframe,
	lookback int,
) ([]models.MultiTimeframeInstrument, bool, error) {
	tfs := models.AllTimeframes()

	merged, err := provider.FetchMultiGroup(ctx, listings, tfs, lookback)
	if err == nil {
		return merged, false, nil
	}
	if !errors.Is(err, repository.ErrMultiUnsupported) {
		return nil, false, err
	}

	type result struct {
		tf   models.Timeframe
		list []models.Instrument
		err  error
	}
	ch := make(chan result, len(tfs))
	var wg sync.WaitGroup

	for _, tf := range tfs {
		wg.Add(1)
		go func(tf models.Timeframe) {
			defer wg.Done()
			list, err := provider.FetchGroup(ctx, listings, tf, lookback)
			ch <- result{tf: tf, list: list, err: err}
		}(tf)
	}
	go func() { wg.Wait(); close(ch) }()

	lists := make(map[models.Timeframe][]models.Instrument, len(tfs))
	partial := false
	var baseErr error
	for r := range ch {
		if r.err != nil {
			if logger != nil {
				logger.Warn("fetch: timeframe degraded",
					applogger.String("timeframe", string(r.tf)),
					applogger.Error(r.err))
			}
			if r.tf == base {
				baseErr = r.err
			}
			partial = true
			continue
		}
		lists[r.tf] = r.list
	}
	if baseErr != nil {
		return nil, true, baseErr
	}

	return sentiment.Merge(base, lists), partial, nil
}

// instrumentsAt flattens one timeframe of a merged snapshot back into the
// single-timeframe shape the classifiers consume.
func instrumentsAt(merged []models.MultiTimeframeInstrument, tf models.Timeframe) []models.Instrument {
	out := make([]models.Instrument, 0, len(merged))
	for i := range merged {
		s := merged[i].Slice(tf)
		out = append(out, models.Instrument{
			Symbol:           merged[i].Symbol,
			Name:             merged[i].Name,
			Short:            merged[i].Short,
			Price:            merged[i].Price,
			Change:           s.Change,
			ChangePct:        s.ChangePct,
			RelativeStrength: s.RelativeStrength,
			Error:            s.Error,
		})
	}
	return out
}
