package repository

import (
	"context"
	"errors"

	"MarketPulse/internal/domain/models"
)

// ErrMultiUnsupported is returned by QuoteProvider.FetchMultiGroup when the
// upstream API cannot deliver the server-side multi-timeframe shape. Callers
// fall back to one fetch per timeframe and merge locally.
var ErrMultiUnsupported = errors.New("quotes: multi-timeframe shape not supported")

// QuoteProvider fetches performance snapshots from the external quotes API.
// Implementations convert upstream failures into unavailable data
// (Instrument.Error / nil metrics); only transport-level errors that make the
// whole request unusable are returned.
type QuoteProvider interface {
	// FetchGroup fetches one single-timeframe snapshot for the listings.
	// The result keeps the listing order; a symbol that failed upstream is
	// present with Error=true and nil metrics.
	FetchGroup(ctx context.Context, listings []models.Listing, tf models.Timeframe, lookback int) ([]models.Instrument, error)

	// FetchMultiGroup fetches the server-side multi-timeframe shape when the
	// provider supports it, otherwise returns ErrMultiUnsupported.
	FetchMultiGroup(ctx context.Context, listings []models.Listing, tfs []models.Timeframe, lookback int) ([]models.MultiTimeframeInstrument, error)
}

// Metrics records operational metrics for quote fetching.
type Metrics interface {
	RecordFetch(group string, tf models.Timeframe)
	RecordFetchError(kind string)
	RecordUpstreamLatency(op string, seconds float64)
	RecordIndexPrice(symbol string, price float64)
}
