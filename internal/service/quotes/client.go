// Package quotes implements the QuoteProvider over the external
// performance API. Upstream failures degrade to unavailable data at this
// boundary: a symbol the API could not serve comes back as an Instrument
// with Error=true and nil metrics, never as an error to the caller.
package quotes

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"MarketPulse/internal/domain/models"
	"MarketPulse/internal/domain/repository"
	xhttp "MarketPulse/pkg/http"
	applogger "MarketPulse/pkg/logger"

	"golang.org/x/time/rate"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultRateLimit = 5 // requests per second
	DefaultRateBurst = 10
)

// Client fetches performance snapshots over HTTP.
type Client struct {
	baseURL       string
	apiKey        string
	http          *xhttp.Client
	limiter       *rate.Limiter
	logger        *applogger.Logger
	metrics       repository.Metrics
	supportsMulti bool
}

// Option configures the client.
type Option func(*Client)

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http = xhttp.NewClient(xhttp.WithTimeout(timeout))
	}
}

// WithRateLimit sets the upstream request rate.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m repository.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithMultiSupport enables the server-side multi-timeframe shape.
func WithMultiSupport(enabled bool) Option {
	return func(c *Client) {
		c.supportsMulti = enabled
	}
}

// New creates a quotes client for the performance API at baseURL.
func New(baseURL, apiKey string, logger *applogger.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    xhttp.NewClient(xhttp.WithTimeout(DefaultTimeout)),
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateBurst),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchGroup fetches one single-timeframe snapshot. The result keeps the
// listing order; symbols missing or flagged by the API come back with
// Error=true and nil metrics.
func (c *Client) FetchGroup(ctx context.Context, listings []models.Listing, tf models.Timeframe, lookback int) ([]models.Instrument, error) {
	if len(listings) == 0 {
		return nil, nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("quotes rate limit: %w", err)
	}

	var payload performanceResponse
	start := time.Now()
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/v1/performance",
		QueryParams: map[string][]string{
			"symbols":   {joinSymbols(listings)},
			"timeframe": {tf.QueryForm()},
			"lookback":  {strconv.Itoa(lookback)},
		},
		Headers: c.headers(),
	}, &payload)
	c.observe("performance", start, err)
	if err != nil {
		return nil, fmt.Errorf("fetch performance: %w", err)
	}

	rows := make(map[string]quoteRow, len(payload.Data))
	for _, row := range payload.Data {
		rows[row.Symbol] = row
	}

	out := make([]models.Instrument, 0, len(listings))
	for _, l := range listings {
		row, ok := rows[l.Symbol]
		if !ok || row.Error {
			out = append(out, models.Instrument{Symbol: l.Symbol, Name: l.Name, Short: l.Short, Error: true})
			continue
		}
		in := models.Instrument{
			Symbol:           l.Symbol,
			Name:             l.Name,
			Short:            l.Short,
			Price:            row.Price.value(),
			Change:           row.Change.value(),
			ChangePct:        row.ChangePct.value(),
			RelativeStrength: row.relativeStrength(),
		}
		if c.metrics != nil && in.Price != nil {
			c.metrics.RecordIndexPrice(in.Symbol, *in.Price)
		}
		out = append(out, in)
	}
	return out, nil
}

// FetchMultiGroup fetches the server-side multi-timeframe shape. Providers
// without the shape report ErrMultiUnsupported so the caller can fall back
// to one fetch per timeframe.
func (c *Client) FetchMultiGroup(ctx context.Context, listings []models.Listing, tfs []models.Timeframe, lookback int) ([]models.MultiTimeframeInstrument, error) {
	if !c.supportsMulti {
		return nil, repository.ErrMultiUnsupported
	}
	if len(listings) == 0 {
		return nil, nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("quotes rate limit: %w", err)
	}

	forms := make([]string, 0, len(tfs))
	for _, tf := range tfs {
		forms = append(forms, tf.QueryForm())
	}

	var payload multiResponse
	start := time.Now()
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/v1/performance/multi",
		QueryParams: map[string][]string{
			"symbols":    {joinSymbols(listings)},
			"timeframes": {strings.Join(forms, ",")},
			"lookback":   {strconv.Itoa(lookback)},
		},
		Headers: c.headers(),
	}, &payload)
	c.observe("performance_multi", start, err)
	if err != nil {
		if isNotImplemented(err) {
			return nil, repository.ErrMultiUnsupported
		}
		return nil, fmt.Errorf("fetch multi performance: %w", err)
	}

	rows := make(map[string]multiRow, len(payload.Data))
	for _, row := range payload.Data {
		rows[row.Symbol] = row
	}

	out := make([]models.MultiTimeframeInstrument, 0, len(listings))
	for _, l := range listings {
		row, ok := rows[l.Symbol]
		merged := models.MultiTimeframeInstrument{
			Symbol:     l.Symbol,
			Name:       l.Name,
			Short:      l.Short,
			Timeframes: make(map[models.Timeframe]models.TimeframeSlice, len(tfs)),
		}
		if ok {
			merged.Price = row.Price.value()
		}
		for _, tf := range tfs {
			slice := models.TimeframeSlice{Error: true}
			if ok {
				if raw, found := row.Timeframes[tf.QueryForm()]; found && !raw.Error {
					slice = models.TimeframeSlice{
						Change:           raw.Change.value(),
						ChangePct:        raw.ChangePct.value(),
						RelativeStrength: raw.relativeStrength(),
					}
				}
			}
			merged.Timeframes[tf] = slice
		}
		out = append(out, merged)
	}
	return out, nil
}

func (c *Client) headers() map[string]string {
	h := map[string]string{"Accept": "application/json"}
	if c.apiKey != "" {
		h["Authorization"] = "Bearer " + c.apiKey
	}
	return h
}

func (c *Client) observe(op string, start time.Time, err error) {
	elapsed := time.Since(start)
	if c.metrics != nil {
		c.metrics.RecordUpstreamLatency(op, elapsed.Seconds())
		if err != nil {
			c.metrics.RecordFetchError("upstream")
		}
	}
	if err != nil && c.logger != nil {
		c.logger.Warn("quotes: upstream request failed",
			applogger.String("op", op),
			applogger.Duration("elapsed_ms", elapsed),
			applogger.Error(err))
	}
}

func joinSymbols(listings []models.Listing) string {
	symbols := make([]string, 0, len(listings))
	for _, l := range listings {
		symbols = append(symbols, l.Symbol)
	}
	return strings.Join(symbols, ",")
}

// isNotImplemented detects the status codes an upstream without the multi
// shape answers with.
func isNotImplemented(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, fmt.Sprintf("unexpected status %d", http.StatusNotFound)) ||
		strings.Contains(msg, fmt.Sprintf("unexpected status %d", http.StatusNotImplemented))
}
