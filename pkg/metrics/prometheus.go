package metrics

import (
	"MarketPulse/internal/domain/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchesTotal    *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	indexPrice      *prometheus.GaugeVec
	upstreamLatency *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketpulse_quote_fetches_total",
				Help: "Total number of quote group fetches",
			},
			[]string{"group", "timeframe"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketpulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		indexPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "marketpulse_index_price",
				Help: "Last fetched price for an index symbol",
			},
			[]string{"symbol"},
		),
		upstreamLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "marketpulse_upstream_duration_seconds",
				Help:    "Duration of upstream quote requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordFetch records one group fetch for a timeframe.
func (r *Recorder) RecordFetch(group string, tf models.Timeframe) {
	r.fetchesTotal.WithLabelValues(group, string(tf)).Inc()
}

// RecordFetchError records an error occurrence.
func (r *Recorder) RecordFetchError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordUpstreamLatency records upstream request latency in seconds.
func (r *Recorder) RecordUpstreamLatency(op string, seconds float64) {
	r.upstreamLatency.WithLabelValues(op).Observe(seconds)
}

// RecordIndexPrice records the last price for a symbol.
func (r *Recorder) RecordIndexPrice(symbol string, price float64) {
	r.indexPrice.WithLabelValues(symbol).Set(price)
}
