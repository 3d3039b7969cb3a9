package sentiment

import (
	"math"

	"MarketPulse/internal/domain/models"
)

// MetricSelector picks the metric to classify from an instrument.
type MetricSelector func(models.Instrument) *float64

// ChangePct selects the raw percentage change.
func ChangePct(in models.Instrument) *float64 { return in.ChangePct }

// RelativeStrength selects the relative strength vs the benchmark.
func RelativeStrength(in models.Instrument) *float64 { return in.RelativeStrength }

// Aggregate classifies every instrument with the band and counts the
// buckets. Instruments with a missing symbol, a fetch error or a nil metric
// are excluded entirely: they count toward neither a bucket nor Total.
func Aggregate(instruments []models.Instrument, selector MetricSelector, band Band) models.Breadth {
	var b models.Breadth
	for _, in := range instruments {
		if in.Symbol == "" || in.Error {
			continue
		}
		switch Classify(selector(in), band) {
		case models.SentimentBullish:
			b.Positive++
		case models.SentimentBearish:
			b.Negative++
		case models.SentimentNeutral:
			b.Neutral++
		default:
			continue
		}
		b.Total++
	}
	b.Percentage = sharePct(b.Positive, b.Total)
	return b
}

// AggregateSlices computes breadth for one timeframe of a merged snapshot.
func AggregateSlices(instruments []models.MultiTimeframeInstrument, tf models.Timeframe, band Band) models.Breadth {
	var b models.Breadth
	for i := range instruments {
		s := instruments[i].Slice(tf)
		if !s.Available() {
			continue
		}
		switch Classify(s.ChangePct, band) {
		case models.SentimentBullish:
			b.Positive++
		case models.SentimentBearish:
			b.Negative++
		default:
			b.Neutral++
		}
		b.Total++
	}
	b.Percentage = sharePct(b.Positive, b.Total)
	return b
}

// sharePct is count/total as a rounded percentage, 0 for an empty group.
func sharePct(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count) * 100 / float64(total))
}
