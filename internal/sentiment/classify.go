package sentiment

import "MarketPulse/internal/domain/models"

// Classify maps a single metric to a sentiment label using the band.
// A nil value is unclassified and excluded from breadth denominators.
func Classify(v *float64, band Band) models.SentimentLabel {
	if v == nil {
		return models.SentimentUnclassified
	}
	switch {
	case *v >= band.Bullish:
		return models.SentimentBullish
	case *v <= band.Bearish:
		return models.SentimentBearish
	default:
		return models.SentimentNeutral
	}
}

// Status maps a relative-strength value to the benchmark-relative status
// used by sector and stock scans. Unavailable values read as neutral.
func Status(rs *float64, band Band) models.RelativeStatus {
	switch Classify(rs, band) {
	case models.SentimentBullish:
		return models.StatusOutperforming
	case models.SentimentBearish:
		return models.StatusUnderperforming
	default:
		return models.StatusNeutral
	}
}
