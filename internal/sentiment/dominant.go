package sentiment

import "MarketPulse/internal/domain/models"

// Resolve picks the single representative sentiment for a group from its
// breadth counts. Each label percentage is rounded independently, so the
// three need not sum to exactly 100. Ties resolve bullish before bearish
// before neutral. An empty breadth resolves neutral at 0.
func Resolve(b models.Breadth) models.GroupSentiment {
	if b.Total == 0 {
		return models.GroupSentiment{Label: models.SentimentNeutral, Percentage: 0}
	}

	bullish := sharePct(b.Positive, b.Total)
	bearish := sharePct(b.Negative, b.Total)
	neutral := sharePct(b.Neutral, b.Total)

	switch {
	case bullish >= bearish && bullish >= neutral:
		return models.GroupSentiment{Label: models.SentimentBullish, Percentage: bullish}
	case bearish >= neutral:
		return models.GroupSentiment{Label: models.SentimentBearish, Percentage: bearish}
	default:
		return models.GroupSentiment{Label: models.SentimentNeutral, Percentage: neutral}
	}
}
