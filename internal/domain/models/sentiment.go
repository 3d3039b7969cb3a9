package models

// SentimentLabel classifies one instrument's metric against a band.
type SentimentLabel string

const (
	SentimentBullish SentimentLabel = "bullish"
	SentimentBearish SentimentLabel = "bearish"
	SentimentNeutral SentimentLabel = "neutral"

	// SentimentUnclassified marks instruments whose metric is unavailable.
	// They are excluded from breadth denominators.
	SentimentUnclassified SentimentLabel = "unclassified"
)

// Breadth counts classified instruments for one group and timeframe.
// Total is always Positive+Negative+Neutral; instruments with a missing
// metric are excluded entirely.
type Breadth struct {
	Positive   int     `json:"positive"`
	Negative   int     `json:"negative"`
	Neutral    int     `json:"neutral"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// GroupSentiment is the single representative sentiment for a group,
// derived from its breadth counts.
type GroupSentiment struct {
	Label      SentimentLabel `json:"label"`
	Percentage float64        `json:"percentage"`
}

// VIXReading reports the volatility index value and its fear/greed status.
type VIXReading struct {
	Value  *float64 `json:"value"`
	Status string   `json:"status"`
}

// SentimentFactors breaks the composite score into its weighted components.
type SentimentFactors struct {
	BreadthScore        float64 `json:"breadth_score"`
	WeightedReturnScore float64 `json:"weighted_return_score"`
	VIXScore            float64 `json:"vix_score"`
}

// Sentiment is the composite market sentiment for one timeframe: a 0-100
// score with a five-step label, the breadth behind it and the VIX reading.
type Sentiment struct {
	Score   float64          `json:"score"`
	Label   string           `json:"label"`
	Color   string           `json:"color"`
	Breadth Breadth          `json:"breadth"`
	VIX     VIXReading       `json:"vix"`
	Factors SentimentFactors `json:"factors"`
}
