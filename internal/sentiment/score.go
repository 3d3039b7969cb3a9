package sentiment

import (
	"math"

	"MarketPulse/internal/domain/models"
)

// VIXLevels are the fear/greed cut points for the volatility index.
type VIXLevels struct {
	ExtremeFear  float64 `yaml:"extreme_fear"`
	Fear         float64 `yaml:"fear"`
	Neutral      float64 `yaml:"neutral"`
	Greed        float64 `yaml:"greed"`
	ExtremeGreed float64 `yaml:"extreme_greed"`
}

// ScoreConfig parameterizes the composite score: per-symbol weights for the
// weighted-return factor (fear gauges carry negative weights) and the symbol
// whose price is read as the VIX level.
type ScoreConfig struct {
	Weights   map[string]float64
	VIXSymbol string
	VIXLevels VIXLevels
}

// Factor weights of the composite score.
const (
	breadthWeight = 0.40
	returnsWeight = 0.40
	vixWeight     = 0.20
)

// Score computes the composite 0-100 market sentiment over all classified
// indices: breadth share, weighted normalized return and the VIX level.
// With no usable indices at all the score is a flat neutral 50.
func Score(indices []models.Instrument, cfg ScoreConfig) models.Sentiment {
	classified := make([]models.Instrument, 0, len(indices))
	var vixValue *float64
	for _, in := range indices {
		if in.Symbol == "" || in.Error || in.ChangePct == nil {
			continue
		}
		classified = append(classified, in)
		if in.Symbol == cfg.VIXSymbol && in.Price != nil {
			vixValue = in.Price
		}
	}

	if len(classified) == 0 {
		return models.Sentiment{
			Score:   50,
			Label:   "Neutral",
			Color:   "yellow",
			VIX:     models.VIXReading{Status: "Unknown"},
			Factors: models.SentimentFactors{BreadthScore: 50, WeightedReturnScore: 50, VIXScore: 50},
		}
	}

	breadth := Aggregate(classified, ChangePct, GlobalBreadthBand)
	breadthScore := float64(breadth.Positive) * 100 / float64(breadth.Total)

	// Weighted return normalized so -3%..+3% maps onto 0..100.
	var weightedReturn float64
	for _, in := range classified {
		if w, ok := cfg.Weights[in.Symbol]; ok {
			weightedReturn += *in.ChangePct * w
		}
	}
	returnScore := clamp((weightedReturn+3)/6*100, 0, 100)

	vixScore, vixStatus := scoreVIX(vixValue, cfg.VIXLevels)

	score := round1(breadthScore*breadthWeight + returnScore*returnsWeight + vixScore*vixWeight)
	label, color := scoreLabel(score)

	return models.Sentiment{
		Score:   score,
		Label:   label,
		Color:   color,
		Breadth: breadth,
		VIX:     models.VIXReading{Value: vixValue, Status: vixStatus},
		Factors: models.SentimentFactors{
			BreadthScore:        round1(breadthScore),
			WeightedReturnScore: round1(returnScore),
			VIXScore:            round1(vixScore),
		},
	}
}

func scoreVIX(value *float64, levels VIXLevels) (float64, string) {
	if value == nil {
		return 50, "Unknown"
	}
	v := *value
	switch {
	case v >= levels.ExtremeFear:
		return 10, "Extreme Fear"
	case v >= levels.Fear:
		return 30, "Fear"
	case v >= levels.Neutral:
		return 50, "Neutral"
	case v >= levels.Greed:
		return 70, "Greed"
	default:
		return 90, "Extreme Greed"
	}
}

func scoreLabel(score float64) (string, string) {
	switch {
	case score >= 70:
		return "Bullish", "green"
	case score >= 55:
		return "Slightly Bullish", "lightgreen"
	case score >= 45:
		return "Neutral", "yellow"
	case score >= 30:
		return "Slightly Bearish", "orange"
	default:
		return "Bearish", "red"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
