// Package catalog holds the static instrument universe: global index
// groups, commodity futures, NIFTY sector indices and their constituent
// stocks. Symbols use the upstream quote-provider notation (^ prefixed
// indices, =F futures, =X currency pairs, NSE: fallback indices).
package catalog

import (
	"MarketPulse/internal/domain/models"
	"MarketPulse/internal/sentiment"
)

var usMarkets = []models.Listing{
	{Symbol: "^DJI", Name: "Dow Jones Industrial", Short: "DJI"},
	{Symbol: "^GSPC", Name: "S&P 500", Short: "SPX"},
	{Symbol: "^IXIC", Name: "NASDAQ Composite", Short: "IXIC"},
	{Symbol: "^NDX", Name: "NASDAQ 100", Short: "NDX"},
	{Symbol: "^RUT", Name: "Russell 2000", Short: "RUT"},
	{Symbol: "^NYA", Name: "NYSE Composite", Short: "NYA"},
	{Symbol: "^VIX", Name: "Volatility Index", Short: "VIX"},
	{Symbol: "DX-Y.NYB", Name: "US Dollar Index", Short: "DXY"},
	{Symbol: "USDINR=X", Name: "USD/INR", Short: "USDINR"},
	{Symbol: "ES=F", Name: "S&P 500 Futures", Short: "ES"},
	{Symbol: "NQ=F", Name: "NASDAQ Futures", Short: "NQ"},
}

var europeanMarkets = []models.Listing{
	{Symbol: "^GDAXI", Name: "DAX (Germany)", Short: "DAX"},
	{Symbol: "^FTSE", Name: "FTSE 100 (UK)", Short: "FTSE"},
	{Symbol: "^FCHI", Name: "CAC 40 (France)", Short: "CAC40"},
	{Symbol: "^STOXX50E", Name: "Euro Stoxx 50", Short: "STOXX50"},
	{Symbol: "^AEX", Name: "AEX (Netherlands)", Short: "AEX"},
}

var asianMarkets = []models.Listing{
	{Symbol: "^NSEI", Name: "NIFTY 50 (India)", Short: "NIFTY"},
	{Symbol: "^BSESN", Name: "SENSEX (India)", Short: "SENSEX"},
	{Symbol: "^HSI", Name: "Hang Seng (HK)", Short: "HSI"},
	{Symbol: "^N225", Name: "Nikkei 225 (Japan)", Short: "N225"},
	{Symbol: "^STI", Name: "Straits Times (SG)", Short: "STI"},
	{Symbol: "^KS11", Name: "KOSPI (Korea)", Short: "KOSPI"},
	{Symbol: "^AXJO", Name: "ASX 200 (Australia)", Short: "XJO"},
	{Symbol: "000001.SS", Name: "Shanghai Composite", Short: "SHCOMP"},
	{Symbol: "^TWII", Name: "TAIEX (Taiwan)", Short: "TAIEX"},
	{Symbol: "^JKSE", Name: "Jakarta (Indonesia)", Short: "JKSE"},
}

// India ADRs traded on US exchanges.
var indiaADRs = []models.Listing{
	{Symbol: "INFY", Name: "Infosys ADR", Short: "INFY"},
	{Symbol: "WIT", Name: "Wipro ADR", Short: "WIT"},
	{Symbol: "IBN", Name: "ICICI Bank ADR", Short: "IBN"},
	{Symbol: "HDB", Name: "HDFC Bank ADR", Short: "HDB"},
	{Symbol: "RDY", Name: "Dr. Reddy's ADR", Short: "RDY"},
	{Symbol: "SIFY", Name: "Sify Technologies", Short: "SIFY"},
}

var commodities = []models.Listing{
	{Symbol: "GC=F", Name: "Gold Futures", Short: "GOLD"},
	{Symbol: "CL=F", Name: "Crude Oil WTI", Short: "CRUDE"},
	{Symbol: "SI=F", Name: "Silver Futures", Short: "SILVER"},
}

// MarketGroups returns the global index groups in dashboard order.
func MarketGroups() map[models.MarketGroupKey][]models.Listing {
	return map[models.MarketGroupKey][]models.Listing{
		models.GroupUSMarkets:       usMarkets,
		models.GroupEuropeanMarkets: europeanMarkets,
		models.GroupAsianMarkets:    asianMarkets,
		models.GroupIndiaADRs:       indiaADRs,
		models.GroupCommodities:     commodities,
	}
}

// Commodities returns the commodity futures universe.
func Commodities() []models.Listing { return commodities }

// VIXSymbol is the volatility gauge read by the composite sentiment score.
const VIXSymbol = "^VIX"

// SentimentWeights are the per-index weights of the weighted-return factor.
// Fear gauges (VIX, DXY) carry negative weight: when they rise the factor
// falls.
var sentimentWeights = map[string]float64{
	// US (45%)
	"^GSPC": 0.15,
	"^DJI":  0.10,
	"^IXIC": 0.10,
	"^RUT":  0.05,
	"ES=F":  0.05,

	// Europe (20%)
	"^GDAXI":    0.08,
	"^FTSE":     0.07,
	"^STOXX50E": 0.05,

	// Asia (25%)
	"^N225":  0.08,
	"^HSI":   0.07,
	"^NSEI":  0.05,
	"^BSESN": 0.03,
	"^KS11":  0.02,

	// Fear gauges (10%, inverse)
	"^VIX":     -0.07,
	"DX-Y.NYB": -0.03,
}

var defaultVIXLevels = sentiment.VIXLevels{
	ExtremeFear:  30,
	Fear:         20,
	Neutral:      15,
	Greed:        12,
	ExtremeGreed: 10,
}

// ScoreConfig returns the composite-score parameters for the global
// overview. Zero fields of the override fall back to the catalog defaults.
func ScoreConfig(levels sentiment.VIXLevels) sentiment.ScoreConfig {
	if levels == (sentiment.VIXLevels{}) {
		levels = defaultVIXLevels
	}
	return sentiment.ScoreConfig{
		Weights:   sentimentWeights,
		VIXSymbol: VIXSymbol,
		VIXLevels: levels,
	}
}
