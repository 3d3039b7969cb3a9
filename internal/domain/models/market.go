package models

import "time"

// MarketGroupKey identifies one catalog group of instruments.
type MarketGroupKey string

const (
	GroupUSMarkets       MarketGroupKey = "us_markets"
	GroupEuropeanMarkets MarketGroupKey = "european_markets"
	GroupAsianMarkets    MarketGroupKey = "asian_markets"
	GroupIndiaADRs       MarketGroupKey = "india_adrs"
	GroupCommodities     MarketGroupKey = "commodities"
)

// IndexGroupKeys returns the groups that feed the composite sentiment,
// in display order. Commodities are reported separately.
func IndexGroupKeys() []MarketGroupKey {
	return []MarketGroupKey{GroupUSMarkets, GroupEuropeanMarkets, GroupAsianMarkets, GroupIndiaADRs}
}

// GlobalOverview is the single-timeframe global markets view.
type GlobalOverview struct {
	Groups    map[MarketGroupKey][]Instrument `json:"groups"`
	Sentiment Sentiment                       `json:"sentiment"`
	Timeframe Timeframe                       `json:"timeframe"`
	Partial   bool                            `json:"partial,omitempty"`
	Timestamp time.Time                       `json:"timestamp"`
}

// MultiTimeframeOverview carries every group with all timeframes merged
// per instrument, plus a sentiment per timeframe.
type MultiTimeframeOverview struct {
	Groups     map[MarketGroupKey][]MultiTimeframeInstrument `json:"groups"`
	Sentiments map[Timeframe]Sentiment                       `json:"sentiments"`
	Partial    bool                                          `json:"partial,omitempty"`
	Timestamp  time.Time                                     `json:"timestamp"`
	Mode       string                                        `json:"mode"`
}

// CommoditiesView is the single-timeframe commodities snapshot with its
// strict-zero breadth.
type CommoditiesView struct {
	Commodities []Instrument   `json:"commodities"`
	Breadth     Breadth        `json:"breadth"`
	Sentiment   GroupSentiment `json:"sentiment"`
	Timeframe   Timeframe      `json:"timeframe"`
	Partial     bool           `json:"partial,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

// MultiCommoditiesView is the all-timeframes commodities view.
type MultiCommoditiesView struct {
	Commodities []MultiTimeframeInstrument `json:"commodities"`
	Breadths    map[Timeframe]Breadth      `json:"breadths"`
	Partial     bool                       `json:"partial,omitempty"`
	Timestamp   time.Time                  `json:"timestamp"`
	Mode        string                     `json:"mode"`
}
