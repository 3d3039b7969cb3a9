package models

// Requests for market/sector HTTP endpoints. Defined in domain for consistency and reuse.

type GlobalMarketsRequest struct {
	Timeframe string `query:"timeframe" json:"timeframe" default:"daily" validate:"oneof=1h 4h daily weekly monthly 3m"`
	Multi     bool   `query:"multi" json:"multi"`
}

type MarketSentimentRequest struct {
	Timeframe string `query:"timeframe" json:"timeframe" default:"daily" validate:"oneof=1h 4h daily weekly monthly 3m"`
}

type CommoditiesRequest struct {
	Timeframe string `query:"timeframe" json:"timeframe" default:"daily" validate:"oneof=1h 4h daily weekly monthly 3m"`
	Multi     bool   `query:"multi" json:"multi"`
}

type SectorPerformanceRequest struct {
	Group     string `query:"group" json:"group" default:"sectorial" validate:"oneof=sectorial broad_market thematic all"`
	Timeframe string `query:"timeframe" json:"timeframe" default:"weekly" validate:"oneof=1h 4h daily weekly monthly 3m"`
	Lookback  int    `query:"lookback" json:"lookback" default:"1" validate:"gte=1,lte=12"`
}

type SectorStocksRequest struct {
	Sector    string `query:"sector" json:"sector" validate:"required"`
	Timeframe string `query:"timeframe" json:"timeframe" default:"weekly" validate:"oneof=1h 4h daily weekly monthly 3m"`
	Lookback  int    `query:"lookback" json:"lookback" default:"1" validate:"gte=1,lte=12"`
}
