package models

import "time"

// RelativeStatus tells how an index or stock performs against the benchmark.
type RelativeStatus string

const (
	StatusOutperforming   RelativeStatus = "outperforming"
	StatusNeutral         RelativeStatus = "neutral"
	StatusUnderperforming RelativeStatus = "underperforming"
)

// TimeframeValues holds one optional value per timeframe. Used for both raw
// returns and relative strength vs the benchmark.
type TimeframeValues struct {
	OneHour    *float64 `json:"one_hour"`
	FourHour   *float64 `json:"four_hour"`
	Daily      *float64 `json:"daily"`
	Weekly     *float64 `json:"weekly"`
	Monthly    *float64 `json:"monthly"`
	ThreeMonth *float64 `json:"three_month"`
}

// Get returns the value for tf (nil when absent).
func (v *TimeframeValues) Get(tf Timeframe) *float64 {
	switch tf {
	case TFOneHour:
		return v.OneHour
	case TFFourHour:
		return v.FourHour
	case TFDaily:
		return v.Daily
	case TFWeekly:
		return v.Weekly
	case TFMonthly:
		return v.Monthly
	case TFThreeMonth:
		return v.ThreeMonth
	}
	return nil
}

// Set stores a value for tf.
func (v *TimeframeValues) Set(tf Timeframe, val *float64) {
	switch tf {
	case TFOneHour:
		v.OneHour = val
	case TFFourHour:
		v.FourHour = val
	case TFDaily:
		v.Daily = val
	case TFWeekly:
		v.Weekly = val
	case TFMonthly:
		v.Monthly = val
	case TFThreeMonth:
		v.ThreeMonth = val
	}
}

// BenchmarkData is the reference index every sector and stock is compared to.
type BenchmarkData struct {
	Name      string          `json:"name"`
	Symbol    string          `json:"symbol"`
	Price     *float64        `json:"price"`
	Returns   TimeframeValues `json:"returns"`
	Timestamp time.Time       `json:"timestamp"`
}

// SectorData is one sector index (or stock) with returns and relative
// strength across all timeframes.
type SectorData struct {
	Name             string          `json:"name"`
	Symbol           string          `json:"symbol"`
	Price            *float64        `json:"price"`
	Returns          TimeframeValues `json:"returns"`
	RelativeStrength TimeframeValues `json:"relative_strength"`
	Status           RelativeStatus  `json:"status"`
	Category         string          `json:"category,omitempty"`
	Rank             int             `json:"rank,omitempty"`
}

// SectorPerformance is the sector scan result for one index group.
type SectorPerformance struct {
	Benchmark       *BenchmarkData          `json:"benchmark"`
	Sectors         []SectorData            `json:"sectors"`
	Outperforming   []SectorData            `json:"outperforming"`
	Neutral         []SectorData            `json:"neutral"`
	Underperforming []SectorData            `json:"underperforming"`
	Categories      map[string][]SectorData `json:"categories,omitempty"`
	Breadth         Breadth                 `json:"breadth"`
	Sentiment       GroupSentiment          `json:"sentiment"`
	Timeframe       Timeframe               `json:"timeframe"`
	Lookback        int                     `json:"lookback"`
	Partial         bool                    `json:"partial,omitempty"`
	Timestamp       time.Time               `json:"timestamp"`
}

// SectorStocks is the stock-level scan result for one sector.
type SectorStocks struct {
	SectorName      string         `json:"sector_name"`
	Benchmark       *BenchmarkData `json:"benchmark"`
	Stocks          []SectorData   `json:"stocks"`
	Outperforming   []SectorData   `json:"outperforming"`
	Neutral         []SectorData   `json:"neutral"`
	Underperforming []SectorData   `json:"underperforming"`
	Breadth         Breadth        `json:"breadth"`
	Sentiment       GroupSentiment `json:"sentiment"`
	TotalStocks     int            `json:"total_stocks"`
	Timeframe       Timeframe      `json:"timeframe"`
	Lookback        int            `json:"lookback"`
	Partial         bool           `json:"partial,omitempty"`
	Timestamp       time.Time      `json:"timestamp"`
}
