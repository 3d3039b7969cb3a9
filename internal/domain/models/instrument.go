package models

// Instrument is one index, commodity or stock as delivered by the quotes
// API for a single timeframe. Metric fields are pointers: nil means the
// value is unavailable, never zero.
type Instrument struct {
	Symbol           string   `json:"symbol"`
	Name             string   `json:"name"`
	Short            string   `json:"short,omitempty"`
	Price            *float64 `json:"price"`
	Change           *float64 `json:"change"`
	ChangePct        *float64 `json:"change_pct"`
	RelativeStrength *float64 `json:"relative_strength,omitempty"`
	Error            bool     `json:"error,omitempty"`
}

// TimeframeSlice carries one instrument's metrics for one timeframe.
type TimeframeSlice struct {
	Change           *float64 `json:"change"`
	ChangePct        *float64 `json:"change_pct"`
	RelativeStrength *float64 `json:"relative_strength,omitempty"`
	Error            bool     `json:"error,omitempty"`
}

// Available reports whether the slice holds a usable change percentage.
func (s TimeframeSlice) Available() bool {
	return !s.Error && s.ChangePct != nil
}

// MultiTimeframeInstrument is one instrument with metrics for every fetched
// timeframe, produced by merging per-timeframe snapshots.
type MultiTimeframeInstrument struct {
	Symbol     string                       `json:"symbol"`
	Name       string                       `json:"name"`
	Short      string                       `json:"short,omitempty"`
	Price      *float64                     `json:"price"`
	Timeframes map[Timeframe]TimeframeSlice `json:"timeframes"`
}

// Slice returns the slice for tf, or an unavailable slice if absent.
func (m *MultiTimeframeInstrument) Slice(tf Timeframe) TimeframeSlice {
	if s, ok := m.Timeframes[tf]; ok {
		return s
	}
	return TimeframeSlice{}
}
