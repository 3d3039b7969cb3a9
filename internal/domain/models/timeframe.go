package models

// Timeframe identifies one comparison horizon for instrument performance.
type Timeframe string

const (
	TFOneHour    Timeframe = "one_hour"
	TFFourHour   Timeframe = "four_hour"
	TFDaily      Timeframe = "daily"
	TFWeekly     Timeframe = "weekly"
	TFMonthly    Timeframe = "monthly"
	TFThreeMonth Timeframe = "three_month"
)

// timeframeAliases maps each timeframe to its short display alias.
// The mapping is total in both directions.
var timeframeAliases = map[Timeframe]string{
	TFOneHour:    "1H",
	TFFourHour:   "4H",
	TFDaily:      "D",
	TFWeekly:     "W",
	TFMonthly:    "M",
	TFThreeMonth: "3M",
}

// queryForms maps the compact query-parameter spellings used by the API
// ("1h", "4h", "3m", ...) onto timeframes.
var queryForms = map[string]Timeframe{
	"1h":      TFOneHour,
	"4h":      TFFourHour,
	"daily":   TFDaily,
	"weekly":  TFWeekly,
	"monthly": TFMonthly,
	"3m":      TFThreeMonth,
}

// AllTimeframes returns every timeframe in display order.
func AllTimeframes() []Timeframe {
	return []Timeframe{TFOneHour, TFFourHour, TFDaily, TFWeekly, TFMonthly, TFThreeMonth}
}

// Alias returns the short display alias ("1H", "4H", "D", "W", "M", "3M").
func (tf Timeframe) Alias() string {
	return timeframeAliases[tf]
}

// QueryForm returns the compact query spelling ("1h", "4h", "daily", ...).
func (tf Timeframe) QueryForm() string {
	for q, mapped := range queryForms {
		if mapped == tf {
			return q
		}
	}
	return string(tf)
}

// IsValidTimeframe returns true if tf is a supported timeframe.
func IsValidTimeframe(tf Timeframe) bool {
	_, ok := timeframeAliases[tf]
	return ok
}

// DefaultTimeframe returns the default timeframe.
func DefaultTimeframe() Timeframe { return TFDaily }

// NormalizeTimeframe converts a raw string to a valid timeframe (or default).
// It accepts the canonical key ("one_hour"), the display alias ("1H") and
// the query form ("1h").
func NormalizeTimeframe(s string) Timeframe {
	if s == "" {
		return DefaultTimeframe()
	}
	tf := Timeframe(s)
	if IsValidTimeframe(tf) {
		return tf
	}
	if mapped, ok := queryForms[s]; ok {
		return mapped
	}
	for key, alias := range timeframeAliases {
		if alias == s {
			return key
		}
	}
	return DefaultTimeframe()
}
