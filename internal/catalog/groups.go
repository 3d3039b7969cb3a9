package catalog

import "MarketPulse/internal/sentiment"

// DefaultGroupKey is the bucket for index names no keyword matches.
const DefaultGroupKey = "broader_market"

// SectorGroups are the ordered keyword buckets used to categorize sector
// indices by display name. Order matters: the first keyword hit wins, so
// "Bank Nifty" lands in banking_finance even though later groups could
// also match it.
func SectorGroups() []sentiment.Group {
	return []sentiment.Group{
		{
			Key:      "banking_finance",
			Title:    "Banking & Finance",
			Keywords: []string{"bank", "finance", "financial", "capital markets"},
		},
		{
			Key:      "technology",
			Title:    "Technology",
			Keywords: []string{"nifty it", "digital"},
		},
		{
			Key:      "healthcare",
			Title:    "Healthcare",
			Keywords: []string{"pharma", "healthcare"},
		},
		{
			Key:      "consumer",
			Title:    "Consumer",
			Keywords: []string{"fmcg", "consum", "durables", "rural", "tourism"},
		},
		{
			Key:      "industrials",
			Title:    "Industrials",
			Keywords: []string{"auto", "metal", "realty", "infra", "manufacturing", "defence", "housing", "transport", "mobility"},
		},
		{
			Key:      "energy_resources",
			Title:    "Energy & Resources",
			Keywords: []string{"energy", "oil", "commodities", "chemicals"},
		},
	}
}

// NewSectorCategorizer builds the categorizer over the default groups.
func NewSectorCategorizer() *sentiment.Categorizer {
	return sentiment.NewCategorizer(SectorGroups(), DefaultGroupKey)
}
