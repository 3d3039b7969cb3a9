package models

// Listing is a catalog entry for one instrument to fetch: the quote symbol
// plus display names. Listings are static configuration, not fetched data.
type Listing struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Name   string `json:"name" yaml:"name"`
	Short  string `json:"short" yaml:"short"`
}
