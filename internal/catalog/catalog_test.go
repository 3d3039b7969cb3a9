package catalog

import (
	"strings"
	"testing"

	"MarketPulse/internal/domain/models"
)

func TestMarketGroupsCoverAllKeys(t *testing.T) {
	groups := MarketGroups()
	for _, key := range models.IndexGroupKeys() {
		if len(groups[key]) == 0 {
			t.Fatalf("group %s has no listings", key)
		}
	}
	if len(groups[models.GroupCommodities]) == 0 {
		t.Fatal("commodities group has no listings")
	}
}

func TestVIXSymbolListed(t *testing.T) {
	for _, l := range MarketGroups()[models.GroupUSMarkets] {
		if l.Symbol == VIXSymbol {
			return
		}
	}
	t.Fatalf("%s missing from us_markets", VIXSymbol)
}

func TestSentimentWeightsReferToListedSymbols(t *testing.T) {
	listed := map[string]bool{}
	for _, group := range MarketGroups() {
		for _, l := range group {
			listed[l.Symbol] = true
		}
	}
	for symbol := range sentimentWeights {
		if !listed[symbol] {
			t.Errorf("weight for unlisted symbol %s", symbol)
		}
	}
}

func TestIndexGroupAll(t *testing.T) {
	all, ok := IndexGroup(GroupAll)
	if !ok {
		t.Fatal("all group not found")
	}
	want := len(sectorialIndices) + len(broadMarketIndices) + len(thematicIndices)
	if len(all) != want {
		t.Fatalf("all group has %d indices, want %d", len(all), want)
	}
	if _, ok := IndexGroup("nope"); ok {
		t.Fatal("unknown group resolved")
	}
}

func TestIndexGroupsLeadWithBenchmark(t *testing.T) {
	for group, names := range IndexGroups() {
		if len(names) == 0 || names[0] != Benchmark.Name {
			t.Fatalf("group %s does not lead with %s", group, Benchmark.Name)
		}
	}
}

func TestSectorStocks(t *testing.T) {
	stocks, ok := SectorStocks("Bank Nifty")
	if !ok || len(stocks) == 0 {
		t.Fatal("Bank Nifty has no constituents")
	}
	for _, s := range stocks {
		if strings.HasSuffix(s.Name, ".NS") {
			t.Fatalf("display name %s keeps exchange suffix", s.Name)
		}
	}
	if _, ok := SectorStocks("Nifty Unknown"); ok {
		t.Fatal("unknown sector resolved")
	}
}

func TestSectorCategorizerBuckets(t *testing.T) {
	c := NewSectorCategorizer()
	cases := map[string]string{
		"Bank Nifty":              "banking_finance",
		"Nifty Pvt Bank":          "banking_finance",
		"Nifty Capital Markets":   "banking_finance",
		"Nifty IT":                "technology",
		"Nifty India Digital":     "technology",
		"Nifty Pharma":            "healthcare",
		"Nifty FMCG":              "consumer",
		"Nifty Consumer Durables": "consumer",
		"Nifty Auto":              "industrials",
		"Nifty EV & New Age Auto": "industrials",
		"Nifty Energy":            "energy_resources",
		"Nifty Oil & Gas":         "energy_resources",
		"Nifty Media":             DefaultGroupKey,
		"Nifty 500":               DefaultGroupKey,
	}
	for name, want := range cases {
		if got := c.Categorize(name); got != want {
			t.Errorf("Categorize(%q) = %s, want %s", name, got, want)
		}
	}
}
