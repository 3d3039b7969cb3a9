package sentiment

import (
	"testing"

	"MarketPulse/internal/domain/models"
)

func TestMergeBaseDefinesSymbolSet(t *testing.T) {
	lists := map[models.Timeframe][]models.Instrument{
		models.TFDaily: {
			{Symbol: "TCS", Name: "Tata Consultancy", ChangePct: f(1.2)},
			{Symbol: "INFY", Name: "Infosys", ChangePct: f(-0.4)},
		},
		models.TFWeekly: {
			{Symbol: "INFY", ChangePct: f(2.1)},
			{Symbol: "WIPRO", ChangePct: f(5.0)}, // not in base, must be dropped
		},
	}

	merged := Merge(models.TFDaily, lists)
	if len(merged) != 2 {
		t.Fatalf("output length must equal base length, got %d", len(merged))
	}
	if merged[0].Symbol != "TCS" || merged[1].Symbol != "INFY" {
		t.Fatalf("base ordering not preserved: %s, %s", merged[0].Symbol, merged[1].Symbol)
	}

	// TCS has no weekly row: unavailable slice, not an aborted merge.
	if merged[0].Slice(models.TFWeekly).Available() {
		t.Fatal("missing weekly slice should be unavailable")
	}
	if got := merged[1].Slice(models.TFWeekly).ChangePct; got == nil || *got != 2.1 {
		t.Fatalf("weekly slice lost in merge: %v", got)
	}
}

func TestMergeFailedTimeframe(t *testing.T) {
	lists := map[models.Timeframe][]models.Instrument{
		models.TFDaily:  {{Symbol: "TCS", ChangePct: f(1.2)}},
		models.TFWeekly: {}, // failed fetch
	}

	merged := Merge(models.TFDaily, lists)
	if len(merged) != 1 {
		t.Fatalf("expected one instrument, got %d", len(merged))
	}
	if merged[0].Slice(models.TFWeekly).Available() {
		t.Fatal("failed timeframe must degrade to unavailable slices")
	}
	if got := merged[0].Slice(models.TFDaily).ChangePct; got == nil || *got != 1.2 {
		t.Fatalf("daily slice corrupted: %v", got)
	}
}

func TestMergeSameListUnderTwoKeys(t *testing.T) {
	list := []models.Instrument{
		{Symbol: "GC=F", ChangePct: f(0.8), Change: f(15.2)},
		{Symbol: "CL=F", ChangePct: f(-1.1), Change: f(-0.9)},
	}
	lists := map[models.Timeframe][]models.Instrument{
		models.TFDaily:  list,
		models.TFWeekly: list,
	}

	for _, m := range Merge(models.TFDaily, lists) {
		d, w := m.Slice(models.TFDaily), m.Slice(models.TFWeekly)
		if *d.ChangePct != *w.ChangePct || *d.Change != *w.Change {
			t.Fatalf("round-trip slices differ for %s: %+v vs %+v", m.Symbol, d, w)
		}
	}
}

func TestMergeDropsMissingSymbols(t *testing.T) {
	lists := map[models.Timeframe][]models.Instrument{
		models.TFDaily: {
			{Symbol: "", ChangePct: f(9.9)},
			{Symbol: "TCS", ChangePct: f(0.1)},
		},
	}

	merged := Merge(models.TFDaily, lists)
	if len(merged) != 1 || merged[0].Symbol != "TCS" {
		t.Fatalf("malformed instruments must be dropped: %+v", merged)
	}
}

func TestMergeEmptyBase(t *testing.T) {
	lists := map[models.Timeframe][]models.Instrument{
		models.TFDaily:  {},
		models.TFWeekly: {{Symbol: "TCS", ChangePct: f(1)}},
	}
	if merged := Merge(models.TFDaily, lists); len(merged) != 0 {
		t.Fatalf("empty base must yield empty output, got %d", len(merged))
	}
}
