package sentiment

import (
	"testing"

	"MarketPulse/internal/domain/models"
)

func TestAggregateCountsAreClosed(t *testing.T) {
	instruments := []models.Instrument{
		{Symbol: "^NSEI", ChangePct: f(0.62)},
		{Symbol: "^BSESN", ChangePct: f(-0.7)},
		{Symbol: "^NSEBANK", ChangePct: f(0.1)},
	}

	b := Aggregate(instruments, ChangePct, GlobalBreadthBand)
	if b.Positive != 1 || b.Negative != 1 || b.Neutral != 1 {
		t.Fatalf("unexpected buckets: %+v", b)
	}
	if b.Total != 3 {
		t.Fatalf("expected total 3, got %d", b.Total)
	}
	if b.Total != b.Positive+b.Negative+b.Neutral {
		t.Fatalf("breadth is not closed: %+v", b)
	}
	if b.Percentage != 33 {
		t.Fatalf("expected percentage 33, got %v", b.Percentage)
	}
}

func TestAggregateExcludesUnavailable(t *testing.T) {
	instruments := []models.Instrument{
		{Symbol: "^GSPC", ChangePct: f(1.2)},
		{Symbol: "^DJI", ChangePct: nil},
		{Symbol: "^IXIC", ChangePct: f(0.9), Error: true},
		{Symbol: "", ChangePct: f(2.0)},
	}

	b := Aggregate(instruments, ChangePct, GlobalBreadthBand)
	if b.Total != 1 {
		t.Fatalf("only the clean instrument should be counted, got total %d", b.Total)
	}
	if b.Positive != 1 {
		t.Fatalf("expected one positive, got %d", b.Positive)
	}
	if b.Percentage != 100 {
		t.Fatalf("expected percentage 100, got %v", b.Percentage)
	}
}

func TestAggregateEmptyGroup(t *testing.T) {
	b := Aggregate(nil, ChangePct, GlobalBreadthBand)
	if b.Total != 0 || b.Percentage != 0 {
		t.Fatalf("empty group must not divide by zero: %+v", b)
	}
}

func TestAggregateRelativeStrengthSelector(t *testing.T) {
	instruments := []models.Instrument{
		{Symbol: "NIFTY_IT", RelativeStrength: f(0.3), ChangePct: f(-2)},
		{Symbol: "NIFTY_FMCG", RelativeStrength: f(-0.3), ChangePct: f(2)},
	}

	b := Aggregate(instruments, RelativeStrength, RelativeStrengthBand)
	if b.Positive != 1 || b.Negative != 1 {
		t.Fatalf("selector must read relative strength, not change pct: %+v", b)
	}
}

func TestAggregateSlices(t *testing.T) {
	merged := []models.MultiTimeframeInstrument{
		{Symbol: "GC=F", Timeframes: map[models.Timeframe]models.TimeframeSlice{
			models.TFDaily:  {ChangePct: f(0.8)},
			models.TFWeekly: {Error: true},
		}},
		{Symbol: "CL=F", Timeframes: map[models.Timeframe]models.TimeframeSlice{
			models.TFDaily: {ChangePct: f(-0.2)},
		}},
	}

	daily := AggregateSlices(merged, models.TFDaily, StrictZeroBand)
	if daily.Positive != 1 || daily.Negative != 1 || daily.Total != 2 {
		t.Fatalf("unexpected daily breadth: %+v", daily)
	}

	weekly := AggregateSlices(merged, models.TFWeekly, StrictZeroBand)
	if weekly.Total != 0 {
		t.Fatalf("errored and missing slices must be excluded: %+v", weekly)
	}
}
