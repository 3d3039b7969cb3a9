package usecase

import (
	"context"
	"errors"
	"testing"

	"MarketPulse/internal/catalog"
	"MarketPulse/internal/domain/models"
)

func flat(v float64) map[models.Timeframe]float64 {
	out := make(map[models.Timeframe]float64, len(models.AllTimeframes()))
	for _, tf := range models.AllTimeframes() {
		out[tf] = v
	}
	return out
}

func newSectorScan(p *fakeProvider) *SectorScanUseCase {
	return NewSectorScanUseCase(p, nil, nil, nil, catalog.NewSectorCategorizer(), 0, 0)
}

func TestStocksRanksAgainstBenchmark(t *testing.T) {
	// Benchmark up 1.0. HDFCBANK +2.5 (rs 1.5, outperforming), ICICIBANK
	// -1.2 (rs -2.2, underperforming), SBIN +1.1 (rs 0.1, neutral); the
	// rest of the sector has no data.
	p := &fakeProvider{values: map[string]map[models.Timeframe]float64{
		"^NSEI":        flat(1.0),
		"HDFCBANK.NS":  flat(2.5),
		"ICICIBANK.NS": flat(-1.2),
		"SBIN.NS":      flat(1.1),
	}}
	uc := newSectorScan(p)

	out, err := uc.Stocks(context.Background(), "Bank Nifty", models.TFDaily, 1)
	if err != nil {
		t.Fatalf("Stocks: %v", err)
	}

	if out.Benchmark == nil || out.Benchmark.Symbol != "^NSEI" {
		t.Fatalf("benchmark = %+v", out.Benchmark)
	}
	if got := out.Benchmark.Returns.Daily; got == nil || *got != 1.0 {
		t.Fatalf("benchmark daily return = %v, want 1.0", got)
	}
	if out.TotalStocks != 12 {
		t.Fatalf("TotalStocks = %d, want all 12 constituents", out.TotalStocks)
	}

	top := out.Stocks[0]
	if top.Symbol != "HDFCBANK.NS" || top.Rank != 1 {
		t.Fatalf("top stock = %s rank %d, want HDFCBANK.NS rank 1", top.Symbol, top.Rank)
	}
	if rs := top.RelativeStrength.Daily; rs == nil || *rs != 1.5 {
		t.Fatalf("HDFCBANK rs = %v, want 1.5", rs)
	}
	if top.Status != models.StatusOutperforming {
		t.Fatalf("HDFCBANK status = %s", top.Status)
	}

	// Stocks without data keep their row, sort last and stay neutral.
	last := out.Stocks[len(out.Stocks)-1]
	if last.RelativeStrength.Daily != nil {
		t.Fatalf("last ranked stock should have no rs, got %v", *last.RelativeStrength.Daily)
	}
	if last.Status != models.StatusNeutral {
		t.Fatalf("unavailable stock status = %s, want neutral", last.Status)
	}

	if len(out.Outperforming) != 1 || len(out.Underperforming) != 1 || len(out.Neutral) != 10 {
		t.Fatalf("partition = %d/%d/%d, want 1/10/1",
			len(out.Outperforming), len(out.Neutral), len(out.Underperforming))
	}

	// Breadth counts classified stocks only: rs 1.5 positive, -2.2
	// negative, 0.1 neutral.
	if out.Breadth.Total != 3 || out.Breadth.Positive != 1 || out.Breadth.Negative != 1 || out.Breadth.Neutral != 1 {
		t.Fatalf("breadth = %+v", out.Breadth)
	}
	if out.Sentiment.Label != models.SentimentBullish {
		t.Fatalf("three-way tie resolved %s, want bullish", out.Sentiment.Label)
	}
}

func TestStocksUnknownSector(t *testing.T) {
	uc := newSectorScan(&fakeProvider{})
	_, err := uc.Stocks(context.Background(), "Nifty Imaginary", models.TFDaily, 1)
	if !errors.Is(err, ErrUnknownSector) {
		t.Fatalf("err = %v, want ErrUnknownSector", err)
	}
}

func TestPerformanceCategorizesSectors(t *testing.T) {
	p := &fakeProvider{def: fv(0.5), values: map[string]map[models.Timeframe]float64{
		"^NSEI": flat(0.0),
	}}
	uc := newSectorScan(p)

	out, err := uc.Performance(context.Background(), catalog.GroupSectorial, models.TFWeekly, 1)
	if err != nil {
		t.Fatalf("Performance: %v", err)
	}

	var bank *models.SectorData
	for i := range out.Sectors {
		if out.Sectors[i].Name == "Bank Nifty" {
			bank = &out.Sectors[i]
		}
	}
	if bank == nil {
		t.Fatal("Bank Nifty missing from scan")
	}
	if bank.Category != "banking_finance" {
		t.Fatalf("Bank Nifty category = %s", bank.Category)
	}
	if len(out.Categories["banking_finance"]) == 0 {
		t.Fatal("banking_finance category bucket empty")
	}

	// Benchmark flat, sectors all +0.5: everything neutral at the ±1.0
	// cut but bullish for the ±0.15 breadth.
	if bank.Status != models.StatusNeutral {
		t.Fatalf("Bank Nifty status = %s", bank.Status)
	}
	if out.Breadth.Positive != out.Breadth.Total {
		t.Fatalf("breadth = %+v, want all positive", out.Breadth)
	}
	if out.Sentiment.Label != models.SentimentBullish {
		t.Fatalf("sentiment = %s", out.Sentiment.Label)
	}
}

func TestPerformanceUnknownGroup(t *testing.T) {
	uc := newSectorScan(&fakeProvider{})
	_, err := uc.Performance(context.Background(), "imaginary", models.TFDaily, 1)
	if !errors.Is(err, ErrUnknownGroup) {
		t.Fatalf("err = %v, want ErrUnknownGroup", err)
	}
}

func TestCommoditiesStrictZeroBreadth(t *testing.T) {
	p := &fakeProvider{values: map[string]map[models.Timeframe]float64{
		"GC=F": flat(0.05),
		"CL=F": flat(-0.02),
		"SI=F": flat(0.0),
	}}
	uc := NewCommoditiesUseCase(p, nil, nil, nil, 0)

	out, err := uc.Commodities(context.Background(), models.TFDaily)
	if err != nil {
		t.Fatalf("Commodities: %v", err)
	}
	// Tiny moves still classify under the strict band; exact zero stays
	// neutral.
	if out.Breadth.Positive != 1 || out.Breadth.Negative != 1 || out.Breadth.Neutral != 1 {
		t.Fatalf("breadth = %+v, want 1/1/1", out.Breadth)
	}
	if out.Sentiment.Label != models.SentimentBullish || out.Sentiment.Percentage != 33 {
		t.Fatalf("sentiment = %+v", out.Sentiment)
	}
}

func TestCommoditiesMultiBreadthPerTimeframe(t *testing.T) {
	values := map[models.Timeframe]float64{
		models.TFDaily:  0.4,
		models.TFWeekly: -0.4,
	}
	p := &fakeProvider{values: map[string]map[models.Timeframe]float64{
		"GC=F": values,
		"CL=F": values,
		"SI=F": values,
	}}
	uc := NewCommoditiesUseCase(p, nil, nil, nil, 0)

	out, err := uc.MultiTimeframe(context.Background())
	if err != nil {
		t.Fatalf("MultiTimeframe: %v", err)
	}
	if b := out.Breadths[models.TFDaily]; b.Positive != 3 {
		t.Fatalf("daily breadth = %+v, want 3 positive", b)
	}
	if b := out.Breadths[models.TFWeekly]; b.Negative != 3 {
		t.Fatalf("weekly breadth = %+v, want 3 negative", b)
	}
	// Monthly never fetched successfully for these symbols: empty breadth.
	if b := out.Breadths[models.TFMonthly]; b.Total != 0 {
		t.Fatalf("monthly breadth = %+v, want empty", b)
	}
}
