package usecase

import (
	"context"
	"testing"

	"MarketPulse/internal/catalog"
	"MarketPulse/internal/domain/models"
	"MarketPulse/internal/domain/repository"
	"MarketPulse/internal/sentiment"
)

// fakeProvider serves canned change percentages per symbol and timeframe.
// Symbols without data degrade exactly like the real client: present with
// Error=true. The multi shape is unsupported so use cases exercise the
// fan-out-and-merge path.
type fakeProvider struct {
	values map[string]map[models.Timeframe]float64
	prices map[string]float64
	def    *float64
	failTF map[models.Timeframe]error
}

func (f *fakeProvider) FetchGroup(_ context.Context, listings []models.Listing, tf models.Timeframe, _ int) ([]models.Instrument, error) {
	if err := f.failTF[tf]; err != nil {
		return nil, err
	}
	out := make([]models.Instrument, 0, len(listings))
	for _, l := range listings {
		in := models.Instrument{Symbol: l.Symbol, Name: l.Name, Short: l.Short}
		if p, ok := f.prices[l.Symbol]; ok {
			price := p
			in.Price = &price
		}
		if vs, ok := f.values[l.Symbol]; ok {
			if v, ok := vs[tf]; ok {
				cp := v
				in.ChangePct = &cp
			} else {
				in.Error = true
			}
		} else if f.def != nil {
			cp := *f.def
			in.ChangePct = &cp
		} else {
			in.Error = true
		}
		out = append(out, in)
	}
	return out, nil
}

func (f *fakeProvider) FetchMultiGroup(context.Context, []models.Listing, []models.Timeframe, int) ([]models.MultiTimeframeInstrument, error) {
	return nil, repository.ErrMultiUnsupported
}

func fv(v float64) *float64 { return &v }

func TestOverviewComposesSentiment(t *testing.T) {
	// Every index up 0.6%, VIX at 25 (Fear). Breadth factor 100, weighted
	// return factor 58, VIX factor 30: composite 69.2.
	p := &fakeProvider{
		def:    fv(0.6),
		prices: map[string]float64{"^VIX": 25},
	}
	uc := NewMarketOverviewUseCase(p, nil, nil, nil, catalog.ScoreConfig(sentiment.VIXLevels{}), 0)

	out, err := uc.Overview(context.Background(), models.TFDaily)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if out.Partial {
		t.Fatal("unexpected partial flag")
	}
	if len(out.Groups) != 5 {
		t.Fatalf("got %d groups, want 5", len(out.Groups))
	}
	if out.Sentiment.Score != 69.2 {
		t.Fatalf("score = %v, want 69.2", out.Sentiment.Score)
	}
	if out.Sentiment.Label != "Slightly Bullish" {
		t.Fatalf("label = %s, want Slightly Bullish", out.Sentiment.Label)
	}
	if out.Sentiment.VIX.Status != "Fear" {
		t.Fatalf("vix status = %s, want Fear", out.Sentiment.VIX.Status)
	}
}

func TestOverviewDegradesFailedTimeframe(t *testing.T) {
	p := &fakeProvider{
		def:    fv(0.6),
		failTF: map[models.Timeframe]error{models.TFWeekly: context.DeadlineExceeded},
	}
	uc := NewMarketOverviewUseCase(p, nil, nil, nil, catalog.ScoreConfig(sentiment.VIXLevels{}), 0)

	out, err := uc.MultiTimeframe(context.Background())
	if err != nil {
		t.Fatalf("MultiTimeframe: %v", err)
	}
	if !out.Partial {
		t.Fatal("weekly failure should flag partial data")
	}
	if len(out.Sentiments) != len(models.AllTimeframes()) {
		t.Fatalf("got %d sentiments, want %d", len(out.Sentiments), len(models.AllTimeframes()))
	}

	// Weekly degraded: flat neutral. Daily unaffected.
	if got := out.Sentiments[models.TFWeekly].Score; got != 50 {
		t.Fatalf("weekly score = %v, want neutral 50", got)
	}
	if got := out.Sentiments[models.TFDaily].Score; got == 50 {
		t.Fatal("daily score should not degrade with weekly")
	}

	for _, in := range out.Groups[models.GroupUSMarkets] {
		if in.Slice(models.TFWeekly).Available() {
			t.Fatalf("%s weekly slice should be unavailable", in.Symbol)
		}
		if !in.Slice(models.TFDaily).Available() {
			t.Fatalf("%s daily slice should be available", in.Symbol)
		}
	}
}
