package sentiment

import (
	"testing"

	"MarketPulse/internal/domain/models"
)

func TestResolveThreeWayTieGoesBullish(t *testing.T) {
	b := models.Breadth{Positive: 1, Negative: 1, Neutral: 1, Total: 3, Percentage: 33}
	got := Resolve(b)
	if got.Label != models.SentimentBullish {
		t.Fatalf("three-way tie must resolve bullish, got %s", got.Label)
	}
	if got.Percentage != 33 {
		t.Fatalf("expected 33, got %v", got.Percentage)
	}
}

func TestResolveTieBearishOverNeutral(t *testing.T) {
	b := models.Breadth{Positive: 0, Negative: 2, Neutral: 2, Total: 4}
	got := Resolve(b)
	if got.Label != models.SentimentBearish {
		t.Fatalf("bearish wins ties against neutral, got %s", got.Label)
	}
	if got.Percentage != 50 {
		t.Fatalf("expected 50, got %v", got.Percentage)
	}
}

func TestResolveMajority(t *testing.T) {
	b := models.Breadth{Positive: 1, Negative: 1, Neutral: 3, Total: 5}
	got := Resolve(b)
	if got.Label != models.SentimentNeutral {
		t.Fatalf("expected neutral majority, got %s", got.Label)
	}
	if got.Percentage != 60 {
		t.Fatalf("expected 60, got %v", got.Percentage)
	}
}

func TestResolveNeverExceedsComponentMax(t *testing.T) {
	cases := []models.Breadth{
		{Positive: 3, Negative: 2, Neutral: 2, Total: 7},
		{Positive: 0, Negative: 5, Neutral: 1, Total: 6},
		{Positive: 2, Negative: 2, Neutral: 5, Total: 9},
	}
	for _, b := range cases {
		got := Resolve(b)
		maxPct := sharePct(b.Positive, b.Total)
		if p := sharePct(b.Negative, b.Total); p > maxPct {
			maxPct = p
		}
		if p := sharePct(b.Neutral, b.Total); p > maxPct {
			maxPct = p
		}
		if got.Percentage > maxPct {
			t.Fatalf("dominant percentage %v exceeds component max %v for %+v", got.Percentage, maxPct, b)
		}
	}
}

func TestResolveEmptyBreadth(t *testing.T) {
	got := Resolve(models.Breadth{})
	if got.Label != models.SentimentNeutral || got.Percentage != 0 {
		t.Fatalf("empty breadth must resolve neutral/0, got %+v", got)
	}
}
