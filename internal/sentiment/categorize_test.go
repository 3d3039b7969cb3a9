package sentiment

import "testing"

func testCategorizer() *Categorizer {
	return NewCategorizer([]Group{
		{Key: "banking", Title: "Banking & Finance", Keywords: []string{"Bank", "Finance"}},
		{Key: "technology", Title: "Technology", Keywords: []string{"Bank", "IT"}},
	}, "broader_market")
}

func TestCategorizeFirstMatchWins(t *testing.T) {
	c := testCategorizer()
	// "Bank" appears in both groups; order decides.
	if got := c.Categorize("Bank Nifty"); got != "banking" {
		t.Fatalf("expected banking, got %s", got)
	}
	if got := c.Categorize("Nifty IT"); got != "technology" {
		t.Fatalf("expected technology, got %s", got)
	}
}

func TestCategorizeCaseInsensitive(t *testing.T) {
	c := testCategorizer()
	if got := c.Categorize("nifty psu bank"); got != "banking" {
		t.Fatalf("matching must ignore case, got %s", got)
	}
}

func TestCategorizeDefaultGroup(t *testing.T) {
	c := testCategorizer()
	if got := c.Categorize("Nifty Midcap 100"); got != "broader_market" {
		t.Fatalf("unmatched names go to the default group, got %s", got)
	}
	if got := c.Categorize(""); got != "broader_market" {
		t.Fatalf("empty name goes to the default group, got %s", got)
	}
}

func TestCategorizeDeterministic(t *testing.T) {
	c := testCategorizer()
	first := c.Categorize("Nifty Pvt Bank")
	for i := 0; i < 10; i++ {
		if got := c.Categorize("Nifty Pvt Bank"); got != first {
			t.Fatalf("categorization not stable: %s then %s", first, got)
		}
	}
}
