package quotes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"MarketPulse/internal/domain/models"
	"MarketPulse/internal/domain/repository"
)

func listings() []models.Listing {
	return []models.Listing{
		{Symbol: "^NSEI", Name: "NIFTY 50 (India)", Short: "NIFTY"},
		{Symbol: "^BSESN", Name: "SENSEX (India)", Short: "SENSEX"},
		{Symbol: "^HSI", Name: "Hang Seng (HK)", Short: "HSI"},
	}
}

func TestFetchGroupKeepsOrderAndFlagsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("timeframe"); got != "daily" {
			t.Errorf("timeframe query = %s, want daily", got)
		}
		// ^BSESN missing, ^HSI flagged, string and null metrics mixed in
		body := `{"data":[
			{"symbol":"^HSI","name":"Hang Seng","error":true},
			{"symbol":"^NSEI","name":"NIFTY 50","price":"24587.5","change":152.3,"change_pct":"0.62","relative_strength":null}
		]}`
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil)
	out, err := c.FetchGroup(context.Background(), listings(), models.TFDaily, 1)
	if err != nil {
		t.Fatalf("FetchGroup: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d instruments, want 3", len(out))
	}

	nifty := out[0]
	if nifty.Symbol != "^NSEI" || nifty.Error {
		t.Fatalf("first instrument = %+v, want available ^NSEI", nifty)
	}
	if nifty.Price == nil || *nifty.Price != 24587.5 {
		t.Fatalf("string price not parsed: %+v", nifty.Price)
	}
	if nifty.ChangePct == nil || *nifty.ChangePct != 0.62 {
		t.Fatalf("string change_pct not parsed: %+v", nifty.ChangePct)
	}
	if nifty.RelativeStrength != nil {
		t.Fatal("null relative_strength should stay nil")
	}
	if nifty.Name != "NIFTY 50 (India)" {
		t.Fatalf("catalog name not kept: %s", nifty.Name)
	}

	if sensex := out[1]; sensex.Symbol != "^BSESN" || !sensex.Error || sensex.ChangePct != nil {
		t.Fatalf("missing symbol not degraded: %+v", sensex)
	}
	if hsi := out[2]; !hsi.Error {
		t.Fatalf("flagged symbol not degraded: %+v", hsi)
	}
}

func TestFetchGroupLegacyRSKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"symbol": "^NSEBANK", "change_pct": 0.4, "rs": -0.25},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil)
	out, err := c.FetchGroup(context.Background(), []models.Listing{{Symbol: "^NSEBANK", Name: "Bank Nifty"}}, models.TFWeekly, 1)
	if err != nil {
		t.Fatalf("FetchGroup: %v", err)
	}
	if out[0].RelativeStrength == nil || *out[0].RelativeStrength != -0.25 {
		t.Fatalf("legacy rs key not read: %+v", out[0].RelativeStrength)
	}
}

func TestFetchGroupTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil)
	if _, err := c.FetchGroup(context.Background(), listings(), models.TFDaily, 1); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestFetchMultiGroupUnsupported(t *testing.T) {
	c := New("http://unused", "", nil)
	_, err := c.FetchMultiGroup(context.Background(), listings(), models.AllTimeframes(), 1)
	if err != repository.ErrMultiUnsupported {
		t.Fatalf("err = %v, want ErrMultiUnsupported", err)
	}
}

func TestFetchMultiGroupServerShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := `{"data":[
			{"symbol":"^NSEI","price":24587.5,"timeframes":{
				"daily":{"change_pct":0.62},
				"weekly":{"error":true}
			}}
		]}`
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil, WithMultiSupport(true))
	tfs := []models.Timeframe{models.TFDaily, models.TFWeekly, models.TFMonthly}
	out, err := c.FetchMultiGroup(context.Background(), []models.Listing{{Symbol: "^NSEI", Name: "NIFTY 50"}}, tfs, 1)
	if err != nil {
		t.Fatalf("FetchMultiGroup: %v", err)
	}
	m := out[0]
	if !m.Slice(models.TFDaily).Available() {
		t.Fatal("daily slice should be available")
	}
	if m.Slice(models.TFWeekly).Available() || m.Slice(models.TFMonthly).Available() {
		t.Fatal("failed and absent timeframes should be unavailable")
	}
}

func TestFetchMultiGroupNotImplementedFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil, WithMultiSupport(true))
	_, err := c.FetchMultiGroup(context.Background(), listings(), models.AllTimeframes(), 1)
	if err != repository.ErrMultiUnsupported {
		t.Fatalf("err = %v, want ErrMultiUnsupported", err)
	}
}
