package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"MarketPulse/internal/catalog"
	"MarketPulse/internal/domain/models"
	"MarketPulse/internal/domain/repository"
	"MarketPulse/internal/sentiment"
	"MarketPulse/internal/usecase"
	xlogger "MarketPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// flatProvider serves every listing with the same change percentage.
type flatProvider struct {
	changePct float64
	price     float64
}

func (p *flatProvider) FetchGroup(_ context.Context, listings []models.Listing, _ models.Timeframe, _ int) ([]models.Instrument, error) {
	out := make([]models.Instrument, 0, len(listings))
	for _, l := range listings {
		v := p.changePct
		price := p.price
		out = append(out, models.Instrument{
			Symbol:    l.Symbol,
			Name:      l.Name,
			Short:     l.Short,
			Price:     &price,
			ChangePct: &v,
		})
	}
	return out, nil
}

func (p *flatProvider) FetchMultiGroup(context.Context, []models.Listing, []models.Timeframe, int) ([]models.MultiTimeframeInstrument, error) {
	return nil, repository.ErrMultiUnsupported
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	logger, err := xlogger.New(&xlogger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	p := &flatProvider{changePct: 0.8, price: 25}
	scoreCfg := catalog.ScoreConfig(sentiment.VIXLevels{})
	overview := usecase.NewMarketOverviewUseCase(p, nil, nil, logger, scoreCfg, 0)
	commodities := usecase.NewCommoditiesUseCase(p, nil, nil, logger, 0)
	scan := usecase.NewSectorScanUseCase(p, nil, nil, logger, catalog.NewSectorCategorizer(), 0, 0)

	h := NewHandler(
		NewMarketsHandler(logger, overview, commodities),
		NewSectorsHandler(logger, scan),
	)
	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doGet(t *testing.T, e *echo.Echo, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec, env
}

func TestHealth(t *testing.T) {
	e := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("health body = %v", body)
	}
}

func TestGlobalOverview(t *testing.T) {
	e := newTestServer(t)
	rec, env := doGet(t, e, "/api/markets/global?timeframe=daily")

	if rec.Code != http.StatusOK || env.Status != http.StatusOK {
		t.Fatalf("status = %d envelope = %d", rec.Code, env.Status)
	}

	var view models.GlobalOverview
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("decode overview: %v", err)
	}
	if view.Timeframe != models.TFDaily {
		t.Fatalf("timeframe = %s", view.Timeframe)
	}
	if len(view.Groups) == 0 {
		t.Fatal("no market groups in overview")
	}
	if view.Sentiment.Score <= 0 || view.Sentiment.Score > 100 {
		t.Fatalf("sentiment score = %v", view.Sentiment.Score)
	}
}

func TestGlobalRejectsBadTimeframe(t *testing.T) {
	e := newTestServer(t)
	_, env := doGet(t, e, "/api/markets/global?timeframe=yearly")

	if env.Status != http.StatusBadRequest {
		t.Fatalf("envelope status = %d, want 400", env.Status)
	}
}

func TestCommoditiesDefaultsTimeframe(t *testing.T) {
	e := newTestServer(t)
	_, env := doGet(t, e, "/api/markets/commodities")

	if env.Status != http.StatusOK {
		t.Fatalf("envelope status = %d", env.Status)
	}
	var view models.CommoditiesView
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("decode commodities: %v", err)
	}
	if view.Timeframe != models.TFDaily {
		t.Fatalf("default timeframe = %s", view.Timeframe)
	}
	// every commodity up 0.8% means all-positive breadth
	if view.Breadth.Positive != view.Breadth.Total || view.Breadth.Total == 0 {
		t.Fatalf("breadth = %+v", view.Breadth)
	}
}

func TestSectorGroups(t *testing.T) {
	e := newTestServer(t)
	_, env := doGet(t, e, "/api/sectors/groups")

	if env.Status != http.StatusOK {
		t.Fatalf("envelope status = %d", env.Status)
	}
	var groups map[string][]string
	if err := json.Unmarshal(env.Data, &groups); err != nil {
		t.Fatalf("decode groups: %v", err)
	}
	if _, ok := groups["sectorial"]; !ok {
		t.Fatalf("groups = %v", groups)
	}
}

func TestSectorStocksRequiresSector(t *testing.T) {
	e := newTestServer(t)
	_, env := doGet(t, e, "/api/sectors/stocks")

	if env.Status != http.StatusBadRequest {
		t.Fatalf("envelope status = %d, want 400", env.Status)
	}
}

func TestSectorStocksUnknownSector(t *testing.T) {
	e := newTestServer(t)
	_, env := doGet(t, e, "/api/sectors/stocks?sector=nope")

	if env.Status != http.StatusNotFound {
		t.Fatalf("envelope status = %d, want 404", env.Status)
	}
}

func TestSectorPerformanceRejectsBadGroup(t *testing.T) {
	e := newTestServer(t)
	_, env := doGet(t, e, "/api/sectors/performance?group=bogus")

	if env.Status != http.StatusBadRequest {
		t.Fatalf("envelope status = %d, want 400", env.Status)
	}
}
