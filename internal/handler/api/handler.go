package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler bundles every API handler behind one route registration.
type Handler struct {
	markets *MarketsHandler
	sectors *SectorsHandler
	started time.Time
}

func NewHandler(markets *MarketsHandler, sectors *SectorsHandler) *Handler {
	return &Handler{markets: markets, sectors: sectors, started: time.Now()}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	h.markets.RegisterRoutes(e)
	h.sectors.RegisterRoutes(e)
	e.GET("/health", h.Health)
}

// Health reports liveness and uptime.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"uptime_s":  int(time.Since(h.started).Seconds()),
		"timestamp": time.Now().UTC(),
	})
}
