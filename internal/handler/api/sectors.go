package api

import (
	"errors"

	"MarketPulse/internal/domain/models"
	"MarketPulse/internal/usecase"
	xhttp "MarketPulse/pkg/http"
	xlogger "MarketPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SectorsHandler serves the sector and stock relative-strength endpoints.
type SectorsHandler struct {
	logger *xlogger.Logger
	scan   *usecase.SectorScanUseCase
}

func NewSectorsHandler(logger *xlogger.Logger, scan *usecase.SectorScanUseCase) *SectorsHandler {
	return &SectorsHandler{logger: logger, scan: scan}
}

func (h *SectorsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/sectors")
	g.GET("/groups", h.Groups)
	g.GET("/list", h.List)
	g.GET("/performance", h.Performance)
	g.GET("/stocks", h.Stocks)
}

// Groups lists the index groups available for the performance scan.
func (h *SectorsHandler) Groups(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.scan.Groups())
}

// List lists the sectors with constituent stock coverage.
func (h *SectorsHandler) List(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.scan.Sectors())
}

// Performance scans one index group against the benchmark.
func (h *SectorsHandler) Performance(c echo.Context) error {
	req := &models.SectorPerformanceRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.scan.Performance(c.Request().Context(), req.Group, models.NormalizeTimeframe(req.Timeframe), req.Lookback)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownGroup) {
			return xhttp.NotFoundResponse(c, err.Error())
		}
		h.logger.Error("sector performance failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("sector scan unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

// Stocks scans the constituents of one sector against the benchmark.
func (h *SectorsHandler) Stocks(c echo.Context) error {
	req := &models.SectorStocksRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.scan.Stocks(c.Request().Context(), req.Sector, models.NormalizeTimeframe(req.Timeframe), req.Lookback)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownSector) {
			return xhttp.NotFoundResponse(c, err.Error())
		}
		h.logger.Error("sector stocks failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("stock scan unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, res)
}
