package api

import (
	"MarketPulse/internal/domain/models"
	"MarketPulse/internal/usecase"
	xhttp "MarketPulse/pkg/http"
	xlogger "MarketPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MarketsHandler serves the global markets and commodities endpoints.
type MarketsHandler struct {
	logger      *xlogger.Logger
	overview    *usecase.MarketOverviewUseCase
	commodities *usecase.CommoditiesUseCase
}

func NewMarketsHandler(logger *xlogger.Logger, overview *usecase.MarketOverviewUseCase, commodities *usecase.CommoditiesUseCase) *MarketsHandler {
	return &MarketsHandler{logger: logger, overview: overview, commodities: commodities}
}

func (h *MarketsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/markets")
	g.GET("/global", h.Global)
	g.GET("/sentiment", h.Sentiment)
	g.GET("/commodities", h.Commodities)
}

// Global returns every market group for one timeframe, or the merged
// all-timeframes view when multi is set.
func (h *MarketsHandler) Global(c echo.Context) error {
	req := &models.GlobalMarketsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	ctx := c.Request().Context()
	if req.Multi {
		res, err := h.overview.MultiTimeframe(ctx)
		if err != nil {
			h.logger.Error("global multi overview failed", xlogger.Error(err))
			return xhttp.AppErrorResponse(c, xhttp.InternalError("global markets unavailable").WithError(err))
		}
		return xhttp.SuccessResponse(c, res)
	}

	res, err := h.overview.Overview(ctx, models.NormalizeTimeframe(req.Timeframe))
	if err != nil {
		h.logger.Error("global overview failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("global markets unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

// Sentiment returns the composite market sentiment alone.
func (h *MarketsHandler) Sentiment(c echo.Context) error {
	req := &models.MarketSentimentRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.overview.Sentiment(c.Request().Context(), models.NormalizeTimeframe(req.Timeframe))
	if err != nil {
		h.logger.Error("sentiment failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("market sentiment unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

// Commodities returns the commodity futures snapshot with strict-zero
// breadth.
func (h *MarketsHandler) Commodities(c echo.Context) error {
	req := &models.CommoditiesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	ctx := c.Request().Context()
	if req.Multi {
		res, err := h.commodities.MultiTimeframe(ctx)
		if err != nil {
			h.logger.Error("commodities multi failed", xlogger.Error(err))
			return xhttp.AppErrorResponse(c, xhttp.InternalError("commodities unavailable").WithError(err))
		}
		return xhttp.SuccessResponse(c, res)
	}

	res, err := h.commodities.Commodities(ctx, models.NormalizeTimeframe(req.Timeframe))
	if err != nil {
		h.logger.Error("commodities failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("commodities unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, res)
}
