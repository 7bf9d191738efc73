package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/salescrm/internal/middleware"
	"github.com/umalmyha/salescrm/internal/service"
)

// AnalyticsHTTPHandler is http handler for analytics endpoint
type AnalyticsHTTPHandler struct {
	analyticsSvc service.AnalyticsService
}

// NewAnalyticsHTTPHandler builds new AnalyticsHTTPHandler
func NewAnalyticsHTTPHandler(analyticsSvc service.AnalyticsService) *AnalyticsHTTPHandler {
	return &AnalyticsHTTPHandler{analyticsSvc: analyticsSvc}
}

// Dashboard gets caller-scoped pipeline stats
// @Summary     Dashboard stats
// @Description Returns aggregate figures over caller's customers and leads
// @Tags        analytics
// @Security	ApiKeyAuth
// @Produce     json
// @Success     200    {object} model.DashboardStats
// @Failure     500    {object} echo.HTTPError
// @Router      /api/v1/analytics/dashboard [get]
// @Router      /api/v2/analytics/dashboard [get]
func (h *AnalyticsHTTPHandler) Dashboard(c echo.Context) error {
	stats, err := h.analyticsSvc.DashboardStats(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
