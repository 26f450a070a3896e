package rest

import (
	"autoOpsAI/business/operations"
	"autoOpsAI/domain"
	"context"
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	InsightsHandler struct {
		insightsService InsightsService
	}

	InsightsService interface {
		Insights(ctx context.Context) ([]domain.Insight, error)
		Refresh(ctx context.Context) (operations.RefreshResult, error)
		Metrics(ctx context.Context) (domain.SystemMetrics, error)
	}
)

func NewInsightsHandler(svc InsightsService) *InsightsHandler {
	return &InsightsHandler{
		insightsService: svc,
	}
}

// GET /api/v1/insights
func (h *InsightsHandler) GetInsights(c echo.Context) error {
	insights, err := h.insightsService.Insights(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(insights))
}

// POST /api/v1/insights/refresh
func (h *InsightsHandler) Refresh(c echo.Context) error {
	res, err := h.insightsService.Refresh(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(res))
}

// GET /api/v1/metrics/system
func (h *InsightsHandler) GetSystemMetrics(c echo.Context) error {
	m, err := h.insightsService.Metrics(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(m))
}
