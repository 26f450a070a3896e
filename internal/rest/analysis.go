package rest

import (
	"autoOpsAI/domain"
	"context"
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type (
	AnalysisHandler struct {
		validate        *validator.Validate
		analysisService AnalysisService
	}

	AnalysisService interface {
		StoreAnalysis(ctx context.Context, payload domain.AnalysisPayload) (domain.AnalysisPayload, error)
		LatestAnalysis(ctx context.Context) (domain.AnalysisPayload, error)
	}

	// AnalysisRequest is the upstream ML output. Sections are kept verbatim.
	AnalysisRequest struct {
		Source               string         `json:"source" validate:"required"`
		StockStatus          datatypes.JSON `json:"stock_status"`
		SalesStats           datatypes.JSON `json:"sales_stats"`
		DemandClusters       datatypes.JSON `json:"demand_clusters"`
		PriceRecommendations datatypes.JSON `json:"price_recommendations"`
	}
)

func NewAnalysisHandler(svc AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		validate:        validator.New(),
		analysisService: svc,
	}
}

// POST /api/v1/analysis
func (h *AnalysisHandler) Store(c echo.Context) error {
	var req AnalysisRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	payload, err := h.analysisService.StoreAnalysis(c.Request().Context(), domain.AnalysisPayload{
		Source:               req.Source,
		StockStatus:          req.StockStatus,
		SalesStats:           req.SalesStats,
		DemandClusters:       req.DemandClusters,
		PriceRecommendations: req.PriceRecommendations,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(payload))
}

// GET /api/v1/analysis/latest
func (h *AnalysisHandler) Latest(c echo.Context) error {
	payload, err := h.analysisService.LatestAnalysis(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(payload))
}
