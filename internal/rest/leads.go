package rest

import (
	"autoOpsAI/domain"
	"context"
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	LeadsHandler struct {
		validate     *validator.Validate
		leadsService LeadsService
	}

	LeadsService interface {
		ScoreLead(ctx context.Context, lead domain.Lead) (domain.LeadValuation, error)
	}

	ScoreLeadRequest struct {
		ID            string  `json:"id"`
		DealSize      float64 `json:"deal_size" validate:"gte=0"`
		CompanySize   float64 `json:"company_size" validate:"gte=0"`
		IntentSignals int     `json:"intent_signals" validate:"gte=0"`
		BudgetRange   float64 `json:"budget_range" validate:"gte=0"`
		RecencyScore  float64 `json:"recency_score" validate:"gte=0,lte=1"`
	}
)

func NewLeadsHandler(svc LeadsService) *LeadsHandler {
	return &LeadsHandler{
		validate:     validator.New(),
		leadsService: svc,
	}
}

// POST /api/v1/leads/score
func (h *LeadsHandler) Score(c echo.Context) error {
	var req ScoreLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	valuation, err := h.leadsService.ScoreLead(c.Request().Context(), domain.Lead{
		ID:            req.ID,
		DealSize:      req.DealSize,
		CompanySize:   req.CompanySize,
		IntentSignals: req.IntentSignals,
		BudgetRange:   req.BudgetRange,
		RecencyScore:  req.RecencyScore,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(valuation))
}
