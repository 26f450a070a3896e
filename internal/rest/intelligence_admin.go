package rest

import (
	"autoOpsAI/business/intelligence"
	"autoOpsAI/business/operations"
	"autoOpsAI/domain"
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type (
	IntelligenceAdminHandler struct {
		configService ConfigService
	}

	ConfigService interface {
		Config(ctx context.Context) (intelligence.Config, error)
		UpdateConfig(ctx context.Context, overrides domain.IntelligenceConfig) (intelligence.Config, error)
	}
)

func NewIntelligenceAdminHandler(svc ConfigService) *IntelligenceAdminHandler {
	return &IntelligenceAdminHandler{
		configService: svc,
	}
}

// GET /api/v1/admin/intelligence/config
func (h *IntelligenceAdminHandler) GetConfig(c echo.Context) error {
	cfg, err := h.configService.Config(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, cfg.Overrides(operations.ConfigScope))
}

// PUT /api/v1/admin/intelligence/config
//
// Zero fields keep their current default.
func (h *IntelligenceAdminHandler) UpdateConfig(c echo.Context) error {
	var req domain.IntelligenceConfig
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body",
		})
	}

	cfg, err := h.configService.UpdateConfig(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, cfg.Overrides(operations.ConfigScope))
}
