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
	ActionsHandler struct {
		validate       *validator.Validate
		actionsService ActionsService
	}

	ActionsService interface {
		Actions(ctx context.Context, status domain.ActionStatus) ([]domain.Action, error)
		ExecuteAction(ctx context.Context, id, editedContent string) (domain.Action, error)
		RejectAction(ctx context.Context, id string) (domain.Action, error)
		RollbackAction(ctx context.Context, id string) (domain.Action, error)
	}

	ActionsQuery struct {
		Status string `query:"status" validate:"omitempty,oneof=pending executed rejected rolled_back"`
	}

	ExecuteActionRequest struct {
		EditedContent string `json:"edited_content" validate:"max=20000"`
	}
)

func NewActionsHandler(svc ActionsService) *ActionsHandler {
	return &ActionsHandler{
		validate:       validator.New(),
		actionsService: svc,
	}
}

// GET /api/v1/actions?status=pending
func (h *ActionsHandler) GetActions(c echo.Context) error {
	var q ActionsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	actions, err := h.actionsService.Actions(c.Request().Context(), domain.ActionStatus(q.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(actions))
}

// POST /api/v1/actions/:id/execute
func (h *ActionsHandler) Execute(c echo.Context) error {
	var req ExecuteActionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	action, err := h.actionsService.ExecuteAction(c.Request().Context(), c.Param("id"), req.EditedContent)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(action))
}

// POST /api/v1/actions/:id/reject
func (h *ActionsHandler) Reject(c echo.Context) error {
	action, err := h.actionsService.RejectAction(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(action))
}

// POST /api/v1/actions/:id/rollback
func (h *ActionsHandler) Rollback(c echo.Context) error {
	action, err := h.actionsService.RollbackAction(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(action))
}
