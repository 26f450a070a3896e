package rest

import (
	"autoOpsAI/business/operations"
	"autoOpsAI/domain"
	"context"
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	WorkflowsHandler struct {
		validate         *validator.Validate
		workflowsService WorkflowsService
	}

	WorkflowsService interface {
		Workflows(ctx context.Context) ([]domain.Workflow, error)
		CreateWorkflow(ctx context.Context, in operations.WorkflowInput) (domain.Workflow, error)
		SetWorkflowActive(ctx context.Context, id string, active *bool) (domain.Workflow, error)
		WorkflowStats(ctx context.Context) (operations.WorkflowStats, error)
	}

	CreateWorkflowRequest struct {
		Name        string `json:"name" validate:"max=200"`
		Description string `json:"description" validate:"max=2000"`
		IsActive    *bool  `json:"is_active"`
	}

	// ToggleWorkflowRequest leaves IsActive nil to flip the current value.
	ToggleWorkflowRequest struct {
		IsActive *bool `json:"is_active"`
	}
)

func NewWorkflowsHandler(svc WorkflowsService) *WorkflowsHandler {
	return &WorkflowsHandler{
		validate:         validator.New(),
		workflowsService: svc,
	}
}

// GET /api/v1/workflows
func (h *WorkflowsHandler) GetWorkflows(c echo.Context) error {
	workflows, err := h.workflowsService.Workflows(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(workflows))
}

// GET /api/v1/workflows/stats
func (h *WorkflowsHandler) GetStats(c echo.Context) error {
	stats, err := h.workflowsService.WorkflowStats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stats))
}

// POST /api/v1/workflows
func (h *WorkflowsHandler) Create(c echo.Context) error {
	var req CreateWorkflowRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	wf, err := h.workflowsService.CreateWorkflow(c.Request().Context(), operations.WorkflowInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(wf))
}

// PATCH /api/v1/workflows/:id
func (h *WorkflowsHandler) Toggle(c echo.Context) error {
	var req ToggleWorkflowRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	wf, err := h.workflowsService.SetWorkflowActive(c.Request().Context(), c.Param("id"), req.IsActive)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(wf))
}
