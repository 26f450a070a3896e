package operations

import (
	"autoOpsAI/domain"
	"autoOpsAI/pkg/logger"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	defaultWorkflowName        = "New Workflow"
	defaultWorkflowDescription = "Untitled workflow"
)

// WorkflowInput creates a workflow. Blank names and descriptions get
// placeholders; a nil IsActive means active.
type WorkflowInput struct {
	Name        string
	Description string
	IsActive    *bool
}

type WorkflowStats struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Executions int `json:"executions"`
}

func (s *Service) Workflows(ctx context.Context) ([]domain.Workflow, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if s.repos.Workflows == nil {
		return []domain.Workflow{}, nil
	}

	workflows, err := s.repos.Workflows.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find workflows: %w", err)
	}
	return workflows, nil
}

// CreateWorkflow stores a new workflow and drops the cached metrics, which
// count active workflows.
func (s *Service) CreateWorkflow(ctx context.Context, in WorkflowInput) (domain.Workflow, error) {
	if err := ctx.Err(); err != nil {
		return domain.Workflow{}, fmt.Errorf("context error: %w", err)
	}
	if s.repos.Workflows == nil {
		return domain.Workflow{}, fmt.Errorf("workflow store not configured: %w", domain.ErrInvalidInput)
	}

	wf := domain.Workflow{
		ID:          newWorkflowID(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		IsActive:    true,
	}
	if wf.Name == "" {
		wf.Name = defaultWorkflowName
	}
	if wf.Description == "" {
		wf.Description = defaultWorkflowDescription
	}
	if in.IsActive != nil {
		wf.IsActive = *in.IsActive
	}

	if err := s.repos.Workflows.Create(ctx, &wf); err != nil {
		return domain.Workflow{}, fmt.Errorf("failed to create workflow: %w", err)
	}
	s.invalidate(ctx)

	logger.Info("workflow created", "workflow_id", wf.ID, "active", wf.IsActive)
	return wf, nil
}

// SetWorkflowActive sets the active flag, or flips it when active is nil.
func (s *Service) SetWorkflowActive(ctx context.Context, id string, active *bool) (domain.Workflow, error) {
	if err := ctx.Err(); err != nil {
		return domain.Workflow{}, fmt.Errorf("context error: %w", err)
	}
	if s.repos.Workflows == nil {
		return domain.Workflow{}, fmt.Errorf("workflow %s: %w", id, domain.ErrNotFound)
	}

	wf, err := s.repos.Workflows.SetActive(ctx, id, active)
	if err != nil {
		return domain.Workflow{}, fmt.Errorf("failed to update workflow %s: %w", id, err)
	}
	s.invalidate(ctx)

	logger.Info("workflow updated", "workflow_id", wf.ID, "active", wf.IsActive)
	return wf, nil
}

// WorkflowStats counts workflows. Executions sums each workflow's
// execution_count.
func (s *Service) WorkflowStats(ctx context.Context) (WorkflowStats, error) {
	workflows, err := s.Workflows(ctx)
	if err != nil {
		return WorkflowStats{}, err
	}

	stats := WorkflowStats{Total: len(workflows)}
	for _, wf := range workflows {
		if wf.IsActive {
			stats.Active++
		}
		stats.Executions += wf.ExecutionCount
	}
	return stats, nil
}

func newWorkflowID() string {
	return "wf_" + uuid.NewString()
}
