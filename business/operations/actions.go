package operations

import (
	"autoOpsAI/domain"
	"autoOpsAI/pkg/logger"
	"context"
	"fmt"
	"sort"
)

// Actions lists stored actions, highest expected impact first. An empty
// status returns every action.
func (s *Service) Actions(ctx context.Context, status domain.ActionStatus) ([]domain.Action, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	all, err := s.repos.Actions.FindAll(ctx)
	if err != nil {
		logger.Error("failed to find actions", "error", err)
		return nil, fmt.Errorf("failed to find actions: %w", err)
	}

	out := make([]domain.Action, 0, len(all))
	for _, a := range all {
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpectedImpact > out[j].ExpectedImpact
	})

	return out, nil
}

// ExecuteAction marks a pending action executed. A non-empty editedContent
// replaces what the operator actually sent.
func (s *Service) ExecuteAction(ctx context.Context, id, editedContent string) (domain.Action, error) {
	return s.transition(ctx, id, domain.ActionExecuted, editedContent)
}

func (s *Service) RejectAction(ctx context.Context, id string) (domain.Action, error) {
	return s.transition(ctx, id, domain.ActionRejected, "")
}

func (s *Service) RollbackAction(ctx context.Context, id string) (domain.Action, error) {
	return s.transition(ctx, id, domain.ActionRolledBack, "")
}

func (s *Service) transition(ctx context.Context, id string, next domain.ActionStatus, editedContent string) (domain.Action, error) {
	if err := ctx.Err(); err != nil {
		return domain.Action{}, fmt.Errorf("context error: %w", err)
	}
	if id == "" {
		return domain.Action{}, fmt.Errorf("action id is required: %w", domain.ErrInvalidInput)
	}

	action, err := s.repos.Actions.FindByID(ctx, id)
	if err != nil {
		return domain.Action{}, fmt.Errorf("failed to find action %s: %w", id, err)
	}

	if !action.Status.CanTransition(next) {
		return domain.Action{}, fmt.Errorf("action %s is %s, cannot become %s: %w",
			id, action.Status, next, domain.ErrInvalidStatusTransition)
	}

	now := s.clock.Now()
	action.Status = next
	action.UpdatedAt = now
	if next == domain.ActionExecuted {
		action.ExecutedAt = &now
		if editedContent != "" {
			action.EditedContent = editedContent
		}
	}

	if err := s.repos.Actions.Update(ctx, &action); err != nil {
		return domain.Action{}, fmt.Errorf("failed to update action %s: %w", id, err)
	}

	ActionTransitionsTotal.WithLabelValues(string(next)).Inc()
	s.invalidate(ctx)

	logger.Info("action status changed", "action_id", id, "status", next)

	return action, nil
}
