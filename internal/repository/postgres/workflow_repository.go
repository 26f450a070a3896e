package postgres

import (
	"autoOpsAI/business/operations"
	"autoOpsAI/domain"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type WorkflowRepository struct {
	DB *gorm.DB
}

var _ operations.WorkflowRepository = (*WorkflowRepository)(nil)

func NewWorkflowRepository(db *gorm.DB) *WorkflowRepository {
	return &WorkflowRepository{DB: db}
}

func (r *WorkflowRepository) FindAll(ctx context.Context) ([]domain.Workflow, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var workflows []domain.Workflow
	if err := r.DB.WithContext(ctx).Order("id").Find(&workflows).Error; err != nil {
		return nil, fmt.Errorf("failed to find workflows: %w", err)
	}

	return workflows, nil
}

func (r *WorkflowRepository) Create(ctx context.Context, workflow *domain.Workflow) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(workflow).Error; err != nil {
		return fmt.Errorf("failed to create workflow: %w", err)
	}

	return nil
}

// SetActive updates is_active in SQL so two concurrent toggles both land,
// then reads the row back inside the same transaction.
func (r *WorkflowRepository) SetActive(ctx context.Context, id string, active *bool) (domain.Workflow, error) {
	if err := ctx.Err(); err != nil {
		return domain.Workflow{}, fmt.Errorf("context error: %w", err)
	}

	var value interface{} = gorm.Expr("NOT is_active")
	if active != nil {
		value = *active
	}

	var workflow domain.Workflow
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Workflow{}).Where("id = ?", id).Update("is_active", value)
		if res.Error != nil {
			return fmt.Errorf("failed to update workflow: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("workflow %s: %w", id, domain.ErrNotFound)
		}

		if err := tx.Where("id = ?", id).Take(&workflow).Error; err != nil {
			return fmt.Errorf("failed to read workflow: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Workflow{}, err
	}

	return workflow, nil
}
