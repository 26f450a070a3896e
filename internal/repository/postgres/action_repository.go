package postgres

import (
	"autoOpsAI/business/operations"
	"autoOpsAI/domain"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActionRepository struct {
	DB *gorm.DB
}

var _ operations.ActionRepository = (*ActionRepository)(nil)

func NewActionRepository(db *gorm.DB) *ActionRepository {
	return &ActionRepository{
		DB: db,
	}
}

func (r *ActionRepository) FindAll(ctx context.Context) ([]domain.Action, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var actions []domain.Action
	if err := r.DB.WithContext(ctx).Order("created_at, id").Find(&actions).Error; err != nil {
		return nil, fmt.Errorf("failed to find actions: %w", err)
	}

	return actions, nil
}

func (r *ActionRepository) FindByID(ctx context.Context, id string) (domain.Action, error) {
	if err := ctx.Err(); err != nil {
		return domain.Action{}, fmt.Errorf("context error: %w", err)
	}

	var action domain.Action
	err := r.DB.WithContext(ctx).Where("id = ?", id).Take(&action).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Action{}, fmt.Errorf("action %s: %w", id, domain.ErrNotFound)
		}
		return domain.Action{}, fmt.Errorf("failed to find action: %w", err)
	}

	return action, nil
}

// CreateBatch inserts new actions. A row that already exists is left
// untouched so a concurrent pass cannot reset its status.
func (r *ActionRepository) CreateBatch(ctx context.Context, actions []domain.Action) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if len(actions) == 0 {
		return nil
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&actions).Error
	if err != nil {
		return fmt.Errorf("failed to create actions: %w", err)
	}

	return nil
}

// Update writes the mutable lifecycle fields of an action.
func (r *ActionRepository) Update(ctx context.Context, action *domain.Action) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	res := r.DB.WithContext(ctx).Model(&domain.Action{}).Where("id = ?", action.ID).Updates(map[string]interface{}{
		"status":         action.Status,
		"edited_content": action.EditedContent,
		"executed_at":    action.ExecutedAt,
		"updated_at":     action.UpdatedAt,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update action: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("action %s: %w", action.ID, domain.ErrNotFound)
	}

	return nil
}
