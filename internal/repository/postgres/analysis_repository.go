package postgres

import (
	"autoOpsAI/business/operations"
	"autoOpsAI/domain"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type AnalysisRepository struct {
	DB *gorm.DB
}

var _ operations.AnalysisRepository = (*AnalysisRepository)(nil)

func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{DB: db}
}

func (r *AnalysisRepository) Create(ctx context.Context, payload *domain.AnalysisPayload) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(payload).Error; err != nil {
		return fmt.Errorf("failed to create analysis payload: %w", err)
	}

	return nil
}

func (r *AnalysisRepository) Latest(ctx context.Context) (domain.AnalysisPayload, error) {
	if err := ctx.Err(); err != nil {
		return domain.AnalysisPayload{}, fmt.Errorf("context error: %w", err)
	}

	var payload domain.AnalysisPayload
	err := r.DB.WithContext(ctx).Order("received_at DESC, id DESC").Take(&payload).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AnalysisPayload{}, fmt.Errorf("analysis payload: %w", domain.ErrNotFound)
		}
		return domain.AnalysisPayload{}, fmt.Errorf("failed to find analysis payload: %w", err)
	}

	return payload, nil
}
