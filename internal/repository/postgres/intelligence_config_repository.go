package postgres

import (
	"autoOpsAI/business/operations"
	"autoOpsAI/domain"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IntelligenceConfigRepository struct {
	DB *gorm.DB
}

var _ operations.ConfigRepository = (*IntelligenceConfigRepository)(nil)

func NewIntelligenceConfigRepository(db *gorm.DB) *IntelligenceConfigRepository {
	return &IntelligenceConfigRepository{DB: db}
}

func (r *IntelligenceConfigRepository) GetConfig(ctx context.Context, scope string) (domain.IntelligenceConfig, bool, error) {
	var cfg domain.IntelligenceConfig

	err := r.DB.WithContext(ctx).
		Where("scope = ?", scope).
		Take(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.IntelligenceConfig{}, false, nil
	}
	if err != nil {
		return domain.IntelligenceConfig{}, false, err
	}

	return cfg, true, nil
}

func (r *IntelligenceConfigRepository) UpsertConfig(ctx context.Context, cfg domain.IntelligenceConfig) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "scope"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"baseline_ltv",
				"churn_threshold",
				"inventory_threshold",
				"retention_recovery_rate",
				"fallback_horizon_days",
				"churn_priority_cutoff",
				"inventory_priority_cutoff",
				"hours_saved_per_action",
				"churn_ttl_hours",
				"inventory_ttl_hours",
				"updated_at",
			}),
		}).
		Create(&cfg).Error
}
