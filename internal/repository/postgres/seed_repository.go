package postgres

import (
	"autoOpsAI/domain"
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SeedRepository struct {
	DB *gorm.DB
}

func NewSeedRepository(db *gorm.DB) *SeedRepository {
	return &SeedRepository{DB: db}
}

// Seed inserts a demo dataset in one transaction. Rows whose id already
// exists are skipped, so seeding twice is harmless.
func (r *SeedRepository) Seed(
	ctx context.Context,
	customers []domain.Customer,
	products []domain.Product,
	orders []domain.Order,
	workflows []domain.Workflow,
) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		skip := func() *gorm.DB { return tx.Clauses(clause.OnConflict{DoNothing: true}) }

		if len(customers) > 0 {
			if err := skip().Create(&customers).Error; err != nil {
				return fmt.Errorf("failed to seed customers: %w", err)
			}
		}
		if len(products) > 0 {
			if err := skip().Create(&products).Error; err != nil {
				return fmt.Errorf("failed to seed products: %w", err)
			}
		}
		if len(orders) > 0 {
			if err := skip().Create(&orders).Error; err != nil {
				return fmt.Errorf("failed to seed orders: %w", err)
			}
		}
		if len(workflows) > 0 {
			if err := skip().Create(&workflows).Error; err != nil {
				return fmt.Errorf("failed to seed workflows: %w", err)
			}
		}
		return nil
	})
}
