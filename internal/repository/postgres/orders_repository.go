package postgres

import (
	"autoOpsAI/business/operations"
	"autoOpsAI/domain"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

var _ operations.OrderRepository = (*OrdersRepository)(nil)

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

func (r *OrdersRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var orders []domain.Order
	if err := r.DB.WithContext(ctx).Order("created_at, id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

// Record inserts the order and applies its deltas to the customer and
// product rows in one transaction. The updates are computed in SQL so
// concurrent orders for the same product never overwrite each other.
func (r *OrdersRepository) Record(ctx context.Context, order *domain.Order) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	qty := float64(order.Quantity)

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		res := tx.Model(&domain.Customer{}).Where("id = ?", order.CustomerID).Updates(map[string]interface{}{
			"ltv":           gorm.Expr("ltv + ?", order.Profit),
			"last_purchase": gorm.Expr("GREATEST(last_purchase, ?)", order.CreatedAt),
		})
		if res.Error != nil {
			return fmt.Errorf("failed to update customer: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("customer %s: %w", order.CustomerID, domain.ErrNotFound)
		}

		res = tx.Model(&domain.Product{}).Where("id = ?", order.ProductID).Updates(map[string]interface{}{
			"stock_quantity": gorm.Expr("GREATEST(stock_quantity - ?, 0)", qty),
			"sales_velocity": gorm.Expr("sales_velocity + ?", qty),
		})
		if res.Error != nil {
			return fmt.Errorf("failed to update product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product %s: %w", order.ProductID, domain.ErrNotFound)
		}

		return nil
	})
}
