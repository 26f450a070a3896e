package operations

import (
	"autoOpsAI/domain"
	"autoOpsAI/pkg/logger"
	"context"
	"fmt"

	"github.com/google/uuid"
)

// OrderInput is a purchase to ingest. Revenue and profit are derived from
// the product's current price and cost.
type OrderInput struct {
	CustomerID string
	ProductID  string
	Quantity   int
}

// RecordOrder appends an order and applies its effects on the customer and
// product, then runs a generation pass. Stock never drops below zero. The
// customer and product reads only price the order; the store applies the
// quantity and profit against its current rows.
func (s *Service) RecordOrder(ctx context.Context, in OrderInput) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}
	if in.CustomerID == "" || in.ProductID == "" {
		return domain.Order{}, fmt.Errorf("customer_id and product_id are required: %w", domain.ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return domain.Order{}, fmt.Errorf("quantity must be positive: %w", domain.ErrInvalidInput)
	}

	customer, err := s.repos.Customers.FindByID(ctx, in.CustomerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to find customer %s: %w", in.CustomerID, err)
	}
	product, err := s.repos.Products.FindByID(ctx, in.ProductID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to find product %s: %w", in.ProductID, err)
	}

	now := s.clock.Now()
	qty := float64(in.Quantity)

	order := domain.Order{
		ID:         s.newID(),
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Quantity:   in.Quantity,
		Revenue:    product.Price * qty,
		Profit:     (product.Price - product.Cost) * qty,
		Status:     domain.OrderStatusCompleted,
		CreatedAt:  now,
	}

	if err := s.repos.Orders.Record(ctx, &order); err != nil {
		logger.Error("failed to record order", "customer_id", customer.ID, "product_id", product.ID, "error", err)
		return domain.Order{}, fmt.Errorf("failed to record order: %w", err)
	}
	OrdersRecordedTotal.Inc()

	logger.Info("order recorded",
		"order_id", order.ID,
		"customer_id", customer.ID,
		"product_id", product.ID,
		"quantity", order.Quantity,
	)

	if _, err := s.Refresh(ctx); err != nil {
		// the order is stored; the next pass picks it up
		logger.Warn("refresh after order failed", "order_id", order.ID, "error", err)
		s.invalidate(ctx)
	}

	return order, nil
}

// Orders lists every stored order.
func (s *Service) Orders(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	orders, err := s.repos.Orders.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	return orders, nil
}

func newOrderID() string {
	return "order_" + uuid.NewString()
}
