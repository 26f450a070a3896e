package simulation

import (
	"autoOpsAI/business/operations"
	"autoOpsAI/domain"
	"autoOpsAI/pkg/logger"
	"context"
	"errors"
	"fmt"
	"math/rand"
)

const maxQuantity = 3

var ErrEmptyCatalogue = errors.New("no customers or products to simulate with")

type CustomerLister interface {
	FindAll(ctx context.Context) ([]domain.Customer, error)
}

type ProductLister interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type OrderRecorder interface {
	RecordOrder(ctx context.Context, in operations.OrderInput) (domain.Order, error)
}

// Simulator fabricates purchases against the stored catalogue. All
// randomness comes from one seeded source, so a fixed seed replays the
// same stream of picks.
type Simulator struct {
	rng       *rand.Rand
	customers CustomerLister
	products  ProductLister
	recorder  OrderRecorder
}

func NewSimulator(seed int64, customers CustomerLister, products ProductLister, recorder OrderRecorder) *Simulator {
	return &Simulator{
		rng:       rand.New(rand.NewSource(seed)),
		customers: customers,
		products:  products,
		recorder:  recorder,
	}
}

// Next draws the next purchase without recording it: one customer, one
// product, quantity in [1, 3].
func (s *Simulator) Next(customers []domain.Customer, products []domain.Product) (operations.OrderInput, error) {
	if len(customers) == 0 || len(products) == 0 {
		return operations.OrderInput{}, ErrEmptyCatalogue
	}

	p := products[s.rng.Intn(len(products))]
	c := customers[s.rng.Intn(len(customers))]

	return operations.OrderInput{
		CustomerID: c.ID,
		ProductID:  p.ID,
		Quantity:   s.rng.Intn(maxQuantity) + 1,
	}, nil
}

// Step records one simulated purchase.
func (s *Simulator) Step(ctx context.Context) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to load customers: %w", err)
	}
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to load products: %w", err)
	}

	in, err := s.Next(customers, products)
	if err != nil {
		return domain.Order{}, err
	}

	order, err := s.recorder.RecordOrder(ctx, in)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to record simulated order: %w", err)
	}

	logger.Debug("simulated order",
		"order_id", order.ID,
		"customer_id", order.CustomerID,
		"product_id", order.ProductID,
		"quantity", order.Quantity,
	)
	return order, nil
}

// SequentialIDs returns an order id source yielding prefix_1, prefix_2, ...
// It is not safe for concurrent use.
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s_%d", prefix, n)
	}
}
