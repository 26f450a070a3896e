package operations

import (
	"autoOpsAI/domain"
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"
)

var errStore = errors.New("store unavailable")

// memStore backs every repository interface with maps so service tests can
// inspect state after each call.
type memStore struct {
	mu        sync.Mutex
	customers map[string]domain.Customer
	products  map[string]domain.Product
	orders    []domain.Order
	actions   map[string]domain.Action
	workflows []domain.Workflow
	analysis  []domain.AnalysisPayload
	config    *domain.IntelligenceConfig

	failCustomers bool
	createdBatch  int
	// findDelay stalls product reads so concurrent callers interleave.
	findDelay time.Duration
}

func newMemStore() *memStore {
	return &memStore{
		customers: map[string]domain.Customer{},
		products:  map[string]domain.Product{},
		actions:   map[string]domain.Action{},
	}
}

func (m *memStore) repositories() Repositories {
	return Repositories{
		Customers: customerRepo{m},
		Products:  productRepo{m},
		Orders:    orderRepo{m},
		Actions:   actionRepo{m},
		Workflows: workflowRepo{m},
		Analysis:  analysisRepo{m},
		Config:    configRepo{m},
	}
}

type customerRepo struct{ m *memStore }

func (r customerRepo) FindAll(ctx context.Context) ([]domain.Customer, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failCustomers {
		return nil, errStore
	}
	out := make([]domain.Customer, 0, len(r.m.customers))
	for _, c := range r.m.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r customerRepo) FindByID(ctx context.Context, id string) (domain.Customer, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c, ok := r.m.customers[id]
	if !ok {
		return domain.Customer{}, fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

type productRepo struct{ m *memStore }

func (r productRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]domain.Product, 0, len(r.m.products))
	for _, p := range r.m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r productRepo) FindByID(ctx context.Context, id string) (domain.Product, error) {
	r.m.mu.Lock()
	delay := r.m.findDelay
	r.m.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}

	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

type orderRepo struct{ m *memStore }

func (r orderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return append([]domain.Order(nil), r.m.orders...), nil
}

func (r orderRepo) Record(ctx context.Context, o *domain.Order) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c, ok := r.m.customers[o.CustomerID]
	if !ok {
		return fmt.Errorf("customer %s: %w", o.CustomerID, domain.ErrNotFound)
	}
	p, ok := r.m.products[o.ProductID]
	if !ok {
		return fmt.Errorf("product %s: %w", o.ProductID, domain.ErrNotFound)
	}

	qty := float64(o.Quantity)
	c.LTV += o.Profit
	if o.CreatedAt.After(c.LastPurchase) {
		c.LastPurchase = o.CreatedAt
	}
	p.StockQuantity = math.Max(0, p.StockQuantity-qty)
	p.SalesVelocity += qty

	r.m.orders = append(r.m.orders, *o)
	r.m.customers[c.ID] = c
	r.m.products[p.ID] = p
	return nil
}

type actionRepo struct{ m *memStore }

func (r actionRepo) FindAll(ctx context.Context) ([]domain.Action, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]domain.Action, 0, len(r.m.actions))
	for _, a := range r.m.actions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r actionRepo) FindByID(ctx context.Context, id string) (domain.Action, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	a, ok := r.m.actions[id]
	if !ok {
		return domain.Action{}, fmt.Errorf("action %s: %w", id, domain.ErrNotFound)
	}
	return a, nil
}

func (r actionRepo) CreateBatch(ctx context.Context, actions []domain.Action) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, a := range actions {
		if _, ok := r.m.actions[a.ID]; ok {
			return fmt.Errorf("duplicate action %s", a.ID)
		}
		r.m.actions[a.ID] = a
	}
	r.m.createdBatch++
	return nil
}

func (r actionRepo) Update(ctx context.Context, a *domain.Action) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.actions[a.ID]; !ok {
		return domain.ErrNotFound
	}
	r.m.actions[a.ID] = *a
	return nil
}

type workflowRepo struct{ m *memStore }

func (r workflowRepo) FindAll(ctx context.Context) ([]domain.Workflow, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return append([]domain.Workflow(nil), r.m.workflows...), nil
}

func (r workflowRepo) Create(ctx context.Context, wf *domain.Workflow) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.workflows = append(r.m.workflows, *wf)
	return nil
}

func (r workflowRepo) SetActive(ctx context.Context, id string, active *bool) (domain.Workflow, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.workflows {
		if r.m.workflows[i].ID != id {
			continue
		}
		if active != nil {
			r.m.workflows[i].IsActive = *active
		} else {
			r.m.workflows[i].IsActive = !r.m.workflows[i].IsActive
		}
		return r.m.workflows[i], nil
	}
	return domain.Workflow{}, fmt.Errorf("workflow %s: %w", id, domain.ErrNotFound)
}

type analysisRepo struct{ m *memStore }

func (r analysisRepo) Create(ctx context.Context, p *domain.AnalysisPayload) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p.ID = uint(len(r.m.analysis) + 1)
	r.m.analysis = append(r.m.analysis, *p)
	return nil
}

func (r analysisRepo) Latest(ctx context.Context) (domain.AnalysisPayload, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if len(r.m.analysis) == 0 {
		return domain.AnalysisPayload{}, domain.ErrNotFound
	}
	return r.m.analysis[len(r.m.analysis)-1], nil
}

type configRepo struct{ m *memStore }

func (r configRepo) GetConfig(ctx context.Context, scope string) (domain.IntelligenceConfig, bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.config == nil || r.m.config.Scope != scope {
		return domain.IntelligenceConfig{}, false, nil
	}
	return *r.m.config, true, nil
}

func (r configRepo) UpsertConfig(ctx context.Context, cfg domain.IntelligenceConfig) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.config = &cfg
	return nil
}

type memCache struct {
	mu          sync.Mutex
	insights    []domain.Insight
	hasInsights bool
	metrics     domain.SystemMetrics
	hasMetrics  bool
	invalidated int
}

func (c *memCache) StoreInsights(ctx context.Context, insights []domain.Insight, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.insights, c.hasInsights = insights, true
	return nil
}

func (c *memCache) Insights(ctx context.Context) ([]domain.Insight, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.insights, c.hasInsights, nil
}

func (c *memCache) StoreMetrics(ctx context.Context, m domain.SystemMetrics, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metrics, c.hasMetrics = m, true
	return nil
}

func (c *memCache) Metrics(ctx context.Context) (domain.SystemMetrics, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.metrics, c.hasMetrics, nil
}

func (c *memCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hasInsights, c.hasMetrics = false, false
	c.invalidated++
	return nil
}

type heldLocker struct{}

func (heldLocker) Lock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	return nil, domain.ErrRefreshInProgress
}

type countingLocker struct {
	locks, unlocks int
}

func (l *countingLocker) Lock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	l.locks++
	return func(context.Context) error {
		l.unlocks++
		return nil
	}, nil
}
