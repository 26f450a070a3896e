package operations

import (
	"autoOpsAI/domain"
	"context"
	"time"
)

// ---- Repository interfaces ----

type CustomerRepository interface {
	FindAll(ctx context.Context) ([]domain.Customer, error)
	FindByID(ctx context.Context, id string) (domain.Customer, error)
}

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (domain.Product, error)
}

type OrderRepository interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
	// Record appends the order and applies its quantity and profit to the
	// stored customer and product rows as deltas, all or nothing. Concurrent
	// calls for the same product must not lose updates.
	Record(ctx context.Context, order *domain.Order) error
}

type ActionRepository interface {
	FindAll(ctx context.Context) ([]domain.Action, error)
	FindByID(ctx context.Context, id string) (domain.Action, error)
	CreateBatch(ctx context.Context, actions []domain.Action) error
	Update(ctx context.Context, action *domain.Action) error
}

type WorkflowRepository interface {
	FindAll(ctx context.Context) ([]domain.Workflow, error)
	Create(ctx context.Context, workflow *domain.Workflow) error
	// SetActive sets is_active to *active, or flips it when active is nil,
	// and returns the stored row.
	SetActive(ctx context.Context, id string, active *bool) (domain.Workflow, error)
}

type AnalysisRepository interface {
	Create(ctx context.Context, payload *domain.AnalysisPayload) error
	Latest(ctx context.Context) (domain.AnalysisPayload, error)
}

type ConfigRepository interface {
	GetConfig(ctx context.Context, scope string) (domain.IntelligenceConfig, bool, error)
	UpsertConfig(ctx context.Context, cfg domain.IntelligenceConfig) error
}

// Cache holds the output of the last generation pass. A miss is reported as
// ok == false with a nil error.
type Cache interface {
	StoreInsights(ctx context.Context, insights []domain.Insight, ttl time.Duration) error
	Insights(ctx context.Context) ([]domain.Insight, bool, error)
	StoreMetrics(ctx context.Context, metrics domain.SystemMetrics, ttl time.Duration) error
	Metrics(ctx context.Context) (domain.SystemMetrics, bool, error)
	Invalidate(ctx context.Context) error
}

// Locker serializes generation passes across replicas. Lock returns
// domain.ErrRefreshInProgress when another holder has the key.
type Locker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (unlock func(context.Context) error, err error)
}

type Repositories struct {
	Customers CustomerRepository
	Products  ProductRepository
	Orders    OrderRepository
	Actions   ActionRepository
	Workflows WorkflowRepository
	Analysis  AnalysisRepository
	Config    ConfigRepository
}
