package operations

import (
	"autoOpsAI/domain"
	"autoOpsAI/pkg/logger"
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// RefreshResult is the output of one generation pass.
type RefreshResult struct {
	Insights   []domain.Insight     `json:"insights"`
	NewActions []domain.Action      `json:"new_actions"`
	Metrics    domain.SystemMetrics `json:"metrics"`
}

type snapshot struct {
	customers []domain.Customer
	products  []domain.Product
	orders    []domain.Order
	actions   []domain.Action
	workflows []domain.Workflow
}

// Refresh runs insights, then actions, then metrics over a fresh snapshot.
// New actions are stored before metrics are computed so the roll-up sees
// them. Passes are serialized through the locker when one is configured.
func (s *Service) Refresh(ctx context.Context) (RefreshResult, error) {
	if err := ctx.Err(); err != nil {
		return RefreshResult{}, fmt.Errorf("context error: %w", err)
	}

	start := time.Now()
	defer func() {
		RefreshDuration.Observe(time.Since(start).Seconds())
	}()

	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, refreshLockKey, refreshLockTTL)
		if err != nil {
			if errors.Is(err, domain.ErrRefreshInProgress) {
				return RefreshResult{}, err
			}
			return RefreshResult{}, fmt.Errorf("failed to obtain refresh lock: %w", err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("failed to release refresh lock", "error", err)
			}
		}()
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return RefreshResult{}, err
	}

	engine := s.engine(ctx)

	insights := engine.GenerateInsights(snap.customers, snap.products, snap.orders)
	for _, in := range insights {
		InsightsGeneratedTotal.WithLabelValues(string(in.Type)).Inc()
	}

	fresh := newActions(engine.GenerateActions(insights), snap.actions)
	if len(fresh) > 0 {
		if err := s.repos.Actions.CreateBatch(ctx, fresh); err != nil {
			return RefreshResult{}, fmt.Errorf("failed to save actions: %w", err)
		}
		for _, a := range fresh {
			ActionsCreatedTotal.WithLabelValues(a.ActionType).Inc()
		}
	}

	allActions := make([]domain.Action, 0, len(snap.actions)+len(fresh))
	allActions = append(allActions, snap.actions...)
	allActions = append(allActions, fresh...)

	metrics := engine.ComputeMetrics(snap.customers, snap.products, snap.orders, allActions, snap.workflows)
	SystemHealth.Set(float64(metrics.SystemHealth))

	s.storeInsights(ctx, insights)
	s.storeMetrics(ctx, metrics)

	logger.Info("intelligence refresh finished",
		"insights", len(insights),
		"new_actions", len(fresh),
		"system_health", metrics.SystemHealth,
	)

	return RefreshResult{
		Insights:   insights,
		NewActions: fresh,
		Metrics:    metrics,
	}, nil
}

// Insights serves the cached insight list. A miss computes insights from the
// store without persisting actions or taking the refresh lock, so a read
// never changes state.
func (s *Service) Insights(ctx context.Context) ([]domain.Insight, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if s.cache != nil {
		insights, ok, err := s.cache.Insights(ctx)
		if err != nil {
			logger.Warn("failed to read cached insights", "error", err)
		}
		if ok {
			return insights, nil
		}
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	insights := s.engine(ctx).GenerateInsights(snap.customers, snap.products, snap.orders)
	s.storeInsights(ctx, insights)

	return insights, nil
}

// Metrics serves the cached roll-up, recomputing from the store on a miss.
// A recompute never generates actions.
func (s *Service) Metrics(ctx context.Context) (domain.SystemMetrics, error) {
	if err := ctx.Err(); err != nil {
		return domain.SystemMetrics{}, fmt.Errorf("context error: %w", err)
	}

	if s.cache != nil {
		m, ok, err := s.cache.Metrics(ctx)
		if err != nil {
			logger.Warn("failed to read cached metrics", "error", err)
		}
		if ok {
			return m, nil
		}
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return domain.SystemMetrics{}, err
	}

	m := s.engine(ctx).ComputeMetrics(snap.customers, snap.products, snap.orders, snap.actions, snap.workflows)
	SystemHealth.Set(float64(m.SystemHealth))
	s.storeMetrics(ctx, m)

	return m, nil
}

// loadSnapshot reads every collection concurrently. The engine gets copies
// it can treat as immutable for the whole pass.
func (s *Service) loadSnapshot(ctx context.Context) (snapshot, error) {
	var snap snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.customers, err = s.repos.Customers.FindAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to load customers: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		snap.products, err = s.repos.Products.FindAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		snap.orders, err = s.repos.Orders.FindAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to load orders: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		snap.actions, err = s.repos.Actions.FindAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to load actions: %w", err)
		}
		return nil
	})
	if s.repos.Workflows != nil {
		g.Go(func() (err error) {
			snap.workflows, err = s.repos.Workflows.FindAll(gctx)
			if err != nil {
				return fmt.Errorf("failed to load workflows: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("failed to load snapshot", "error", err)
		return snapshot{}, err
	}
	return snap, nil
}

// newActions drops generated actions whose id is already in the store, so
// a re-run never resets the status of an action someone acted on.
func newActions(generated, existing []domain.Action) []domain.Action {
	seen := make(map[string]struct{}, len(existing))
	for _, a := range existing {
		seen[a.ID] = struct{}{}
	}

	out := make([]domain.Action, 0, len(generated))
	for _, a := range generated {
		if _, ok := seen[a.ID]; ok {
			continue
		}
		seen[a.ID] = struct{}{}
		out = append(out, a)
	}
	return out
}

func (s *Service) storeInsights(ctx context.Context, insights []domain.Insight) {
	if s.cache == nil {
		return
	}
	if err := s.cache.StoreInsights(ctx, insights, s.cacheTTL); err != nil {
		logger.Warn("failed to cache insights", "error", err)
	}
}

func (s *Service) storeMetrics(ctx context.Context, m domain.SystemMetrics) {
	if s.cache == nil {
		return
	}
	if err := s.cache.StoreMetrics(ctx, m, s.cacheTTL); err != nil {
		logger.Warn("failed to cache metrics", "error", err)
	}
}
