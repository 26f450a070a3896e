package operations

import (
	"autoOpsAI/business/intelligence"
	"autoOpsAI/domain"
	"autoOpsAI/pkg/logger"
	"context"
	"fmt"
	"time"
)

const (
	ConfigScope = "default"

	refreshLockKey = "intelligence:refresh"
	refreshLockTTL = 30 * time.Second

	defaultCacheTTL = 5 * time.Minute
)

// Service is the caller side of the intelligence engine: it loads
// snapshots, runs generation passes and owns every state change the engine
// itself never makes.
type Service struct {
	repos      Repositories
	cache      Cache
	locker     Locker
	clock      intelligence.Clock
	defaultCfg intelligence.Config
	cacheTTL   time.Duration
	newID      func() string
}

type Option func(*Service)

func WithCache(c Cache) Option {
	return func(s *Service) { s.cache = c }
}

func WithLocker(l Locker) Option {
	return func(s *Service) { s.locker = l }
}

func WithClock(c intelligence.Clock) Option {
	return func(s *Service) { s.clock = c }
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) { s.cacheTTL = ttl }
}

// WithIDGenerator replaces the order id source (uuid v4 by default).
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

func NewService(repos Repositories, defaultCfg intelligence.Config, opts ...Option) *Service {
	s := &Service{
		repos:      repos,
		clock:      intelligence.SystemClock{},
		defaultCfg: defaultCfg,
		cacheTTL:   defaultCacheTTL,
		newID:      newOrderID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the effective engine config: defaults with the persisted
// override row layered on top.
func (s *Service) Config(ctx context.Context) (intelligence.Config, error) {
	if err := ctx.Err(); err != nil {
		return intelligence.Config{}, fmt.Errorf("context error: %w", err)
	}
	return s.loadConfig(ctx), nil
}

// UpdateConfig merges the request into the stored override row, validates
// the result and persists it, then drops cached results computed under the
// old config. Fields the request leaves zero keep their stored value, and
// fields never overridden keep following the defaults.
func (s *Service) UpdateConfig(ctx context.Context, overrides domain.IntelligenceConfig) (intelligence.Config, error) {
	if err := ctx.Err(); err != nil {
		return intelligence.Config{}, fmt.Errorf("context error: %w", err)
	}
	if s.repos.Config == nil {
		return intelligence.Config{}, fmt.Errorf("config store not configured: %w", domain.ErrInvalidInput)
	}

	stored, _, err := s.repos.Config.GetConfig(ctx, ConfigScope)
	if err != nil {
		return intelligence.Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	row := stored.Merge(overrides)
	row.Scope = ConfigScope

	cfg := s.defaultCfg.WithOverrides(row)
	if err := cfg.Validate(); err != nil {
		return intelligence.Config{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if err := s.repos.Config.UpsertConfig(ctx, row); err != nil {
		return intelligence.Config{}, fmt.Errorf("failed to save config: %w", err)
	}

	s.invalidate(ctx)
	logger.Info("intelligence config updated",
		"churn_threshold", cfg.ChurnThreshold,
		"inventory_threshold", cfg.InventoryThreshold,
	)

	return cfg, nil
}

func (s *Service) loadConfig(ctx context.Context) intelligence.Config {
	if s.repos.Config == nil {
		return s.defaultCfg
	}

	row, ok, err := s.repos.Config.GetConfig(ctx, ConfigScope)
	if err != nil {
		logger.Warn("failed to load intelligence config, using defaults", "error", err)
		return s.defaultCfg
	}
	if !ok {
		return s.defaultCfg
	}

	cfg := s.defaultCfg.WithOverrides(row)
	if err := cfg.Validate(); err != nil {
		logger.Warn("stored intelligence config is invalid, using defaults", "error", err)
		return s.defaultCfg
	}
	return cfg
}

func (s *Service) engine(ctx context.Context) *intelligence.Engine {
	return intelligence.NewEngine(s.loadConfig(ctx), s.clock)
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Warn("failed to invalidate intelligence cache", "error", err)
	}
}
