// Package bootstrap assembles the operations service from loaded config.
// The HTTP server and the CLI share it.
package bootstrap

import (
	"autoOpsAI/business/intelligence"
	"autoOpsAI/business/operations"
	"autoOpsAI/domain"
	"autoOpsAI/internal/repository/postgres"
	"autoOpsAI/internal/repository/redis"
	"autoOpsAI/pkg/config"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// EngineConfig layers env overrides on the engine defaults. Zero values
// keep the default.
func EngineConfig(cfg config.IntelligenceConfig) (intelligence.Config, error) {
	engineCfg := intelligence.DefaultConfig().WithOverrides(domain.IntelligenceConfig{
		BaselineLTV:           cfg.BaselineLTV,
		ChurnThreshold:        cfg.ChurnThreshold,
		InventoryThreshold:    cfg.InventoryThreshold,
		RetentionRecoveryRate: cfg.RetentionRecoveryRate,
		FallbackHorizonDays:   cfg.FallbackHorizonDays,
	})
	if cfg.CurrencySymbol != "" {
		engineCfg.CurrencySymbol = cfg.CurrencySymbol
	}

	if err := engineCfg.Validate(); err != nil {
		return intelligence.Config{}, fmt.Errorf("invalid intelligence config: %w", err)
	}
	return engineCfg, nil
}

func Repositories(db *gorm.DB) operations.Repositories {
	return operations.Repositories{
		Customers: postgres.NewCustomerRepository(db),
		Products:  postgres.NewProductRepository(db),
		Orders:    postgres.NewOrdersRepository(db),
		Actions:   postgres.NewActionRepository(db),
		Workflows: postgres.NewWorkflowRepository(db),
		Analysis:  postgres.NewAnalysisRepository(db),
		Config:    postgres.NewIntelligenceConfigRepository(db),
	}
}

// NewService wires the service over postgres, adding the Redis cache and
// refresh lock when rdb is non-nil.
func NewService(cfg *config.Config, db *gorm.DB, rdb *goredis.Client, opts ...operations.Option) (*operations.Service, error) {
	engineCfg, err := EngineConfig(cfg.Intelligence)
	if err != nil {
		return nil, err
	}

	all := []operations.Option{operations.WithCacheTTL(cfg.Intelligence.CacheTTL)}
	if rdb != nil {
		all = append(all,
			operations.WithCache(redis.NewCacheRepository(rdb)),
			operations.WithLocker(redis.NewLockRepository(rdb)),
		)
	}
	all = append(all, opts...)

	return operations.NewService(Repositories(db), engineCfg, all...), nil
}
