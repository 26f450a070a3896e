package redis

import (
	"autoOpsAI/business/operations"
	"autoOpsAI/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	insightsKey = "intelligence:insights"
	metricsKey  = "intelligence:metrics"
)

// CacheRepository keeps the last generation pass as JSON blobs.
type CacheRepository struct {
	client *redis.Client
}

var _ operations.Cache = (*CacheRepository)(nil)

func NewCacheRepository(client *redis.Client) *CacheRepository {
	return &CacheRepository{
		client: client,
	}
}

func (r *CacheRepository) StoreInsights(ctx context.Context, insights []domain.Insight, ttl time.Duration) error {
	return r.store(ctx, insightsKey, insights, ttl)
}

func (r *CacheRepository) Insights(ctx context.Context) ([]domain.Insight, bool, error) {
	var insights []domain.Insight
	ok, err := r.load(ctx, insightsKey, &insights)
	if err != nil || !ok {
		return nil, false, err
	}
	if insights == nil {
		insights = []domain.Insight{}
	}
	return insights, true, nil
}

func (r *CacheRepository) StoreMetrics(ctx context.Context, metrics domain.SystemMetrics, ttl time.Duration) error {
	return r.store(ctx, metricsKey, metrics, ttl)
}

func (r *CacheRepository) Metrics(ctx context.Context) (domain.SystemMetrics, bool, error) {
	var metrics domain.SystemMetrics
	ok, err := r.load(ctx, metricsKey, &metrics)
	if err != nil || !ok {
		return domain.SystemMetrics{}, false, err
	}
	return metrics, true, nil
}

func (r *CacheRepository) Invalidate(ctx context.Context) error {
	if err := r.client.Del(ctx, insightsKey, metricsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}

func (r *CacheRepository) store(ctx context.Context, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, string(data), ttl).Err(); err != nil {
		return fmt.Errorf("failed to store %s in Redis: %w", key, err)
	}
	return nil
}

func (r *CacheRepository) load(ctx context.Context, key string, v any) (bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s from Redis: %w", key, err)
	}

	if err := json.Unmarshal([]byte(val), v); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}
