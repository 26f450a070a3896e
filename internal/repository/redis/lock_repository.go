package redis

import (
	"autoOpsAI/business/operations"
	"autoOpsAI/domain"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

type obtainer interface {
	Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error)
}

// LockRepository hands out short-lived distributed locks so only one
// replica runs a generation pass at a time.
type LockRepository struct {
	locker obtainer
}

var _ operations.Locker = (*LockRepository)(nil)

func NewLockRepository(client *redis.Client) *LockRepository {
	return &LockRepository{
		locker: redislock.New(client),
	}
}

func (r *LockRepository) Lock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	lock, err := r.locker.Obtain(ctx, "lock:"+key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, domain.ErrRefreshInProgress
	}
	if err != nil {
		return nil, fmt.Errorf("failed to obtain lock %s: %w", key, err)
	}

	return func(ctx context.Context) error {
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return fmt.Errorf("failed to release lock %s: %w", key, err)
		}
		return nil
	}, nil
}
