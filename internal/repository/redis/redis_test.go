package redis

import (
	"autoOpsAI/domain"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/bsm/redislock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRepository_Insights(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewCacheRepository(db)
	ctx := context.Background()

	insights := []domain.Insight{{ID: "churn_risk_cust_1", Type: domain.InsightChurnRisk, Confidence: 95}}
	data, err := json.Marshal(insights)
	require.NoError(t, err)

	mock.ExpectSet(insightsKey, string(data), 5*time.Minute).SetVal("OK")
	require.NoError(t, repo.StoreInsights(ctx, insights, 5*time.Minute))

	mock.ExpectGet(insightsKey).SetVal(string(data))
	got, ok, err := repo.Insights(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "churn_risk_cust_1", got[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheRepository_Miss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewCacheRepository(db)

	mock.ExpectGet(insightsKey).RedisNil()
	got, ok, err := repo.Insights(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)

	mock.ExpectGet(metricsKey).RedisNil()
	_, ok, err = repo.Metrics(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheRepository_EmptyInsightsStayNonNil(t *testing.T) {
	db, mock := redismock.NewClientMock()

	mock.ExpectGet(insightsKey).SetVal("[]")
	got, ok, err := NewCacheRepository(db).Insights(context.Background())

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCacheRepository_Metrics(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewCacheRepository(db)
	ctx := context.Background()

	m := domain.SystemMetrics{TotalCustomers: 5, SystemHealth: 82, TotalRevenue: 27987}
	data, err := json.Marshal(m)
	require.NoError(t, err)

	mock.ExpectSet(metricsKey, string(data), time.Minute).SetVal("OK")
	require.NoError(t, repo.StoreMetrics(ctx, m, time.Minute))

	mock.ExpectGet(metricsKey).SetVal(string(data))
	got, ok, err := repo.Metrics(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, m, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheRepository_Errors(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewCacheRepository(db)
	ctx := context.Background()

	mock.ExpectGet(metricsKey).SetErr(errors.New("connection refused"))
	_, ok, err := repo.Metrics(ctx)
	assert.Error(t, err)
	assert.False(t, ok)

	mock.ExpectGet(insightsKey).SetVal("{not json")
	_, ok, err = repo.Insights(ctx)
	assert.Error(t, err)
	assert.False(t, ok)

	mock.ExpectDel(insightsKey, metricsKey).SetErr(errors.New("connection refused"))
	assert.Error(t, repo.Invalidate(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheRepository_Invalidate(t *testing.T) {
	db, mock := redismock.NewClientMock()

	mock.ExpectDel(insightsKey, metricsKey).SetVal(2)
	require.NoError(t, NewCacheRepository(db).Invalidate(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}

type stubObtainer struct {
	err error
	key string
	ttl time.Duration
}

func (s *stubObtainer) Obtain(_ context.Context, key string, ttl time.Duration, _ *redislock.Options) (*redislock.Lock, error) {
	s.key, s.ttl = key, ttl
	return nil, s.err
}

func TestLockRepository_Held(t *testing.T) {
	stub := &stubObtainer{err: redislock.ErrNotObtained}
	repo := &LockRepository{locker: stub}

	unlock, err := repo.Lock(context.Background(), "intelligence:refresh", 30*time.Second)

	assert.ErrorIs(t, err, domain.ErrRefreshInProgress)
	assert.Nil(t, unlock)
	assert.Equal(t, "lock:intelligence:refresh", stub.key)
	assert.Equal(t, 30*time.Second, stub.ttl)
}

func TestLockRepository_BackendError(t *testing.T) {
	repo := &LockRepository{locker: &stubObtainer{err: errors.New("i/o timeout")}}

	_, err := repo.Lock(context.Background(), "intelligence:refresh", time.Second)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrRefreshInProgress)
}
