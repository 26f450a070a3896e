package intelligence

import (
	"autoOpsAI/domain"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMetrics(t *testing.T) {
	customers := []domain.Customer{{ID: "c1"}, {ID: "c2"}}
	products := []domain.Product{{ID: "p1"}}
	orders := []domain.Order{
		{ID: "o1", Revenue: 0.1, Profit: 0.05},
		{ID: "o2", Revenue: 0.2, Profit: math.NaN()},
	}
	actions := []domain.Action{
		{ID: "a1", Status: domain.ActionExecuted, Confidence: 80},
		{ID: "a2", Status: domain.ActionPending, Confidence: 90},
	}
	workflows := []domain.Workflow{
		{ID: "w1", IsActive: true},
		{ID: "w2", IsActive: false},
		{ID: "w3", IsActive: true},
	}

	got := newTestEngine().ComputeMetrics(customers, products, orders, actions, workflows)

	assert.Equal(t, domain.SystemMetrics{
		TotalCustomers:  2,
		TotalProducts:   1,
		TotalRevenue:    0.3,
		TotalProfit:     0.05,
		ActiveWorkflows: 2,
		PendingActions:  1,
		ExecutedActions: 1,
		SystemHealth:    82, // 85 * 0.9 + 0.5 * 10
		TimeSavedHours:  2,
		ConfidenceScore: 85,
		LastUpdated:     testNow,
	}, got)
}

func TestComputeMetrics_NoActions(t *testing.T) {
	got := newTestEngine().ComputeMetrics(nil, nil, nil, nil, nil)

	assert.Equal(t, 0, got.SystemHealth)
	assert.Equal(t, 0, got.ConfidenceScore)
	assert.Equal(t, float64(0), got.TimeSavedHours)
	assert.Equal(t, float64(0), got.TotalRevenue)
}

func TestComputeMetrics_RejectedAndRolledBackCountTowardAverage(t *testing.T) {
	actions := []domain.Action{
		{Status: domain.ActionRejected, Confidence: 100},
		{Status: domain.ActionRolledBack, Confidence: 100},
		{Status: domain.ActionExecuted, Confidence: 100},
		{Status: domain.ActionExecuted, Confidence: 100},
	}

	got := newTestEngine().ComputeMetrics(nil, nil, nil, actions, nil)

	assert.Equal(t, 2, got.ExecutedActions)
	assert.Equal(t, 0, got.PendingActions)
	assert.Equal(t, 95, got.SystemHealth) // 90 + 5
	assert.Equal(t, float64(4), got.TimeSavedHours)
}

func TestComputeMetrics_HealthIsCapped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HealthConfidenceWeight = 2
	e := NewEngine(cfg, FixedClock(testNow))

	got := e.ComputeMetrics(nil, nil, nil, []domain.Action{{Status: domain.ActionExecuted, Confidence: 90}}, nil)

	assert.Equal(t, 100, got.SystemHealth)
}
