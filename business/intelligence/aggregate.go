package intelligence

import (
	"autoOpsAI/domain"
	"math"

	"github.com/shopspring/decimal"
)

// ComputeMetrics rolls the full snapshot into one SystemMetrics value. It
// keeps nothing between calls.
func (e *Engine) ComputeMetrics(
	customers []domain.Customer,
	products []domain.Product,
	orders []domain.Order,
	actions []domain.Action,
	workflows []domain.Workflow,
) domain.SystemMetrics {
	revenue := decimal.Zero
	profit := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(decimalOf(o.Revenue))
		profit = profit.Add(decimalOf(o.Profit))
	}

	var executed, pending, confidenceSum int
	for _, a := range actions {
		switch a.Status {
		case domain.ActionExecuted:
			executed++
		case domain.ActionPending:
			pending++
		}
		confidenceSum += a.Confidence
	}

	active := 0
	for _, w := range workflows {
		if w.IsActive {
			active++
		}
	}

	var avgConfidence, executedRatio float64
	if len(actions) > 0 {
		avgConfidence = float64(confidenceSum) / float64(len(actions))
		executedRatio = float64(executed) / float64(len(actions))
	}

	health := avgConfidence*e.cfg.HealthConfidenceWeight + executedRatio*e.cfg.HealthExecutionWeight

	return domain.SystemMetrics{
		TotalCustomers:  len(customers),
		TotalProducts:   len(products),
		TotalRevenue:    revenue.InexactFloat64(),
		TotalProfit:     profit.InexactFloat64(),
		ActiveWorkflows: active,
		PendingActions:  pending,
		ExecutedActions: executed,
		SystemHealth:    clampScore(health),
		TimeSavedHours:  float64(executed) * e.cfg.HoursSavedPerAction,
		ConfidenceScore: int(math.Round(avgConfidence)),
		LastUpdated:     e.clock.Now(),
	}
}

// decimalOf converts a float amount; NaN and ±Inf count as zero.
func decimalOf(x float64) decimal.Decimal {
	if !finite(x) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(x)
}
