//go:build property
// +build property

package intelligence

import (
	"autoOpsAI/domain"
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestChurnRiskBounded verifies churn risk stays within [0, 100].
// Property: 0 <= ChurnRisk(c).Risk <= 100 for any customer
func TestChurnRiskBounded(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("churn risk is bounded", prop.ForAll(
		func(engagement, frequency, ltv float64, orderCount, idleDays int) bool {
			c := domain.Customer{
				ID:                "c",
				EngagementScore:   engagement,
				PurchaseFrequency: frequency,
				LTV:               ltv,
				LastPurchase:      testNow.AddDate(0, 0, -idleDays),
			}
			a := ChurnRisk(DefaultConfig(), c, make([]domain.Order, orderCount), testNow)
			return a.Risk >= 0 && a.Risk <= 100
		},
		gen.Float64Range(-1e9, 1e9),
		gen.Float64Range(-100, 100),
		gen.Float64(),
		gen.IntRange(0, 200),
		gen.IntRange(-365, 3650),
	))

	properties.TestingRun(t)
}

// TestInventoryRiskBounded verifies inventory risk and gap stay well formed.
// Property: risk in [0, 100], gap >= 0, and no demand means the fallback result
func TestInventoryRiskBounded(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	cfg := DefaultConfig()

	properties.Property("inventory risk is bounded", prop.ForAll(
		func(stock float64, quantities []int) bool {
			orders := make([]domain.Order, 0, len(quantities))
			for _, q := range quantities {
				orders = append(orders, domain.Order{ProductID: "p", Quantity: q})
			}
			a := InventoryRisk(cfg, domain.Product{ID: "p", StockQuantity: stock}, orders, testNow)

			if a.Risk < 0 || a.Risk > 100 || a.DemandGap < 0 || math.IsNaN(a.DemandGap) {
				return false
			}
			if a.StockoutDate.Before(testNow) || a.StockoutDate.After(testNow.AddDate(0, 0, maxProjectionDays)) {
				return false
			}

			var sold int
			for _, q := range quantities {
				sold += q
			}
			if sold <= 0 {
				return a.Risk == 0 && a.DemandGap == 0 &&
					a.StockoutDate.Equal(testNow.AddDate(0, 0, cfg.FallbackHorizonDays))
			}
			return true
		},
		gen.Float64Range(-1e6, 1e6),
		gen.SliceOf(gen.IntRange(-50, 500)),
	))

	properties.TestingRun(t)
}

// TestLeadConfidenceBounded verifies lead confidence stays within [0, 100].
func TestLeadConfidenceBounded(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("lead confidence is bounded and value finite", prop.ForAll(
		func(deal, company, budget, recency float64, intent int) bool {
			v := ValueLead(DefaultConfig(), domain.Lead{
				DealSize:      deal,
				CompanySize:   company,
				IntentSignals: intent,
				BudgetRange:   budget,
				RecencyScore:  recency,
			})
			return v.Confidence >= 0 && v.Confidence <= 100 && finite(v.Value) && len(v.Reasoning) >= 3
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e4, 1e5),
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-2, 2),
		gen.IntRange(-5, 50),
	))

	properties.TestingRun(t)
}

// TestGenerationDeterministic verifies a pass over the same snapshot and clock
// is reproducible and sorted.
func TestGenerationDeterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("insights and actions are stable and sorted", prop.ForAll(
		func(engagements []float64, stocks []float64) bool {
			customers := make([]domain.Customer, 0, len(engagements))
			for i, eng := range engagements {
				customers = append(customers, domain.Customer{
					ID:                string(rune('a' + i%26)),
					EngagementScore:   eng,
					PurchaseFrequency: 2,
					LTV:               float64(i) * 100,
				})
			}
			products := make([]domain.Product, 0, len(stocks))
			orders := make([]domain.Order, 0, len(stocks))
			for i, s := range stocks {
				id := string(rune('A' + i%26))
				products = append(products, domain.Product{ID: id, Price: 10, StockQuantity: s})
				orders = append(orders, domain.Order{ProductID: id, Quantity: 40, CreatedAt: testNow.Add(-time.Hour)})
			}

			e := NewEngine(DefaultConfig(), FixedClock(testNow))
			first := e.GenerateInsights(customers, products, orders)
			second := e.GenerateInsights(customers, products, orders)
			if len(first) != len(second) {
				return false
			}
			for i := range first {
				if first[i].ID != second[i].ID || first[i].Confidence != second[i].Confidence {
					return false
				}
				if i > 0 && first[i-1].Confidence < first[i].Confidence {
					return false
				}
			}

			actions := e.GenerateActions(first)
			for i := 1; i < len(actions); i++ {
				if actions[i-1].ExpectedImpact < actions[i].ExpectedImpact {
					return false
				}
			}
			return len(actions) == len(first)
		},
		gen.SliceOf(gen.Float64Range(0, 100)),
		gen.SliceOf(gen.Float64Range(0, 100)),
	))

	properties.TestingRun(t)
}
