package intelligence

import (
	"autoOpsAI/domain"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(d int) time.Time {
	return testNow.AddDate(0, 0, -d)
}

func ordersFor(customerID, productID string, quantities ...int) []domain.Order {
	out := make([]domain.Order, 0, len(quantities))
	for i, q := range quantities {
		out = append(out, domain.Order{
			ID:         customerID + productID + string(rune('a'+i)),
			CustomerID: customerID,
			ProductID:  productID,
			Quantity:   q,
			CreatedAt:  daysAgo(i + 1),
		})
	}
	return out
}

func TestChurnRisk(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		customer domain.Customer
		orders   int
		want     int
	}{
		{
			name: "disengaged low value customer",
			customer: domain.Customer{
				ID: "c1", EngagementScore: 20, PurchaseFrequency: 4, LTV: 1000,
				LastPurchase: daysAgo(40),
			},
			orders: 1,
			want:   86, // 32 + 28.125 + 16 + 10
		},
		{
			name: "healthy customer",
			customer: domain.Customer{
				ID: "c2", EngagementScore: 100, PurchaseFrequency: 1, LTV: 5000,
				LastPurchase: testNow,
			},
			orders: 4,
			want:   0,
		},
		{
			name: "zero baseline frequency contributes nothing",
			customer: domain.Customer{
				ID: "c3", EngagementScore: 50, PurchaseFrequency: 0, LTV: 5000,
				LastPurchase: testNow,
			},
			want: 20,
		},
		{
			name:     "no purchase on record scores full recency",
			customer: domain.Customer{ID: "c4", EngagementScore: 0, PurchaseFrequency: 2},
			want:     100,
		},
		{
			name: "future purchase date counts as today",
			customer: domain.Customer{
				ID: "c5", EngagementScore: 100, PurchaseFrequency: 1, LTV: 9000,
				LastPurchase: testNow.Add(72 * time.Hour),
			},
			orders: 4,
			want:   0,
		},
		{
			name: "trailing frequency above baseline is not a drop",
			customer: domain.Customer{
				ID: "c6", EngagementScore: 60, PurchaseFrequency: 0.5, LTV: 2500,
				LastPurchase: daysAgo(15),
			},
			orders: 8,
			want:   31, // 16 + 0 + 10 + 5
		},
		{
			name: "non-finite inputs are neutralised",
			customer: domain.Customer{
				ID: "c7", EngagementScore: math.NaN(), PurchaseFrequency: math.Inf(1), LTV: math.Inf(-1),
				LastPurchase: testNow,
			},
			want: 60, // NaN engagement clamps to 0, Inf baseline drops out, -Inf LTV reads as 0
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChurnRisk(cfg, tt.customer, ordersFor(tt.customer.ID, "p", make([]int, tt.orders)...), testNow)
			assert.Equal(t, tt.want, got.Risk)
			assert.GreaterOrEqual(t, got.Risk, 0)
			assert.LessOrEqual(t, got.Risk, 100)
		})
	}
}

func TestChurnRisk_Signals(t *testing.T) {
	c := domain.Customer{ID: "c1", EngagementScore: 20, PurchaseFrequency: 4, LTV: 1000, LastPurchase: daysAgo(40)}

	got := ChurnRisk(DefaultConfig(), c, ordersFor("c1", "p", 1), testNow)

	assert.InDelta(t, 0.25, got.TrailingFrequency, 1e-9)
	assert.InDelta(t, 93.75, got.FrequencyDropPct, 1e-9)
	assert.InDelta(t, 80, got.LTVShortfallPct, 1e-9)
	assert.InDelta(t, 40, got.DaysSinceLastPurchase, 1e-9)
}

func TestInventoryRisk(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("one week of stock left", func(t *testing.T) {
		p := domain.Product{ID: "p1", StockQuantity: 10, Price: 100}
		got := InventoryRisk(cfg, p, ordersFor("c", "p1", 10, 10, 10, 10), testNow)

		assert.Equal(t, 77, got.Risk) // (30 - 7) / 30
		assert.InDelta(t, 10, got.WeeklyDemand, 1e-9)
		assert.InDelta(t, 7, got.DaysOfStock, 1e-9)
		assert.Equal(t, float64(8), got.DemandGap) // round(10 - 2.5)
		assert.Equal(t, testNow.AddDate(0, 0, 7), got.StockoutDate)
	})

	t.Run("no demand short-circuits", func(t *testing.T) {
		p := domain.Product{ID: "p2", StockQuantity: 10}
		got := InventoryRisk(cfg, p, nil, testNow)

		assert.Equal(t, 0, got.Risk)
		assert.Equal(t, float64(0), got.DemandGap)
		assert.Equal(t, testNow.AddDate(0, 0, 365), got.StockoutDate)
	})

	t.Run("negative demand short-circuits", func(t *testing.T) {
		p := domain.Product{ID: "p3", StockQuantity: 10}
		got := InventoryRisk(cfg, p, ordersFor("c", "p3", -5), testNow)

		assert.Equal(t, InventoryAssessment{StockoutDate: testNow.AddDate(0, 0, 365)}, got)
	})

	t.Run("orders for other products are ignored", func(t *testing.T) {
		p := domain.Product{ID: "p4", StockQuantity: 1}
		got := InventoryRisk(cfg, p, ordersFor("c", "other", 500), testNow)

		assert.Equal(t, 0, got.Risk)
	})

	t.Run("plenty of stock is zero risk", func(t *testing.T) {
		p := domain.Product{ID: "p5", StockQuantity: 1000}
		got := InventoryRisk(cfg, p, ordersFor("c", "p5", 4), testNow)

		assert.Equal(t, 0, got.Risk)
		assert.Equal(t, float64(0), got.DemandGap)
		assert.Equal(t, testNow.AddDate(0, 0, maxProjectionDays), got.StockoutDate)
		// the date is capped, the raw projection is not
		assert.Greater(t, got.DaysOfStock, float64(maxProjectionDays))
	})

	t.Run("out of stock is full risk", func(t *testing.T) {
		p := domain.Product{ID: "p6", StockQuantity: 0}
		got := InventoryRisk(cfg, p, ordersFor("c", "p6", 3, 5), testNow)

		assert.Equal(t, 100, got.Risk)
		assert.Equal(t, float64(2), got.DemandGap)
		assert.Equal(t, testNow, got.StockoutDate)
	})
}

func TestInventoryRisk_FallbackHorizonIsConfigurable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FallbackHorizonDays = 90

	got := InventoryRisk(cfg, domain.Product{ID: "p"}, nil, testNow)

	assert.Equal(t, testNow.AddDate(0, 0, 90), got.StockoutDate)
}
