package intelligence

import (
	"autoOpsAI/domain"
	"fmt"
	"math"
	"sort"
	"time"
)

const trendUp = "up"

// InsightID is the stable identifier for an insight about one entity, so a
// re-run over the same snapshot yields the same ids.
func InsightID(t domain.InsightType, entityID string) string {
	return fmt.Sprintf("%s_%s", t, entityID)
}

// GenerateInsights scores every customer and product and returns the
// insights above threshold, highest confidence first. Equal confidences keep
// input order: customers before products, each in slice order. An entity id
// listed twice is scored once, from its first occurrence, so insight ids
// stay unique within a pass.
func (e *Engine) GenerateInsights(customers []domain.Customer, products []domain.Product, orders []domain.Order) []domain.Insight {
	now := e.clock.Now()
	byCustomer, byProduct := e.indexOrders(orders, now)

	insights := make([]domain.Insight, 0)

	seenCustomers := make(map[string]struct{}, len(customers))
	for _, c := range customers {
		if _, ok := seenCustomers[c.ID]; ok {
			continue
		}
		seenCustomers[c.ID] = struct{}{}

		a := ChurnRisk(e.cfg, c, byCustomer[c.ID], now)
		if a.Risk <= e.cfg.ChurnThreshold {
			continue
		}
		insights = append(insights, e.churnInsight(c, a, now))
	}

	seenProducts := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, ok := seenProducts[p.ID]; ok {
			continue
		}
		seenProducts[p.ID] = struct{}{}

		a := InventoryRisk(e.cfg, p, byProduct[p.ID], now)
		if a.Risk <= e.cfg.InventoryThreshold {
			continue
		}
		insights = append(insights, e.inventoryInsight(p, a, now))
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Confidence > insights[j].Confidence
	})

	return insights
}

// indexOrders splits orders per customer and per product, keeping only those
// inside each trailing window. Orders stamped after now are ignored.
func (e *Engine) indexOrders(orders []domain.Order, now time.Time) (map[string][]domain.Order, map[string][]domain.Order) {
	churnFrom := now.Add(-time.Duration(e.cfg.ObservationPeriods) * e.cfg.ChurnPeriod)
	inventoryFrom := now.AddDate(0, 0, -7*e.cfg.InventoryWeeks)

	byCustomer := make(map[string][]domain.Order)
	byProduct := make(map[string][]domain.Order)

	for _, o := range orders {
		if o.CreatedAt.After(now) {
			continue
		}
		if !o.CreatedAt.Before(churnFrom) {
			byCustomer[o.CustomerID] = append(byCustomer[o.CustomerID], o)
		}
		if !o.CreatedAt.Before(inventoryFrom) {
			byProduct[o.ProductID] = append(byProduct[o.ProductID], o)
		}
	}

	return byCustomer, byProduct
}

func (e *Engine) churnInsight(c domain.Customer, a ChurnAssessment, now time.Time) domain.Insight {
	p := newPrinter()
	ltv := math.Max(0, orZero(c.LTV))

	return domain.Insight{
		ID:             InsightID(domain.InsightChurnRisk, c.ID),
		Type:           domain.InsightChurnRisk,
		Title:          fmt.Sprintf("High Churn Risk: %s", displayName(c.Name, c.ID)),
		Description:    fmt.Sprintf("Customer shows %d%% churn risk due to engagement decline", a.Risk),
		Confidence:     minInt(e.cfg.ChurnConfidenceCap, a.Risk+e.cfg.ChurnConfidenceBoost),
		BusinessImpact: ltv * float64(a.Risk) / 100,
		ReasonBreakdown: []string{
			fmt.Sprintf("Engagement score: %s/100", quantity(p, a.EngagementScore)),
			fmt.Sprintf("Purchase frequency dropped by %d%%", int(math.Round(a.FrequencyDropPct))),
			fmt.Sprintf("LTV at risk: %s", money(p, e.cfg.CurrencySymbol, ltv)),
		},
		Trend: domain.InsightTrend{
			Current:   a.Risk,
			Previous:  maxInt(0, a.Risk-e.cfg.ChurnTrendOffset),
			Direction: trendUp,
		},
		DecayFactor:      1.0,
		TargetEntityID:   c.ID,
		TargetEntityType: domain.EntityCustomer,
		CreatedAt:        now,
		ExpiresAt:        now.Add(e.cfg.ChurnTTL),
	}
}

func (e *Engine) inventoryInsight(pr domain.Product, a InventoryAssessment, now time.Time) domain.Insight {
	p := newPrinter()
	price := math.Max(0, orZero(pr.Price))

	return domain.Insight{
		ID:             InsightID(domain.InsightInventoryShortage, pr.ID),
		Type:           domain.InsightInventoryShortage,
		Title:          fmt.Sprintf("Inventory Shortage Risk: %s", displayName(pr.Name, pr.ID)),
		Description:    fmt.Sprintf("Product may run out of stock by %s", a.StockoutDate.Format(time.DateOnly)),
		Confidence:     minInt(e.cfg.InventoryConfidenceCap, a.Risk+e.cfg.InventoryConfidenceBoost),
		BusinessImpact: a.DemandGap * price,
		ReasonBreakdown: []string{
			fmt.Sprintf("Current stock: %s units", quantity(p, math.Max(0, orZero(pr.StockQuantity)))),
			fmt.Sprintf("Weekly demand: %d units", int(math.Round(a.WeeklyDemand))),
			fmt.Sprintf("Stockout predicted in %d days", int(math.Round(a.DaysOfStock))),
		},
		Trend: domain.InsightTrend{
			Current:   a.Risk,
			Previous:  maxInt(0, a.Risk-e.cfg.InventoryTrendOffset),
			Direction: trendUp,
		},
		DecayFactor:      1.0,
		ReorderQuantity:  a.DemandGap,
		TargetEntityID:   pr.ID,
		TargetEntityType: domain.EntityProduct,
		CreatedAt:        now,
		ExpiresAt:        now.Add(e.cfg.InventoryTTL),
	}
}

func displayName(name, id string) string {
	if name == "" {
		return id
	}
	return name
}
