package domain

import "time"

type InsightType string

const (
	InsightChurnRisk         InsightType = "churn_risk"
	InsightInventoryShortage InsightType = "inventory_shortage"
	InsightLeadValue         InsightType = "lead_value"
)

const (
	EntityCustomer = "customer"
	EntityProduct  = "product"
)

type InsightTrend struct {
	Current   int    `json:"current"`
	Previous  int    `json:"previous"`
	Direction string `json:"trend"`
}

// Insight is a ranked, explained observation produced by a generation pass.
// ExpiresAt is advisory; nothing in the engine drops expired insights.
type Insight struct {
	ID               string       `json:"id"`
	Type             InsightType  `json:"type"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Confidence       int          `json:"confidence"`
	BusinessImpact   float64      `json:"business_impact"`
	ReasonBreakdown  []string     `json:"reason_breakdown"`
	Trend            InsightTrend `json:"trend_data"`
	DecayFactor      float64      `json:"decay_factor"`
	ReorderQuantity  float64      `json:"reorder_quantity,omitempty"`
	TargetEntityID   string       `json:"target_entity_id"`
	TargetEntityType string       `json:"target_entity_type"`
	CreatedAt        time.Time    `json:"created_at"`
	ExpiresAt        time.Time    `json:"expires_at"`
}
