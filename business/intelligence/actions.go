package intelligence

import (
	"autoOpsAI/domain"
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	actionKindRetention = "retention"
	actionKindInventory = "inventory"
)

const retentionEmail = `Dear valued customer,

We've noticed your recent decrease in engagement and want to ensure you're getting the most value from our service. As one of our valued customers, we'd like to offer you an exclusive 20% discount on your next renewal.

Your success is important to us. Can we schedule a call to discuss how we can better serve your needs?

Best regards,
Customer Success Team`

// ActionID is stable per (insight, action kind); callers dedupe on it.
func ActionID(kind, insightID string) string {
	return fmt.Sprintf("action_%s_%s", kind, insightID)
}

// GenerateActions maps each insight to exactly one recommended action and
// returns them highest expected impact first. Insight types without a
// playbook produce nothing. Every action starts pending.
func (e *Engine) GenerateActions(insights []domain.Insight) []domain.Action {
	now := e.clock.Now()
	actions := make([]domain.Action, 0, len(insights))

	for _, in := range insights {
		switch in.Type {
		case domain.InsightChurnRisk:
			actions = append(actions, e.retentionAction(in, now))
		case domain.InsightInventoryShortage:
			actions = append(actions, e.purchaseOrderAction(in, now))
		}
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].ExpectedImpact > actions[j].ExpectedImpact
	})

	return actions
}

func (e *Engine) retentionAction(in domain.Insight, now time.Time) domain.Action {
	impact := orZero(in.BusinessImpact)
	priority := domain.PriorityMedium
	if impact > e.cfg.ChurnPriorityCutoff {
		priority = domain.PriorityHigh
	}

	return domain.Action{
		ID:               ActionID(actionKindRetention, in.ID),
		Title:            "Customer Retention Campaign",
		Description:      "Automated retention campaign for high-churn-risk customer",
		ActionType:       domain.ActionTypeEmailCampaign,
		Status:           domain.ActionPending,
		Priority:         priority,
		Confidence:       in.Confidence,
		ExpectedImpact:   impact * e.cfg.RetentionRecoveryRate,
		TriggerInsightID: in.ID,
		GeneratedContent: retentionEmail,
		CreatedAt:        now,
	}
}

func (e *Engine) purchaseOrderAction(in domain.Insight, now time.Time) domain.Action {
	impact := orZero(in.BusinessImpact)
	priority := domain.PriorityMedium
	if impact > e.cfg.InventoryPriorityCutoff {
		priority = domain.PriorityHigh
	}

	return domain.Action{
		ID:               ActionID(actionKindInventory, in.ID),
		Title:            "Inventory Purchase Order",
		Description:      "Automatic reorder for product with stock shortage risk",
		ActionType:       domain.ActionTypeInventoryOrder,
		Status:           domain.ActionPending,
		Priority:         priority,
		Confidence:       in.Confidence,
		ExpectedImpact:   impact,
		TriggerInsightID: in.ID,
		GeneratedContent: purchaseOrderContent(in, priority, now),
		CreatedAt:        now,
	}
}

// purchaseOrderContent derives the PO number from the product and the pass
// date rather than the wall clock, so regenerating is byte-identical.
func purchaseOrderContent(in domain.Insight, priority domain.ActionPriority, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Purchase Order #PO-%s-%s\n\n", strings.ToUpper(in.TargetEntityID), now.Format("20060102"))
	fmt.Fprintf(&b, "Product: %s\n", in.TargetEntityID)
	fmt.Fprintf(&b, "Quantity: %.0f units (weekly demand gap)\n", in.ReorderQuantity)
	fmt.Fprintf(&b, "Priority: %s - Stock shortage risk\n", priority)
	b.WriteString("Delivery: Express shipping recommended")
	return b.String()
}
