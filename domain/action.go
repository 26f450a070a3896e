package domain

import "time"

type ActionStatus string

const (
	ActionPending    ActionStatus = "pending"
	ActionExecuted   ActionStatus = "executed"
	ActionRejected   ActionStatus = "rejected"
	ActionRolledBack ActionStatus = "rolled_back"
)

type ActionPriority string

const (
	PriorityHigh   ActionPriority = "High"
	PriorityMedium ActionPriority = "Medium"
	PriorityLow    ActionPriority = "Low"
)

const (
	ActionTypeEmailCampaign  = "email_campaign"
	ActionTypeInventoryOrder = "inventory_order"
)

type Action struct {
	ID               string         `gorm:"primaryKey;column:id" json:"id"`
	Title            string         `gorm:"column:title;type:text" json:"title"`
	Description      string         `gorm:"column:description;type:text" json:"description"`
	ActionType       string         `gorm:"column:action_type;type:text" json:"action_type"`
	Status           ActionStatus   `gorm:"column:status;type:text;index" json:"status"`
	Priority         ActionPriority `gorm:"column:priority;type:text" json:"priority"`
	Confidence       int            `gorm:"column:confidence" json:"confidence"`
	ExpectedImpact   float64        `gorm:"column:expected_impact;type:numeric" json:"expected_impact"`
	TriggerInsightID string         `gorm:"column:trigger_insight_id;type:text" json:"trigger_insight_id"`
	GeneratedContent string         `gorm:"column:generated_content;type:text" json:"generated_content"`
	EditedContent    string         `gorm:"column:edited_content;type:text" json:"edited_content,omitempty"`
	CreatedAt        time.Time      `gorm:"column:created_at" json:"created_at"`
	ExecutedAt       *time.Time     `gorm:"column:executed_at" json:"executed_at,omitempty"`
	UpdatedAt        time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Action) TableName() string {
	return "actions"
}

// CanTransition reports whether an action in status s may move to next.
// Only pending actions can be executed or rejected, and only executed
// actions can be rolled back.
func (s ActionStatus) CanTransition(next ActionStatus) bool {
	switch next {
	case ActionExecuted, ActionRejected:
		return s == ActionPending
	case ActionRolledBack:
		return s == ActionExecuted
	}
	return false
}
