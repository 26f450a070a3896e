package domain

import "time"

// IntelligenceConfig is the persisted override row for the engine's policy
// constants. Zero fields fall back to the built-in defaults.
type IntelligenceConfig struct {
	Scope string `json:"scope" gorm:"column:scope;primaryKey"`

	BaselineLTV             float64 `json:"baseline_ltv" gorm:"column:baseline_ltv"`
	ChurnThreshold          int     `json:"churn_threshold" gorm:"column:churn_threshold"`
	InventoryThreshold      int     `json:"inventory_threshold" gorm:"column:inventory_threshold"`
	RetentionRecoveryRate   float64 `json:"retention_recovery_rate" gorm:"column:retention_recovery_rate"`
	FallbackHorizonDays     int     `json:"fallback_horizon_days" gorm:"column:fallback_horizon_days"`
	ChurnPriorityCutoff     float64 `json:"churn_priority_cutoff" gorm:"column:churn_priority_cutoff"`
	InventoryPriorityCutoff float64 `json:"inventory_priority_cutoff" gorm:"column:inventory_priority_cutoff"`
	HoursSavedPerAction     float64 `json:"hours_saved_per_action" gorm:"column:hours_saved_per_action"`
	ChurnTTLHours           int     `json:"churn_ttl_hours" gorm:"column:churn_ttl_hours"`
	InventoryTTLHours       int     `json:"inventory_ttl_hours" gorm:"column:inventory_ttl_hours"`

	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (IntelligenceConfig) TableName() string {
	return "intelligence_config"
}

// Merge returns c with every positive field of o layered on top. Scope and
// UpdatedAt are kept from c.
func (c IntelligenceConfig) Merge(o IntelligenceConfig) IntelligenceConfig {
	if o.BaselineLTV > 0 {
		c.BaselineLTV = o.BaselineLTV
	}
	if o.ChurnThreshold > 0 {
		c.ChurnThreshold = o.ChurnThreshold
	}
	if o.InventoryThreshold > 0 {
		c.InventoryThreshold = o.InventoryThreshold
	}
	if o.RetentionRecoveryRate > 0 {
		c.RetentionRecoveryRate = o.RetentionRecoveryRate
	}
	if o.FallbackHorizonDays > 0 {
		c.FallbackHorizonDays = o.FallbackHorizonDays
	}
	if o.ChurnPriorityCutoff > 0 {
		c.ChurnPriorityCutoff = o.ChurnPriorityCutoff
	}
	if o.InventoryPriorityCutoff > 0 {
		c.InventoryPriorityCutoff = o.InventoryPriorityCutoff
	}
	if o.HoursSavedPerAction > 0 {
		c.HoursSavedPerAction = o.HoursSavedPerAction
	}
	if o.ChurnTTLHours > 0 {
		c.ChurnTTLHours = o.ChurnTTLHours
	}
	if o.InventoryTTLHours > 0 {
		c.InventoryTTLHours = o.InventoryTTLHours
	}
	return c
}
