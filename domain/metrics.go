package domain

import "time"

// SystemMetrics is recomputed wholesale on every call; it is never patched.
type SystemMetrics struct {
	TotalCustomers  int       `json:"total_customers"`
	TotalProducts   int       `json:"total_products"`
	TotalRevenue    float64   `json:"total_revenue"`
	TotalProfit     float64   `json:"total_profit"`
	ActiveWorkflows int       `json:"active_workflows"`
	PendingActions  int       `json:"pending_actions"`
	ExecutedActions int       `json:"executed_actions"`
	SystemHealth    int       `json:"system_health"`
	TimeSavedHours  float64   `json:"time_saved_hours"`
	ConfidenceScore int       `json:"confidence_score"`
	LastUpdated     time.Time `json:"last_updated"`
}
