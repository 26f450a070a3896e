package domain

import "time"

type Workflow struct {
	ID             string     `gorm:"primaryKey;column:id" json:"id"`
	Name           string     `gorm:"column:name;type:text" json:"name"`
	Description    string     `gorm:"column:description;type:text" json:"description"`
	IsActive       bool       `gorm:"column:is_active" json:"is_active"`
	ExecutionCount int        `gorm:"column:execution_count" json:"execution_count"`
	SuccessRate    *float64   `gorm:"column:success_rate" json:"success_rate,omitempty"`
	LastRunAt      *time.Time `gorm:"column:last_run_at" json:"last_run_at,omitempty"`
}

func (Workflow) TableName() string {
	return "workflows"
}
