package domain

import (
	"time"

	"gorm.io/datatypes"
)

// AnalysisPayload is the upstream ML service output. The engine never reads
// these fields; they are stored and handed back to renderers as-is.
type AnalysisPayload struct {
	ID                   uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Source               string         `gorm:"column:source;type:text" json:"source"`
	StockStatus          datatypes.JSON `gorm:"column:stock_status;type:jsonb" json:"stock_status"`
	SalesStats           datatypes.JSON `gorm:"column:sales_stats;type:jsonb" json:"sales_stats"`
	DemandClusters       datatypes.JSON `gorm:"column:demand_clusters;type:jsonb" json:"demand_clusters"`
	PriceRecommendations datatypes.JSON `gorm:"column:price_recommendations;type:jsonb" json:"price_recommendations"`
	ReceivedAt           time.Time      `gorm:"column:received_at;autoCreateTime" json:"received_at"`
}

func (AnalysisPayload) TableName() string {
	return "analysis_payloads"
}
