package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id                 TEXT PRIMARY KEY,
//     name               TEXT,
//     sku                TEXT,
//     category           TEXT,
//     price              NUMERIC,
//     cost               NUMERIC,
//     stock_quantity     NUMERIC,
//     sales_velocity     NUMERIC,
//     reorder_threshold  NUMERIC,
//     supplier_lead_time INT,
//     created_at         TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID               string    `gorm:"primaryKey;column:id" json:"id"`
	Name             string    `gorm:"column:name;type:text" json:"name"`
	SKU              string    `gorm:"column:sku;type:text" json:"sku"`
	Category         string    `gorm:"column:category;type:text" json:"category"`
	Price            float64   `gorm:"column:price;type:numeric" json:"price"`
	Cost             float64   `gorm:"column:cost;type:numeric" json:"cost"`
	StockQuantity    float64   `gorm:"column:stock_quantity;type:numeric" json:"stock_quantity"`
	SalesVelocity    float64   `gorm:"column:sales_velocity;type:numeric" json:"sales_velocity"`
	ReorderThreshold float64   `gorm:"column:reorder_threshold;type:numeric" json:"reorder_threshold"`
	SupplierLeadTime int       `gorm:"column:supplier_lead_time" json:"supplier_lead_time"` // days
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
