package domain

import "time"

const OrderStatusCompleted = "completed"

// Order is append-only; rows are never updated once written.
type Order struct {
	ID         string    `gorm:"primaryKey;column:id" json:"id"`
	CustomerID string    `gorm:"column:customer_id;index" json:"customer_id"`
	ProductID  string    `gorm:"column:product_id;index" json:"product_id"`
	Quantity   int       `gorm:"column:quantity" json:"quantity"`
	Revenue    float64   `gorm:"column:revenue;type:numeric" json:"revenue"`
	Profit     float64   `gorm:"column:profit;type:numeric" json:"profit"`
	Status     string    `gorm:"column:status;type:text" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}
