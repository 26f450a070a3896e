package domain

import "time"

type CustomerSegment string

const (
	SegmentEnterprise    CustomerSegment = "enterprise"
	SegmentMidMarket     CustomerSegment = "mid-market"
	SegmentSmallBusiness CustomerSegment = "small-business"
)

// CREATE TABLE public.customers (
//     id                 TEXT PRIMARY KEY,
//     name               TEXT,
//     email              TEXT,
//     ltv                NUMERIC,
//     engagement_score   NUMERIC,
//     purchase_frequency NUMERIC,
//     last_purchase      TIMESTAMPTZ,
//     segment            TEXT,
//     created_at         TIMESTAMPTZ DEFAULT NOW()
// );

type Customer struct {
	ID                string          `gorm:"primaryKey;column:id" json:"id"`
	Name              string          `gorm:"column:name;type:text" json:"name"`
	Email             string          `gorm:"column:email;type:text" json:"email"`
	LTV               float64         `gorm:"column:ltv;type:numeric" json:"ltv"`
	EngagementScore   float64         `gorm:"column:engagement_score;type:numeric" json:"engagement_score"`
	PurchaseFrequency float64         `gorm:"column:purchase_frequency;type:numeric" json:"purchase_frequency"` // orders per month
	LastPurchase      time.Time       `gorm:"column:last_purchase" json:"last_purchase"`
	Segment           CustomerSegment `gorm:"column:segment;type:text" json:"segment"`
	CreatedAt         time.Time       `gorm:"column:created_at" json:"created_at"`
}

func (Customer) TableName() string {
	return "customers"
}

func (s CustomerSegment) Valid() bool {
	switch s {
	case SegmentEnterprise, SegmentMidMarket, SegmentSmallBusiness:
		return true
	}
	return false
}
