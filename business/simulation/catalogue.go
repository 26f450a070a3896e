package simulation

import (
	"autoOpsAI/domain"
	"time"
)

// Catalogue is a complete demo dataset.
type Catalogue struct {
	Customers []domain.Customer
	Products  []domain.Product
	Orders    []domain.Order
	Workflows []domain.Workflow
}

type customerSeed struct {
	id, name, email  string
	ltv, engagement  float64
	frequency        float64
	lastPurchaseDays int
	segment          domain.CustomerSegment
	createdDays      int
}

var customerSeeds = []customerSeed{
	{"cust_1", "Rajesh Kumar", "rajesh.kumar@email.com", 45000, 65, 2.5, 15, domain.SegmentEnterprise, 365},
	{"cust_2", "Priya Sharma", "priya.sharma@email.com", 32000, 45, 1.8, 35, domain.SegmentMidMarket, 180},
	{"cust_3", "Amit Patel", "amit.patel@email.com", 68000, 85, 3.2, 5, domain.SegmentEnterprise, 400},
	{"cust_4", "Sneha Reddy", "sneha.reddy@email.com", 28000, 55, 2.1, 22, domain.SegmentMidMarket, 150},
	{"cust_5", "Vikram Singh", "vikram.singh@email.com", 52000, 75, 2.8, 8, domain.SegmentEnterprise, 280},
}

type productSeed struct {
	id, name, sku, category string
	price, cost             float64
	stock, velocity         float64
	reorderThreshold        float64
	leadTime                int
	createdDays             int
}

var productSeeds = []productSeed{
	{"prod_1", "Peter England Formal Shirt", "PE-FS-001", "mens_formal_wear", 1899, 950, 85, 18, 30, 7, 120},
	{"prod_2", "Van Heusen Premium Suit", "VH-PS-002", "mens_formal_wear", 8999, 4500, 25, 6, 15, 14, 90},
	{"prod_3", "FabIndia Cotton Kurta", "FI-CK-003", "ethnic_wear", 1299, 650, 120, 24, 40, 10, 60},
	{"prod_4", "Biba Designer Salwar Kameez", "BI-DS-004", "ethnic_wear", 2499, 1250, 65, 15, 25, 12, 45},
	{"prod_5", "Allen Solly Casual T-Shirt", "AS-CT-005", "mens_casual_wear", 899, 450, 150, 32, 50, 5, 30},
	{"prod_6", "Levi's 501 Jeans", "LV-501-006", "mens_casual_wear", 3499, 1750, 95, 22, 35, 8, 75},
	{"prod_7", "Zara Women's Summer Dress", "ZA-WD-007", "womens_western", 2799, 1400, 70, 19, 30, 9, 55},
	{"prod_8", "H&M Basic Cotton Top", "HM-BT-008", "womens_western", 699, 350, 180, 38, 60, 4, 25},
	{"prod_9", "Raymond Blazer", "RY-BL-009", "mens_formal_wear", 5999, 3000, 35, 8, 20, 15, 100},
	{"prod_10", "W For Women Ethnic Gown", "WF-EG-010", "ethnic_wear", 3299, 1650, 45, 12, 20, 11, 40},
	{"prod_11", "Flying Machine Cargo Pants", "FM-CP-011", "mens_casual_wear", 1599, 800, 110, 25, 40, 6, 35},
	{"prod_12", "Global Desi Indo-Western Dress", "GD-IW-012", "womens_western", 1899, 950, 80, 20, 35, 7, 50},
	{"prod_13", "Manyavar Sherwani", "MV-SW-013", "ethnic_wear", 8999, 4500, 20, 4, 10, 20, 110},
	{"prod_14", "Park Avenue Polo T-Shirt", "PA-PT-014", "mens_casual_wear", 1299, 650, 130, 28, 45, 5, 28},
	{"prod_15", "Aurelia Women's Kurti", "AU-WK-015", "ethnic_wear", 999, 500, 160, 35, 55, 6, 20},
}

type orderSeed struct {
	id, customerID, productID string
	quantity                  int
	revenue, profit           float64
	daysAgo                   int
}

var orderSeeds = []orderSeed{
	{"order_1", "cust_1", "prod_1", 2, 3798, 1898, 10},
	{"order_2", "cust_3", "prod_2", 1, 8999, 4499, 3},
	{"order_3", "cust_2", "prod_3", 3, 3897, 1947, 7},
	{"order_4", "cust_1", "prod_6", 1, 3499, 1749, 5},
	{"order_5", "cust_3", "prod_4", 2, 4998, 2498, 2},
	{"order_6", "cust_2", "prod_8", 4, 2796, 1396, 8},
}

// MockCatalogue builds the demo dataset with every timestamp relative to
// now, so the same now always yields the same catalogue.
func MockCatalogue(now time.Time) Catalogue {
	days := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	cat := Catalogue{
		Customers: make([]domain.Customer, 0, len(customerSeeds)),
		Products:  make([]domain.Product, 0, len(productSeeds)),
		Orders:    make([]domain.Order, 0, len(orderSeeds)),
	}

	for _, s := range customerSeeds {
		cat.Customers = append(cat.Customers, domain.Customer{
			ID:                s.id,
			Name:              s.name,
			Email:             s.email,
			LTV:               s.ltv,
			EngagementScore:   s.engagement,
			PurchaseFrequency: s.frequency,
			LastPurchase:      days(s.lastPurchaseDays),
			Segment:           s.segment,
			CreatedAt:         days(s.createdDays),
		})
	}

	for _, s := range productSeeds {
		cat.Products = append(cat.Products, domain.Product{
			ID:               s.id,
			Name:             s.name,
			SKU:              s.sku,
			Category:         s.category,
			Price:            s.price,
			Cost:             s.cost,
			StockQuantity:    s.stock,
			SalesVelocity:    s.velocity,
			ReorderThreshold: s.reorderThreshold,
			SupplierLeadTime: s.leadTime,
			CreatedAt:        days(s.createdDays),
		})
	}

	for _, s := range orderSeeds {
		cat.Orders = append(cat.Orders, domain.Order{
			ID:         s.id,
			CustomerID: s.customerID,
			ProductID:  s.productID,
			Quantity:   s.quantity,
			Revenue:    s.revenue,
			Profit:     s.profit,
			Status:     domain.OrderStatusCompleted,
			CreatedAt:  days(s.daysAgo),
		})
	}

	churnRate, inventoryRate := 92.0, 88.0
	churnRun, inventoryRun := now.AddDate(0, 0, -1), now.Add(-3*time.Hour)
	cat.Workflows = []domain.Workflow{
		{
			ID:             "wf_customer_churn",
			Name:           "customer_churn",
			Description:    "Detect high-risk customers likely to churn",
			IsActive:       true,
			ExecutionCount: 12,
			SuccessRate:    &churnRate,
			LastRunAt:      &churnRun,
		},
		{
			ID:             "wf_inventory",
			Name:           "inventory",
			Description:    "Monitor stock levels and prevent stockouts",
			IsActive:       true,
			ExecutionCount: 8,
			SuccessRate:    &inventoryRate,
			LastRunAt:      &inventoryRun,
		},
	}

	return cat
}
