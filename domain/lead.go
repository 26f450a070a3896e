package domain

type Lead struct {
	ID            string  `json:"id"`
	DealSize      float64 `json:"deal_size"`
	CompanySize   float64 `json:"company_size"` // employees
	IntentSignals int     `json:"intent_signals"`
	BudgetRange   float64 `json:"budget_range"`
	RecencyScore  float64 `json:"recency_score"` // 0..1
}

type LeadValuation struct {
	Value      float64  `json:"value"`
	Confidence int      `json:"confidence"`
	Reasoning  []string `json:"reasoning"`
}
