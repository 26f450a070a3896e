package intelligence

import (
	"autoOpsAI/domain"
	"fmt"
	"math"
)

// ValueLead estimates a deal value and a confidence for one sales lead. The
// reasoning lines always come in the same order: size, intent, budget (only
// when aligned), recency.
func ValueLead(cfg Config, lead domain.Lead) domain.LeadValuation {
	p := newPrinter()

	deal := math.Max(0, orZero(lead.DealSize))
	companySize := math.Max(0, orZero(lead.CompanySize))
	intent := maxInt(0, lead.IntentSignals)
	recency := clampFloat(lead.RecencyScore, 0, 1)

	reasoning := make([]string, 0, 4)

	var sizeMultiplier float64
	if cfg.LeadCompanySizeNorm > 0 {
		sizeMultiplier = companySize / cfg.LeadCompanySizeNorm
	}
	value := deal * sizeMultiplier
	reasoning = append(reasoning, fmt.Sprintf("Company size (%s employees) increases deal value by %d%%",
		quantity(p, companySize), int(math.Round(sizeMultiplier*100))))

	intentBonus := float64(intent) * cfg.LeadIntentValue
	value += intentBonus
	confidence := cfg.LeadBaseConfidence + float64(intent)*cfg.LeadIntentConfidence
	reasoning = append(reasoning, fmt.Sprintf("%d intent signals add %s to value",
		intent, money(p, cfg.CurrencySymbol, intentBonus)))

	if orZero(lead.BudgetRange) >= deal {
		confidence += cfg.LeadBudgetConfidence
		reasoning = append(reasoning, "Budget aligns with deal size, increasing confidence")
	}

	confidence += recency * cfg.LeadRecencyConfidence
	reasoning = append(reasoning, fmt.Sprintf("Recent activity (%d%%) boosts confidence", int(math.Round(recency*100))))

	return domain.LeadValuation{
		Value:      math.Round(orZero(value)),
		Confidence: clampScore(confidence),
		Reasoning:  reasoning,
	}
}
