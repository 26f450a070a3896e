package operations

import (
	"autoOpsAI/business/intelligence"
	"autoOpsAI/domain"
	"context"
	"fmt"
)

func (s *Service) ScoreLead(ctx context.Context, lead domain.Lead) (domain.LeadValuation, error) {
	if err := ctx.Err(); err != nil {
		return domain.LeadValuation{}, fmt.Errorf("context error: %w", err)
	}
	if lead.DealSize < 0 || lead.CompanySize < 0 || lead.IntentSignals < 0 {
		return domain.LeadValuation{}, fmt.Errorf("lead fields must not be negative: %w", domain.ErrInvalidInput)
	}

	return intelligence.ValueLead(s.loadConfig(ctx), lead), nil
}
