package operations

import (
	"autoOpsAI/domain"
	"autoOpsAI/pkg/logger"
	"context"
	"fmt"
)

// StoreAnalysis keeps an upstream ML payload as-is. The engine never reads
// it; it is served back to renderers next to the insights.
func (s *Service) StoreAnalysis(ctx context.Context, payload domain.AnalysisPayload) (domain.AnalysisPayload, error) {
	if err := ctx.Err(); err != nil {
		return domain.AnalysisPayload{}, fmt.Errorf("context error: %w", err)
	}
	if s.repos.Analysis == nil {
		return domain.AnalysisPayload{}, fmt.Errorf("analysis store not configured: %w", domain.ErrInvalidInput)
	}

	payload.ID = 0
	payload.ReceivedAt = s.clock.Now()
	if err := s.repos.Analysis.Create(ctx, &payload); err != nil {
		return domain.AnalysisPayload{}, fmt.Errorf("failed to store analysis: %w", err)
	}

	logger.Info("analysis payload stored", "id", payload.ID, "source", payload.Source)
	return payload, nil
}

func (s *Service) LatestAnalysis(ctx context.Context) (domain.AnalysisPayload, error) {
	if err := ctx.Err(); err != nil {
		return domain.AnalysisPayload{}, fmt.Errorf("context error: %w", err)
	}
	if s.repos.Analysis == nil {
		return domain.AnalysisPayload{}, fmt.Errorf("analysis store not configured: %w", domain.ErrNotFound)
	}

	payload, err := s.repos.Analysis.Latest(ctx)
	if err != nil {
		return domain.AnalysisPayload{}, fmt.Errorf("failed to load analysis: %w", err)
	}
	return payload, nil
}
