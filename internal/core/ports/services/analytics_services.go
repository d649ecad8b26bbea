package services

import (
	"context"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
)

// AnalyticsService produces the tenant dashboard rollups.
type AnalyticsService interface {
	// GetSummary returns the full dashboard payload for a tenant.
	GetSummary(ctx context.Context, hrEmail string) (*domain.AnalyticsSummary, error)
}
