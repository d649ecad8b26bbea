package services

import (
	"context"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portsrepo "github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
	portssvc "github.com/assetverse/assetverse_backend/internal/core/ports/services"
)

const topRequestedLimit = 5

// analyticsService assembles the tenant dashboard payload.
type analyticsService struct {
	BaseService
	analyticsRepo portsrepo.AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(analyticsRepo portsrepo.AnalyticsRepository) portssvc.AnalyticsService {
	return &analyticsService{analyticsRepo: analyticsRepo}
}

// Ensure analyticsService implements the portssvc.AnalyticsService interface
var _ portssvc.AnalyticsService = (*analyticsService)(nil)

func (s *analyticsService) GetSummary(ctx context.Context, hrEmail string) (*domain.AnalyticsSummary, error) {
	assetTypes, err := s.analyticsRepo.AssetTypeDistribution(ctx, hrEmail)
	if err != nil {
		return nil, err
	}
	topRequested, err := s.analyticsRepo.TopRequestedAssets(ctx, hrEmail, topRequestedLimit)
	if err != nil {
		return nil, err
	}
	stats, err := s.analyticsRepo.TenantStats(ctx, hrEmail)
	if err != nil {
		return nil, err
	}
	return &domain.AnalyticsSummary{
		AssetTypes:   assetTypes,
		TopRequested: topRequested,
		Stats:        *stats,
	}, nil
}
