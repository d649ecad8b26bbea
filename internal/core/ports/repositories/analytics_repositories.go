package repositories

import (
	"context"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
)

// AnalyticsRepository aggregates dashboard numbers for one tenant.
type AnalyticsRepository interface {
	// AssetTypeDistribution counts a tenant's assets per product type.
	AssetTypeDistribution(ctx context.Context, hrEmail string) ([]domain.AssetTypeCount, error)

	// TopRequestedAssets ranks asset names by approved request count.
	TopRequestedAssets(ctx context.Context, hrEmail string, limit int) ([]domain.RequestedAssetCount, error)

	// TenantStats returns the aggregate request/asset counters.
	TenantStats(ctx context.Context, hrEmail string) (*domain.TenantStats, error)
}
