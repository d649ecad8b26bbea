package repositories

import (
	"context"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
)

// AssetListFilters narrows asset listings. Zero values mean "no filter".
type AssetListFilters struct {
	Search        string // case-insensitive substring match on product name
	ProductType   string
	OnlyAvailable bool // available_quantity > 0
	OnlyDepleted  bool // available_quantity == 0
	Page          int
	Limit         int
}

// AssetReader defines read operations for asset inventory
type AssetReader interface {
	// FindAssetByID retrieves an asset by its ID.
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssetsByHR retrieves a page of a tenant's assets plus the total
	// count matching the filters.
	ListAssetsByHR(ctx context.Context, hrEmail string, filters AssetListFilters) ([]domain.Asset, int64, error)

	// ListAllAssets retrieves a page of assets across every tenant, for
	// employees who are not yet affiliated anywhere.
	ListAllAssets(ctx context.Context, filters AssetListFilters) ([]domain.Asset, int64, error)
}

// AssetWriter defines write operations for asset inventory
type AssetWriter interface {
	// SaveAsset persists a new asset.
	SaveAsset(ctx context.Context, asset domain.Asset) error

	// UpdateAssetDetails updates name, image, type and total quantity.
	// The availability delta follows the total-quantity delta and the
	// update fails with a conflict if availability would go negative.
	UpdateAssetDetails(ctx context.Context, assetID, hrEmail string, asset domain.Asset) error

	// DeleteAsset removes an asset owned by the given tenant.
	DeleteAsset(ctx context.Context, assetID, hrEmail string) error
}

// AssetRepositoryFacade combines all asset-related repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}
