package services

import (
	"context"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
	"github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
	"github.com/assetverse/assetverse_backend/internal/dto"
)

// AssetReaderSvc defines read operations over a tenant's inventory
type AssetReaderSvc interface {
	// GetAssetByID retrieves one asset, scoped to the given tenant.
	GetAssetByID(ctx context.Context, assetID, hrEmail string) (*domain.Asset, error)

	// ListAssets retrieves a page of the tenant's inventory.
	ListAssets(ctx context.Context, hrEmail string, filters repositories.AssetListFilters) ([]domain.Asset, int64, error)

	// ListAvailableAssets retrieves the requestable inventory of the
	// tenant an employee is affiliated with.
	ListAvailableAssets(ctx context.Context, employeeEmail string, filters repositories.AssetListFilters) ([]domain.Asset, int64, error)
}

// AssetWriterSvc defines write operations over a tenant's inventory
type AssetWriterSvc interface {
	// CreateAsset adds a new asset to the tenant's inventory.
	CreateAsset(ctx context.Context, hr *domain.User, req dto.CreateAssetRequest) (*domain.Asset, error)

	// UpdateAsset changes an asset's name, image, type or total quantity.
	UpdateAsset(ctx context.Context, assetID string, hrEmail string, req dto.UpdateAssetRequest) (*domain.Asset, error)

	// DeleteAsset removes an asset from the tenant's inventory.
	DeleteAsset(ctx context.Context, assetID, hrEmail string) error
}

// AssetSvcFacade combines all asset-related service interfaces
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}
