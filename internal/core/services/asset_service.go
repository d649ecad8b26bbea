package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/assetverse/assetverse_backend/internal/apperrors"
	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portsrepo "github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
	portssvc "github.com/assetverse/assetverse_backend/internal/core/ports/services"
	"github.com/assetverse/assetverse_backend/internal/dto"
	"github.com/google/uuid"
)

// assetService handles inventory management for HR tenants.
type assetService struct {
	BaseService
	assetRepo       portsrepo.AssetRepositoryFacade
	affiliationRepo portsrepo.AffiliationReader
}

// NewAssetService creates a new asset service.
func NewAssetService(assetRepo portsrepo.AssetRepositoryFacade, affiliationRepo portsrepo.AffiliationReader) portssvc.AssetSvcFacade {
	return &assetService{
		assetRepo:       assetRepo,
		affiliationRepo: affiliationRepo,
	}
}

// Ensure assetService implements the portssvc.AssetSvcFacade interface
var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) GetAssetByID(ctx context.Context, assetID, hrEmail string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset.HREmail != hrEmail {
		return nil, apperrors.NewNotFoundError("asset " + assetID + " not found")
	}
	return asset, nil
}

func (s *assetService) ListAssets(ctx context.Context, hrEmail string, filters portsrepo.AssetListFilters) ([]domain.Asset, int64, error) {
	return s.assetRepo.ListAssetsByHR(ctx, hrEmail, filters)
}

// ListAvailableAssets lists the requestable inventory for an employee.
// An affiliated employee sees their tenant's catalog; an unaffiliated one
// sees everything, since the first approved request is what creates the
// affiliation.
func (s *assetService) ListAvailableAssets(ctx context.Context, employeeEmail string, filters portsrepo.AssetListFilters) ([]domain.Asset, int64, error) {
	affiliation, err := s.affiliationRepo.FindActiveAffiliationByEmployee(ctx, employeeEmail)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.assetRepo.ListAllAssets(ctx, filters)
		}
		return nil, 0, err
	}
	return s.assetRepo.ListAssetsByHR(ctx, affiliation.HREmail, filters)
}

func (s *assetService) CreateAsset(ctx context.Context, hr *domain.User, req dto.CreateAssetRequest) (*domain.Asset, error) {
	now := time.Now()
	asset := domain.Asset{
		AssetID:           uuid.NewString(),
		ProductName:       req.ProductName,
		ProductImage:      req.ProductImage,
		ProductType:       req.ProductType,
		ProductQuantity:   req.ProductQuantity,
		AvailableQuantity: req.ProductQuantity,
		HREmail:           hr.Email,
		CompanyName:       hr.CompanyName,
		DateAdded:         now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     hr.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: hr.UserID,
		},
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Asset created", slog.String("asset_id", asset.AssetID), slog.String("product", asset.ProductName))
	return &asset, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, assetID string, hrEmail string, req dto.UpdateAssetRequest) (*domain.Asset, error) {
	asset, err := s.GetAssetByID(ctx, assetID, hrEmail)
	if err != nil {
		return nil, err
	}

	if req.ProductName != nil {
		asset.ProductName = *req.ProductName
	}
	if req.ProductImage != nil {
		asset.ProductImage = *req.ProductImage
	}
	if req.ProductType != nil {
		asset.ProductType = *req.ProductType
	}
	if req.ProductQuantity != nil {
		asset.ProductQuantity = *req.ProductQuantity
	}
	asset.LastUpdatedAt = time.Now()

	if err := s.assetRepo.UpdateAssetDetails(ctx, assetID, hrEmail, *asset); err != nil {
		return nil, err
	}

	// Re-read so the caller sees the recomputed availability.
	return s.GetAssetByID(ctx, assetID, hrEmail)
}

func (s *assetService) DeleteAsset(ctx context.Context, assetID, hrEmail string) error {
	if err := s.assetRepo.DeleteAsset(ctx, assetID, hrEmail); err != nil {
		return err
	}
	s.LogInfo(ctx, "Asset deleted", slog.String("asset_id", assetID))
	return nil
}
