package dto

import (
	"time"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
)

// CreateAssetRequest defines data for adding a new asset.
type CreateAssetRequest struct {
	ProductName     string `json:"productName" binding:"required,min=1,max=200"`
	ProductImage    string `json:"productImage" binding:"omitempty,url"`
	ProductType     string `json:"productType" binding:"required,min=1,max=100"`
	ProductQuantity int    `json:"productQuantity" binding:"required,gt=0"`
}

// UpdateAssetRequest defines the editable asset fields. Pointer fields
// distinguish omitted values from zero values.
type UpdateAssetRequest struct {
	ProductName     *string `json:"productName" binding:"omitempty,min=1,max=200"`
	ProductImage    *string `json:"productImage" binding:"omitempty,url"`
	ProductType     *string `json:"productType" binding:"omitempty,min=1,max=100"`
	ProductQuantity *int    `json:"productQuantity" binding:"omitempty,gt=0"`
}

// ListAssetsParams defines query parameters for listing assets.
type ListAssetsParams struct {
	Search       string `form:"search"`
	Type         string `form:"type"`
	Availability string `form:"availability" binding:"omitempty,oneof=available out-of-stock"`
	Page         int    `form:"page,default=1" binding:"omitempty,gt=0"`
	Limit        int    `form:"limit,default=10" binding:"omitempty,gt=0,lte=100"`
}

// AssetResponse defines data returned for an asset.
type AssetResponse struct {
	AssetID           string    `json:"assetID"`
	ProductName       string    `json:"productName"`
	ProductImage      string    `json:"productImage,omitempty"`
	ProductType       string    `json:"productType"`
	ProductQuantity   int       `json:"productQuantity"`
	AvailableQuantity int       `json:"availableQuantity"`
	HREmail           string    `json:"hrEmail"`
	CompanyName       string    `json:"companyName"`
	DateAdded         time.Time `json:"dateAdded"`
}

// ToAssetResponse converts domain.Asset to DTO.
func ToAssetResponse(a *domain.Asset) AssetResponse {
	return AssetResponse{
		AssetID:           a.AssetID,
		ProductName:       a.ProductName,
		ProductImage:      a.ProductImage,
		ProductType:       a.ProductType,
		ProductQuantity:   a.ProductQuantity,
		AvailableQuantity: a.AvailableQuantity,
		HREmail:           a.HREmail,
		CompanyName:       a.CompanyName,
		DateAdded:         a.DateAdded,
	}
}

// ListAssetsResponse wraps a page of assets.
type ListAssetsResponse struct {
	Assets []AssetResponse `json:"assets"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

// ToListAssetsResponse converts a page of domain.Asset to DTO.
func ToListAssetsResponse(assets []domain.Asset, total int64, page, limit int) ListAssetsResponse {
	list := make([]AssetResponse, len(assets))
	for i, a := range assets {
		list[i] = ToAssetResponse(&a)
	}
	return ListAssetsResponse{Assets: list, Total: total, Page: page, Limit: limit}
}
