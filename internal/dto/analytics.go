package dto

import "github.com/assetverse/assetverse_backend/internal/core/domain"

// AnalyticsResponse is the tenant dashboard payload.
type AnalyticsResponse struct {
	AssetTypes   []AssetTypeCountResponse `json:"assetTypes"`
	TopRequested []TopRequestedResponse   `json:"topRequested"`
	Stats        TenantStatsResponse      `json:"stats"`
}

// AssetTypeCountResponse is one bucket of the type distribution chart.
type AssetTypeCountResponse struct {
	ProductType string `json:"productType"`
	Count       int    `json:"count"`
}

// TopRequestedResponse is one entry of the most-requested chart.
type TopRequestedResponse struct {
	AssetName string `json:"assetName"`
	Count     int    `json:"count"`
}

// TenantStatsResponse holds the dashboard counters.
type TenantStatsResponse struct {
	TotalAssets      int `json:"totalAssets"`
	TotalRequests    int `json:"totalRequests"`
	PendingRequests  int `json:"pendingRequests"`
	ApprovedRequests int `json:"approvedRequests"`
}

// ToAnalyticsResponse converts domain.AnalyticsSummary to DTO.
func ToAnalyticsResponse(s *domain.AnalyticsSummary) AnalyticsResponse {
	types := make([]AssetTypeCountResponse, len(s.AssetTypes))
	for i, t := range s.AssetTypes {
		types[i] = AssetTypeCountResponse{ProductType: t.ProductType, Count: t.Count}
	}
	top := make([]TopRequestedResponse, len(s.TopRequested))
	for i, t := range s.TopRequested {
		top[i] = TopRequestedResponse{AssetName: t.AssetName, Count: t.Count}
	}
	return AnalyticsResponse{
		AssetTypes:   types,
		TopRequested: top,
		Stats: TenantStatsResponse{
			TotalAssets:      s.Stats.TotalAssets,
			TotalRequests:    s.Stats.TotalRequests,
			PendingRequests:  s.Stats.PendingRequests,
			ApprovedRequests: s.Stats.ApprovedRequests,
		},
	}
}
