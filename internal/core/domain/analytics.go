package domain

// AssetTypeCount is one bucket of the per-tenant asset type distribution.
type AssetTypeCount struct {
	ProductType string `json:"productType"`
	Count       int    `json:"count"`
}

// RequestedAssetCount is one entry of the most-requested ranking
// (approved requests only).
type RequestedAssetCount struct {
	AssetName string `json:"assetName"`
	Count     int    `json:"count"`
}

// TenantStats are the aggregate counters for one tenant's dashboard.
type TenantStats struct {
	TotalAssets      int `json:"totalAssets"`
	TotalRequests    int `json:"totalRequests"`
	PendingRequests  int `json:"pendingRequests"`
	ApprovedRequests int `json:"approvedRequests"`
}

// AnalyticsSummary is the full dashboard rollup for one tenant.
type AnalyticsSummary struct {
	AssetTypes   []AssetTypeCount      `json:"assetTypes"`
	TopRequested []RequestedAssetCount `json:"topRequested"`
	Stats        TenantStats           `json:"stats"`
}
