package domain

import "time"

// Asset is one inventory record owned by an HR tenant. ProductQuantity is
// the total stock; AvailableQuantity is what is not currently assigned.
// Invariant: 0 <= AvailableQuantity <= ProductQuantity.
type Asset struct {
	AssetID           string    `json:"assetID"`
	ProductName       string    `json:"productName"`
	ProductImage      string    `json:"productImage"`
	ProductType       string    `json:"productType"`
	ProductQuantity   int       `json:"productQuantity"`
	AvailableQuantity int       `json:"availableQuantity"`
	HREmail           string    `json:"hrEmail"`
	CompanyName       string    `json:"companyName"`
	DateAdded         time.Time `json:"dateAdded"`
	AuditFields
}
