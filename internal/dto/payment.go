package dto

import (
	"time"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateIntentRequest starts a package purchase.
type CreateIntentRequest struct {
	PackageID string `json:"packageID" binding:"required,uuid"`
}

// CreateIntentResponse returns the gateway handle for the frontend.
type CreateIntentResponse struct {
	ClientSecret string          `json:"clientSecret"`
	IntentID     string          `json:"intentID"`
	Amount       decimal.Decimal `json:"amount"`
}

// ConfirmPaymentRequest finalizes a purchase after the card step.
type ConfirmPaymentRequest struct {
	IntentID string `json:"intentID" binding:"required"`
}

// PackageResponse defines data returned for one purchasable package.
type PackageResponse struct {
	PackageID     string          `json:"packageID"`
	Name          string          `json:"name"`
	EmployeeLimit int             `json:"employeeLimit"`
	Price         decimal.Decimal `json:"price"`
	Description   string          `json:"description,omitempty"`
}

// ListPackagesResponse wraps the package catalog.
type ListPackagesResponse struct {
	Packages []PackageResponse `json:"packages"`
}

// ToListPackagesResponse converts a slice of domain.Package to DTO.
func ToListPackagesResponse(packages []domain.Package) ListPackagesResponse {
	list := make([]PackageResponse, len(packages))
	for i, p := range packages {
		list[i] = PackageResponse{
			PackageID:     p.PackageID,
			Name:          p.Name,
			EmployeeLimit: p.EmployeeLimit,
			Price:         p.Price,
			Description:   p.Description,
		}
	}
	return ListPackagesResponse{Packages: list}
}

// PaymentResponse defines data returned for one ledger entry.
type PaymentResponse struct {
	PaymentID     string          `json:"paymentID"`
	PackageName   string          `json:"packageName"`
	EmployeeLimit int             `json:"employeeLimit"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transactionId"`
	PaymentDate   time.Time       `json:"paymentDate"`
	Status        string          `json:"status"`
}

// ToPaymentResponse converts domain.Payment to DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		PackageName:   p.PackageName,
		EmployeeLimit: p.EmployeeLimit,
		Amount:        p.Amount,
		TransactionID: p.TransactionID,
		PaymentDate:   p.PaymentDate,
		Status:        string(p.Status),
	}
}

// ListPaymentsResponse wraps a tenant's payment history.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ToListPaymentsResponse converts a slice of domain.Payment to DTO.
func ToListPaymentsResponse(payments []domain.Payment) ListPaymentsResponse {
	list := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		list[i] = ToPaymentResponse(&p)
	}
	return ListPaymentsResponse{Payments: list}
}
