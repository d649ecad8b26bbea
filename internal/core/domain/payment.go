package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus of a ledger entry. Only completed payments are recorded.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
)

// Payment is an immutable record of a confirmed package purchase.
// TransactionID correlates to the external payment processor's intent.
type Payment struct {
	PaymentID     string          `json:"paymentID"`
	HREmail       string          `json:"hrEmail"`
	PackageName   string          `json:"packageName"`
	EmployeeLimit int             `json:"employeeLimit"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transactionId"`
	PaymentDate   time.Time       `json:"paymentDate"`
	Status        PaymentStatus   `json:"status"`
}

// Package is a purchasable subscription tier.
type Package struct {
	PackageID     string          `json:"packageID"`
	Name          string          `json:"name"`
	EmployeeLimit int             `json:"employeeLimit"`
	Price         decimal.Decimal `json:"price"`
	Description   string          `json:"description,omitempty"`
}
