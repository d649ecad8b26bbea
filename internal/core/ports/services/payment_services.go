package services

import (
	"context"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentIntent is the gateway-side handle for an in-flight payment.
type PaymentIntent struct {
	IntentID     string
	ClientSecret string
	Amount       decimal.Decimal
	Currency     string
	Succeeded    bool
	// Metadata carries the package and tenant the intent was created for.
	Metadata map[string]string
}

// PaymentGateway abstracts the external card processor.
type PaymentGateway interface {
	// CreateIntent registers a payment of the given amount and returns
	// the client secret the frontend needs to collect the card.
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (*PaymentIntent, error)

	// RetrieveIntent fetches the current state of an intent for
	// server-side verification before granting the upgrade.
	RetrieveIntent(ctx context.Context, intentID string) (*PaymentIntent, error)
}

// PaymentReaderSvc defines read operations for packages and the ledger
type PaymentReaderSvc interface {
	// ListPackages retrieves all purchasable packages.
	ListPackages(ctx context.Context) ([]domain.Package, error)

	// ListPaymentHistory retrieves a tenant's completed payments.
	ListPaymentHistory(ctx context.Context, hrEmail string) ([]domain.Payment, error)
}

// PaymentWriterSvc defines the purchase flow
type PaymentWriterSvc interface {
	// CreatePaymentIntent starts a purchase of the given package for the
	// tenant and returns the gateway client secret.
	CreatePaymentIntent(ctx context.Context, hr *domain.User, packageID string) (*PaymentIntent, error)

	// ConfirmPayment verifies the intent succeeded at the gateway, then
	// records the payment and raises the tenant's employee limit.
	ConfirmPayment(ctx context.Context, hr *domain.User, intentID string) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
