package repositories

import (
	"context"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
)

// PackageReader defines read operations for subscription packages
type PackageReader interface {
	// ListPackages retrieves all purchasable packages, cheapest first.
	ListPackages(ctx context.Context) ([]domain.Package, error)

	// FindPackageByID retrieves one package.
	FindPackageByID(ctx context.Context, packageID string) (*domain.Package, error)
}

// PaymentReader defines read operations for the payment ledger
type PaymentReader interface {
	// ListPaymentsByHR retrieves a tenant's payment history, newest first.
	ListPaymentsByHR(ctx context.Context, hrEmail string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for the payment ledger
type PaymentWriter interface {
	// ConfirmUpgrade records a completed payment and raises the tenant's
	// employee limit in one transaction. Replays of the same transaction
	// ID return a duplicate error without changing anything.
	ConfirmUpgrade(ctx context.Context, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment repository interfaces
type PaymentRepositoryFacade interface {
	PackageReader
	PaymentReader
	PaymentWriter
}
