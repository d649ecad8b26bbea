package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/assetverse/assetverse_backend/internal/apperrors"
	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portsrepo "github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
	portssvc "github.com/assetverse/assetverse_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

const paymentCurrency = "usd"

// metadata keys stamped on every intent so confirmation can verify what
// was bought and by whom without trusting the client.
const (
	metadataPackageID = "package_id"
	metadataHREmail   = "hr_email"
)

// paymentService runs the package purchase flow against the gateway and
// the ledger.
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	gateway     portssvc.PaymentGateway
}

// NewPaymentService creates a new payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, gateway portssvc.PaymentGateway) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		gateway:     gateway,
	}
}

// Ensure paymentService implements the portssvc.PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) ListPackages(ctx context.Context) ([]domain.Package, error) {
	return s.paymentRepo.ListPackages(ctx)
}

func (s *paymentService) ListPaymentHistory(ctx context.Context, hrEmail string) ([]domain.Payment, error) {
	return s.paymentRepo.ListPaymentsByHR(ctx, hrEmail)
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context, hr *domain.User, packageID string) (*portssvc.PaymentIntent, error) {
	pkg, err := s.paymentRepo.FindPackageByID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	intent, err := s.gateway.CreateIntent(ctx, pkg.Price, paymentCurrency, map[string]string{
		metadataPackageID: pkg.PackageID,
		metadataHREmail:   hr.Email,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create payment intent", slog.String("package_id", packageID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment intent created",
		slog.String("intent_id", intent.IntentID),
		slog.String("package_id", pkg.PackageID),
	)
	return intent, nil
}

// ConfirmPayment trusts the gateway, not the caller: the intent must have
// succeeded and must carry this tenant's email in its metadata before the
// upgrade is granted.
func (s *paymentService) ConfirmPayment(ctx context.Context, hr *domain.User, intentID string) (*domain.Payment, error) {
	intent, err := s.gateway.RetrieveIntent(ctx, intentID)
	if err != nil {
		return nil, err
	}
	if !intent.Succeeded {
		return nil, apperrors.NewUnavailableError("payment has not completed")
	}
	if intent.Metadata[metadataHREmail] != hr.Email {
		return nil, apperrors.NewNotFoundError("payment intent " + intentID + " not found")
	}

	pkg, err := s.paymentRepo.FindPackageByID(ctx, intent.Metadata[metadataPackageID])
	if err != nil {
		return nil, err
	}

	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		HREmail:       hr.Email,
		PackageName:   pkg.Name,
		EmployeeLimit: pkg.EmployeeLimit,
		Amount:        pkg.Price,
		TransactionID: intent.IntentID,
		PaymentDate:   time.Now(),
		Status:        domain.PaymentCompleted,
	}

	if err := s.paymentRepo.ConfirmUpgrade(ctx, payment); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Package upgrade confirmed",
		slog.String("intent_id", intent.IntentID),
		slog.String("package", pkg.Name),
		slog.Int("employee_limit", pkg.EmployeeLimit),
	)
	return &payment, nil
}
