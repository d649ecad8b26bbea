package services_test

import (
	"context"
	"testing"

	"github.com/assetverse/assetverse_backend/internal/apperrors"
	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portssvc "github.com/assetverse/assetverse_backend/internal/core/ports/services"
	"github.com/assetverse/assetverse_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) ListPackages(ctx context.Context) ([]domain.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Package), args.Error(1)
}

func (m *MockPaymentRepository) FindPackageByID(ctx context.Context, packageID string) (*domain.Package, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByHR(ctx context.Context, hrEmail string) ([]domain.Payment, error) {
	args := m.Called(ctx, hrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ConfirmUpgrade(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// --- Mock PaymentGateway ---
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (*portssvc.PaymentIntent, error) {
	args := m.Called(ctx, amount, currency, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.PaymentIntent), args.Error(1)
}

func (m *MockPaymentGateway) RetrieveIntent(ctx context.Context, intentID string) (*portssvc.PaymentIntent, error) {
	args := m.Called(ctx, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.PaymentIntent), args.Error(1)
}

// --- Test Suite ---
type PaymentServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockPaymentRepository
	mockGateway *MockPaymentGateway
	service     portssvc.PaymentSvcFacade
	hr          *domain.User
	pkg         *domain.Package
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPaymentRepository)
	suite.mockGateway = new(MockPaymentGateway)
	suite.service = services.NewPaymentService(suite.mockRepo, suite.mockGateway)
	suite.hr = &domain.User{
		UserID:      uuid.NewString(),
		Email:       "hr@acme.example",
		Role:        domain.RoleHR,
		CompanyName: "Acme Corp",
	}
	suite.pkg = &domain.Package{
		PackageID:     uuid.NewString(),
		Name:          "Growth",
		EmployeeLimit: 20,
		Price:         decimal.NewFromInt(49),
	}
}

// --- Test Cases ---

func (suite *PaymentServiceTestSuite) TestCreatePaymentIntent_Success() {
	ctx := context.Background()
	expected := &portssvc.PaymentIntent{
		IntentID:     "pi_123",
		ClientSecret: "pi_123_secret",
		Amount:       suite.pkg.Price,
		Currency:     "usd",
	}

	suite.mockRepo.On("FindPackageByID", ctx, suite.pkg.PackageID).Return(suite.pkg, nil).Once()
	suite.mockGateway.On("CreateIntent", ctx, suite.pkg.Price, "usd", mock.MatchedBy(func(md map[string]string) bool {
		return md["package_id"] == suite.pkg.PackageID && md["hr_email"] == suite.hr.Email
	})).Return(expected, nil).Once()

	intent, err := suite.service.CreatePaymentIntent(ctx, suite.hr, suite.pkg.PackageID)

	suite.Require().NoError(err)
	suite.Equal(expected, intent)
	suite.mockGateway.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePaymentIntent_UnknownPackage() {
	ctx := context.Background()

	suite.mockRepo.On("FindPackageByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	intent, err := suite.service.CreatePaymentIntent(ctx, suite.hr, "nope")

	suite.Require().Error(err)
	suite.Nil(intent)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockGateway.AssertNotCalled(suite.T(), "CreateIntent")
}

func (suite *PaymentServiceTestSuite) succeededIntent() *portssvc.PaymentIntent {
	return &portssvc.PaymentIntent{
		IntentID:  "pi_123",
		Amount:    suite.pkg.Price,
		Currency:  "usd",
		Succeeded: true,
		Metadata: map[string]string{
			"package_id": suite.pkg.PackageID,
			"hr_email":   suite.hr.Email,
		},
	}
}

func (suite *PaymentServiceTestSuite) TestConfirmPayment_Success() {
	ctx := context.Background()
	intent := suite.succeededIntent()

	suite.mockGateway.On("RetrieveIntent", ctx, intent.IntentID).Return(intent, nil).Once()
	suite.mockRepo.On("FindPackageByID", ctx, suite.pkg.PackageID).Return(suite.pkg, nil).Once()
	suite.mockRepo.On("ConfirmUpgrade", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.TransactionID == intent.IntentID &&
			p.HREmail == suite.hr.Email &&
			p.EmployeeLimit == suite.pkg.EmployeeLimit &&
			p.Status == domain.PaymentCompleted
	})).Return(nil).Once()

	payment, err := suite.service.ConfirmPayment(ctx, suite.hr, intent.IntentID)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Equal(suite.pkg.Name, payment.PackageName)
	suite.True(payment.Amount.Equal(suite.pkg.Price))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestConfirmPayment_NotSucceeded() {
	ctx := context.Background()
	intent := suite.succeededIntent()
	intent.Succeeded = false

	suite.mockGateway.On("RetrieveIntent", ctx, intent.IntentID).Return(intent, nil).Once()

	payment, err := suite.service.ConfirmPayment(ctx, suite.hr, intent.IntentID)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrUnavailable)
	suite.mockRepo.AssertNotCalled(suite.T(), "ConfirmUpgrade")
}

func (suite *PaymentServiceTestSuite) TestConfirmPayment_WrongTenant() {
	ctx := context.Background()
	intent := suite.succeededIntent()
	intent.Metadata["hr_email"] = "other-hr@rival.example"

	suite.mockGateway.On("RetrieveIntent", ctx, intent.IntentID).Return(intent, nil).Once()

	payment, err := suite.service.ConfirmPayment(ctx, suite.hr, intent.IntentID)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "ConfirmUpgrade")
}

func (suite *PaymentServiceTestSuite) TestConfirmPayment_Replay() {
	ctx := context.Background()
	intent := suite.succeededIntent()
	dupErr := apperrors.NewConflictError("payment pi_123 is already recorded")

	suite.mockGateway.On("RetrieveIntent", ctx, intent.IntentID).Return(intent, nil).Once()
	suite.mockRepo.On("FindPackageByID", ctx, suite.pkg.PackageID).Return(suite.pkg, nil).Once()
	suite.mockRepo.On("ConfirmUpgrade", ctx, mock.AnythingOfType("domain.Payment")).Return(dupErr).Once()

	payment, err := suite.service.ConfirmPayment(ctx, suite.hr, intent.IntentID)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *PaymentServiceTestSuite) TestListPackages_Success() {
	ctx := context.Background()
	expected := []domain.Package{*suite.pkg}

	suite.mockRepo.On("ListPackages", ctx).Return(expected, nil).Once()

	packages, err := suite.service.ListPackages(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, packages)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
