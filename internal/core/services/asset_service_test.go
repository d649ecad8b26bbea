package services_test

import (
	"context"
	"testing"

	"github.com/assetverse/assetverse_backend/internal/apperrors"
	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portsrepo "github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
	portssvc "github.com/assetverse/assetverse_backend/internal/core/ports/services"
	"github.com/assetverse/assetverse_backend/internal/core/services"
	"github.com/assetverse/assetverse_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AssetRepository ---
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListAssetsByHR(ctx context.Context, hrEmail string, filters portsrepo.AssetListFilters) ([]domain.Asset, int64, error) {
	args := m.Called(ctx, hrEmail, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Asset), args.Get(1).(int64), args.Error(2)
}

func (m *MockAssetRepository) ListAllAssets(ctx context.Context, filters portsrepo.AssetListFilters) ([]domain.Asset, int64, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Asset), args.Get(1).(int64), args.Error(2)
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) UpdateAssetDetails(ctx context.Context, assetID, hrEmail string, asset domain.Asset) error {
	args := m.Called(ctx, assetID, hrEmail, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) DeleteAsset(ctx context.Context, assetID, hrEmail string) error {
	args := m.Called(ctx, assetID, hrEmail)
	return args.Error(0)
}

// --- Mock AffiliationReader ---
type MockAffiliationReader struct {
	mock.Mock
}

func (m *MockAffiliationReader) FindActiveAffiliationByEmployee(ctx context.Context, employeeEmail string) (*domain.Affiliation, error) {
	args := m.Called(ctx, employeeEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Affiliation), args.Error(1)
}

func (m *MockAffiliationReader) ListUnaffiliatedEmployees(ctx context.Context) ([]domain.UnaffiliatedEmployee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UnaffiliatedEmployee), args.Error(1)
}

func (m *MockAffiliationReader) ListEmployeesWithCounts(ctx context.Context, hrEmail string) ([]domain.EmployeeSummary, error) {
	args := m.Called(ctx, hrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeSummary), args.Error(1)
}

func (m *MockAffiliationReader) ListCompaniesForEmployee(ctx context.Context, employeeEmail string) ([]domain.CompanySummary, error) {
	args := m.Called(ctx, employeeEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanySummary), args.Error(1)
}

func (m *MockAffiliationReader) ListTeamMembers(ctx context.Context, hrEmail string) ([]domain.TeamMember, error) {
	args := m.Called(ctx, hrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}

// --- Test Suite ---
type AssetServiceTestSuite struct {
	suite.Suite
	mockAssetRepo       *MockAssetRepository
	mockAffiliationRepo *MockAffiliationReader
	service             portssvc.AssetSvcFacade
	hr                  *domain.User
}

func (suite *AssetServiceTestSuite) SetupTest() {
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockAffiliationRepo = new(MockAffiliationReader)
	suite.service = services.NewAssetService(suite.mockAssetRepo, suite.mockAffiliationRepo)
	suite.hr = &domain.User{
		UserID:      uuid.NewString(),
		Email:       "hr@acme.example",
		Role:        domain.RoleHR,
		CompanyName: "Acme Corp",
	}
}

// --- Test Cases ---

func (suite *AssetServiceTestSuite) TestCreateAsset_Success() {
	ctx := context.Background()
	req := dto.CreateAssetRequest{
		ProductName:     "MacBook Pro",
		ProductType:     "laptop",
		ProductQuantity: 10,
	}

	suite.mockAssetRepo.On("SaveAsset", ctx, mock.MatchedBy(func(a domain.Asset) bool {
		return a.ProductName == req.ProductName &&
			a.AvailableQuantity == req.ProductQuantity &&
			a.HREmail == suite.hr.Email &&
			a.CompanyName == suite.hr.CompanyName
	})).Return(nil).Once()

	asset, err := suite.service.CreateAsset(ctx, suite.hr, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(asset)
	suite.Equal(req.ProductQuantity, asset.AvailableQuantity)
	suite.mockAssetRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestGetAssetByID_WrongTenant() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := &domain.Asset{
		AssetID: assetID,
		HREmail: "other-hr@rival.example",
	}

	suite.mockAssetRepo.On("FindAssetByID", ctx, assetID).Return(asset, nil).Once()

	got, err := suite.service.GetAssetByID(ctx, assetID, suite.hr.Email)

	suite.Require().Error(err)
	suite.Nil(got)
	// Cross-tenant reads look like a missing asset, not a permission error.
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AssetServiceTestSuite) TestListAvailableAssets_AffiliatedEmployee() {
	ctx := context.Background()
	employeeEmail := "employee@acme.example"
	affiliation := &domain.Affiliation{
		HREmail: suite.hr.Email,
		Status:  domain.AffiliationActive,
	}
	filters := portsrepo.AssetListFilters{OnlyAvailable: true}
	expected := []domain.Asset{{AssetID: uuid.NewString(), HREmail: suite.hr.Email}}

	suite.mockAffiliationRepo.On("FindActiveAffiliationByEmployee", ctx, employeeEmail).Return(affiliation, nil).Once()
	suite.mockAssetRepo.On("ListAssetsByHR", ctx, suite.hr.Email, filters).Return(expected, int64(1), nil).Once()

	assets, total, err := suite.service.ListAvailableAssets(ctx, employeeEmail, filters)

	suite.Require().NoError(err)
	suite.Equal(expected, assets)
	suite.Equal(int64(1), total)
	suite.mockAssetRepo.AssertNotCalled(suite.T(), "ListAllAssets")
}

func (suite *AssetServiceTestSuite) TestListAvailableAssets_UnaffiliatedSeesEverything() {
	ctx := context.Background()
	employeeEmail := "newcomer@example.com"
	filters := portsrepo.AssetListFilters{}
	expected := []domain.Asset{
		{AssetID: uuid.NewString(), HREmail: suite.hr.Email},
		{AssetID: uuid.NewString(), HREmail: "other-hr@rival.example"},
	}

	suite.mockAffiliationRepo.On("FindActiveAffiliationByEmployee", ctx, employeeEmail).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAssetRepo.On("ListAllAssets", ctx, filters).Return(expected, int64(2), nil).Once()

	assets, total, err := suite.service.ListAvailableAssets(ctx, employeeEmail, filters)

	suite.Require().NoError(err)
	suite.Len(assets, 2)
	suite.Equal(int64(2), total)
	suite.mockAssetRepo.AssertNotCalled(suite.T(), "ListAssetsByHR")
}

func (suite *AssetServiceTestSuite) TestUpdateAsset_PatchesAndRereads() {
	ctx := context.Background()
	assetID := uuid.NewString()
	existing := &domain.Asset{
		AssetID:           assetID,
		ProductName:       "Old Name",
		ProductQuantity:   10,
		AvailableQuantity: 4,
		HREmail:           suite.hr.Email,
	}
	afterUpdate := &domain.Asset{
		AssetID:           assetID,
		ProductName:       "New Name",
		ProductQuantity:   12,
		AvailableQuantity: 6,
		HREmail:           suite.hr.Email,
	}
	newName := "New Name"
	newQuantity := 12
	req := dto.UpdateAssetRequest{
		ProductName:     &newName,
		ProductQuantity: &newQuantity,
	}

	suite.mockAssetRepo.On("FindAssetByID", ctx, assetID).Return(existing, nil).Once()
	suite.mockAssetRepo.On("UpdateAssetDetails", ctx, assetID, suite.hr.Email, mock.MatchedBy(func(a domain.Asset) bool {
		return a.ProductName == newName && a.ProductQuantity == newQuantity
	})).Return(nil).Once()
	suite.mockAssetRepo.On("FindAssetByID", ctx, assetID).Return(afterUpdate, nil).Once()

	updated, err := suite.service.UpdateAsset(ctx, assetID, suite.hr.Email, req)

	suite.Require().NoError(err)
	suite.Equal(6, updated.AvailableQuantity)
	suite.mockAssetRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestUpdateAsset_QuantityBelowAssigned() {
	ctx := context.Background()
	assetID := uuid.NewString()
	existing := &domain.Asset{
		AssetID:           assetID,
		ProductQuantity:   10,
		AvailableQuantity: 2,
		HREmail:           suite.hr.Email,
	}
	newQuantity := 1
	req := dto.UpdateAssetRequest{ProductQuantity: &newQuantity}
	conflictErr := apperrors.NewLimitReachedError("cannot reduce quantity below the number of assigned units")

	suite.mockAssetRepo.On("FindAssetByID", ctx, assetID).Return(existing, nil).Once()
	suite.mockAssetRepo.On("UpdateAssetDetails", ctx, assetID, suite.hr.Email, mock.AnythingOfType("domain.Asset")).Return(conflictErr).Once()

	updated, err := suite.service.UpdateAsset(ctx, assetID, suite.hr.Email, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *AssetServiceTestSuite) TestDeleteAsset_Success() {
	ctx := context.Background()
	assetID := uuid.NewString()

	suite.mockAssetRepo.On("DeleteAsset", ctx, assetID, suite.hr.Email).Return(nil).Once()

	err := suite.service.DeleteAsset(ctx, assetID, suite.hr.Email)

	suite.Require().NoError(err)
	suite.mockAssetRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestDeleteAsset_NotFound() {
	ctx := context.Background()
	assetID := uuid.NewString()

	suite.mockAssetRepo.On("DeleteAsset", ctx, assetID, suite.hr.Email).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAsset(ctx, assetID, suite.hr.Email)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Suite ---
func TestAssetService(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}
