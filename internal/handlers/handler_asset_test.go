package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/assetverse/assetverse_backend/internal/apperrors"
	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portsrepo "github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
	portssvc "github.com/assetverse/assetverse_backend/internal/core/ports/services"
	"github.com/assetverse/assetverse_backend/internal/dto"
	"github.com/assetverse/assetverse_backend/internal/handlers"
	"github.com/assetverse/assetverse_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AssetService ---
type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) GetAssetByID(ctx context.Context, assetID, hrEmail string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID, hrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetService) ListAssets(ctx context.Context, hrEmail string, filters portsrepo.AssetListFilters) ([]domain.Asset, int64, error) {
	args := m.Called(ctx, hrEmail, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Asset), args.Get(1).(int64), args.Error(2)
}

func (m *MockAssetService) ListAvailableAssets(ctx context.Context, employeeEmail string, filters portsrepo.AssetListFilters) ([]domain.Asset, int64, error) {
	args := m.Called(ctx, employeeEmail, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Asset), args.Get(1).(int64), args.Error(2)
}

func (m *MockAssetService) CreateAsset(ctx context.Context, hr *domain.User, req dto.CreateAssetRequest) (*domain.Asset, error) {
	args := m.Called(ctx, hr, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetService) UpdateAsset(ctx context.Context, assetID string, hrEmail string, req dto.UpdateAssetRequest) (*domain.Asset, error) {
	args := m.Called(ctx, assetID, hrEmail, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetService) DeleteAsset(ctx context.Context, assetID, hrEmail string) error {
	args := m.Called(ctx, assetID, hrEmail)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.AssetSvcFacade = (*MockAssetService)(nil)

// --- Mock UserReaderSvc (for the role guard) ---
type MockUserReaderService struct {
	mock.Mock
}

func (m *MockUserReaderService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReaderService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite ---
type AssetHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockAssetService *MockAssetService
	mockUserService  *MockUserReaderService
	jwtSecret        string
	hr               *domain.User
}

func (suite *AssetHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "avs-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AssetHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockAssetService = new(MockAssetService)
	suite.mockUserService = new(MockUserReaderService)
	suite.hr = &domain.User{
		UserID:      uuid.NewString(),
		Email:       "hr@acme.example",
		Role:        domain.RoleHR,
		CompanyName: "Acme Corp",
	}

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))
	hrGroup := suite.router.Group("/api/v1/hr", middleware.RequireRole(suite.mockUserService, domain.RoleHR))
	handlers.RegisterAssetRoutes(hrGroup, suite.mockAssetService)
}

// --- Test Cases ---

func (suite *AssetHandlerTestSuite) TestListAssets_Success() {
	expected := []domain.Asset{
		{AssetID: uuid.NewString(), ProductName: "MacBook Pro", HREmail: suite.hr.Email},
	}

	suite.mockUserService.On("GetUserByID", mock.Anything, suite.hr.UserID).Return(suite.hr, nil).Once()
	suite.mockAssetService.On("ListAssets", mock.Anything, suite.hr.Email, mock.MatchedBy(func(f portsrepo.AssetListFilters) bool {
		return f.Page == 1 && f.Limit == 10
	})).Return(expected, int64(1), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/hr/assets", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.hr.UserID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ListAssetsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Assets, 1)
	suite.Equal(expected[0].AssetID, body.Assets[0].AssetID)
	suite.Equal(int64(1), body.Total)
	suite.mockAssetService.AssertExpectations(suite.T())
}

func (suite *AssetHandlerTestSuite) TestCreateAsset_Success() {
	payload := dto.CreateAssetRequest{
		ProductName:     "Dell Monitor",
		ProductType:     "monitor",
		ProductQuantity: 5,
	}
	created := &domain.Asset{
		AssetID:           uuid.NewString(),
		ProductName:       payload.ProductName,
		ProductType:       payload.ProductType,
		ProductQuantity:   payload.ProductQuantity,
		AvailableQuantity: payload.ProductQuantity,
		HREmail:           suite.hr.Email,
	}

	suite.mockUserService.On("GetUserByID", mock.Anything, suite.hr.UserID).Return(suite.hr, nil).Once()
	suite.mockAssetService.On("CreateAsset", mock.Anything, suite.hr, payload).Return(created, nil).Once()

	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/hr/assets", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.hr.UserID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AssetResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.AssetID, resp.AssetID)
	suite.Equal(payload.ProductQuantity, resp.AvailableQuantity)
	suite.mockAssetService.AssertExpectations(suite.T())
}

func (suite *AssetHandlerTestSuite) TestGetAsset_NotFound() {
	assetID := uuid.NewString()

	suite.mockUserService.On("GetUserByID", mock.Anything, suite.hr.UserID).Return(suite.hr, nil).Once()
	suite.mockAssetService.On("GetAssetByID", mock.Anything, assetID, suite.hr.Email).Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/hr/assets/"+assetID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.hr.UserID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AssetHandlerTestSuite) TestListAssets_EmployeeForbidden() {
	employee := &domain.User{
		UserID: uuid.NewString(),
		Email:  "employee@example.com",
		Role:   domain.RoleEmployee,
	}

	suite.mockUserService.On("GetUserByID", mock.Anything, employee.UserID).Return(employee, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/hr/assets", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(employee.UserID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockAssetService.AssertNotCalled(suite.T(), "ListAssets")
}

func (suite *AssetHandlerTestSuite) TestListAssets_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/hr/assets", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAssetService.AssertNotCalled(suite.T(), "ListAssets")
}

// --- Run Test Suite ---
func TestAssetHandler(t *testing.T) {
	suite.Run(t, new(AssetHandlerTestSuite))
}
