package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/assetverse/assetverse_backend/internal/apperrors"
	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portssvc "github.com/assetverse/assetverse_backend/internal/core/ports/services"
	"github.com/assetverse/assetverse_backend/internal/core/services"
	"github.com/assetverse/assetverse_backend/internal/dto"
	"github.com/assetverse/assetverse_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshTokenDetails(ctx context.Context, userID string, tokenHash *string, expiryTime *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserLogin(ctx context.Context, userID string, loginTime time.Time) error {
	args := m.Called(ctx, userID, loginTime)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRegisterEmployee_Success() {
	ctx := context.Background()
	req := dto.RegisterEmployeeRequest{
		Name:     "Test Employee",
		Email:    "employee@example.com",
		Password: "supersecret",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.Role == domain.RoleEmployee &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password &&
			u.ProfileImage != "" &&
			u.CreatedBy == u.UserID
	})).Return(nil).Once()

	user, err := suite.service.RegisterEmployee(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(req.Name, user.Name)
	suite.Equal(domain.RoleEmployee, user.Role)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterEmployee_InvalidDateOfBirth() {
	ctx := context.Background()
	req := dto.RegisterEmployeeRequest{
		Name:        "Bad Date",
		Email:       "bad@example.com",
		Password:    "supersecret",
		DateOfBirth: "31-12-1990",
	}

	user, err := suite.service.RegisterEmployee(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestRegisterEmployee_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterEmployeeRequest{
		Name:     "Dup Employee",
		Email:    "dup@example.com",
		Password: "supersecret",
	}
	dupErr := apperrors.NewConflictError("email dup@example.com is already registered")

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(dupErr).Once()

	user, err := suite.service.RegisterEmployee(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterHR_Success() {
	ctx := context.Background()
	req := dto.RegisterHRRequest{
		Name:        "Test HR",
		Email:       "hr@example.com",
		Password:    "supersecret",
		CompanyName: "Acme Corp",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.Role == domain.RoleHR &&
			u.CompanyName == req.CompanyName &&
			u.PackageLimit == domain.DefaultPackageLimit &&
			u.Subscription == domain.SubscriptionBasic
	})).Return(nil).Once()

	user, err := suite.service.RegisterHR(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.True(user.IsHR())
	suite.Equal(domain.DefaultPackageLimit, user.PackageLimit)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "correct-horse"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "login@example.com",
		PasswordHash: hash,
	}

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockRepo.On("MarkUserLogin", ctx, user.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Email, password)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("right-password")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "login@example.com",
		PasswordHash: hash,
	}

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Email, "wrong-password")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkUserLogin")
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.AuthenticateUser(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(got)
	// Unknown account and bad password look identical to the caller.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_NoLocalPassword() {
	ctx := context.Background()
	user := &domain.User{
		UserID: uuid.NewString(),
		Email:  "google-only@example.com",
	}

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Email, "anything")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateOrRegisterGoogleUser_Existing() {
	ctx := context.Background()
	user := &domain.User{
		UserID: uuid.NewString(),
		Email:  "existing@example.com",
	}
	info := domain.GoogleUserInfo{Email: user.Email, Name: "Existing"}

	suite.mockRepo.On("FindUserByEmail", ctx, info.Email).Return(user, nil).Once()
	suite.mockRepo.On("MarkUserLogin", ctx, user.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	got, err := suite.service.AuthenticateOrRegisterGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestAuthenticateOrRegisterGoogleUser_FirstSignIn() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{
		Email:   "new@example.com",
		Name:    "New Googler",
		Picture: "https://example.com/p.png",
	}

	suite.mockRepo.On("FindUserByEmail", ctx, info.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == info.Email &&
			u.Role == domain.RoleEmployee &&
			u.PasswordHash == "" &&
			u.ProfileImage == info.Picture &&
			u.LastLoginAt != nil
	})).Return(nil).Once()

	got, err := suite.service.AuthenticateOrRegisterGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.Equal(domain.RoleEmployee, got.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateProfile_EmployeeCannotSetCompanyFields() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.User{
		UserID: userID,
		Name:   "Old Name",
		Role:   domain.RoleEmployee,
	}
	newName := "New Name"
	companyName := "Sneaky Corp"
	req := dto.UpdateProfileRequest{
		Name:        &newName,
		CompanyName: &companyName,
	}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Name == newName && u.CompanyName == ""
	})).Return(nil).Once()

	updated, err := suite.service.UpdateProfile(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Empty(updated.CompanyName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestClearRefreshToken() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("UpdateRefreshTokenDetails", ctx, userID, (*string)(nil), (*time.Time)(nil)).Return(nil).Once()

	err := suite.service.ClearRefreshToken(ctx, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("FindUserByID", ctx, "some-id").Return(nil, expectedErr).Once()

	user, err := suite.service.GetUserByID(ctx, "some-id")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
