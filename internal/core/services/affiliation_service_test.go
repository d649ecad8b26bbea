package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/assetverse/assetverse_backend/internal/apperrors"
	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portssvc "github.com/assetverse/assetverse_backend/internal/core/ports/services"
	"github.com/assetverse/assetverse_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AffiliationRepository ---
type MockAffiliationRepository struct {
	mock.Mock
}

func (m *MockAffiliationRepository) FindActiveAffiliationByEmployee(ctx context.Context, employeeEmail string) (*domain.Affiliation, error) {
	args := m.Called(ctx, employeeEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Affiliation), args.Error(1)
}

func (m *MockAffiliationRepository) ListUnaffiliatedEmployees(ctx context.Context) ([]domain.UnaffiliatedEmployee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UnaffiliatedEmployee), args.Error(1)
}

func (m *MockAffiliationRepository) ListEmployeesWithCounts(ctx context.Context, hrEmail string) ([]domain.EmployeeSummary, error) {
	args := m.Called(ctx, hrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeSummary), args.Error(1)
}

func (m *MockAffiliationRepository) ListCompaniesForEmployee(ctx context.Context, employeeEmail string) ([]domain.CompanySummary, error) {
	args := m.Called(ctx, employeeEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanySummary), args.Error(1)
}

func (m *MockAffiliationRepository) ListTeamMembers(ctx context.Context, hrEmail string) ([]domain.TeamMember, error) {
	args := m.Called(ctx, hrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}

func (m *MockAffiliationRepository) CreateAffiliation(ctx context.Context, affiliation domain.Affiliation) error {
	args := m.Called(ctx, affiliation)
	return args.Error(0)
}

func (m *MockAffiliationRepository) DeactivateWithReturns(ctx context.Context, hrEmail, employeeEmail string, when time.Time) error {
	args := m.Called(ctx, hrEmail, employeeEmail, when)
	return args.Error(0)
}

// --- Test Suite ---
type AffiliationServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockAffiliationRepository
	mockUserReader *MockUserReader
	service        portssvc.AffiliationSvcFacade
	hr             *domain.User
}

func (suite *AffiliationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAffiliationRepository)
	suite.mockUserReader = new(MockUserReader)
	suite.service = services.NewAffiliationService(suite.mockRepo, suite.mockUserReader)
	suite.hr = &domain.User{
		UserID:      uuid.NewString(),
		Email:       "hr@acme.example",
		Role:        domain.RoleHR,
		CompanyName: "Acme Corp",
	}
}

// --- Test Cases ---

func (suite *AffiliationServiceTestSuite) TestAddEmployee_Success() {
	ctx := context.Background()
	employee := &domain.User{
		UserID: uuid.NewString(),
		Name:   "New Hire",
		Email:  "hire@example.com",
		Role:   domain.RoleEmployee,
	}

	suite.mockUserReader.On("FindUserByEmail", ctx, employee.Email).Return(employee, nil).Once()
	suite.mockRepo.On("FindActiveAffiliationByEmployee", ctx, employee.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("CreateAffiliation", ctx, mock.MatchedBy(func(a domain.Affiliation) bool {
		return a.EmployeeEmail == employee.Email &&
			a.HREmail == suite.hr.Email &&
			a.CompanyName == suite.hr.CompanyName &&
			a.Status == domain.AffiliationActive
	})).Return(nil).Once()

	affiliation, err := suite.service.AddEmployee(ctx, suite.hr, employee.Email)

	suite.Require().NoError(err)
	suite.Require().NotNil(affiliation)
	suite.Equal(employee.Name, affiliation.EmployeeName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AffiliationServiceTestSuite) TestAddEmployee_UnknownAccount() {
	ctx := context.Background()

	suite.mockUserReader.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	affiliation, err := suite.service.AddEmployee(ctx, suite.hr, "ghost@example.com")

	suite.Require().Error(err)
	suite.Nil(affiliation)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateAffiliation")
}

func (suite *AffiliationServiceTestSuite) TestAddEmployee_TargetIsHR() {
	ctx := context.Background()
	otherHR := &domain.User{
		UserID: uuid.NewString(),
		Email:  "other-hr@rival.example",
		Role:   domain.RoleHR,
	}

	suite.mockUserReader.On("FindUserByEmail", ctx, otherHR.Email).Return(otherHR, nil).Once()

	affiliation, err := suite.service.AddEmployee(ctx, suite.hr, otherHR.Email)

	suite.Require().Error(err)
	suite.Nil(affiliation)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateAffiliation")
}

func (suite *AffiliationServiceTestSuite) TestAddEmployee_AlreadyInCompany() {
	ctx := context.Background()
	employee := &domain.User{
		UserID: uuid.NewString(),
		Email:  "hire@example.com",
		Role:   domain.RoleEmployee,
	}
	existing := &domain.Affiliation{HREmail: suite.hr.Email, Status: domain.AffiliationActive}

	suite.mockUserReader.On("FindUserByEmail", ctx, employee.Email).Return(employee, nil).Once()
	suite.mockRepo.On("FindActiveAffiliationByEmployee", ctx, employee.Email).Return(existing, nil).Once()

	affiliation, err := suite.service.AddEmployee(ctx, suite.hr, employee.Email)

	suite.Require().Error(err)
	suite.Nil(affiliation)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateAffiliation")
}

func (suite *AffiliationServiceTestSuite) TestAddEmployee_AffiliatedElsewhere() {
	ctx := context.Background()
	employee := &domain.User{
		UserID: uuid.NewString(),
		Email:  "hire@example.com",
		Role:   domain.RoleEmployee,
	}
	foreign := &domain.Affiliation{HREmail: "other-hr@rival.example", Status: domain.AffiliationActive}

	suite.mockUserReader.On("FindUserByEmail", ctx, employee.Email).Return(employee, nil).Once()
	suite.mockRepo.On("FindActiveAffiliationByEmployee", ctx, employee.Email).Return(foreign, nil).Once()

	affiliation, err := suite.service.AddEmployee(ctx, suite.hr, employee.Email)

	suite.Require().Error(err)
	suite.Nil(affiliation)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AffiliationServiceTestSuite) TestAddEmployee_LimitReached() {
	ctx := context.Background()
	employee := &domain.User{
		UserID: uuid.NewString(),
		Email:  "hire@example.com",
		Role:   domain.RoleEmployee,
	}
	limitErr := apperrors.NewLimitReachedError("employee limit reached, upgrade the package to add more employees")

	suite.mockUserReader.On("FindUserByEmail", ctx, employee.Email).Return(employee, nil).Once()
	suite.mockRepo.On("FindActiveAffiliationByEmployee", ctx, employee.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("CreateAffiliation", ctx, mock.AnythingOfType("domain.Affiliation")).Return(limitErr).Once()

	affiliation, err := suite.service.AddEmployee(ctx, suite.hr, employee.Email)

	suite.Require().Error(err)
	suite.Nil(affiliation)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *AffiliationServiceTestSuite) TestListTeamMembers_Unaffiliated() {
	ctx := context.Background()

	suite.mockRepo.On("FindActiveAffiliationByEmployee", ctx, "loner@example.com").Return(nil, apperrors.ErrNotFound).Once()

	team, err := suite.service.ListTeamMembers(ctx, "loner@example.com")

	suite.Require().NoError(err)
	suite.Empty(team)
	suite.NotNil(team)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListTeamMembers")
}

func (suite *AffiliationServiceTestSuite) TestListTeamMembers_Affiliated() {
	ctx := context.Background()
	affiliation := &domain.Affiliation{HREmail: suite.hr.Email, Status: domain.AffiliationActive}
	expected := []domain.TeamMember{{Name: "Teammate", Email: "mate@acme.example"}}

	suite.mockRepo.On("FindActiveAffiliationByEmployee", ctx, "employee@acme.example").Return(affiliation, nil).Once()
	suite.mockRepo.On("ListTeamMembers", ctx, suite.hr.Email).Return(expected, nil).Once()

	team, err := suite.service.ListTeamMembers(ctx, "employee@acme.example")

	suite.Require().NoError(err)
	suite.Equal(expected, team)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AffiliationServiceTestSuite) TestRemoveEmployee_Success() {
	ctx := context.Background()

	suite.mockRepo.On("DeactivateWithReturns", ctx, suite.hr.Email, "leaver@example.com", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.RemoveEmployee(ctx, suite.hr.Email, "leaver@example.com")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AffiliationServiceTestSuite) TestRemoveEmployee_NotAffiliated() {
	ctx := context.Background()

	suite.mockRepo.On("DeactivateWithReturns", ctx, suite.hr.Email, "stranger@example.com", mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound).Once()

	err := suite.service.RemoveEmployee(ctx, suite.hr.Email, "stranger@example.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Suite ---
func TestAffiliationService(t *testing.T) {
	suite.Run(t, new(AffiliationServiceTestSuite))
}
