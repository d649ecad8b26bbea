package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/assetverse/assetverse_backend/internal/apperrors"
	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portsrepo "github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
	portssvc "github.com/assetverse/assetverse_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

// affiliationService manages the employee-to-tenant membership registry.
type affiliationService struct {
	BaseService
	affiliationRepo portsrepo.AffiliationRepositoryFacade
	userRepo        portsrepo.UserReader
}

// NewAffiliationService creates a new affiliation service.
func NewAffiliationService(affiliationRepo portsrepo.AffiliationRepositoryFacade, userRepo portsrepo.UserReader) portssvc.AffiliationSvcFacade {
	return &affiliationService{
		affiliationRepo: affiliationRepo,
		userRepo:        userRepo,
	}
}

// Ensure affiliationService implements the portssvc.AffiliationSvcFacade interface
var _ portssvc.AffiliationSvcFacade = (*affiliationService)(nil)

func (s *affiliationService) ListEmployees(ctx context.Context, hrEmail string) ([]domain.EmployeeSummary, error) {
	return s.affiliationRepo.ListEmployeesWithCounts(ctx, hrEmail)
}

func (s *affiliationService) ListMyCompanies(ctx context.Context, employeeEmail string) ([]domain.CompanySummary, error) {
	return s.affiliationRepo.ListCompaniesForEmployee(ctx, employeeEmail)
}

// ListTeamMembers resolves the employee's tenant through their live
// affiliation. An unaffiliated employee simply has no team yet.
func (s *affiliationService) ListTeamMembers(ctx context.Context, employeeEmail string) ([]domain.TeamMember, error) {
	affiliation, err := s.affiliationRepo.FindActiveAffiliationByEmployee(ctx, employeeEmail)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.TeamMember{}, nil
		}
		return nil, err
	}
	return s.affiliationRepo.ListTeamMembers(ctx, affiliation.HREmail)
}

func (s *affiliationService) GetActiveAffiliation(ctx context.Context, employeeEmail string) (*domain.Affiliation, error) {
	return s.affiliationRepo.FindActiveAffiliationByEmployee(ctx, employeeEmail)
}

func (s *affiliationService) ListUnaffiliatedCandidates(ctx context.Context) ([]domain.UnaffiliatedEmployee, error) {
	return s.affiliationRepo.ListUnaffiliatedEmployees(ctx)
}

func (s *affiliationService) AddEmployee(ctx context.Context, hr *domain.User, employeeEmail string) (*domain.Affiliation, error) {
	employee, err := s.userRepo.FindUserByEmail(ctx, employeeEmail)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("no account registered for " + employeeEmail)
		}
		return nil, err
	}
	if employee.IsHR() {
		return nil, fmt.Errorf("%w: cannot affiliate an HR account", apperrors.ErrValidation)
	}

	existing, err := s.affiliationRepo.FindActiveAffiliationByEmployee(ctx, employeeEmail)
	if err == nil {
		if existing.HREmail == hr.Email {
			return nil, apperrors.NewConflictError("employee is already part of your company")
		}
		return nil, apperrors.NewConflictError("employee is already affiliated with another company")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check affiliation: %w", err)
	}

	affiliation := domain.Affiliation{
		AffiliationID:   uuid.NewString(),
		EmployeeEmail:   employee.Email,
		EmployeeName:    employee.Name,
		HREmail:         hr.Email,
		CompanyName:     hr.CompanyName,
		CompanyLogo:     hr.CompanyLogo,
		AffiliationDate: time.Now(),
		Status:          domain.AffiliationActive,
	}

	if err := s.affiliationRepo.CreateAffiliation(ctx, affiliation); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Employee affiliated",
		slog.String("employee_email", employee.Email),
		slog.String("hr_email", hr.Email),
	)
	return &affiliation, nil
}

func (s *affiliationService) RemoveEmployee(ctx context.Context, hrEmail, employeeEmail string) error {
	if err := s.affiliationRepo.DeactivateWithReturns(ctx, hrEmail, employeeEmail, time.Now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "Employee removed from company",
		slog.String("employee_email", employeeEmail),
		slog.String("hr_email", hrEmail),
	)
	return nil
}
