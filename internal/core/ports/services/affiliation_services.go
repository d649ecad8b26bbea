package services

import (
	"context"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
)

// AffiliationReaderSvc defines read operations over tenant membership
type AffiliationReaderSvc interface {
	// ListEmployees retrieves a tenant's active employees with the count
	// of assets each currently holds.
	ListEmployees(ctx context.Context, hrEmail string) ([]domain.EmployeeSummary, error)

	// ListMyCompanies retrieves the tenants an employee is or was part of.
	ListMyCompanies(ctx context.Context, employeeEmail string) ([]domain.CompanySummary, error)

	// ListTeamMembers retrieves the colleagues of an employee within
	// their current tenant.
	ListTeamMembers(ctx context.Context, employeeEmail string) ([]domain.TeamMember, error)

	// GetActiveAffiliation retrieves the employee's live affiliation.
	GetActiveAffiliation(ctx context.Context, employeeEmail string) (*domain.Affiliation, error)

	// ListUnaffiliatedCandidates retrieves employees HR can add: accounts
	// with no live affiliation anywhere.
	ListUnaffiliatedCandidates(ctx context.Context) ([]domain.UnaffiliatedEmployee, error)
}

// AffiliationWriterSvc defines write operations over tenant membership
type AffiliationWriterSvc interface {
	// AddEmployee affiliates an unattached employee with the tenant,
	// consuming one employee slot.
	AddEmployee(ctx context.Context, hr *domain.User, employeeEmail string) (*domain.Affiliation, error)

	// RemoveEmployee ends an employee's affiliation with the tenant,
	// returning all assets they hold from it.
	RemoveEmployee(ctx context.Context, hrEmail, employeeEmail string) error
}

// AffiliationSvcFacade combines all membership service interfaces
type AffiliationSvcFacade interface {
	AffiliationReaderSvc
	AffiliationWriterSvc
}
