package repositories

import (
	"context"
	"time"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
)

// AffiliationReader defines read operations for tenant membership
type AffiliationReader interface {
	// FindActiveAffiliationByEmployee retrieves the employee's live
	// affiliation, if any.
	FindActiveAffiliationByEmployee(ctx context.Context, employeeEmail string) (*domain.Affiliation, error)

	// ListUnaffiliatedEmployees retrieves all employee accounts with no
	// active affiliation to any tenant. Global, not tenant-scoped.
	ListUnaffiliatedEmployees(ctx context.Context) ([]domain.UnaffiliatedEmployee, error)

	// ListEmployeesWithCounts retrieves a tenant's active employees,
	// each with the number of assets they currently hold.
	ListEmployeesWithCounts(ctx context.Context, hrEmail string) ([]domain.EmployeeSummary, error)

	// ListCompaniesForEmployee retrieves the tenants an employee belongs
	// to, newest affiliation first.
	ListCompaniesForEmployee(ctx context.Context, employeeEmail string) ([]domain.CompanySummary, error)

	// ListTeamMembers retrieves all active employees of the tenant an
	// employee belongs to.
	ListTeamMembers(ctx context.Context, hrEmail string) ([]domain.TeamMember, error)
}

// AffiliationWriter defines write operations for tenant membership
type AffiliationWriter interface {
	// CreateAffiliation links an employee to a tenant and consumes one
	// employee slot in one transaction. Fails with a conflict error when
	// the limit is reached or the employee is already affiliated.
	CreateAffiliation(ctx context.Context, affiliation domain.Affiliation) error

	// DeactivateWithReturns ends an employee's affiliation with a tenant:
	// the affiliation goes inactive, every live assignment from that
	// tenant is returned with its availability restored, and the tenant's
	// employee count is decremented. Runs in one transaction.
	DeactivateWithReturns(ctx context.Context, hrEmail, employeeEmail string, when time.Time) error
}

// AffiliationRepositoryFacade combines all affiliation repository interfaces
type AffiliationRepositoryFacade interface {
	AffiliationReader
	AffiliationWriter
}
