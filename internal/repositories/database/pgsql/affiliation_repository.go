package pgsql

import (
	"context"
	"time"

	"github.com/assetverse/assetverse_backend/internal/apperrors"
	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portsrepo "github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAffiliationRepository struct {
	BaseRepository
}

// newPgxAffiliationRepository creates a new repository for tenant membership.
func newPgxAffiliationRepository(pool *pgxpool.Pool) portsrepo.AffiliationRepositoryFacade {
	return &PgxAffiliationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAffiliationRepository implements portsrepo.AffiliationRepositoryFacade
var _ portsrepo.AffiliationRepositoryFacade = (*PgxAffiliationRepository)(nil)

func (r *PgxAffiliationRepository) FindActiveAffiliationByEmployee(ctx context.Context, employeeEmail string) (*domain.Affiliation, error) {
	query := `
		SELECT
			af.affiliation_id, af.employee_email, af.employee_name, af.hr_email,
			af.company_name, af.company_logo, af.affiliation_date, af.status
		FROM affiliations af
		WHERE lower(af.employee_email) = lower($1) AND af.status = 'active';
	`
	rows, err := r.Pool.Query(ctx, query, employeeEmail)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query affiliation", err)
	}
	defer rows.Close()
	affiliations, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Affiliation])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect affiliation rows", err)
	}
	if len(affiliations) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &affiliations[0], nil
}

func (r *PgxAffiliationRepository) ListUnaffiliatedEmployees(ctx context.Context) ([]domain.UnaffiliatedEmployee, error) {
	query := `
		SELECT u.user_id, u.name, u.email, u.profile_image AS photo
		FROM users u
		WHERE u.role = 'employee'
		  AND NOT EXISTS (
			SELECT 1 FROM affiliations af
			WHERE lower(af.employee_email) = lower(u.email) AND af.status = 'active'
		  )
		ORDER BY u.name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query unaffiliated employees", err)
	}
	defer rows.Close()
	employees, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.UnaffiliatedEmployee])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect unaffiliated employee rows", err)
	}
	return employees, nil
}

// CreateAffiliation wraps the shared insert-plus-slot logic in its own
// transaction for the explicit HR add-employee flow.
func (r *PgxAffiliationRepository) CreateAffiliation(ctx context.Context, affiliation domain.Affiliation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := createAffiliation(ctx, tx, affiliation); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// ListEmployeesWithCounts joins the per-employee held-asset count in one
// query instead of issuing a count per employee.
func (r *PgxAffiliationRepository) ListEmployeesWithCounts(ctx context.Context, hrEmail string) ([]domain.EmployeeSummary, error) {
	query := `
		SELECT
			u.user_id, u.name, u.email, u.profile_image, u.date_of_birth,
			COALESCE(h.held, 0)::int AS assets_count,
			af.affiliation_date AS join_date
		FROM affiliations af
		JOIN users u ON lower(u.email) = lower(af.employee_email)
		LEFT JOIN (
			SELECT employee_email, COUNT(*) AS held
			FROM assigned_assets
			WHERE hr_email = $1 AND status = 'assigned'
			GROUP BY employee_email
		) h ON lower(h.employee_email) = lower(u.email)
		WHERE af.hr_email = $1 AND af.status = 'active'
		ORDER BY af.affiliation_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, hrEmail)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query employees", err)
	}
	defer rows.Close()
	employees, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.EmployeeSummary])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect employee rows", err)
	}
	return employees, nil
}

func (r *PgxAffiliationRepository) ListCompaniesForEmployee(ctx context.Context, employeeEmail string) ([]domain.CompanySummary, error) {
	query := `
		SELECT
			af.affiliation_id, af.company_name AS name, af.company_logo AS logo,
			af.affiliation_date AS join_date
		FROM affiliations af
		WHERE lower(af.employee_email) = lower($1)
		ORDER BY af.affiliation_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, employeeEmail)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query companies", err)
	}
	defer rows.Close()
	companies, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.CompanySummary])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect company rows", err)
	}
	return companies, nil
}

func (r *PgxAffiliationRepository) ListTeamMembers(ctx context.Context, hrEmail string) ([]domain.TeamMember, error) {
	query := `
		SELECT
			u.user_id, u.name, u.email, u.profile_image AS photo,
			u.date_of_birth AS birthday
		FROM affiliations af
		JOIN users u ON lower(u.email) = lower(af.employee_email)
		WHERE af.hr_email = $1 AND af.status = 'active'
		ORDER BY u.name;
	`
	rows, err := r.Pool.Query(ctx, query, hrEmail)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query team members", err)
	}
	defer rows.Close()
	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.TeamMember])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect team member rows", err)
	}
	return members, nil
}

// DeactivateWithReturns removes an employee from the tenant. Their live
// assignments from this tenant are returned, each returned unit restores
// one availability on its asset, the originating requests close, and the
// tenant's employee slot frees up.
func (r *PgxAffiliationRepository) DeactivateWithReturns(ctx context.Context, hrEmail, employeeEmail string, when time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// 1. End the membership; only an active link qualifies.
	deactivateQuery := `
		UPDATE affiliations
		SET status = 'inactive'
		WHERE hr_email = $1 AND lower(employee_email) = lower($2) AND status = 'active';
	`
	tag, err := tx.Exec(ctx, deactivateQuery, hrEmail, employeeEmail)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate affiliation", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("no active affiliation for " + employeeEmail)
	}

	// 2. Return every unit the employee still holds from this tenant.
	returnQuery := `
		UPDATE assigned_assets
		SET status = 'returned', return_date = $3
		WHERE hr_email = $1 AND lower(employee_email) = lower($2) AND status = 'assigned'
		RETURNING asset_id, request_id;
	`
	rows, err := tx.Query(ctx, returnQuery, hrEmail, employeeEmail, when)
	if err != nil {
		return apperrors.NewAppError(500, "failed to return assignments", err)
	}
	type returned struct {
		assetID   string
		requestID string
	}
	var returnedRows []returned
	for rows.Next() {
		var rr returned
		if err := rows.Scan(&rr.assetID, &rr.requestID); err != nil {
			rows.Close()
			return apperrors.NewAppError(500, "failed to scan returned assignment", err)
		}
		returnedRows = append(returnedRows, rr)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return apperrors.NewAppError(500, "failed to read returned assignments", err)
	}

	// 3. Restore availability per returned unit and close its request.
	for _, rr := range returnedRows {
		if err := restoreAvailability(ctx, tx, rr.assetID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `UPDATE requests SET status = 'returned' WHERE request_id = $1;`, rr.requestID); err != nil {
			return apperrors.NewAppError(500, "failed to close request "+rr.requestID, err)
		}
	}

	// 4. Free the employee slot, never dipping below zero.
	slotQuery := `
		UPDATE users
		SET current_employees = current_employees - 1
		WHERE lower(email) = lower($1) AND role = 'hr' AND current_employees > 0;
	`
	if _, err := tx.Exec(ctx, slotQuery, hrEmail); err != nil {
		return apperrors.NewAppError(500, "failed to release employee slot", err)
	}

	return r.Commit(ctx, tx)
}
