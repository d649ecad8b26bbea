package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/assetverse/assetverse_backend/internal/apperrors"
	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portsrepo "github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkflowRepository struct {
	BaseRepository
}

// newPgxWorkflowRepository creates a new repository for the request and
// assignment lifecycle.
func newPgxWorkflowRepository(pool *pgxpool.Pool) portsrepo.WorkflowRepositoryFacade {
	return &PgxWorkflowRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxWorkflowRepository implements portsrepo.WorkflowRepositoryFacade
var _ portsrepo.WorkflowRepositoryFacade = (*PgxWorkflowRepository)(nil)

var FULL_REQUEST_SELECT_QUERY = `
SELECT
	r.request_id, r.asset_id, r.asset_name, r.asset_type, r.requester_name,
	r.requester_email, r.requester_photo, r.hr_email, r.company_name,
	r.request_date, r.approval_date, r.status, r.note, r.processed_by,
	r.rejection_reason, r.assignment_type
FROM requests r
`

func (r *PgxWorkflowRepository) getRequests(ctx context.Context, filterQuery string, args ...any) ([]domain.AssetRequest, error) {
	query := FULL_REQUEST_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query requests", err)
	}
	defer rows.Close()
	requests, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AssetRequest])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.AssetRequest{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect request rows", err)
	}
	return requests, nil
}

func (r *PgxWorkflowRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.AssetRequest, error) {
	requests, err := r.getRequests(ctx, `WHERE r.request_id = $1`, requestID)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, apperrors.NewNotFoundError("request " + requestID + " not found")
	}
	return &requests[0], nil
}

// requestFilterClause builds the filter tail for request listings. Args
// start at $2 since $1 is the scoping email.
func requestFilterClause(filters portsrepo.RequestListFilters, args *[]any) string {
	var sb strings.Builder
	if filters.Status != "" {
		*args = append(*args, filters.Status)
		fmt.Fprintf(&sb, " AND r.status = $%d", len(*args))
	}
	if filters.Search != "" {
		*args = append(*args, "%"+filters.Search+"%")
		fmt.Fprintf(&sb, " AND (r.requester_name ILIKE $%d OR r.requester_email ILIKE $%d)", len(*args), len(*args))
	}
	return sb.String()
}

func (r *PgxWorkflowRepository) listRequests(ctx context.Context, scopeColumn, email string, filters portsrepo.RequestListFilters) ([]domain.AssetRequest, int64, error) {
	args := []any{email}
	where := fmt.Sprintf("WHERE r.%s = $1", scopeColumn) + requestFilterClause(filters, &args)

	var total int64
	countQuery := `SELECT COUNT(*) FROM requests r ` + where
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count requests", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 10
	}
	page := filters.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)
	listClause := fmt.Sprintf("%s ORDER BY r.request_date DESC LIMIT $%d OFFSET $%d", where, len(args)-1, len(args))

	requests, err := r.getRequests(ctx, listClause, args...)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *PgxWorkflowRepository) ListRequestsByHR(ctx context.Context, hrEmail string, filters portsrepo.RequestListFilters) ([]domain.AssetRequest, int64, error) {
	return r.listRequests(ctx, "hr_email", hrEmail, filters)
}

func (r *PgxWorkflowRepository) ListRequestsByEmployee(ctx context.Context, employeeEmail string, filters portsrepo.RequestListFilters) ([]domain.AssetRequest, int64, error) {
	return r.listRequests(ctx, "requester_email", employeeEmail, filters)
}

func insertRequest(ctx context.Context, tx pgx.Tx, request domain.AssetRequest) error {
	query := `
		INSERT INTO requests (
			request_id, asset_id, asset_name, asset_type, requester_name,
			requester_email, requester_photo, hr_email, company_name,
			request_date, approval_date, status, note, processed_by,
			rejection_reason, assignment_type
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := tx.Exec(ctx, query,
		request.RequestID,
		request.AssetID,
		request.AssetName,
		request.AssetType,
		request.RequesterName,
		request.RequesterEmail,
		request.RequesterPhoto,
		request.HREmail,
		request.CompanyName,
		request.RequestDate,
		request.ApprovalDate,
		request.Status,
		request.Note,
		request.ProcessedBy,
		request.RejectionReason,
		request.AssignmentType,
	)
	return err
}

func (r *PgxWorkflowRepository) SaveRequest(ctx context.Context, request domain.AssetRequest) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertRequest(ctx, tx, request); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("a pending request for this asset already exists")
		}
		return apperrors.NewAppError(500, "failed to save request "+request.RequestID, err)
	}
	return r.Commit(ctx, tx)
}

var FULL_ASSIGNMENT_SELECT_QUERY = `
SELECT
	a.assignment_id, a.request_id, a.asset_id, a.asset_name, a.asset_image,
	a.asset_type, a.employee_email, a.employee_name, a.hr_email,
	a.company_name, a.assignment_date, a.return_date, a.status,
	a.assignment_type, a.assigned_by
FROM assigned_assets a
`

func (r *PgxWorkflowRepository) FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.AssignedAsset, error) {
	rows, err := r.Pool.Query(ctx, FULL_ASSIGNMENT_SELECT_QUERY+`WHERE a.assignment_id = $1`, assignmentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query assignment", err)
	}
	defer rows.Close()
	assignments, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AssignedAsset])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect assignment rows", err)
	}
	if len(assignments) == 0 {
		return nil, apperrors.NewNotFoundError("assignment " + assignmentID + " not found")
	}
	return &assignments[0], nil
}

func (r *PgxWorkflowRepository) ListAssignmentsByEmployee(ctx context.Context, employeeEmail string, filters portsrepo.AssetListFilters) ([]domain.AssignedAssetDetail, int64, error) {
	args := []any{employeeEmail}
	var sb strings.Builder
	sb.WriteString("WHERE a.employee_email = $1")
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		fmt.Fprintf(&sb, " AND a.asset_name ILIKE $%d", len(args))
	}
	if filters.ProductType != "" {
		args = append(args, filters.ProductType)
		fmt.Fprintf(&sb, " AND a.asset_type = $%d", len(args))
	}
	where := sb.String()

	var total int64
	countQuery := `SELECT COUNT(*) FROM assigned_assets a ` + where
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count assignments", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 10
	}
	page := filters.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	query := fmt.Sprintf(`
		SELECT
			a.assignment_id, a.request_id, a.asset_id, a.asset_name,
			a.asset_image, a.asset_type, a.employee_email, a.employee_name,
			a.hr_email, a.company_name, a.assignment_date, a.return_date,
			a.status, a.assignment_type, a.assigned_by,
			r.request_date, COALESCE(r.approval_date, a.assignment_date) AS approval_date
		FROM assigned_assets a
		JOIN requests r ON r.request_id = a.request_id
		%s
		ORDER BY a.assignment_date DESC
		LIMIT $%d OFFSET $%d;
	`, where, len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query assignments", err)
	}
	defer rows.Close()
	details, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AssignedAssetDetail])
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to collect assignment rows", err)
	}
	return details, total, nil
}

// consumeAvailability takes one unit of stock. The guard clause keeps the
// update from applying when nothing is left, which is how concurrent
// approvals of the last unit are serialized.
func consumeAvailability(ctx context.Context, tx pgx.Tx, assetID string) error {
	query := `
		UPDATE assets
		SET available_quantity = available_quantity - 1
		WHERE asset_id = $1 AND available_quantity > 0;
	`
	tag, err := tx.Exec(ctx, query, assetID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to consume asset availability", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewUnavailableError("asset has no available units")
	}
	return nil
}

// restoreAvailability gives one unit back, capped at the total quantity.
func restoreAvailability(ctx context.Context, tx pgx.Tx, assetID string) error {
	query := `
		UPDATE assets
		SET available_quantity = available_quantity + 1
		WHERE asset_id = $1 AND available_quantity < product_quantity;
	`
	if _, err := tx.Exec(ctx, query, assetID); err != nil {
		return apperrors.NewAppError(500, "failed to restore asset availability", err)
	}
	return nil
}

func insertAssignment(ctx context.Context, tx pgx.Tx, assignment domain.AssignedAsset) error {
	query := `
		INSERT INTO assigned_assets (
			assignment_id, request_id, asset_id, asset_name, asset_image,
			asset_type, employee_email, employee_name, hr_email, company_name,
			assignment_date, return_date, status, assignment_type, assigned_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, query,
		assignment.AssignmentID,
		assignment.RequestID,
		assignment.AssetID,
		assignment.AssetName,
		assignment.AssetImage,
		assignment.AssetType,
		assignment.EmployeeEmail,
		assignment.EmployeeName,
		assignment.HREmail,
		assignment.CompanyName,
		assignment.AssignmentDate,
		assignment.ReturnDate,
		assignment.Status,
		assignment.AssignmentType,
		assignment.AssignedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("employee already holds a unit of this asset")
		}
		return apperrors.NewAppError(500, "failed to save assignment "+assignment.AssignmentID, err)
	}
	return nil
}

// createAffiliation inserts the membership link and consumes one employee
// slot on the tenant. Both writes are guarded: the partial unique index
// rejects a second active affiliation and the slot update is a no-op at
// the package limit.
func createAffiliation(ctx context.Context, tx pgx.Tx, affiliation domain.Affiliation) error {
	slotQuery := `
		UPDATE users
		SET current_employees = current_employees + 1
		WHERE lower(email) = lower($1) AND role = 'hr'
		  AND current_employees < package_limit;
	`
	tag, err := tx.Exec(ctx, slotQuery, affiliation.HREmail)
	if err != nil {
		return apperrors.NewAppError(500, "failed to reserve employee slot", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewLimitReachedError("employee limit reached, upgrade the package to add more employees")
	}

	query := `
		INSERT INTO affiliations (
			affiliation_id, employee_email, employee_name, hr_email,
			company_name, company_logo, affiliation_date, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, query,
		affiliation.AffiliationID,
		affiliation.EmployeeEmail,
		affiliation.EmployeeName,
		affiliation.HREmail,
		affiliation.CompanyName,
		affiliation.CompanyLogo,
		affiliation.AffiliationDate,
		affiliation.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("employee is already affiliated with a company")
		}
		return apperrors.NewAppError(500, "failed to save affiliation", err)
	}
	return nil
}

func (r *PgxWorkflowRepository) ApproveRequest(ctx context.Context, requestID, hrEmail string, processedBy string, approvalDate time.Time, newAffiliation *domain.Affiliation, assignment domain.AssignedAsset) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// 1. Flip the request to approved; only a pending request qualifies.
	approveQuery := `
		UPDATE requests
		SET status = 'approved', approval_date = $3, processed_by = $4
		WHERE request_id = $1 AND hr_email = $2 AND status = 'pending';
	`
	tag, err := tx.Exec(ctx, approveQuery, requestID, hrEmail, approvalDate, processedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to approve request "+requestID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewConflictError("request is not pending or does not belong to this company")
	}

	// 2. Consume one unit of stock.
	if err := consumeAvailability(ctx, tx, assignment.AssetID); err != nil {
		return err
	}

	// 3. Record who holds it.
	if err := insertAssignment(ctx, tx, assignment); err != nil {
		return err
	}

	// 4. First approval also joins the employee to the company.
	if newAffiliation != nil {
		if err := createAffiliation(ctx, tx, *newAffiliation); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxWorkflowRepository) RejectRequest(ctx context.Context, requestID, hrEmail, processedBy, reason string, when time.Time) error {
	query := `
		UPDATE requests
		SET status = 'rejected', approval_date = $3, processed_by = $4, rejection_reason = $5
		WHERE request_id = $1 AND hr_email = $2 AND status = 'pending';
	`
	tag, err := r.Pool.Exec(ctx, query, requestID, hrEmail, when, processedBy, reason)
	if err != nil {
		return apperrors.NewAppError(500, "failed to reject request "+requestID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewConflictError("request is not pending or does not belong to this company")
	}
	return nil
}

func (r *PgxWorkflowRepository) DirectAssign(ctx context.Context, request domain.AssetRequest, assignment domain.AssignedAsset, newAffiliation *domain.Affiliation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertRequest(ctx, tx, request); err != nil {
		return apperrors.NewAppError(500, "failed to record direct assignment request", err)
	}
	if err := consumeAvailability(ctx, tx, assignment.AssetID); err != nil {
		return err
	}
	if err := insertAssignment(ctx, tx, assignment); err != nil {
		return err
	}
	if newAffiliation != nil {
		if err := createAffiliation(ctx, tx, *newAffiliation); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxWorkflowRepository) ReturnAssignment(ctx context.Context, assignmentID, employeeEmail string, returnDate time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// 1. Close the assignment; only the holding employee may return it.
	returnQuery := `
		UPDATE assigned_assets
		SET status = 'returned', return_date = $3
		WHERE assignment_id = $1 AND employee_email = $2 AND status = 'assigned'
		RETURNING asset_id, request_id;
	`
	var assetID, requestID string
	err = tx.QueryRow(ctx, returnQuery, assignmentID, employeeEmail, returnDate).Scan(&assetID, &requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("active assignment " + assignmentID + " not found")
		}
		return apperrors.NewAppError(500, "failed to return assignment "+assignmentID, err)
	}

	// 2. Put the unit back on the shelf.
	if err := restoreAvailability(ctx, tx, assetID); err != nil {
		return err
	}

	// 3. Close the originating request.
	closeQuery := `UPDATE requests SET status = 'returned' WHERE request_id = $1;`
	if _, err := tx.Exec(ctx, closeQuery, requestID); err != nil {
		return apperrors.NewAppError(500, "failed to close request "+requestID, err)
	}

	return r.Commit(ctx, tx)
}
