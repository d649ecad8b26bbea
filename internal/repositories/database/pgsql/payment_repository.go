package pgsql

import (
	"context"
	"errors"

	"github.com/assetverse/assetverse_backend/internal/apperrors"
	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portsrepo "github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for packages and the
// payment ledger.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func (r *PgxPaymentRepository) ListPackages(ctx context.Context) ([]domain.Package, error) {
	query := `
		SELECT package_id, name, employee_limit, price, description
		FROM packages
		ORDER BY price;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query packages", err)
	}
	defer rows.Close()
	packages, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Package])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect package rows", err)
	}
	return packages, nil
}

func (r *PgxPaymentRepository) FindPackageByID(ctx context.Context, packageID string) (*domain.Package, error) {
	query := `
		SELECT package_id, name, employee_limit, price, description
		FROM packages
		WHERE package_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, packageID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query package", err)
	}
	defer rows.Close()
	packages, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Package])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect package rows", err)
	}
	if len(packages) == 0 {
		return nil, apperrors.NewNotFoundError("package " + packageID + " not found")
	}
	return &packages[0], nil
}

func (r *PgxPaymentRepository) ListPaymentsByHR(ctx context.Context, hrEmail string) ([]domain.Payment, error) {
	query := `
		SELECT
			p.payment_id, p.hr_email, p.package_name, p.employee_limit,
			p.amount, p.transaction_id, p.payment_date, p.status
		FROM payments p
		WHERE p.hr_email = $1
		ORDER BY p.payment_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, hrEmail)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments", err)
	}
	defer rows.Close()
	payments, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Payment])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect payment rows", err)
	}
	return payments, nil
}

// ConfirmUpgrade writes the ledger entry and raises the tenant's limit in
// one transaction. The unique transaction_id makes confirmation replays
// fail before any limit change applies.
func (r *PgxPaymentRepository) ConfirmUpgrade(ctx context.Context, payment domain.Payment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insertQuery := `
		INSERT INTO payments (
			payment_id, hr_email, package_name, employee_limit, amount,
			transaction_id, payment_date, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, insertQuery,
		payment.PaymentID,
		payment.HREmail,
		payment.PackageName,
		payment.EmployeeLimit,
		payment.Amount,
		payment.TransactionID,
		payment.PaymentDate,
		payment.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("payment " + payment.TransactionID + " is already recorded")
		}
		return apperrors.NewAppError(500, "failed to record payment", err)
	}

	upgradeQuery := `
		UPDATE users
		SET package_limit = $2, subscription = $3
		WHERE lower(email) = lower($1) AND role = 'hr';
	`
	tag, err := tx.Exec(ctx, upgradeQuery, payment.HREmail, payment.EmployeeLimit, payment.PackageName)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upgrade package limit", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("HR account " + payment.HREmail + " not found")
	}

	return r.Commit(ctx, tx)
}
