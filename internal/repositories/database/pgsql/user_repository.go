package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/assetverse/assetverse_backend/internal/apperrors"
	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portsrepo "github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
	"github.com/assetverse/assetverse_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	m := models.User{
		UserID:           d.UserID,
		Name:             d.Name,
		Email:            d.Email,
		Role:             string(d.Role),
		ProfileImage:     d.ProfileImage,
		Phone:            d.Phone,
		Address:          d.Address,
		Bio:              d.Bio,
		CompanyName:      d.CompanyName,
		CompanyLogo:      d.CompanyLogo,
		PackageLimit:     d.PackageLimit,
		CurrentEmployees: d.CurrentEmployees,
		Subscription:     string(d.Subscription),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.PasswordHash != "" {
		m.PasswordHash = sql.NullString{String: d.PasswordHash, Valid: true}
	}
	if d.DateOfBirth != nil {
		m.DateOfBirth = sql.NullTime{Time: *d.DateOfBirth, Valid: true}
	}
	if d.RefreshTokenHash != "" {
		m.RefreshTokenHash = sql.NullString{String: d.RefreshTokenHash, Valid: true}
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	if d.LastLoginAt != nil {
		m.LastLoginAt = sql.NullTime{Time: *d.LastLoginAt, Valid: true}
	}
	return m
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:           m.UserID,
		Name:             m.Name,
		Email:            m.Email,
		Role:             domain.UserRole(m.Role),
		ProfileImage:     m.ProfileImage,
		Phone:            m.Phone,
		Address:          m.Address,
		Bio:              m.Bio,
		CompanyName:      m.CompanyName,
		CompanyLogo:      m.CompanyLogo,
		PackageLimit:     m.PackageLimit,
		CurrentEmployees: m.CurrentEmployees,
		Subscription:     domain.SubscriptionTier(m.Subscription),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.PasswordHash.Valid {
		d.PasswordHash = m.PasswordHash.String
	}
	if m.DateOfBirth.Valid {
		t := m.DateOfBirth.Time
		d.DateOfBirth = &t
	}
	if m.RefreshTokenHash.Valid {
		d.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiryTime = &t
	}
	if m.LastLoginAt.Valid {
		t := m.LastLoginAt.Time
		d.LastLoginAt = &t
	}
	return d
}

const userSelectColumns = `
	user_id, name, email, role, password_hash, date_of_birth, profile_image,
	phone, address, bio, company_name, company_logo, package_limit,
	current_employees, subscription, refresh_token_hash,
	refresh_token_expiry_time, last_login_at,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.Role,
		&m.PasswordHash,
		&m.DateOfBirth,
		&m.ProfileImage,
		&m.Phone,
		&m.Address,
		&m.Bio,
		&m.CompanyName,
		&m.CompanyLogo,
		&m.PackageLimit,
		&m.CurrentEmployees,
		&m.Subscription,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
		&m.LastLoginAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
		INSERT INTO users (
			user_id, name, email, role, password_hash, date_of_birth,
			profile_image, phone, address, bio, company_name, company_logo,
			package_limit, current_employees, subscription,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Name,
		m.Email,
		m.Role,
		m.PasswordHash,
		m.DateOfBirth,
		m.ProfileImage,
		m.Phone,
		m.Address,
		m.Bio,
		m.CompanyName,
		m.CompanyLogo,
		m.PackageLimit,
		m.CurrentEmployees,
		m.Subscription,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("email " + user.Email + " is already registered")
		}
		return apperrors.NewAppError(500, "failed to save user", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userSelectColumns + ` FROM users WHERE user_id = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user "+userID, err)
	}
	d := toDomainUser(*m)
	return &d, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userSelectColumns + ` FROM users WHERE lower(email) = lower($1);`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by email", err)
	}
	d := toDomainUser(*m)
	return &d, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
		UPDATE users SET
			name = $2,
			date_of_birth = $3,
			profile_image = $4,
			phone = $5,
			address = $6,
			bio = $7,
			company_name = $8,
			company_logo = $9,
			last_updated_at = $10,
			last_updated_by = $11
		WHERE user_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Name,
		m.DateOfBirth,
		m.ProfileImage,
		m.Phone,
		m.Address,
		m.Bio,
		m.CompanyName,
		m.CompanyLogo,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update user "+user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshTokenDetails(ctx context.Context, userID string, tokenHash *string, expiryTime *time.Time) error {
	query := `
		UPDATE users
		SET refresh_token_hash = $2, refresh_token_expiry_time = $3
		WHERE user_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, tokenHash, expiryTime)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update refresh token for user "+userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) MarkUserLogin(ctx context.Context, userID string, loginTime time.Time) error {
	query := `UPDATE users SET last_login_at = $2 WHERE user_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, userID, loginTime)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark login for user "+userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
