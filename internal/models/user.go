package models

import (
	"database/sql"
	"time"
)

// AuditFields holds the audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

// User is the row shape of the users table. Nullable columns use the
// database/sql null types; the repository maps them to domain pointers.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	Role         string `db:"role"`
	PasswordHash sql.NullString `db:"password_hash"`
	DateOfBirth  sql.NullTime   `db:"date_of_birth"`
	ProfileImage string `db:"profile_image"`
	Phone        string `db:"phone"`
	Address      string `db:"address"`
	Bio          string `db:"bio"`

	CompanyName      string `db:"company_name"`
	CompanyLogo      string `db:"company_logo"`
	PackageLimit     int    `db:"package_limit"`
	CurrentEmployees int    `db:"current_employees"`
	Subscription     string `db:"subscription"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
	LastLoginAt            sql.NullTime   `db:"last_login_at"`

	AuditFields
}
