package domain

import "time"

// UserRole distinguishes tenant owners (HR) from regular employees.
type UserRole string

const (
	RoleHR       UserRole = "hr"
	RoleEmployee UserRole = "employee"
)

// SubscriptionTier is the tenant's current package tier.
type SubscriptionTier string

const (
	SubscriptionBasic SubscriptionTier = "basic"
)

// DefaultPackageLimit is the employee cap granted to every new HR tenant
// before any package upgrade.
const DefaultPackageLimit = 5

// User represents an account, either an HR tenant owner or an employee.
// HR-specific fields are zero-valued for employees.
type User struct {
	UserID       string     `json:"userID"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         UserRole   `json:"role"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	ProfileImage string     `json:"profileImage"`
	Phone        string     `json:"phone,omitempty"`
	Address      string     `json:"address,omitempty"`
	Bio          string     `json:"bio,omitempty"`

	PasswordHash           string     `json:"-"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	LastLoginAt            *time.Time `json:"lastLoginAt,omitempty"`

	// HR tenant fields
	CompanyName      string           `json:"companyName,omitempty"`
	CompanyLogo      string           `json:"companyLogo,omitempty"`
	PackageLimit     int              `json:"packageLimit,omitempty"`
	CurrentEmployees int              `json:"currentEmployees,omitempty"`
	Subscription     SubscriptionTier `json:"subscription,omitempty"`

	AuditFields
}

// IsHR reports whether the user owns a tenant.
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}

// GoogleUserInfo holds the subset of the Google userinfo payload used
// during sign-in.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
