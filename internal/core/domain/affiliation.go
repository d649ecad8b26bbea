package domain

import "time"

// AffiliationStatus marks whether a membership link is live.
type AffiliationStatus string

const (
	AffiliationActive   AffiliationStatus = "active"
	AffiliationInactive AffiliationStatus = "inactive"
)

// Affiliation links one employee to one HR tenant. At most one active
// affiliation may exist per employee email system-wide.
type Affiliation struct {
	AffiliationID   string            `json:"affiliationID"`
	EmployeeEmail   string            `json:"employeeEmail"`
	EmployeeName    string            `json:"employeeName"`
	HREmail         string            `json:"hrEmail"`
	CompanyName     string            `json:"companyName"`
	CompanyLogo     string            `json:"companyLogo,omitempty"`
	AffiliationDate time.Time         `json:"affiliationDate"`
	Status          AffiliationStatus `json:"status"`
}

// EmployeeSummary is one affiliated employee as seen by their HR tenant.
type EmployeeSummary struct {
	UserID       string     `json:"userID"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	ProfileImage string     `json:"profileImage"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	AssetsCount  int        `json:"assetsCount"`
	JoinDate     time.Time  `json:"joinDate"`
}

// CompanySummary is one tenant as seen by an affiliated employee.
type CompanySummary struct {
	AffiliationID string    `json:"affiliationID"`
	Name          string    `json:"name"`
	Logo          string    `json:"logo,omitempty"`
	JoinDate      time.Time `json:"joinDate"`
}

// UnaffiliatedEmployee is an employee account with no live affiliation,
// a candidate for HR to add to their tenant.
type UnaffiliatedEmployee struct {
	UserID string `json:"userID"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Photo  string `json:"photo,omitempty"`
}

// TeamMember is a colleague within the same tenant.
type TeamMember struct {
	UserID   string     `json:"userID"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Photo    string     `json:"photo,omitempty"`
	Birthday *time.Time `json:"birthday,omitempty"`
}
