package dto

import (
	"time"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
)

// EmployeeResponse defines data returned for one affiliated employee.
type EmployeeResponse struct {
	UserID       string     `json:"userID"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	ProfileImage string     `json:"profileImage,omitempty"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	AssetsCount  int        `json:"assetsCount"`
	JoinDate     time.Time  `json:"joinDate"`
}

// ListEmployeesResponse wraps a tenant's employee list.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Count     int                `json:"count"`
}

// ToListEmployeesResponse converts a slice of domain.EmployeeSummary to DTO.
func ToListEmployeesResponse(employees []domain.EmployeeSummary) ListEmployeesResponse {
	list := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		list[i] = EmployeeResponse{
			UserID:       e.UserID,
			Name:         e.Name,
			Email:        e.Email,
			ProfileImage: e.ProfileImage,
			DateOfBirth:  e.DateOfBirth,
			AssetsCount:  e.AssetsCount,
			JoinDate:     e.JoinDate,
		}
	}
	return ListEmployeesResponse{Employees: list, Count: len(list)}
}

// CompanyResponse defines data returned for one tenant an employee joined.
type CompanyResponse struct {
	AffiliationID string    `json:"affiliationID"`
	Name          string    `json:"name"`
	Logo          string    `json:"logo,omitempty"`
	JoinDate      time.Time `json:"joinDate"`
}

// ListCompaniesResponse wraps an employee's company list.
type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// ToListCompaniesResponse converts a slice of domain.CompanySummary to DTO.
func ToListCompaniesResponse(companies []domain.CompanySummary) ListCompaniesResponse {
	list := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		list[i] = CompanyResponse{
			AffiliationID: c.AffiliationID,
			Name:          c.Name,
			Logo:          c.Logo,
			JoinDate:      c.JoinDate,
		}
	}
	return ListCompaniesResponse{Companies: list}
}

// TeamMemberResponse defines data returned for one colleague.
type TeamMemberResponse struct {
	UserID   string     `json:"userID"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Photo    string     `json:"photo,omitempty"`
	Birthday *time.Time `json:"birthday,omitempty"`
}

// ListTeamResponse wraps the colleague list.
type ListTeamResponse struct {
	Members []TeamMemberResponse `json:"members"`
}

// ToListTeamResponse converts a slice of domain.TeamMember to DTO.
func ToListTeamResponse(members []domain.TeamMember) ListTeamResponse {
	list := make([]TeamMemberResponse, len(members))
	for i, m := range members {
		list[i] = TeamMemberResponse{
			UserID:   m.UserID,
			Name:     m.Name,
			Email:    m.Email,
			Photo:    m.Photo,
			Birthday: m.Birthday,
		}
	}
	return ListTeamResponse{Members: list}
}
