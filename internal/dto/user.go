package dto

import (
	"time"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
)

// UserResponse defines the user data exposed over the API. Sensitive
// fields (hashes, token state) never leave the service layer.
type UserResponse struct {
	UserID       string     `json:"userID"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	ProfileImage string     `json:"profileImage,omitempty"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Address      string     `json:"address,omitempty"`
	Bio          string     `json:"bio,omitempty"`

	CompanyName      string `json:"companyName,omitempty"`
	CompanyLogo      string `json:"companyLogo,omitempty"`
	PackageLimit     int    `json:"packageLimit,omitempty"`
	CurrentEmployees int    `json:"currentEmployees,omitempty"`
	Subscription     string `json:"subscription,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:           u.UserID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             string(u.Role),
		ProfileImage:     u.ProfileImage,
		DateOfBirth:      u.DateOfBirth,
		Phone:            u.Phone,
		Address:          u.Address,
		Bio:              u.Bio,
		CompanyName:      u.CompanyName,
		CompanyLogo:      u.CompanyLogo,
		PackageLimit:     u.PackageLimit,
		CurrentEmployees: u.CurrentEmployees,
		Subscription:     string(u.Subscription),
		CreatedAt:        u.CreatedAt,
	}
}

// UpdateProfileRequest defines the data allowed for updating a profile.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateProfileRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=2,max=100"`
	ProfileImage *string `json:"profileImage" binding:"omitempty,url"`
	DateOfBirth  *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Phone        *string `json:"phone" binding:"omitempty,max=20"`
	Address      *string `json:"address" binding:"omitempty,max=200"`
	Bio          *string `json:"bio" binding:"omitempty,max=500"`
	CompanyName  *string `json:"companyName" binding:"omitempty,min=2,max=100"`
	CompanyLogo  *string `json:"companyLogo" binding:"omitempty,url"`
}
