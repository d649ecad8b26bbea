package services

import (
	"context"
	"time"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
	"github.com/assetverse/assetverse_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterEmployee creates a new employee account.
	RegisterEmployee(ctx context.Context, req dto.RegisterEmployeeRequest) (*domain.User, error)

	// RegisterHR creates a new HR tenant with the default employee limit.
	RegisterHR(ctx context.Context, req dto.RegisterHRRequest) (*domain.User, error)

	// UpdateProfile applies the fields present in req to the user's
	// profile, leaving absent fields untouched.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)

	// UpdateRefreshToken updates the refresh token details for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken clears the refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// AuthenticateOrRegisterGoogleUser finds the account matching a
	// verified Google identity, creating an employee account on first
	// sign-in.
	AuthenticateOrRegisterGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
