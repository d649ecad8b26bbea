package repositories

import (
	"context"
	"time"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns a duplicate error if the
	// email is already registered.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser persists profile changes on an existing user.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshTokenDetails stores the hash and expiry of the user's
	// current refresh token. Nil values clear the stored token.
	UpdateRefreshTokenDetails(ctx context.Context, userID string, tokenHash *string, expiryTime *time.Time) error

	// MarkUserLogin records the last successful login time.
	MarkUserLogin(ctx context.Context, userID string, loginTime time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
