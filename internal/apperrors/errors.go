package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation would violate a business limit
// (e.g. tenant employee cap reached).
var ErrConflict = errors.New("operation conflicts with current state")

// ErrForbidden indicates the caller lacks the required role or ownership.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates a missing, invalid, or expired credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUnavailable indicates a resource exists but cannot currently be used
// (asset out of stock, payment not completed, store not ready).
var ErrUnavailable = errors.New("resource unavailable")

// ErrRefreshTokenExpired indicates the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// AppError carries an HTTP status code alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a generic AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that unwraps to ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewConflictError creates an AppError that unwraps to ErrDuplicate.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

// NewLimitReachedError creates an AppError that unwraps to ErrConflict.
func NewLimitReachedError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrConflict}
}

// NewValidationFailedError creates an AppError that unwraps to ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewUnavailableError creates an AppError that unwraps to ErrUnavailable.
func NewUnavailableError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrUnavailable}
}
