package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/assetverse/assetverse_backend/internal/apperrors"
	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portsrepo "github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
	portssvc "github.com/assetverse/assetverse_backend/internal/core/ports/services"
	"github.com/assetverse/assetverse_backend/internal/dto"
	"github.com/assetverse/assetverse_backend/internal/utils"
	"github.com/google/uuid"
)

// userService handles account creation, lookup and authentication.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

const dateOnlyLayout = "2006-01-02"

func parseDateOfBirth(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateOnlyLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date of birth %q", apperrors.ErrValidation, value)
	}
	return &t, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (s *userService) RegisterEmployee(ctx context.Context, req dto.RegisterEmployeeRequest) (*domain.User, error) {
	dob, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password during registration")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	photo := req.Photo
	if photo == "" {
		photo = utils.FallbackAvatarURL(req.Name)
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Name:         req.Name,
		Email:        req.Email,
		Role:         domain.RoleEmployee,
		DateOfBirth:  dob,
		ProfileImage: photo,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Employee registered", slog.String("user_id", userID))
	return &user, nil
}

func (s *userService) RegisterHR(ctx context.Context, req dto.RegisterHRRequest) (*domain.User, error) {
	dob, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password during HR registration")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Name:         req.Name,
		Email:        req.Email,
		Role:         domain.RoleHR,
		DateOfBirth:  dob,
		ProfileImage: utils.FallbackAvatarURL(req.Name),
		PasswordHash: hash,
		CompanyName:  req.CompanyName,
		CompanyLogo:  req.CompanyLogo,
		PackageLimit: domain.DefaultPackageLimit,
		Subscription: domain.SubscriptionBasic,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "HR tenant registered", slog.String("user_id", userID), slog.String("company", req.CompanyName))
	return &user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}
	if req.DateOfBirth != nil {
		dob, err := parseDateOfBirth(*req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		user.DateOfBirth = dob
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	// Company fields only make sense on the tenant owner account.
	if user.IsHR() {
		if req.CompanyName != nil {
			user.CompanyName = *req.CompanyName
		}
		if req.CompanyLogo != nil {
			user.CompanyLogo = *req.CompanyLogo
		}
	}

	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.userRepo.UpdateRefreshTokenDetails(ctx, userID, &refreshTokenHash, &refreshTokenExpiryTime)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.UpdateRefreshTokenDetails(ctx, userID, nil, nil)
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error as a bad password so callers can't probe for accounts.
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Password mismatch", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	if err := s.userRepo.MarkUserLogin(ctx, user.UserID, time.Now()); err != nil {
		s.LogWarn(ctx, "Failed to record login time", slog.String("user_id", user.UserID), slog.String("error", err.Error()))
	}

	return user, nil
}

func (s *userService) AuthenticateOrRegisterGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	if info.Email == "" {
		return nil, fmt.Errorf("%w: google profile has no email", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		if markErr := s.userRepo.MarkUserLogin(ctx, user.UserID, time.Now()); markErr != nil {
			s.LogWarn(ctx, "Failed to record login time", slog.String("user_id", user.UserID), slog.String("error", markErr.Error()))
		}
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	// First sign-in: provision an employee account with no local password.
	photo := info.Picture
	if photo == "" {
		photo = utils.FallbackAvatarURL(info.Name)
	}
	now := time.Now()
	userID := uuid.NewString()
	newUser := domain.User{
		UserID:       userID,
		Name:         info.Name,
		Email:        info.Email,
		Role:         domain.RoleEmployee,
		ProfileImage: photo,
		LastLoginAt:  &now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Employee registered via Google sign-in", slog.String("user_id", userID))
	return &newUser, nil
}
