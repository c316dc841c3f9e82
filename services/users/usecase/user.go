package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wheelshare/wheelshare/internal/pkg/apperrors"
	jwtpkg "github.com/wheelshare/wheelshare/internal/pkg/jwt"
	"github.com/wheelshare/wheelshare/internal/pkg/logger"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	"github.com/wheelshare/wheelshare/services/users"
)

type userUC struct {
	cfg  *models.Config
	repo users.UserRepo
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, repo users.UserRepo) users.UserUC {
	return &userUC{
		cfg:  cfg,
		repo: repo,
	}
}

const minPasswordLength = 8

// Register creates a new user account with a bcrypt password hash
func (uc *userUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required: %w", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("fullname is required: %w", apperrors.ErrValidation)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters: %w", minPasswordLength, apperrors.ErrValidation)
	}

	existing, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s already registered: %w", email, apperrors.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: string(hash),
		Role:         "member",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	// First profile access also seeds the trust state.
	if _, err := uc.repo.GetOrCreateProfile(ctx, user.ID); err != nil {
		logger.Warn("Failed to seed profile",
			logger.String("user_id", user.ID.String()),
			logger.Err(err))
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("email", user.Email))
	return user, nil
}

// Login authenticates a user and issues a JWT
func (uc *userUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrNotEligible)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("account is deactivated: %w", apperrors.ErrNotEligible)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrNotEligible)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.Role, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
	}, nil
}

// GetUser retrieves a user account by ID
func (uc *userUC) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return uc.repo.GetUserByID(ctx, id)
}

// GetProfile retrieves the user's trust profile, creating the initial
// one on first access.
func (uc *userUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	if _, err := uc.repo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return uc.repo.GetOrCreateProfile(ctx, userID)
}

// SetVerification flags a verification field on the user's profile and
// recomputes the trust level.
func (uc *userUC) SetVerification(ctx context.Context, userID uuid.UUID, field string, value bool) (*models.Profile, error) {
	if _, err := uc.repo.GetOrCreateProfile(ctx, userID); err != nil {
		return nil, err
	}
	return uc.repo.SetVerification(ctx, userID, field, value)
}

// SetTwoFactor toggles two-factor authentication on the profile
func (uc *userUC) SetTwoFactor(ctx context.Context, userID uuid.UUID, enabled bool) (*models.Profile, error) {
	if _, err := uc.repo.GetOrCreateProfile(ctx, userID); err != nil {
		return nil, err
	}
	return uc.repo.SetTwoFactor(ctx, userID, enabled)
}
