package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

// UserRepo defines the interface for user and profile data access.
//
//go:generate mockgen -destination=mocks/mock_users.go -package=mocks github.com/wheelshare/wheelshare/services/users UserRepo,UserUC
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetOrCreateProfile returns the user's profile, creating the
	// initial one atomically on first access.
	GetOrCreateProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	// SetVerification flags one verification field and recomputes the
	// trust level in the same transaction.
	SetVerification(ctx context.Context, userID uuid.UUID, field string, value bool) (*models.Profile, error)
	SetTwoFactor(ctx context.Context, userID uuid.UUID, enabled bool) (*models.Profile, error)
}

// UserUC defines the interface for user account business logic.
type UserUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	SetVerification(ctx context.Context, userID uuid.UUID, field string, value bool) (*models.Profile, error)
	SetTwoFactor(ctx context.Context, userID uuid.UUID, enabled bool) (*models.Profile, error)
}
