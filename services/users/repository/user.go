package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/wheelshare/wheelshare/internal/pkg/apperrors"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

// UserRepo implements user and profile data access backed by PostgreSQL.
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

const userColumns = `
	id, email, phone_number, fullname, password_hash, role, is_active,
	created_at, updated_at
`

// CreateUser persists a new user account
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			id, email, phone_number, fullname, password_hash, role, is_active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.PhoneNumber,
		user.FullName,
		user.PasswordHash,
		user.Role,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getUser(ctx, query, id)
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getUser(ctx, query, email)
}

func (r *UserRepo) getUser(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	user := &models.User{}
	if err := r.db.GetContext(ctx, user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

const profileColumns = `
	user_id, identity_verified, license_verified, address_verified,
	email_verified, phone_verified, two_factor_enabled, trust_level,
	rating, rating_count, created_at, updated_at
`

// GetOrCreateProfile returns the user's profile, inserting the initial
// one on first access. The ON CONFLICT clause makes concurrent first
// accesses converge on a single row.
func (r *UserRepo) GetOrCreateProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	initial := models.NewProfile(userID)
	insert := `
		INSERT INTO profiles (
			user_id, identity_verified, license_verified, address_verified,
			email_verified, phone_verified, two_factor_enabled, trust_level,
			rating, rating_count, created_at, updated_at
		) VALUES ($1, false, false, false, false, false, false, $2, 0, 0, $3, $4)
		ON CONFLICT (user_id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, insert, userID, initial.TrustLevel, initial.CreatedAt, initial.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	profile := &models.Profile{}
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	if err := r.db.GetContext(ctx, profile, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// verificationFields is the closed set of profile columns SetVerification
// may touch.
var verificationFields = map[string]bool{
	"identity_verified": true,
	"license_verified":  true,
	"address_verified":  true,
	"email_verified":    true,
	"phone_verified":    true,
}

// SetVerification updates one verification flag and recomputes the
// trust level in the same transaction.
func (r *UserRepo) SetVerification(ctx context.Context, userID uuid.UUID, field string, value bool) (*models.Profile, error) {
	if !verificationFields[field] {
		return nil, fmt.Errorf("unknown verification field %q: %w", field, apperrors.ErrValidation)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// field is whitelisted above, safe to interpolate
	query := fmt.Sprintf(`UPDATE profiles SET %s = $1, updated_at = NOW() WHERE user_id = $2`, field)
	result, err := tx.ExecContext(ctx, query, value, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update verification: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update verification: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.ErrNotFound
	}

	profile, err := recomputeTrustLevel(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return profile, nil
}

// SetTwoFactor toggles the two-factor flag on the profile
func (r *UserRepo) SetTwoFactor(ctx context.Context, userID uuid.UUID, enabled bool) (*models.Profile, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE profiles SET two_factor_enabled = $1, updated_at = NOW() WHERE user_id = $2`,
		enabled, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update two-factor flag: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update two-factor flag: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.ErrNotFound
	}

	profile, err := recomputeTrustLevel(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return profile, nil
}

func recomputeTrustLevel(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	if err := tx.GetContext(ctx, profile, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}

	level := profile.ComputeTrustLevel()
	if level != profile.TrustLevel {
		if _, err := tx.ExecContext(ctx,
			`UPDATE profiles SET trust_level = $1, updated_at = NOW() WHERE user_id = $2`,
			level, userID); err != nil {
			return nil, fmt.Errorf("failed to update trust level: %w", err)
		}
		profile.TrustLevel = level
	}
	return profile, nil
}
