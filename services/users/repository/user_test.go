package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wheelshare/wheelshare/internal/pkg/apperrors"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

func setupUserRepoTest(t *testing.T) (*UserRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &UserRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func userRows(user *models.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "phone_number", "fullname", "password_hash", "role", "is_active",
		"created_at", "updated_at",
	}).AddRow(
		user.ID, user.Email, user.PhoneNumber, user.FullName, user.PasswordHash, user.Role, user.IsActive,
		user.CreatedAt, user.UpdatedAt,
	)
}

func profileRows(profile *models.Profile) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"user_id", "identity_verified", "license_verified", "address_verified",
		"email_verified", "phone_verified", "two_factor_enabled", "trust_level",
		"rating", "rating_count", "created_at", "updated_at",
	}).AddRow(
		profile.UserID, profile.IdentityVerified, profile.LicenseVerified, profile.AddressVerified,
		profile.EmailVerified, profile.PhoneVerified, profile.TwoFactorEnabled, profile.TrustLevel,
		profile.Rating, profile.RatingCount, profile.CreatedAt, profile.UpdatedAt,
	)
}

func TestGetUserByEmail(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	user := &models.User{
		ID:        uuid.New(),
		Email:     "rider@example.com",
		FullName:  "Rider One",
		Role:      "member",
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	mock.ExpectQuery("^SELECT (.+) FROM users WHERE email").
		WithArgs("rider@example.com").
		WillReturnRows(userRows(user))

	got, err := repo.GetUserByEmail(context.Background(), "rider@example.com")

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "Rider One", got.FullName)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM users WHERE email").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetUserByEmail(context.Background(), "ghost@example.com")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetOrCreateProfile(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	profile := &models.Profile{
		UserID:     userID,
		TrustLevel: models.TrustLevelNew,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	mock.ExpectExec("^INSERT INTO profiles").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("^SELECT (.+) FROM profiles WHERE user_id").
		WithArgs(userID).
		WillReturnRows(profileRows(profile))

	got, err := repo.GetOrCreateProfile(context.Background(), userID)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, models.TrustLevelNew, got.TrustLevel)
}

func TestSetVerification(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	updated := &models.Profile{
		UserID:           userID,
		IdentityVerified: true,
		TrustLevel:       models.TrustLevelNew,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("^UPDATE profiles SET identity_verified").
		WithArgs(true, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("^SELECT (.+) FROM profiles WHERE user_id").
		WithArgs(userID).
		WillReturnRows(profileRows(updated))
	// One verification moves the trust level from new to basic.
	mock.ExpectExec("^UPDATE profiles SET trust_level").
		WithArgs(models.TrustLevelBasic, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.SetVerification(context.Background(), userID, "identity_verified", true)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.TrustLevelBasic, got.TrustLevel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetVerification_UnknownField(t *testing.T) {
	repo, _, cleanup := setupUserRepoTest(t)
	defer cleanup()

	got, err := repo.SetVerification(context.Background(), uuid.New(), "admin_granted", true)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSetVerification_ProfileMissing(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("^UPDATE profiles SET email_verified").
		WithArgs(true, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	got, err := repo.SetVerification(context.Background(), userID, "email_verified", true)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSetTwoFactor(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	updated := &models.Profile{
		UserID:           userID,
		TwoFactorEnabled: true,
		TrustLevel:       models.TrustLevelNew,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("^UPDATE profiles SET two_factor_enabled").
		WithArgs(true, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("^SELECT (.+) FROM profiles WHERE user_id").
		WithArgs(userID).
		WillReturnRows(profileRows(updated))
	mock.ExpectCommit()

	got, err := repo.SetTwoFactor(context.Background(), userID, true)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.TwoFactorEnabled)
	// Two-factor alone does not change the trust level.
	assert.Equal(t, models.TrustLevelNew, got.TrustLevel)
	assert.NoError(t, mock.ExpectationsWereMet())
}
