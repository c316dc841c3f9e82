package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wheelshare/wheelshare/internal/pkg/apperrors"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	"github.com/wheelshare/wheelshare/services/users/mocks"
)

func setupUserUCTest(t *testing.T) (*userUC, *mocks.MockUserRepo, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockUserRepo(ctrl)

	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "test-issuer",
		},
	}

	uc := NewUserUC(cfg, mockRepo).(*userUC)
	return uc, mockRepo, ctrl
}

func TestRegister_Success(t *testing.T) {
	uc, mockRepo, ctrl := setupUserUCTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "rider@example.com").Return(nil, apperrors.ErrNotFound)
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().GetOrCreateProfile(gomock.Any(), gomock.Any()).Return(&models.Profile{}, nil)

	user, err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:    "  Rider@Example.com ",
		FullName: "Rider One",
		Password: "correct-horse",
	})

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "rider@example.com", user.Email)
	assert.Equal(t, "member", user.Role)
	assert.True(t, user.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct-horse")))
}

func TestRegister_Validation(t *testing.T) {
	uc, _, ctrl := setupUserUCTest(t)
	defer ctrl.Finish()

	testCases := []struct {
		name string
		req  *models.RegisterRequest
	}{
		{
			name: "Missing email",
			req:  &models.RegisterRequest{FullName: "Rider One", Password: "correct-horse"},
		},
		{
			name: "Malformed email",
			req:  &models.RegisterRequest{Email: "not-an-email", FullName: "Rider One", Password: "correct-horse"},
		},
		{
			name: "Missing full name",
			req:  &models.RegisterRequest{Email: "rider@example.com", Password: "correct-horse"},
		},
		{
			name: "Password too short",
			req:  &models.RegisterRequest{Email: "rider@example.com", FullName: "Rider One", Password: "short"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := uc.Register(context.Background(), tc.req)

			assert.Nil(t, user)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	uc, mockRepo, ctrl := setupUserUCTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "rider@example.com").Return(&models.User{
		ID:    uuid.New(),
		Email: "rider@example.com",
	}, nil)

	user, err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:    "rider@example.com",
		FullName: "Rider One",
		Password: "correct-horse",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLogin_Success(t *testing.T) {
	uc, mockRepo, ctrl := setupUserUCTest(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	userID := uuid.New()
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "rider@example.com").Return(&models.User{
		ID:           userID,
		Email:        "rider@example.com",
		PasswordHash: string(hash),
		Role:         "member",
		IsActive:     true,
	}, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "Rider@Example.com",
		Password: "correct-horse",
	})

	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, userID, resp.UserID)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, mockRepo, ctrl := setupUserUCTest(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "rider@example.com").Return(&models.User{
		ID:           uuid.New(),
		Email:        "rider@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "rider@example.com",
		Password: "wrong-horse",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrNotEligible)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, mockRepo, ctrl := setupUserUCTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").Return(nil, apperrors.ErrNotFound)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever-pass",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrNotEligible)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	uc, mockRepo, ctrl := setupUserUCTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "rider@example.com").Return(&models.User{
		ID:       uuid.New(),
		Email:    "rider@example.com",
		IsActive: false,
	}, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "rider@example.com",
		Password: "correct-horse",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrNotEligible)
}

func TestGetProfile_UserMustExist(t *testing.T) {
	uc, mockRepo, ctrl := setupUserUCTest(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(nil, apperrors.ErrNotFound)

	profile, err := uc.GetProfile(context.Background(), userID)

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSetVerification(t *testing.T) {
	uc, mockRepo, ctrl := setupUserUCTest(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockRepo.EXPECT().GetOrCreateProfile(gomock.Any(), userID).Return(&models.Profile{UserID: userID}, nil)
	mockRepo.EXPECT().SetVerification(gomock.Any(), userID, "identity_verified", true).Return(&models.Profile{
		UserID:           userID,
		IdentityVerified: true,
		TrustLevel:       models.TrustLevelBasic,
	}, nil)

	profile, err := uc.SetVerification(context.Background(), userID, "identity_verified", true)

	assert.NoError(t, err)
	require.NotNil(t, profile)
	assert.True(t, profile.IdentityVerified)
	assert.Equal(t, models.TrustLevelBasic, profile.TrustLevel)
}
