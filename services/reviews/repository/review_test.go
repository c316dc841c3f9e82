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

func setupReviewRepoTest(t *testing.T) (*ReviewRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &ReviewRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func testReview(targetType models.ReviewTargetType, status models.ReviewStatus) *models.Review {
	return &models.Review{
		ID:         uuid.New(),
		AuthorID:   uuid.New(),
		TargetType: targetType,
		TargetID:   uuid.New(),
		Rating:     4,
		Comment:    "Smooth ride, friendly driver",
		Status:     status,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

func reviewRows(review *models.Review) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "author_id", "target_type", "target_id", "rating", "comment",
		"status", "hidden", "created_at", "updated_at",
	}).AddRow(
		review.ID, review.AuthorID, review.TargetType, review.TargetID, review.Rating, review.Comment,
		review.Status, review.Hidden, review.CreatedAt, review.UpdatedAt,
	)
}

func TestGetReviewByAuthorAndTarget(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	review := testReview(models.ReviewTargetVehicle, models.ReviewStatusPending)

	mock.ExpectQuery("^SELECT (.+) FROM reviews WHERE author_id").
		WithArgs(review.AuthorID, review.TargetType, review.TargetID, models.ReviewStatusRejected).
		WillReturnRows(reviewRows(review))

	got, err := repo.GetReviewByAuthorAndTarget(context.Background(), review.AuthorID, review.TargetType, review.TargetID)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, review.ID, got.ID)
}

func TestGetReviewByAuthorAndTarget_NoneFound(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	authorID := uuid.New()
	targetID := uuid.New()

	mock.ExpectQuery("^SELECT (.+) FROM reviews WHERE author_id").
		WithArgs(authorID, models.ReviewTargetUser, targetID, models.ReviewStatusRejected).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetReviewByAuthorAndTarget(context.Background(), authorID, models.ReviewTargetUser, targetID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestHasCompletedEngagement(t *testing.T) {
	testCases := []struct {
		name       string
		targetType models.ReviewTargetType
		eligible   bool
	}{
		{"Ride with completed booking", models.ReviewTargetRide, true},
		{"Vehicle never rented", models.ReviewTargetVehicle, false},
		{"User met through completed rental", models.ReviewTargetUser, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupReviewRepoTest(t)
			defer cleanup()

			authorID := uuid.New()
			targetID := uuid.New()

			mock.ExpectQuery("^SELECT EXISTS").
				WithArgs(authorID, targetID).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tc.eligible))

			eligible, err := repo.HasCompletedEngagement(context.Background(), authorID, tc.targetType, targetID)

			assert.NoError(t, err)
			assert.Equal(t, tc.eligible, eligible)
		})
	}
}

func TestHasCompletedEngagement_UnknownTargetType(t *testing.T) {
	repo, _, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	eligible, err := repo.HasCompletedEngagement(context.Background(), uuid.New(), models.ReviewTargetType("booking"), uuid.New())

	assert.False(t, eligible)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTripDriver(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	tripID := uuid.New()
	driverID := uuid.New()

	mock.ExpectQuery("^SELECT driver_id FROM trips").
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id"}).AddRow(driverID))

	got, err := repo.TripDriver(context.Background(), tripID)

	assert.NoError(t, err)
	assert.Equal(t, driverID, got)
}

func TestTripDriver_NotFound(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	tripID := uuid.New()

	mock.ExpectQuery("^SELECT driver_id FROM trips").
		WithArgs(tripID).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.TripDriver(context.Background(), tripID)

	assert.Equal(t, uuid.Nil, got)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestApproveReview_VehicleTarget(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	review := testReview(models.ReviewTargetVehicle, models.ReviewStatusPending)

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM reviews WHERE id (.+) FOR UPDATE").
		WithArgs(review.ID).
		WillReturnRows(reviewRows(review))
	mock.ExpectExec("^UPDATE reviews SET status").
		WithArgs(models.ReviewStatusApproved, review.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^UPDATE vehicles SET").
		WithArgs(review.TargetID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.ApproveReview(context.Background(), review.ID)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.ReviewStatusApproved, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveReview_RideTargetRollsUpToDriver(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	review := testReview(models.ReviewTargetRide, models.ReviewStatusPending)
	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM reviews WHERE id (.+) FOR UPDATE").
		WithArgs(review.ID).
		WillReturnRows(reviewRows(review))
	mock.ExpectExec("^UPDATE reviews SET status").
		WithArgs(models.ReviewStatusApproved, review.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("^SELECT driver_id FROM trips").
		WithArgs(review.TargetID).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id"}).AddRow(driverID))
	mock.ExpectExec("^UPDATE profiles SET").
		WithArgs(driverID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.ApproveReview(context.Background(), review.ID)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.ReviewStatusApproved, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveReview_NotPending(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	review := testReview(models.ReviewTargetVehicle, models.ReviewStatusApproved)

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM reviews WHERE id (.+) FOR UPDATE").
		WithArgs(review.ID).
		WillReturnRows(reviewRows(review))
	mock.ExpectRollback()

	got, err := repo.ApproveReview(context.Background(), review.ID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestRejectReview_SkipsAggregate(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	review := testReview(models.ReviewTargetUser, models.ReviewStatusPending)

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM reviews WHERE id (.+) FOR UPDATE").
		WithArgs(review.ID).
		WillReturnRows(reviewRows(review))
	mock.ExpectExec("^UPDATE reviews SET status").
		WithArgs(models.ReviewStatusRejected, review.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.RejectReview(context.Background(), review.ID)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.ReviewStatusRejected, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetReviewHidden(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	review := testReview(models.ReviewTargetUser, models.ReviewStatusApproved)

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM reviews WHERE id (.+) FOR UPDATE").
		WithArgs(review.ID).
		WillReturnRows(reviewRows(review))
	mock.ExpectExec("^UPDATE reviews SET hidden").
		WithArgs(true, review.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^UPDATE profiles SET").
		WithArgs(review.TargetID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.SetReviewHidden(context.Background(), review.ID, true)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Hidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetReviewHidden_NoChange(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	review := testReview(models.ReviewTargetUser, models.ReviewStatusApproved)

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM reviews WHERE id (.+) FOR UPDATE").
		WithArgs(review.ID).
		WillReturnRows(reviewRows(review))
	mock.ExpectCommit()

	got, err := repo.SetReviewHidden(context.Background(), review.ID, false)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Hidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetReviewHidden_NotApproved(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	review := testReview(models.ReviewTargetUser, models.ReviewStatusPending)

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM reviews WHERE id (.+) FOR UPDATE").
		WithArgs(review.ID).
		WillReturnRows(reviewRows(review))
	mock.ExpectRollback()

	got, err := repo.SetReviewHidden(context.Background(), review.ID, true)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}
