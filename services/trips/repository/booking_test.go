package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wheelshare/wheelshare/internal/pkg/apperrors"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

func bookingRows(booking *models.Booking) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "trip_id", "passenger_id", "seats", "total_price",
		"status", "payment_status", "created_at", "updated_at",
	}).AddRow(
		booking.ID, booking.TripID, booking.PassengerID, booking.Seats, booking.TotalPrice,
		booking.Status, booking.PaymentStatus, booking.CreatedAt, booking.UpdatedAt,
	)
}

func testBooking(status models.BookingStatus, payment models.PaymentStatus) *models.Booking {
	return &models.Booking{
		ID:            uuid.New(),
		TripID:        uuid.New(),
		PassengerID:   uuid.New(),
		Seats:         2,
		TotalPrice:    150000,
		Status:        status,
		PaymentStatus: payment,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func TestCreateBooking(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	booking := testBooking(models.BookingStatusPending, models.PaymentStatusUnpaid)

	mock.ExpectExec("^INSERT INTO bookings").
		WithArgs(
			booking.ID, booking.TripID, booking.PassengerID, booking.Seats, booking.TotalPrice,
			booking.Status, booking.PaymentStatus, booking.CreatedAt, booking.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateBooking(context.Background(), booking)

	assert.NoError(t, err)
}

func TestGetActiveBooking(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	booking := testBooking(models.BookingStatusPending, models.PaymentStatusUnpaid)

	mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE trip_id").
		WithArgs(booking.TripID, booking.PassengerID, models.BookingStatusPending, models.BookingStatusApproved).
		WillReturnRows(bookingRows(booking))

	got, err := repo.GetActiveBooking(context.Background(), booking.TripID, booking.PassengerID)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, booking.ID, got.ID)
}

func TestGetActiveBooking_NotFound(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	tripID := uuid.New()
	passengerID := uuid.New()

	mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE trip_id").
		WithArgs(tripID, passengerID, models.BookingStatusPending, models.BookingStatusApproved).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetActiveBooking(context.Background(), tripID, passengerID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestApproveBooking(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	booking := testBooking(models.BookingStatusPending, models.PaymentStatusUnpaid)

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE id (.+) FOR UPDATE").
		WithArgs(booking.ID).
		WillReturnRows(bookingRows(booking))
	mock.ExpectExec("^UPDATE trips SET available_seats = available_seats -").
		WithArgs(booking.Seats, booking.TripID, models.TripStatusScheduled).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^UPDATE bookings SET status").
		WithArgs(models.BookingStatusApproved, models.PaymentStatusPaid, booking.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.ApproveBooking(context.Background(), booking.ID)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.BookingStatusApproved, got.Status)
	assert.Equal(t, models.PaymentStatusPaid, got.PaymentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveBooking_NotPending(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	booking := testBooking(models.BookingStatusRejected, models.PaymentStatusUnpaid)

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE id (.+) FOR UPDATE").
		WithArgs(booking.ID).
		WillReturnRows(bookingRows(booking))
	mock.ExpectRollback()

	got, err := repo.ApproveBooking(context.Background(), booking.ID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestApproveBooking_CapacityExceeded(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	booking := testBooking(models.BookingStatusPending, models.PaymentStatusUnpaid)

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE id (.+) FOR UPDATE").
		WithArgs(booking.ID).
		WillReturnRows(bookingRows(booking))
	mock.ExpectExec("^UPDATE trips SET available_seats = available_seats -").
		WithArgs(booking.Seats, booking.TripID, models.TripStatusScheduled).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("^SELECT status, available_seats FROM trips").
		WithArgs(booking.TripID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "available_seats"}).
			AddRow(models.TripStatusScheduled, 1))
	mock.ExpectRollback()

	got, err := repo.ApproveBooking(context.Background(), booking.ID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectBooking(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	booking := testBooking(models.BookingStatusPending, models.PaymentStatusUnpaid)

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE id (.+) FOR UPDATE").
		WithArgs(booking.ID).
		WillReturnRows(bookingRows(booking))
	mock.ExpectExec("^UPDATE bookings SET status").
		WithArgs(models.BookingStatusRejected, models.PaymentStatusUnpaid, booking.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.RejectBooking(context.Background(), booking.ID)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.BookingStatusRejected, got.Status)
}

func TestCancelBooking(t *testing.T) {
	testCases := []struct {
		name       string
		booking    *models.Booking
		mockSetup  func(mock sqlmock.Sqlmock, booking *models.Booking)
		assertFunc func(t *testing.T, booking *models.Booking, released bool, err error)
	}{
		{
			name:    "Already cancelled is a no-op",
			booking: testBooking(models.BookingStatusCancelled, models.PaymentStatusRefunded),
			mockSetup: func(mock sqlmock.Sqlmock, booking *models.Booking) {
				mock.ExpectBegin()
				mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE id (.+) FOR UPDATE").
					WithArgs(booking.ID).
					WillReturnRows(bookingRows(booking))
				mock.ExpectRollback()
			},
			assertFunc: func(t *testing.T, booking *models.Booking, released bool, err error) {
				assert.NoError(t, err)
				assert.False(t, released)
				assert.Equal(t, models.BookingStatusCancelled, booking.Status)
			},
		},
		{
			name:    "Pending cancels without releasing seats",
			booking: testBooking(models.BookingStatusPending, models.PaymentStatusUnpaid),
			mockSetup: func(mock sqlmock.Sqlmock, booking *models.Booking) {
				mock.ExpectBegin()
				mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE id (.+) FOR UPDATE").
					WithArgs(booking.ID).
					WillReturnRows(bookingRows(booking))
				mock.ExpectExec("^UPDATE bookings SET status").
					WithArgs(models.BookingStatusCancelled, models.PaymentStatusUnpaid, booking.ID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			assertFunc: func(t *testing.T, booking *models.Booking, released bool, err error) {
				assert.NoError(t, err)
				assert.False(t, released)
				assert.Equal(t, models.BookingStatusCancelled, booking.Status)
			},
		},
		{
			name:    "Approved releases seats and refunds",
			booking: testBooking(models.BookingStatusApproved, models.PaymentStatusPaid),
			mockSetup: func(mock sqlmock.Sqlmock, booking *models.Booking) {
				mock.ExpectBegin()
				mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE id (.+) FOR UPDATE").
					WithArgs(booking.ID).
					WillReturnRows(bookingRows(booking))
				mock.ExpectExec("^UPDATE trips SET available_seats = available_seats").
					WithArgs(booking.Seats, booking.TripID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("^UPDATE bookings SET status").
					WithArgs(models.BookingStatusCancelled, models.PaymentStatusRefunded, booking.ID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			assertFunc: func(t *testing.T, booking *models.Booking, released bool, err error) {
				assert.NoError(t, err)
				assert.True(t, released)
				assert.Equal(t, models.BookingStatusCancelled, booking.Status)
				assert.Equal(t, models.PaymentStatusRefunded, booking.PaymentStatus)
			},
		},
		{
			name:    "Approved but unpaid keeps payment status",
			booking: testBooking(models.BookingStatusApproved, models.PaymentStatusUnpaid),
			mockSetup: func(mock sqlmock.Sqlmock, booking *models.Booking) {
				mock.ExpectBegin()
				mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE id (.+) FOR UPDATE").
					WithArgs(booking.ID).
					WillReturnRows(bookingRows(booking))
				mock.ExpectExec("^UPDATE trips SET available_seats = available_seats").
					WithArgs(booking.Seats, booking.TripID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("^UPDATE bookings SET status").
					WithArgs(models.BookingStatusCancelled, models.PaymentStatusUnpaid, booking.ID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			assertFunc: func(t *testing.T, booking *models.Booking, released bool, err error) {
				assert.NoError(t, err)
				assert.True(t, released)
				assert.Equal(t, models.BookingStatusCancelled, booking.Status)
				assert.Equal(t, models.PaymentStatusUnpaid, booking.PaymentStatus)
			},
		},
		{
			name:    "Completed cannot be cancelled",
			booking: testBooking(models.BookingStatusCompleted, models.PaymentStatusPaid),
			mockSetup: func(mock sqlmock.Sqlmock, booking *models.Booking) {
				mock.ExpectBegin()
				mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE id (.+) FOR UPDATE").
					WithArgs(booking.ID).
					WillReturnRows(bookingRows(booking))
				mock.ExpectRollback()
			},
			assertFunc: func(t *testing.T, booking *models.Booking, released bool, err error) {
				assert.Nil(t, booking)
				assert.False(t, released)
				assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTripRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock, tc.booking)

			booking, released, err := repo.CancelBooking(context.Background(), tc.booking.ID)

			tc.assertFunc(t, booking, released, err)
		})
	}
}

func TestCompleteBooking(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	booking := testBooking(models.BookingStatusApproved, models.PaymentStatusPaid)

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE id (.+) FOR UPDATE").
		WithArgs(booking.ID).
		WillReturnRows(bookingRows(booking))
	mock.ExpectExec("^UPDATE bookings SET status").
		WithArgs(models.BookingStatusCompleted, models.PaymentStatusPaid, booking.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.CompleteBooking(context.Background(), booking.ID)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.BookingStatusCompleted, got.Status)
}

func TestCompleteBooking_NotApproved(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	booking := testBooking(models.BookingStatusPending, models.PaymentStatusUnpaid)

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE id (.+) FOR UPDATE").
		WithArgs(booking.ID).
		WillReturnRows(bookingRows(booking))
	mock.ExpectRollback()

	got, err := repo.CompleteBooking(context.Background(), booking.ID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}
