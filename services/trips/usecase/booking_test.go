package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wheelshare/wheelshare/internal/pkg/apperrors"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

func TestRequestBooking_Success(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	passengerID := uuid.New()
	tripID := uuid.New()
	trip := &models.Trip{
		ID:             tripID,
		DriverID:       uuid.New(),
		Status:         models.TripStatusScheduled,
		AvailableSeats: 3,
		PricePerSeat:   75000,
	}

	m.repo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil)
	m.repo.EXPECT().GetActiveBooking(gomock.Any(), tripID, passengerID).Return(nil, apperrors.ErrNotFound)
	m.repo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().PublishBookingRequested(gomock.Any(), gomock.Any()).Return(nil)

	booking, err := uc.RequestBooking(context.Background(), passengerID, &models.CreateBookingRequest{
		TripID: tripID,
		Seats:  2,
	})

	assert.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, models.PaymentStatusUnpaid, booking.PaymentStatus)
	assert.Equal(t, 150000, booking.TotalPrice)
}

func TestRequestBooking_OwnTrip(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	tripID := uuid.New()

	m.repo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(&models.Trip{
		ID:       tripID,
		DriverID: driverID,
		Status:   models.TripStatusScheduled,
	}, nil)

	booking, err := uc.RequestBooking(context.Background(), driverID, &models.CreateBookingRequest{
		TripID: tripID,
		Seats:  1,
	})

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, apperrors.ErrNotEligible)
}

func TestRequestBooking_TripNotBookable(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	m.repo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(&models.Trip{
		ID:       tripID,
		DriverID: uuid.New(),
		Status:   models.TripStatusInProgress,
	}, nil)

	booking, err := uc.RequestBooking(context.Background(), uuid.New(), &models.CreateBookingRequest{
		TripID: tripID,
		Seats:  1,
	})

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, apperrors.ErrTripNotBookable)
}

func TestRequestBooking_NotEnoughSeats(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	m.repo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(&models.Trip{
		ID:             tripID,
		DriverID:       uuid.New(),
		Status:         models.TripStatusScheduled,
		AvailableSeats: 1,
	}, nil)

	booking, err := uc.RequestBooking(context.Background(), uuid.New(), &models.CreateBookingRequest{
		TripID: tripID,
		Seats:  2,
	})

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
}

func TestRequestBooking_Duplicate(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	passengerID := uuid.New()
	tripID := uuid.New()

	m.repo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(&models.Trip{
		ID:             tripID,
		DriverID:       uuid.New(),
		Status:         models.TripStatusScheduled,
		AvailableSeats: 3,
	}, nil)
	m.repo.EXPECT().GetActiveBooking(gomock.Any(), tripID, passengerID).Return(&models.Booking{
		ID:          uuid.New(),
		TripID:      tripID,
		PassengerID: passengerID,
		Status:      models.BookingStatusPending,
	}, nil)

	booking, err := uc.RequestBooking(context.Background(), passengerID, &models.CreateBookingRequest{
		TripID: tripID,
		Seats:  1,
	})

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateBooking)
}

func TestApproveBooking_Success(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	tripID := uuid.New()
	booking := &models.Booking{
		ID:            uuid.New(),
		TripID:        tripID,
		PassengerID:   uuid.New(),
		Seats:         2,
		TotalPrice:    150000,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
	}
	approved := &models.Booking{
		ID:            booking.ID,
		TripID:        tripID,
		PassengerID:   booking.PassengerID,
		Seats:         2,
		TotalPrice:    150000,
		Status:        models.BookingStatusApproved,
		PaymentStatus: models.PaymentStatusPaid,
	}

	m.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil)
	m.repo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(&models.Trip{ID: tripID, DriverID: driverID}, nil)
	m.paymentGW.EXPECT().Authorize(gomock.Any(), &models.PaymentAuthorizeRequest{
		ReferenceID: booking.ID,
		UserID:      booking.PassengerID,
		Amount:      150000,
		Currency:    "IDR",
	}).Return(&models.PaymentResult{TransactionID: "txn-1", Success: true}, nil)
	m.repo.EXPECT().ApproveBooking(gomock.Any(), booking.ID).Return(approved, nil)
	m.gw.EXPECT().PublishBookingApproved(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.ApproveBooking(context.Background(), driverID, booking.ID)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.BookingStatusApproved, got.Status)
	assert.Equal(t, models.PaymentStatusPaid, got.PaymentStatus)
}

func TestApproveBooking_PaymentDeclined(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	tripID := uuid.New()
	booking := &models.Booking{
		ID:          uuid.New(),
		TripID:      tripID,
		PassengerID: uuid.New(),
		Seats:       1,
		TotalPrice:  75000,
		Status:      models.BookingStatusPending,
	}

	m.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil)
	m.repo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(&models.Trip{ID: tripID, DriverID: driverID}, nil)
	m.paymentGW.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(&models.PaymentResult{
		Success: false,
		Message: "insufficient funds",
	}, nil)

	// The booking stays pending: no repository transition, no refund.
	got, err := uc.ApproveBooking(context.Background(), driverID, booking.ID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrPaymentFailed)
}

func TestApproveBooking_RefundsWhenReservationFails(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	tripID := uuid.New()
	booking := &models.Booking{
		ID:          uuid.New(),
		TripID:      tripID,
		PassengerID: uuid.New(),
		Seats:       3,
		TotalPrice:  225000,
		Status:      models.BookingStatusPending,
	}

	m.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil)
	m.repo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(&models.Trip{ID: tripID, DriverID: driverID}, nil)
	m.paymentGW.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(&models.PaymentResult{
		TransactionID: "txn-2",
		Success:       true,
	}, nil)
	m.repo.EXPECT().ApproveBooking(gomock.Any(), booking.ID).
		Return(nil, fmt.Errorf("2 seats requested, 1 available: %w", apperrors.ErrCapacityExceeded))
	m.paymentGW.EXPECT().Refund(gomock.Any(), &models.PaymentRefundRequest{
		ReferenceID: booking.ID,
		Amount:      booking.TotalPrice,
		Reason:      "booking approval failed",
	}).Return(nil)

	got, err := uc.ApproveBooking(context.Background(), driverID, booking.ID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
}

func TestApproveBooking_ConcurrentApprovalsSingleWinner(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	const workers = 8

	driverID := uuid.New()
	tripID := uuid.New()
	booking := &models.Booking{
		ID:          uuid.New(),
		TripID:      tripID,
		PassengerID: uuid.New(),
		Seats:       2,
		TotalPrice:  150000,
		Status:      models.BookingStatusPending,
	}
	approved := &models.Booking{
		ID:            booking.ID,
		TripID:        tripID,
		PassengerID:   booking.PassengerID,
		Seats:         2,
		TotalPrice:    150000,
		Status:        models.BookingStatusApproved,
		PaymentStatus: models.PaymentStatusPaid,
	}

	m.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil).Times(workers)
	m.repo.EXPECT().GetTripByID(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, DriverID: driverID}, nil).Times(workers)
	m.paymentGW.EXPECT().Authorize(gomock.Any(), gomock.Any()).
		Return(&models.PaymentResult{Success: true}, nil).Times(workers)

	// The repository transition admits exactly one winner; the rest see
	// the status guard fail.
	var mu sync.Mutex
	won := false
	m.repo.EXPECT().ApproveBooking(gomock.Any(), booking.ID).
		DoAndReturn(func(context.Context, uuid.UUID) (*models.Booking, error) {
			mu.Lock()
			defer mu.Unlock()
			if won {
				return nil, fmt.Errorf("booking is approved, cannot approve: %w", apperrors.ErrInvalidTransition)
			}
			won = true
			return approved, nil
		}).Times(workers)
	m.paymentGW.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(nil).Times(workers - 1)
	m.gw.EXPECT().PublishBookingApproved(gomock.Any(), gomock.Any()).Return(nil)

	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.ApproveBooking(context.Background(), driverID, booking.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
		}
	}
	assert.Equal(t, 1, successes)
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	passengerID := uuid.New()
	booking := &models.Booking{
		ID:            uuid.New(),
		TripID:        uuid.New(),
		PassengerID:   passengerID,
		Status:        models.BookingStatusCancelled,
		PaymentStatus: models.PaymentStatusRefunded,
	}

	// No transition, no refund, no event.
	m.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil)

	got, err := uc.CancelBooking(context.Background(), passengerID, booking.ID)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.BookingStatusCancelled, got.Status)
}

func TestCancelBooking_ApprovedRefunds(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	passengerID := uuid.New()
	booking := &models.Booking{
		ID:            uuid.New(),
		TripID:        uuid.New(),
		PassengerID:   passengerID,
		Seats:         2,
		TotalPrice:    150000,
		Status:        models.BookingStatusApproved,
		PaymentStatus: models.PaymentStatusPaid,
	}
	cancelled := &models.Booking{
		ID:            booking.ID,
		TripID:        booking.TripID,
		PassengerID:   passengerID,
		Seats:         2,
		TotalPrice:    150000,
		Status:        models.BookingStatusCancelled,
		PaymentStatus: models.PaymentStatusRefunded,
	}

	m.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil)
	m.repo.EXPECT().CancelBooking(gomock.Any(), booking.ID).Return(cancelled, true, nil)
	m.paymentGW.EXPECT().Refund(gomock.Any(), &models.PaymentRefundRequest{
		ReferenceID: booking.ID,
		Amount:      150000,
		Reason:      "booking cancelled",
	}).Return(nil)
	m.gw.EXPECT().PublishBookingCancelled(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.CancelBooking(context.Background(), passengerID, booking.ID)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.PaymentStatusRefunded, got.PaymentStatus)
}

func TestCancelBooking_RefundFollowsLedger(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	passengerID := uuid.New()
	// The pre-transition read sees the booking before payment landed;
	// the refund decision follows the row the repository returns.
	booking := &models.Booking{
		ID:            uuid.New(),
		TripID:        uuid.New(),
		PassengerID:   passengerID,
		Seats:         1,
		TotalPrice:    75000,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
	}
	cancelled := &models.Booking{
		ID:            booking.ID,
		TripID:        booking.TripID,
		PassengerID:   passengerID,
		Seats:         1,
		TotalPrice:    75000,
		Status:        models.BookingStatusCancelled,
		PaymentStatus: models.PaymentStatusRefunded,
	}

	m.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil)
	m.repo.EXPECT().CancelBooking(gomock.Any(), booking.ID).Return(cancelled, true, nil)
	m.paymentGW.EXPECT().Refund(gomock.Any(), &models.PaymentRefundRequest{
		ReferenceID: booking.ID,
		Amount:      75000,
		Reason:      "booking cancelled",
	}).Return(nil)
	m.gw.EXPECT().PublishBookingCancelled(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.CancelBooking(context.Background(), passengerID, booking.ID)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.PaymentStatusRefunded, got.PaymentStatus)
}

func TestCancelBooking_StrangerNotAllowed(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	booking := &models.Booking{
		ID:          uuid.New(),
		TripID:      uuid.New(),
		PassengerID: uuid.New(),
		Status:      models.BookingStatusPending,
	}

	m.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil)
	m.repo.EXPECT().GetTripByID(gomock.Any(), booking.TripID).Return(&models.Trip{
		ID:       booking.TripID,
		DriverID: uuid.New(),
	}, nil)

	got, err := uc.CancelBooking(context.Background(), uuid.New(), booking.ID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNotEligible)
}

func TestGetBooking_VisibleToDriver(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	booking := &models.Booking{
		ID:          uuid.New(),
		TripID:      uuid.New(),
		PassengerID: uuid.New(),
		Status:      models.BookingStatusPending,
	}

	m.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil)
	m.repo.EXPECT().GetTripByID(gomock.Any(), booking.TripID).Return(&models.Trip{
		ID:       booking.TripID,
		DriverID: driverID,
	}, nil)

	got, err := uc.GetBooking(context.Background(), driverID, booking.ID)

	assert.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)
}
