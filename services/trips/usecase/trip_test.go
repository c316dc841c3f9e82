package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wheelshare/wheelshare/internal/pkg/apperrors"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	tripmocks "github.com/wheelshare/wheelshare/services/trips/mocks"
	vehiclemocks "github.com/wheelshare/wheelshare/services/vehicles/mocks"
)

type tripUCMocks struct {
	repo      *tripmocks.MockTripRepo
	vehicleUC *vehiclemocks.MockVehicleUC
	gw        *tripmocks.MockTripGW
	paymentGW *tripmocks.MockPaymentGW
}

func setupTripUCTest(t *testing.T) (*tripUC, tripUCMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := tripUCMocks{
		repo:      tripmocks.NewMockTripRepo(ctrl),
		vehicleUC: vehiclemocks.NewMockVehicleUC(ctrl),
		gw:        tripmocks.NewMockTripGW(ctrl),
		paymentGW: tripmocks.NewMockPaymentGW(ctrl),
	}

	cfg := &models.Config{
		Payment: models.PaymentConfig{Currency: "IDR"},
		Search:  models.SearchConfig{MaxResults: 50},
	}

	uc := NewTripUC(cfg, m.repo, m.vehicleUC, m.gw, m.paymentGW).(*tripUC)
	return uc, m, ctrl
}

func testTripRequest(vehicleID uuid.UUID) *models.CreateTripRequest {
	departure := time.Now().Add(24 * time.Hour)
	return &models.CreateTripRequest{
		VehicleID:     vehicleID,
		Origin:        models.Location{Latitude: -6.2, Longitude: 106.8, Address: "Jakarta"},
		Destination:   models.Location{Latitude: -6.9, Longitude: 107.6, Address: "Bandung"},
		DepartureTime: departure,
		ArrivalTime:   departure.Add(3 * time.Hour),
		TotalSeats:    3,
		PricePerSeat:  75000,
	}
}

func TestPublishTrip_Success(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	vehicleID := uuid.New()
	req := testTripRequest(vehicleID)

	m.vehicleUC.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(&models.Vehicle{
		ID:           vehicleID,
		OwnerID:      driverID,
		SeatCapacity: 4,
		IsAvailable:  true,
	}, nil)
	m.repo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().PublishTripPublished(gomock.Any(), gomock.Any()).Return(nil)

	trip, err := uc.PublishTrip(context.Background(), driverID, req)

	assert.NoError(t, err)
	require.NotNil(t, trip)
	assert.Equal(t, driverID, trip.DriverID)
	assert.Equal(t, models.TripStatusScheduled, trip.Status)
	assert.Equal(t, 3, trip.TotalSeats)
	assert.Equal(t, 3, trip.AvailableSeats)
}

func TestPublishTrip_SeatsExceedVehicleCapacity(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	vehicleID := uuid.New()
	req := testTripRequest(vehicleID)
	req.TotalSeats = 4

	// A 4-seat vehicle carries at most 3 passengers.
	m.vehicleUC.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(&models.Vehicle{
		ID:           vehicleID,
		OwnerID:      driverID,
		SeatCapacity: 4,
		IsAvailable:  true,
	}, nil)

	trip, err := uc.PublishTrip(context.Background(), driverID, req)

	assert.Nil(t, trip)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestPublishTrip_NotVehicleOwner(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	vehicleID := uuid.New()
	req := testTripRequest(vehicleID)

	m.vehicleUC.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(&models.Vehicle{
		ID:           vehicleID,
		OwnerID:      uuid.New(),
		SeatCapacity: 4,
		IsAvailable:  true,
	}, nil)

	trip, err := uc.PublishTrip(context.Background(), driverID, req)

	assert.Nil(t, trip)
	assert.ErrorIs(t, err, apperrors.ErrNotEligible)
}

func TestPublishTrip_VehicleUnavailable(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	vehicleID := uuid.New()
	req := testTripRequest(vehicleID)

	m.vehicleUC.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(&models.Vehicle{
		ID:           vehicleID,
		OwnerID:      driverID,
		SeatCapacity: 4,
		IsAvailable:  false,
	}, nil)

	trip, err := uc.PublishTrip(context.Background(), driverID, req)

	assert.Nil(t, trip)
	assert.ErrorIs(t, err, apperrors.ErrNotEligible)
}

func TestPublishTrip_ArrivalBeforeDeparture(t *testing.T) {
	uc, _, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	req := testTripRequest(uuid.New())
	req.ArrivalTime = req.DepartureTime.Add(-time.Hour)

	trip, err := uc.PublishTrip(context.Background(), uuid.New(), req)

	assert.Nil(t, trip)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestStartTrip_Success(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	tripID := uuid.New()
	scheduled := &models.Trip{ID: tripID, DriverID: driverID, Status: models.TripStatusScheduled}
	started := &models.Trip{ID: tripID, DriverID: driverID, Status: models.TripStatusInProgress}

	m.repo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(scheduled, nil)
	m.repo.EXPECT().StartTrip(gomock.Any(), tripID).Return(nil)
	m.repo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(started, nil)
	m.gw.EXPECT().PublishTripStarted(gomock.Any(), started).Return(nil)

	trip, err := uc.StartTrip(context.Background(), driverID, tripID)

	assert.NoError(t, err)
	require.NotNil(t, trip)
	assert.Equal(t, models.TripStatusInProgress, trip.Status)
}

func TestStartTrip_NotOwner(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	m.repo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(&models.Trip{
		ID:       tripID,
		DriverID: uuid.New(),
		Status:   models.TripStatusScheduled,
	}, nil)

	trip, err := uc.StartTrip(context.Background(), uuid.New(), tripID)

	assert.Nil(t, trip)
	assert.ErrorIs(t, err, apperrors.ErrNotEligible)
}

func TestCancelTrip_RefundsPaidBookings(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	tripID := uuid.New()
	scheduled := &models.Trip{ID: tripID, DriverID: driverID, Status: models.TripStatusScheduled}
	cancelledTrip := &models.Trip{ID: tripID, DriverID: driverID, Status: models.TripStatusCancelled}

	refundedBooking := &models.Booking{
		ID:            uuid.New(),
		TripID:        tripID,
		PassengerID:   uuid.New(),
		Seats:         2,
		TotalPrice:    150000,
		Status:        models.BookingStatusCancelled,
		PaymentStatus: models.PaymentStatusRefunded,
	}
	pendingBooking := &models.Booking{
		ID:            uuid.New(),
		TripID:        tripID,
		PassengerID:   uuid.New(),
		Seats:         1,
		TotalPrice:    75000,
		Status:        models.BookingStatusCancelled,
		PaymentStatus: models.PaymentStatusUnpaid,
	}

	m.repo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(scheduled, nil)
	m.repo.EXPECT().CancelTrip(gomock.Any(), tripID).Return([]*models.Booking{refundedBooking, pendingBooking}, nil)

	// Only the booking the ledger marked refunded gets a refund issued.
	m.paymentGW.EXPECT().Refund(gomock.Any(), &models.PaymentRefundRequest{
		ReferenceID: refundedBooking.ID,
		Amount:      refundedBooking.TotalPrice,
		Reason:      "trip cancelled by driver",
	}).Return(nil)
	m.gw.EXPECT().PublishBookingCancelled(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	m.repo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(cancelledTrip, nil)
	m.gw.EXPECT().PublishTripCancelled(gomock.Any(), cancelledTrip).Return(nil)

	trip, err := uc.CancelTrip(context.Background(), driverID, tripID)

	assert.NoError(t, err)
	require.NotNil(t, trip)
	assert.Equal(t, models.TripStatusCancelled, trip.Status)
}

func TestListOpenTrips_CapsLimit(t *testing.T) {
	uc, m, ctrl := setupTripUCTest(t)
	defer ctrl.Finish()

	m.repo.EXPECT().ListOpenTrips(gomock.Any(), 50).Return([]*models.Trip{}, nil)

	_, err := uc.ListOpenTrips(context.Background(), 500)

	assert.NoError(t, err)
}
