package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

// TripUC defines the interface for trip and booking business logic.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/wheelshare/wheelshare/services/trips TripUC
type TripUC interface {
	PublishTrip(ctx context.Context, driverID uuid.UUID, req *models.CreateTripRequest) (*models.Trip, error)
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	ListMyTrips(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error)
	ListOpenTrips(ctx context.Context, limit int) ([]*models.Trip, error)
	StartTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error)
	CompleteTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error)
	CancelTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error)

	RequestBooking(ctx context.Context, passengerID uuid.UUID, req *models.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, callerID, bookingID uuid.UUID) (*models.Booking, error)
	ListTripBookings(ctx context.Context, driverID, tripID uuid.UUID) ([]*models.Booking, error)
	ListMyBookings(ctx context.Context, passengerID uuid.UUID) ([]*models.Booking, error)
	ApproveBooking(ctx context.Context, driverID, bookingID uuid.UUID) (*models.Booking, error)
	RejectBooking(ctx context.Context, driverID, bookingID uuid.UUID) (*models.Booking, error)
	CancelBooking(ctx context.Context, callerID, bookingID uuid.UUID) (*models.Booking, error)
	CompleteBooking(ctx context.Context, driverID, bookingID uuid.UUID) (*models.Booking, error)
}
