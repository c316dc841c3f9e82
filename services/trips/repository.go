package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

// TripRepo defines the interface for trip and booking data access.
//
// Seat accounting is transactional: ReserveSeats and ReleaseSeats are
// atomic conditional updates, and the booking transition methods couple
// the status change with the seat accounting in one database
// transaction so neither is observable without the other.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/wheelshare/wheelshare/services/trips TripRepo
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	ListTripsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error)
	ListOpenTrips(ctx context.Context, limit int) ([]*models.Trip, error)

	// ReserveSeats atomically checks and decrements available seats.
	// Fails with ErrCapacityExceeded or ErrTripNotBookable.
	ReserveSeats(ctx context.Context, tripID uuid.UUID, seats int) error

	// ReleaseSeats increments available seats, capped at total seats.
	// Exceeding the cap fails with ErrInvariantViolation.
	ReleaseSeats(ctx context.Context, tripID uuid.UUID, seats int) error

	StartTrip(ctx context.Context, tripID uuid.UUID) error
	// CompleteTrip transitions the trip and its approved bookings to
	// completed in one transaction.
	CompleteTrip(ctx context.Context, tripID uuid.UUID) error
	// CancelTrip cancels the trip and all its active bookings in one
	// transaction, returning the bookings that were cancelled.
	CancelTrip(ctx context.Context, tripID uuid.UUID) ([]*models.Booking, error)

	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	GetActiveBooking(ctx context.Context, tripID, passengerID uuid.UUID) (*models.Booking, error)
	ListBookingsByTrip(ctx context.Context, tripID uuid.UUID) ([]*models.Booking, error)
	ListBookingsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.Booking, error)

	// ApproveBooking couples pending->approved with seat reservation.
	ApproveBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	// RejectBooking transitions pending->rejected.
	RejectBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	// CancelBooking transitions to cancelled, releasing reserved seats
	// when the booking was approved. Idempotent: cancelling an already
	// cancelled booking returns it unchanged with released=false.
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (booking *models.Booking, released bool, err error)
	// CompleteBooking transitions approved->completed.
	CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
}
