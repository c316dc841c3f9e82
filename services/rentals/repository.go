package rentals

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

// RentalRepo defines the interface for reservation data access.
//
// Date-range accounting is transactional: ConfirmReservation locks the
// vehicle's calendar, checks for overlapping blocking reservations and
// writes the new status in one transaction, so two overlapping
// confirmations can never both succeed.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/wheelshare/wheelshare/services/rentals RentalRepo
type RentalRepo interface {
	CreateReservation(ctx context.Context, reservation *models.Reservation) error
	GetReservationByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	ListReservationsByRenter(ctx context.Context, renterID uuid.UUID) ([]*models.Reservation, error)
	ListReservationsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.Reservation, error)

	// BlockingReservations returns confirmed and in_progress
	// reservations on the vehicle overlapping [start, end).
	BlockingReservations(ctx context.Context, vehicleID uuid.UUID, start, end time.Time) ([]*models.Reservation, error)

	// ConfirmReservation couples pending->confirmed with the overlap
	// check. Fails with ErrDateRangeConflict when a blocking
	// reservation overlaps.
	ConfirmReservation(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, error)
	// StartReservation transitions confirmed->in_progress at pickup.
	StartReservation(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, error)
	// CompleteReservation transitions to completed at return.
	CompleteReservation(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, error)
	// CancelReservation transitions to cancelled, releasing the held
	// date range when the reservation was confirmed. Idempotent.
	CancelReservation(ctx context.Context, reservationID uuid.UUID, reason string) (reservation *models.Reservation, released bool, err error)
}
