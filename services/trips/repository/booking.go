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

const bookingColumns = `
	id, trip_id, passenger_id, seats, total_price,
	status, payment_status, created_at, updated_at
`

// CreateBooking persists a new booking request
func (r *TripRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (
			id, trip_id, passenger_id, seats, total_price,
			status, payment_status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.TripID,
		booking.PassengerID,
		booking.Seats,
		booking.TotalPrice,
		booking.Status,
		booking.PaymentStatus,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetBookingByID retrieves a booking by its ID
func (r *TripRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking := &models.Booking{}
	if err := r.db.GetContext(ctx, booking, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// GetActiveBooking retrieves a passenger's pending or approved booking
// on a trip, if any. Used to enforce one active booking per passenger
// per trip.
func (r *TripRepo) GetActiveBooking(ctx context.Context, tripID, passengerID uuid.UUID) (*models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE trip_id = $1 AND passenger_id = $2 AND status IN ($3, $4)
		LIMIT 1`

	booking := &models.Booking{}
	err := r.db.GetContext(ctx, booking, query, tripID, passengerID,
		models.BookingStatusPending, models.BookingStatusApproved)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active booking: %w", err)
	}
	return booking, nil
}

// ListBookingsByTrip retrieves all bookings on a trip
func (r *TripRepo) ListBookingsByTrip(ctx context.Context, tripID uuid.UUID) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE trip_id = $1 ORDER BY created_at ASC`
	return r.listBookings(ctx, query, tripID)
}

// ListBookingsByPassenger retrieves all bookings made by a passenger
func (r *TripRepo) ListBookingsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE passenger_id = $1 ORDER BY created_at DESC`
	return r.listBookings(ctx, query, passengerID)
}

func (r *TripRepo) listBookings(ctx context.Context, query string, args ...interface{}) ([]*models.Booking, error) {
	var bookings []*models.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// lockBooking reads a booking row under FOR UPDATE so the transition
// and seat accounting that follow see a stable status.
func lockBooking(ctx context.Context, tx *sqlx.Tx, bookingID uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`

	booking := &models.Booking{}
	if err := tx.GetContext(ctx, booking, query, bookingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock booking: %w", err)
	}
	return booking, nil
}

func setBookingStatus(ctx context.Context, tx *sqlx.Tx, booking *models.Booking, status models.BookingStatus, payment models.PaymentStatus) error {
	query := `UPDATE bookings SET status = $1, payment_status = $2, updated_at = NOW() WHERE id = $3`
	if _, err := tx.ExecContext(ctx, query, status, payment, booking.ID); err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	booking.Status = status
	booking.PaymentStatus = payment
	return nil
}

// ApproveBooking transitions a pending booking to approved and reserves
// its seats on the trip. Both happen in one transaction: if the seat
// reservation fails the status change never becomes visible.
func (r *TripRepo) ApproveBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	booking, err := lockBooking(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending {
		return nil, fmt.Errorf("booking is %s, cannot approve: %w", booking.Status, apperrors.ErrInvalidTransition)
	}

	if err := reserveSeats(ctx, tx, booking.TripID, booking.Seats); err != nil {
		return nil, err
	}
	if err := setBookingStatus(ctx, tx, booking, models.BookingStatusApproved, models.PaymentStatusPaid); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return booking, nil
}

// RejectBooking transitions a pending booking to rejected
func (r *TripRepo) RejectBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	booking, err := lockBooking(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending {
		return nil, fmt.Errorf("booking is %s, cannot reject: %w", booking.Status, apperrors.ErrInvalidTransition)
	}
	if err := setBookingStatus(ctx, tx, booking, models.BookingStatusRejected, booking.PaymentStatus); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return booking, nil
}

// CancelBooking transitions a booking to cancelled. An approved booking
// returns its seats to the trip in the same transaction. Cancelling an
// already cancelled booking is a no-op.
func (r *TripRepo) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	booking, err := lockBooking(ctx, tx, bookingID)
	if err != nil {
		return nil, false, err
	}

	switch booking.Status {
	case models.BookingStatusCancelled:
		return booking, false, nil
	case models.BookingStatusPending:
		if err := setBookingStatus(ctx, tx, booking, models.BookingStatusCancelled, booking.PaymentStatus); err != nil {
			return nil, false, err
		}
		if err := tx.Commit(); err != nil {
			return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return booking, false, nil
	case models.BookingStatusApproved:
		if err := releaseSeats(ctx, tx, booking.TripID, booking.Seats); err != nil {
			return nil, false, err
		}
		payment := booking.PaymentStatus
		if payment == models.PaymentStatusPaid {
			payment = models.PaymentStatusRefunded
		}
		if err := setBookingStatus(ctx, tx, booking, models.BookingStatusCancelled, payment); err != nil {
			return nil, false, err
		}
		if err := tx.Commit(); err != nil {
			return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return booking, true, nil
	default:
		return nil, false, fmt.Errorf("booking is %s, cannot cancel: %w", booking.Status, apperrors.ErrInvalidTransition)
	}
}

// CompleteBooking transitions an approved booking to completed
func (r *TripRepo) CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	booking, err := lockBooking(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusApproved {
		return nil, fmt.Errorf("booking is %s, cannot complete: %w", booking.Status, apperrors.ErrInvalidTransition)
	}
	if err := setBookingStatus(ctx, tx, booking, models.BookingStatusCompleted, booking.PaymentStatus); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return booking, nil
}
