package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/wheelshare/wheelshare/internal/pkg/apperrors"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

// RentalRepo implements reservation data access backed by PostgreSQL.
type RentalRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRentalRepo creates a new rental repository
func NewRentalRepo(cfg *models.Config, db *sqlx.DB) *RentalRepo {
	return &RentalRepo{
		cfg: cfg,
		db:  db,
	}
}

const reservationColumns = `
	id, vehicle_id, renter_id, start_date, end_date, total_price,
	status, payment_status, additional_drivers, cancel_reason,
	created_at, updated_at
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*models.Reservation, error) {
	reservation := &models.Reservation{}
	var driversJSON []byte
	err := row.Scan(
		&reservation.ID,
		&reservation.VehicleID,
		&reservation.RenterID,
		&reservation.StartDate,
		&reservation.EndDate,
		&reservation.TotalPrice,
		&reservation.Status,
		&reservation.PaymentStatus,
		&driversJSON,
		&reservation.CancelReason,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan reservation: %w", err)
	}
	if len(driversJSON) > 0 {
		if err := json.Unmarshal(driversJSON, &reservation.AdditionalDrivers); err != nil {
			return nil, fmt.Errorf("failed to decode additional drivers: %w", err)
		}
	}
	return reservation, nil
}

// CreateReservation persists a new reservation request
func (r *RentalRepo) CreateReservation(ctx context.Context, reservation *models.Reservation) error {
	driversJSON, err := json.Marshal(reservation.AdditionalDrivers)
	if err != nil {
		return fmt.Errorf("failed to encode additional drivers: %w", err)
	}

	query := `
		INSERT INTO reservations (
			id, vehicle_id, renter_id, start_date, end_date, total_price,
			status, payment_status, additional_drivers, cancel_reason,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err = r.db.ExecContext(ctx, query,
		reservation.ID,
		reservation.VehicleID,
		reservation.RenterID,
		reservation.StartDate,
		reservation.EndDate,
		reservation.TotalPrice,
		reservation.Status,
		reservation.PaymentStatus,
		driversJSON,
		reservation.CancelReason,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

// GetReservationByID retrieves a reservation by its ID
func (r *RentalRepo) GetReservationByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	return scanReservation(r.db.QueryRowContext(ctx, query, id))
}

// ListReservationsByRenter retrieves all of a renter's reservations
func (r *RentalRepo) ListReservationsByRenter(ctx context.Context, renterID uuid.UUID) ([]*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE renter_id = $1 ORDER BY start_date DESC`
	return r.listReservations(ctx, query, renterID)
}

// ListReservationsByVehicle retrieves all reservations on a vehicle
func (r *RentalRepo) ListReservationsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE vehicle_id = $1 ORDER BY start_date ASC`
	return r.listReservations(ctx, query, vehicleID)
}

// BlockingReservations retrieves confirmed and in_progress reservations
// on a vehicle overlapping the half-open range [start, end).
func (r *RentalRepo) BlockingReservations(ctx context.Context, vehicleID uuid.UUID, start, end time.Time) ([]*models.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE vehicle_id = $1
		  AND status IN ($2, $3)
		  AND start_date < $5 AND $4 < end_date
		ORDER BY start_date ASC`
	return r.listReservations(ctx, query, vehicleID,
		models.ReservationStatusConfirmed, models.ReservationStatusInProgress, start, end)
}

func (r *RentalRepo) listReservations(ctx context.Context, query string, args ...interface{}) ([]*models.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*models.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reservations, nil
}

func lockReservation(ctx context.Context, tx *sqlx.Tx, reservationID uuid.UUID) (*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`
	return scanReservation(tx.QueryRowContext(ctx, query, reservationID))
}

func setReservationStatus(ctx context.Context, tx *sqlx.Tx, reservation *models.Reservation, status models.ReservationStatus, payment models.PaymentStatus, reason string) error {
	query := `
		UPDATE reservations
		SET status = $1, payment_status = $2, cancel_reason = $3, updated_at = NOW()
		WHERE id = $4`
	if _, err := tx.ExecContext(ctx, query, status, payment, reason, reservation.ID); err != nil {
		return fmt.Errorf("failed to update reservation status: %w", err)
	}
	reservation.Status = status
	reservation.PaymentStatus = payment
	reservation.CancelReason = reason
	return nil
}

// ConfirmReservation transitions a pending reservation to confirmed
// after locking the vehicle's calendar and checking that no blocking
// reservation overlaps the requested range. The lock on the vehicle row
// serializes competing confirmations so at most one of two overlapping
// requests succeeds.
func (r *RentalRepo) ConfirmReservation(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	reservation, err := lockReservation(ctx, tx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status != models.ReservationStatusPending {
		return nil, fmt.Errorf("reservation is %s, cannot confirm: %w", reservation.Status, apperrors.ErrInvalidTransition)
	}

	var vehicleID uuid.UUID
	err = tx.QueryRowContext(ctx, `SELECT id FROM vehicles WHERE id = $1 FOR UPDATE`, reservation.VehicleID).Scan(&vehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock vehicle: %w", err)
	}

	var conflict bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM reservations
			WHERE vehicle_id = $1
			  AND id <> $2
			  AND status IN ($3, $4)
			  AND start_date < $6 AND $5 < end_date
		)`,
		reservation.VehicleID, reservation.ID,
		models.ReservationStatusConfirmed, models.ReservationStatusInProgress,
		reservation.StartDate, reservation.EndDate,
	).Scan(&conflict)
	if err != nil {
		return nil, fmt.Errorf("failed to check date range: %w", err)
	}
	if conflict {
		return nil, fmt.Errorf("vehicle already reserved in range: %w", apperrors.ErrDateRangeConflict)
	}

	if err := setReservationStatus(ctx, tx, reservation, models.ReservationStatusConfirmed, models.PaymentStatusPaid, ""); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return reservation, nil
}

// StartReservation transitions a confirmed reservation to in_progress
func (r *RentalRepo) StartReservation(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, error) {
	return r.transition(ctx, reservationID, models.ReservationStatusConfirmed, models.ReservationStatusInProgress)
}

// CompleteReservation transitions a reservation to completed at vehicle
// return, which releases its date range.
func (r *RentalRepo) CompleteReservation(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	reservation, err := lockReservation(ctx, tx, reservationID)
	if err != nil {
		return nil, err
	}
	if !reservation.Status.CanTransitionTo(models.ReservationStatusCompleted) {
		return nil, fmt.Errorf("reservation is %s, cannot complete: %w", reservation.Status, apperrors.ErrInvalidTransition)
	}
	if err := setReservationStatus(ctx, tx, reservation, models.ReservationStatusCompleted, reservation.PaymentStatus, reservation.CancelReason); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return reservation, nil
}

func (r *RentalRepo) transition(ctx context.Context, reservationID uuid.UUID, from, to models.ReservationStatus) (*models.Reservation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	reservation, err := lockReservation(ctx, tx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status != from {
		return nil, fmt.Errorf("reservation is %s, cannot move to %s: %w", reservation.Status, to, apperrors.ErrInvalidTransition)
	}
	if err := setReservationStatus(ctx, tx, reservation, to, reservation.PaymentStatus, reservation.CancelReason); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return reservation, nil
}

// CancelReservation transitions a reservation to cancelled. Cancelling
// a confirmed reservation refunds it and frees its date range, which is
// implicit: the row no longer matches blocking status filters. Repeated
// cancellation is a no-op.
func (r *RentalRepo) CancelReservation(ctx context.Context, reservationID uuid.UUID, reason string) (*models.Reservation, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	reservation, err := lockReservation(ctx, tx, reservationID)
	if err != nil {
		return nil, false, err
	}

	switch reservation.Status {
	case models.ReservationStatusCancelled:
		return reservation, false, nil
	case models.ReservationStatusPending:
		if err := setReservationStatus(ctx, tx, reservation, models.ReservationStatusCancelled, reservation.PaymentStatus, reason); err != nil {
			return nil, false, err
		}
		if err := tx.Commit(); err != nil {
			return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return reservation, false, nil
	case models.ReservationStatusConfirmed:
		payment := reservation.PaymentStatus
		if payment == models.PaymentStatusPaid {
			payment = models.PaymentStatusRefunded
		}
		if err := setReservationStatus(ctx, tx, reservation, models.ReservationStatusCancelled, payment, reason); err != nil {
			return nil, false, err
		}
		if err := tx.Commit(); err != nil {
			return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return reservation, true, nil
	default:
		return nil, false, fmt.Errorf("reservation is %s, cannot cancel: %w", reservation.Status, apperrors.ErrInvalidTransition)
	}
}
