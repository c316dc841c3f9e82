package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/wheelshare/wheelshare/internal/pkg/apperrors"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

// TripRepo implements trip and booking data access backed by PostgreSQL.
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepo creates a new trip repository
func NewTripRepo(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

const tripColumns = `
	id, driver_id, vehicle_id,
	origin_lat, origin_lng, origin_address,
	destination_lat, destination_lng, destination_address,
	route, departure_time, arrival_time,
	total_seats, available_seats, price_per_seat,
	status, created_at, updated_at
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrip(row rowScanner) (*models.Trip, error) {
	trip := &models.Trip{}
	var routeJSON []byte
	err := row.Scan(
		&trip.ID,
		&trip.DriverID,
		&trip.VehicleID,
		&trip.Origin.Latitude,
		&trip.Origin.Longitude,
		&trip.Origin.Address,
		&trip.Destination.Latitude,
		&trip.Destination.Longitude,
		&trip.Destination.Address,
		&routeJSON,
		&trip.DepartureTime,
		&trip.ArrivalTime,
		&trip.TotalSeats,
		&trip.AvailableSeats,
		&trip.PricePerSeat,
		&trip.Status,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan trip: %w", err)
	}
	if len(routeJSON) > 0 {
		if err := json.Unmarshal(routeJSON, &trip.Route); err != nil {
			return nil, fmt.Errorf("failed to decode route: %w", err)
		}
	}
	return trip, nil
}

// CreateTrip persists a new trip
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	routeJSON, err := json.Marshal(trip.Route)
	if err != nil {
		return fmt.Errorf("failed to encode route: %w", err)
	}

	query := `
		INSERT INTO trips (
			id, driver_id, vehicle_id,
			origin_lat, origin_lng, origin_address,
			destination_lat, destination_lng, destination_address,
			route, departure_time, arrival_time,
			total_seats, available_seats, price_per_seat,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err = r.db.ExecContext(ctx, query,
		trip.ID,
		trip.DriverID,
		trip.VehicleID,
		trip.Origin.Latitude,
		trip.Origin.Longitude,
		trip.Origin.Address,
		trip.Destination.Latitude,
		trip.Destination.Longitude,
		trip.Destination.Address,
		routeJSON,
		trip.DepartureTime,
		trip.ArrivalTime,
		trip.TotalSeats,
		trip.AvailableSeats,
		trip.PricePerSeat,
		trip.Status,
		trip.CreatedAt,
		trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// GetTripByID retrieves a trip by its ID
func (r *TripRepo) GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`
	return scanTrip(r.db.QueryRowContext(ctx, query, id))
}

// ListTripsByDriver retrieves all trips published by a driver
func (r *TripRepo) ListTripsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE driver_id = $1 ORDER BY departure_time DESC`
	return r.listTrips(ctx, query, driverID)
}

// ListOpenTrips retrieves scheduled trips with seats still available
func (r *TripRepo) ListOpenTrips(ctx context.Context, limit int) ([]*models.Trip, error) {
	query := `
		SELECT ` + tripColumns + ` FROM trips
		WHERE status = $1 AND available_seats > 0
		ORDER BY departure_time ASC
		LIMIT $2`
	return r.listTrips(ctx, query, models.TripStatusScheduled, limit)
}

func (r *TripRepo) listTrips(ctx context.Context, query string, args ...interface{}) ([]*models.Trip, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	trips := []*models.Trip{}
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return trips, nil
}

// ReserveSeats atomically decrements available seats on a bookable trip.
// The guard in the UPDATE keeps 0 <= available_seats invariant under
// concurrent reservations: at most one of N competing requests for the
// last seats succeeds.
func (r *TripRepo) ReserveSeats(ctx context.Context, tripID uuid.UUID, seats int) error {
	return reserveSeats(ctx, r.db, tripID, seats)
}

func reserveSeats(ctx context.Context, ext sqlx.ExtContext, tripID uuid.UUID, seats int) error {
	query := `
		UPDATE trips
		SET available_seats = available_seats - $1, updated_at = NOW()
		WHERE id = $2 AND status = $3 AND available_seats >= $1`

	result, err := ext.ExecContext(ctx, query, seats, tripID, models.TripStatusScheduled)
	if err != nil {
		return fmt.Errorf("failed to reserve seats: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to reserve seats: %w", err)
	}
	if rows > 0 {
		return nil
	}

	// The guard rejected the update. Disambiguate the failure.
	var status models.TripStatus
	var available int
	err = ext.QueryRowxContext(ctx, `SELECT status, available_seats FROM trips WHERE id = $1`, tripID).
		Scan(&status, &available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to reserve seats: %w", err)
	}
	if status != models.TripStatusScheduled {
		return fmt.Errorf("trip is %s: %w", status, apperrors.ErrTripNotBookable)
	}
	return fmt.Errorf("%d seats requested, %d available: %w", seats, available, apperrors.ErrCapacityExceeded)
}

// ReleaseSeats returns previously reserved seats to the pool.
func (r *TripRepo) ReleaseSeats(ctx context.Context, tripID uuid.UUID, seats int) error {
	return releaseSeats(ctx, r.db, tripID, seats)
}

func releaseSeats(ctx context.Context, ext sqlx.ExtContext, tripID uuid.UUID, seats int) error {
	query := `
		UPDATE trips
		SET available_seats = available_seats + $1, updated_at = NOW()
		WHERE id = $2 AND available_seats + $1 <= total_seats`

	result, err := ext.ExecContext(ctx, query, seats, tripID)
	if err != nil {
		return fmt.Errorf("failed to release seats: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to release seats: %w", err)
	}
	if rows == 0 {
		var exists bool
		if err := ext.QueryRowxContext(ctx, `SELECT EXISTS(SELECT 1 FROM trips WHERE id = $1)`, tripID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to release seats: %w", err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("releasing %d seats would exceed total: %w", seats, apperrors.ErrInvariantViolation)
	}
	return nil
}

// StartTrip transitions a scheduled trip to in_progress
func (r *TripRepo) StartTrip(ctx context.Context, tripID uuid.UUID) error {
	return r.updateTripStatus(ctx, tripID, models.TripStatusScheduled, models.TripStatusInProgress)
}

func (r *TripRepo) updateTripStatus(ctx context.Context, tripID uuid.UUID, from, to models.TripStatus) error {
	query := `UPDATE trips SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`
	result, err := r.db.ExecContext(ctx, query, to, tripID, from)
	if err != nil {
		return fmt.Errorf("failed to update trip status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update trip status: %w", err)
	}
	if rows == 0 {
		var status models.TripStatus
		err := r.db.QueryRowContext(ctx, `SELECT status FROM trips WHERE id = $1`, tripID).Scan(&status)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to update trip status: %w", err)
		}
		return fmt.Errorf("trip is %s, cannot move to %s: %w", status, to, apperrors.ErrInvalidTransition)
	}
	return nil
}

// CompleteTrip transitions an in_progress trip to completed and marks
// its approved bookings completed in the same transaction.
func (r *TripRepo) CompleteTrip(ctx context.Context, tripID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE trips SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		models.TripStatusCompleted, tripID, models.TripStatusInProgress)
	if err != nil {
		return fmt.Errorf("failed to complete trip: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to complete trip: %w", err)
	}
	if rows == 0 {
		var status models.TripStatus
		err := tx.QueryRowContext(ctx, `SELECT status FROM trips WHERE id = $1`, tripID).Scan(&status)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to complete trip: %w", err)
		}
		return fmt.Errorf("trip is %s, cannot complete: %w", status, apperrors.ErrInvalidTransition)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $1, updated_at = NOW() WHERE trip_id = $2 AND status = $3`,
		models.BookingStatusCompleted, tripID, models.BookingStatusApproved)
	if err != nil {
		return fmt.Errorf("failed to complete trip bookings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// CancelTrip cancels a scheduled trip and all of its active bookings.
// Cancelled approved bookings return their seats, so the trip row is
// restored to full availability before being closed out.
func (r *TripRepo) CancelTrip(ctx context.Context, tripID uuid.UUID) ([]*models.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE trips SET status = $1, available_seats = total_seats, updated_at = NOW()
		 WHERE id = $2 AND status = $3`,
		models.TripStatusCancelled, tripID, models.TripStatusScheduled)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel trip: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to cancel trip: %w", err)
	}
	if rows == 0 {
		var status models.TripStatus
		err := tx.QueryRowContext(ctx, `SELECT status FROM trips WHERE id = $1`, tripID).Scan(&status)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, apperrors.ErrNotFound
			}
			return nil, fmt.Errorf("failed to cancel trip: %w", err)
		}
		return nil, fmt.Errorf("trip is %s, cannot cancel: %w", status, apperrors.ErrInvalidTransition)
	}

	// Paid bookings flip to refunded so the ledger matches the refunds
	// the caller issues against the returned rows.
	bookingRows, err := tx.QueryxContext(ctx,
		`UPDATE bookings SET status = $1,
			payment_status = CASE WHEN payment_status = $5 THEN $6 ELSE payment_status END,
			updated_at = NOW()
		 WHERE trip_id = $2 AND status IN ($3, $4)
		 RETURNING `+bookingColumns,
		models.BookingStatusCancelled, tripID, models.BookingStatusPending, models.BookingStatusApproved,
		models.PaymentStatusPaid, models.PaymentStatusRefunded)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel trip bookings: %w", err)
	}
	defer bookingRows.Close()

	var cancelled []*models.Booking
	for bookingRows.Next() {
		booking := &models.Booking{}
		if err := bookingRows.StructScan(booking); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		cancelled = append(cancelled, booking)
	}
	if err := bookingRows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return cancelled, nil
}
