package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/wheelshare/wheelshare/internal/pkg/config"
	"github.com/wheelshare/wheelshare/internal/pkg/database"
	"github.com/wheelshare/wheelshare/internal/pkg/logger"
)

// auditor walks the booking and rental ledgers looking for accounting
// drift: trips whose seat counter disagrees with the sum of approved
// bookings, and vehicles with overlapping blocking reservations. It is
// meant to run from cron against a live database and report only.
func main() {
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer postgresClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db := postgresClient.GetDB()
	violations := 0
	violations += auditSeatCounters(ctx, db, appLogger)
	violations += auditReservationOverlaps(ctx, db, appLogger)

	if violations > 0 {
		appLogger.Errorf("Audit finished with %d violation(s)", violations)
		os.Exit(1)
	}
	appLogger.Info("Audit finished clean")
}

type seatDrift struct {
	TripID         uuid.UUID `db:"trip_id"`
	TotalSeats     int       `db:"total_seats"`
	AvailableSeats int       `db:"available_seats"`
	CommittedSeats int       `db:"committed_seats"`
}

// auditSeatCounters reports trips where total_seats - available_seats
// does not equal the sum of seats over approved and completed bookings.
func auditSeatCounters(ctx context.Context, db *sqlx.DB, appLogger *logger.AppLogger) int {
	query := `
		SELECT t.id AS trip_id, t.total_seats, t.available_seats,
			COALESCE(SUM(b.seats) FILTER (WHERE b.status IN ('approved', 'completed')), 0) AS committed_seats
		FROM trips t
		LEFT JOIN bookings b ON b.trip_id = t.id
		WHERE t.status IN ('scheduled', 'in_progress')
		GROUP BY t.id, t.total_seats, t.available_seats
		HAVING t.total_seats - t.available_seats
			<> COALESCE(SUM(b.seats) FILTER (WHERE b.status IN ('approved', 'completed')), 0)
	`

	var drifts []seatDrift
	if err := db.SelectContext(ctx, &drifts, query); err != nil {
		appLogger.Errorf("Seat counter audit query failed: %v", err)
		return 1
	}

	for _, d := range drifts {
		appLogger.WithFields(map[string]interface{}{
			"trip_id":         d.TripID.String(),
			"total_seats":     d.TotalSeats,
			"available_seats": d.AvailableSeats,
			"committed_seats": d.CommittedSeats,
		}).Error("Seat counter drift")
	}
	return len(drifts)
}

type overlapPair struct {
	VehicleID uuid.UUID `db:"vehicle_id"`
	FirstID   uuid.UUID `db:"first_id"`
	SecondID  uuid.UUID `db:"second_id"`
}

// auditReservationOverlaps reports pairs of blocking reservations on the
// same vehicle whose half-open date ranges intersect.
func auditReservationOverlaps(ctx context.Context, db *sqlx.DB, appLogger *logger.AppLogger) int {
	query := `
		SELECT a.vehicle_id, a.id AS first_id, b.id AS second_id
		FROM reservations a
		JOIN reservations b
			ON a.vehicle_id = b.vehicle_id AND a.id < b.id
		WHERE a.status IN ('confirmed', 'in_progress')
			AND b.status IN ('confirmed', 'in_progress')
			AND a.start_date < b.end_date
			AND b.start_date < a.end_date
	`

	var pairs []overlapPair
	if err := db.SelectContext(ctx, &pairs, query); err != nil {
		appLogger.Errorf("Reservation overlap audit query failed: %v", err)
		return 1
	}

	for _, p := range pairs {
		appLogger.WithFields(map[string]interface{}{
			"vehicle_id": p.VehicleID.String(),
			"first_id":   p.FirstID.String(),
			"second_id":  p.SecondID.String(),
		}).Error("Overlapping blocking reservations")
	}
	return len(pairs)
}
