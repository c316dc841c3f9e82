package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/wheelshare/wheelshare/internal/pkg/apperrors"
	"github.com/wheelshare/wheelshare/internal/pkg/constants"
	"github.com/wheelshare/wheelshare/internal/pkg/database"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	"github.com/wheelshare/wheelshare/internal/utils"
)

// VehicleRepo implements vehicle persistence over PostgreSQL and the
// Redis geo index.
type VehicleRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *VehicleRepo {
	return &VehicleRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// CreateVehicle inserts a new vehicle listing
func (r *VehicleRepo) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		INSERT INTO vehicles (
			id, owner_id, brand, model, year, plate, type, seat_capacity,
			fuel_type, transmission, hourly_rate, daily_rate,
			latitude, longitude, address,
			is_available, is_verified, rating, rating_count, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		vehicle.ID,
		vehicle.OwnerID,
		vehicle.Brand,
		vehicle.Model,
		vehicle.Year,
		vehicle.Plate,
		vehicle.Type,
		vehicle.SeatCapacity,
		vehicle.FuelType,
		vehicle.Transmission,
		vehicle.HourlyRate,
		vehicle.DailyRate,
		vehicle.Location.Latitude,
		vehicle.Location.Longitude,
		vehicle.Location.Address,
		vehicle.IsAvailable,
		vehicle.IsVerified,
		vehicle.Rating,
		vehicle.RatingCount,
		vehicle.CreatedAt,
		vehicle.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}

	return nil
}

const vehicleColumns = `
	id, owner_id, brand, model, year, plate, type, seat_capacity,
	fuel_type, transmission, hourly_rate, daily_rate,
	latitude, longitude, address,
	is_available, is_verified, rating, rating_count, created_at, updated_at
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVehicle(row rowScanner) (*models.Vehicle, error) {
	vehicle := &models.Vehicle{}
	err := row.Scan(
		&vehicle.ID,
		&vehicle.OwnerID,
		&vehicle.Brand,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.Plate,
		&vehicle.Type,
		&vehicle.SeatCapacity,
		&vehicle.FuelType,
		&vehicle.Transmission,
		&vehicle.HourlyRate,
		&vehicle.DailyRate,
		&vehicle.Location.Latitude,
		&vehicle.Location.Longitude,
		&vehicle.Location.Address,
		&vehicle.IsAvailable,
		&vehicle.IsVerified,
		&vehicle.Rating,
		&vehicle.RatingCount,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("vehicle: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return vehicle, nil
}

// GetVehicleByID retrieves a vehicle by ID
func (r *VehicleRepo) GetVehicleByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	return scanVehicle(r.db.QueryRowContext(ctx, query, id))
}

// GetVehicleByPlate retrieves a vehicle by its unique plate
func (r *VehicleRepo) GetVehicleByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE plate = $1`
	return scanVehicle(r.db.QueryRowContext(ctx, query, plate))
}

// ListVehiclesByOwner retrieves all vehicles listed by an owner
func (r *VehicleRepo) ListVehiclesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := []*models.Vehicle{}
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// UpdateVehicle updates the mutable fields of a vehicle listing
func (r *VehicleRepo) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		UPDATE vehicles
		SET brand = $1, model = $2, year = $3, type = $4, seat_capacity = $5,
			fuel_type = $6, transmission = $7, hourly_rate = $8, daily_rate = $9,
			latitude = $10, longitude = $11, address = $12, updated_at = $13
		WHERE id = $14
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		vehicle.Brand,
		vehicle.Model,
		vehicle.Year,
		vehicle.Type,
		vehicle.SeatCapacity,
		vehicle.FuelType,
		vehicle.Transmission,
		vehicle.HourlyRate,
		vehicle.DailyRate,
		vehicle.Location.Latitude,
		vehicle.Location.Longitude,
		vehicle.Location.Address,
		time.Now(),
		vehicle.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("vehicle: %w", apperrors.ErrNotFound)
	}

	return nil
}

// SetAvailability toggles the availability flag of a vehicle
func (r *VehicleRepo) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	query := `UPDATE vehicles SET is_available = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, available, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to set availability: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("vehicle: %w", apperrors.ErrNotFound)
	}

	return nil
}

// SetVerified toggles the verification flag of a vehicle
func (r *VehicleRepo) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	query := `UPDATE vehicles SET is_verified = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, verified, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to set verification: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("vehicle: %w", apperrors.ErrNotFound)
	}

	return nil
}

// IndexVehicleLocation registers the vehicle position in the Redis geo set
// and its geohash cell membership set.
func (r *VehicleRepo) IndexVehicleLocation(ctx context.Context, id uuid.UUID, location models.Location) error {
	if err := r.redisClient.GeoAdd(ctx, constants.KeyVehicleLocations, location.Longitude, location.Latitude, id.String()); err != nil {
		return fmt.Errorf("failed to index vehicle location: %w", err)
	}

	cell := utils.EncodeLocation(location, utils.DefaultGeohashPrecision)
	if err := r.dropCellMembership(ctx, id, cell); err != nil {
		return err
	}
	if err := r.redisClient.SAdd(ctx, constants.KeyVehicleGeohashPrefix+cell, id.String()); err != nil {
		return fmt.Errorf("failed to add vehicle to cell set: %w", err)
	}
	if err := r.redisClient.Set(ctx, constants.KeyVehicleCellPrefix+id.String(), cell, 0); err != nil {
		return fmt.Errorf("failed to record vehicle cell: %w", err)
	}

	return nil
}

// RemoveVehicleLocation drops the vehicle from the Redis geo set and its
// geohash cell set.
func (r *VehicleRepo) RemoveVehicleLocation(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.GeoRemove(ctx, constants.KeyVehicleLocations, id.String()); err != nil {
		return fmt.Errorf("failed to remove vehicle location: %w", err)
	}
	if err := r.dropCellMembership(ctx, id, ""); err != nil {
		return err
	}
	return r.redisClient.Delete(ctx, constants.KeyVehicleCellPrefix+id.String())
}

// dropCellMembership removes the vehicle from its previously recorded
// geohash cell set, unless it already sits in keepCell.
func (r *VehicleRepo) dropCellMembership(ctx context.Context, id uuid.UUID, keepCell string) error {
	prev, err := r.redisClient.Get(ctx, constants.KeyVehicleCellPrefix+id.String())
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("failed to read vehicle cell: %w", err)
	}
	if prev == "" || prev == keepCell {
		return nil
	}
	if err := r.redisClient.SRem(ctx, constants.KeyVehicleGeohashPrefix+prev, id.String()); err != nil {
		return fmt.Errorf("failed to remove vehicle from cell set: %w", err)
	}
	return nil
}

// NearbyVehicles finds vehicles within radiusKm of a location
func (r *VehicleRepo) NearbyVehicles(ctx context.Context, location models.Location, radiusKm float64) ([]models.NearbyVehicle, error) {
	hits, err := r.redisClient.GeoRadius(ctx, constants.KeyVehicleLocations, location.Longitude, location.Latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to search nearby vehicles: %w", err)
	}

	results := make([]models.NearbyVehicle, 0, len(hits))
	for _, hit := range hits {
		vehicleID, err := uuid.Parse(hit.Name)
		if err != nil {
			// Skip malformed members rather than failing the search.
			continue
		}
		results = append(results, models.NearbyVehicle{
			VehicleID:  vehicleID,
			DistanceKm: roundKm(hit.Dist),
		})
	}

	return results, nil
}

func roundKm(km float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(km, 'f', 3, 64), 64)
	if err != nil {
		return km
	}
	return v
}
