package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wheelshare/wheelshare/internal/pkg/apperrors"
	"github.com/wheelshare/wheelshare/internal/pkg/database"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

func setupVehicleRepoTest(t *testing.T) (*VehicleRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := &VehicleRepo{
		cfg:         &models.Config{},
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
	}

	return repo, mock, func() { mockDB.Close() }
}

func testVehicle() *models.Vehicle {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &models.Vehicle{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Brand:        "Toyota",
		Model:        "Avanza",
		Year:         2021,
		Plate:        "B 1234 XYZ",
		Type:         models.VehicleTypeCar,
		SeatCapacity: 7,
		FuelType:     "petrol",
		Transmission: "manual",
		HourlyRate:   50000,
		DailyRate:    350000,
		Location:     models.Location{Latitude: -6.2, Longitude: 106.8, Address: "Jakarta"},
		IsAvailable:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func vehicleRows(vehicle *models.Vehicle) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "owner_id", "brand", "model", "year", "plate", "type", "seat_capacity",
		"fuel_type", "transmission", "hourly_rate", "daily_rate",
		"latitude", "longitude", "address",
		"is_available", "is_verified", "rating", "rating_count", "created_at", "updated_at",
	}).AddRow(
		vehicle.ID, vehicle.OwnerID, vehicle.Brand, vehicle.Model, vehicle.Year,
		vehicle.Plate, vehicle.Type, vehicle.SeatCapacity,
		vehicle.FuelType, vehicle.Transmission, vehicle.HourlyRate, vehicle.DailyRate,
		vehicle.Location.Latitude, vehicle.Location.Longitude, vehicle.Location.Address,
		vehicle.IsAvailable, vehicle.IsVerified, vehicle.Rating, vehicle.RatingCount,
		vehicle.CreatedAt, vehicle.UpdatedAt,
	)
}

func TestCreateVehicle(t *testing.T) {
	repo, mock, cleanup := setupVehicleRepoTest(t)
	defer cleanup()

	vehicle := testVehicle()

	mock.ExpectExec(`^INSERT INTO vehicles`).
		WithArgs(
			vehicle.ID, vehicle.OwnerID, vehicle.Brand, vehicle.Model, vehicle.Year,
			vehicle.Plate, vehicle.Type, vehicle.SeatCapacity,
			vehicle.FuelType, vehicle.Transmission, vehicle.HourlyRate, vehicle.DailyRate,
			vehicle.Location.Latitude, vehicle.Location.Longitude, vehicle.Location.Address,
			vehicle.IsAvailable, vehicle.IsVerified, vehicle.Rating, vehicle.RatingCount,
			vehicle.CreatedAt, vehicle.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateVehicle(context.Background(), vehicle)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVehicleByID(t *testing.T) {
	repo, mock, cleanup := setupVehicleRepoTest(t)
	defer cleanup()

	vehicle := testVehicle()

	mock.ExpectQuery(`^SELECT (.+) FROM vehicles WHERE id`).
		WithArgs(vehicle.ID).
		WillReturnRows(vehicleRows(vehicle))

	result, err := repo.GetVehicleByID(context.Background(), vehicle.ID)

	require.NoError(t, err)
	assert.Equal(t, vehicle.Plate, result.Plate)
	assert.Equal(t, vehicle.Location, result.Location)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVehicleByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupVehicleRepoTest(t)
	defer cleanup()

	vehicleID := uuid.New()

	mock.ExpectQuery(`^SELECT (.+) FROM vehicles WHERE id`).
		WithArgs(vehicleID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	result, err := repo.GetVehicleByID(context.Background(), vehicleID)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVehicleByPlate(t *testing.T) {
	repo, mock, cleanup := setupVehicleRepoTest(t)
	defer cleanup()

	vehicle := testVehicle()

	mock.ExpectQuery(`^SELECT (.+) FROM vehicles WHERE plate`).
		WithArgs(vehicle.Plate).
		WillReturnRows(vehicleRows(vehicle))

	result, err := repo.GetVehicleByPlate(context.Background(), vehicle.Plate)

	require.NoError(t, err)
	assert.Equal(t, vehicle.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListVehiclesByOwner(t *testing.T) {
	repo, mock, cleanup := setupVehicleRepoTest(t)
	defer cleanup()

	ownerID := uuid.New()
	first := testVehicle()
	first.OwnerID = ownerID
	second := testVehicle()
	second.OwnerID = ownerID

	rows := vehicleRows(first).AddRow(
		second.ID, second.OwnerID, second.Brand, second.Model, second.Year,
		second.Plate, second.Type, second.SeatCapacity,
		second.FuelType, second.Transmission, second.HourlyRate, second.DailyRate,
		second.Location.Latitude, second.Location.Longitude, second.Location.Address,
		second.IsAvailable, second.IsVerified, second.Rating, second.RatingCount,
		second.CreatedAt, second.UpdatedAt,
	)
	mock.ExpectQuery(`^SELECT (.+) FROM vehicles WHERE owner_id`).
		WithArgs(ownerID).
		WillReturnRows(rows)

	result, err := repo.ListVehiclesByOwner(context.Background(), ownerID)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, first.ID, result[0].ID)
	assert.Equal(t, second.ID, result[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListVehiclesByOwner_Empty(t *testing.T) {
	repo, mock, cleanup := setupVehicleRepoTest(t)
	defer cleanup()

	ownerID := uuid.New()

	mock.ExpectQuery(`^SELECT (.+) FROM vehicles WHERE owner_id`).
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	result, err := repo.ListVehiclesByOwner(context.Background(), ownerID)

	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateVehicle(t *testing.T) {
	repo, mock, cleanup := setupVehicleRepoTest(t)
	defer cleanup()

	vehicle := testVehicle()

	mock.ExpectExec(`^UPDATE vehicles SET brand`).
		WithArgs(
			vehicle.Brand, vehicle.Model, vehicle.Year, vehicle.Type, vehicle.SeatCapacity,
			vehicle.FuelType, vehicle.Transmission, vehicle.HourlyRate, vehicle.DailyRate,
			vehicle.Location.Latitude, vehicle.Location.Longitude, vehicle.Location.Address,
			sqlmock.AnyArg(), vehicle.ID,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateVehicle(context.Background(), vehicle)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateVehicle_NotFound(t *testing.T) {
	repo, mock, cleanup := setupVehicleRepoTest(t)
	defer cleanup()

	vehicle := testVehicle()

	mock.ExpectExec(`^UPDATE vehicles SET brand`).
		WithArgs(
			vehicle.Brand, vehicle.Model, vehicle.Year, vehicle.Type, vehicle.SeatCapacity,
			vehicle.FuelType, vehicle.Transmission, vehicle.HourlyRate, vehicle.DailyRate,
			vehicle.Location.Latitude, vehicle.Location.Longitude, vehicle.Location.Address,
			sqlmock.AnyArg(), vehicle.ID,
		).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateVehicle(context.Background(), vehicle)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAvailability(t *testing.T) {
	repo, mock, cleanup := setupVehicleRepoTest(t)
	defer cleanup()

	vehicleID := uuid.New()

	mock.ExpectExec(`^UPDATE vehicles SET is_available`).
		WithArgs(false, sqlmock.AnyArg(), vehicleID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetAvailability(context.Background(), vehicleID, false)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetVerified_NotFound(t *testing.T) {
	repo, mock, cleanup := setupVehicleRepoTest(t)
	defer cleanup()

	vehicleID := uuid.New()

	mock.ExpectExec(`^UPDATE vehicles SET is_verified`).
		WithArgs(true, sqlmock.AnyArg(), vehicleID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetVerified(context.Background(), vehicleID, true)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoundKm(t *testing.T) {
	assert.Equal(t, 1.235, roundKm(1.23456))
	assert.Equal(t, 0.5, roundKm(0.5))
	assert.Equal(t, 12.0, roundKm(12))
}
