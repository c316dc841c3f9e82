package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wheelshare/wheelshare/internal/pkg/apperrors"
	"github.com/wheelshare/wheelshare/internal/pkg/logger"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	"github.com/wheelshare/wheelshare/services/vehicles"
)

type vehicleUC struct {
	cfg  *models.Config
	repo vehicles.VehicleRepo
}

// NewVehicleUC creates a new vehicle catalog use case
func NewVehicleUC(cfg *models.Config, repo vehicles.VehicleRepo) vehicles.VehicleUC {
	return &vehicleUC{
		cfg:  cfg,
		repo: repo,
	}
}

// RegisterVehicle lists a new vehicle for the owner. The plate must be
// unique across the catalog.
func (uc *vehicleUC) RegisterVehicle(ctx context.Context, ownerID uuid.UUID, req models.CreateVehicleRequest) (*models.Vehicle, error) {
	if err := validateVehicleRequest(req); err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetVehicleByPlate(ctx, req.Plate)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("plate %s already registered: %w", req.Plate, apperrors.ErrValidation)
	}

	now := time.Now()
	vehicle := &models.Vehicle{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Plate:        req.Plate,
		Type:         req.Type,
		SeatCapacity: req.SeatCapacity,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		HourlyRate:   req.HourlyRate,
		DailyRate:    req.DailyRate,
		Location:     req.Location,
		IsAvailable:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.repo.CreateVehicle(ctx, vehicle); err != nil {
		return nil, err
	}

	if err := uc.repo.IndexVehicleLocation(ctx, vehicle.ID, vehicle.Location); err != nil {
		// The catalog row is the source of truth; a failed geo index only
		// degrades nearby search.
		logger.Warn("Failed to index vehicle location",
			logger.String("vehicle_id", vehicle.ID.String()),
			logger.Err(err))
	}

	logger.Info("Vehicle registered",
		logger.String("vehicle_id", vehicle.ID.String()),
		logger.String("owner_id", ownerID.String()),
		logger.String("plate", vehicle.Plate))

	return vehicle, nil
}

// GetVehicle retrieves a vehicle by ID
func (uc *vehicleUC) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	return uc.repo.GetVehicleByID(ctx, id)
}

// ListOwnerVehicles retrieves all vehicles listed by an owner
func (uc *vehicleUC) ListOwnerVehicles(ctx context.Context, ownerID uuid.UUID) ([]*models.Vehicle, error) {
	return uc.repo.ListVehiclesByOwner(ctx, ownerID)
}

// UpdateLocation moves a vehicle to a new location and refreshes the
// geo index.
func (uc *vehicleUC) UpdateLocation(ctx context.Context, ownerID, id uuid.UUID, location models.Location) error {
	vehicle, err := uc.checkOwnership(ctx, ownerID, id)
	if err != nil {
		return err
	}

	vehicle.Location = location
	if err := uc.repo.UpdateVehicle(ctx, vehicle); err != nil {
		return err
	}

	return uc.repo.IndexVehicleLocation(ctx, id, location)
}

// SetAvailability toggles whether the vehicle can be booked or rented.
// Unavailable vehicles are dropped from the geo index.
func (uc *vehicleUC) SetAvailability(ctx context.Context, ownerID, id uuid.UUID, available bool) error {
	if _, err := uc.checkOwnership(ctx, ownerID, id); err != nil {
		return err
	}

	if err := uc.repo.SetAvailability(ctx, id, available); err != nil {
		return err
	}

	if available {
		vehicle, err := uc.repo.GetVehicleByID(ctx, id)
		if err != nil {
			return err
		}
		return uc.repo.IndexVehicleLocation(ctx, id, vehicle.Location)
	}
	return uc.repo.RemoveVehicleLocation(ctx, id)
}

// VerifyVehicle marks a vehicle as verified by the platform
func (uc *vehicleUC) VerifyVehicle(ctx context.Context, id uuid.UUID) error {
	return uc.repo.SetVerified(ctx, id, true)
}

// NearbyVehicles finds available vehicles near a location
func (uc *vehicleUC) NearbyVehicles(ctx context.Context, location models.Location, radiusKm float64) ([]models.NearbyVehicle, error) {
	if radiusKm <= 0 {
		radiusKm = uc.cfg.Search.RadiusKm
	}
	return uc.repo.NearbyVehicles(ctx, location, radiusKm)
}

func (uc *vehicleUC) checkOwnership(ctx context.Context, ownerID, id uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := uc.repo.GetVehicleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle.OwnerID != ownerID {
		return nil, fmt.Errorf("vehicle %s is not owned by caller: %w", id, apperrors.ErrNotEligible)
	}
	return vehicle, nil
}

func validateVehicleRequest(req models.CreateVehicleRequest) error {
	switch {
	case req.Plate == "":
		return fmt.Errorf("plate is required: %w", apperrors.ErrValidation)
	case req.Brand == "" || req.Model == "":
		return fmt.Errorf("brand and model are required: %w", apperrors.ErrValidation)
	case req.SeatCapacity < 1:
		return fmt.Errorf("seat capacity must be at least 1: %w", apperrors.ErrValidation)
	case req.HourlyRate < 0 || req.DailyRate < 0:
		return fmt.Errorf("rates must not be negative: %w", apperrors.ErrValidation)
	}
	return nil
}
