package vehicles

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

// VehicleRepo defines the interface for vehicle data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/wheelshare/wheelshare/services/vehicles VehicleRepo
type VehicleRepo interface {
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	GetVehicleByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	GetVehicleByPlate(ctx context.Context, plate string) (*models.Vehicle, error)
	ListVehiclesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error

	// Geo index operations backed by Redis.
	IndexVehicleLocation(ctx context.Context, id uuid.UUID, location models.Location) error
	RemoveVehicleLocation(ctx context.Context, id uuid.UUID) error
	NearbyVehicles(ctx context.Context, location models.Location, radiusKm float64) ([]models.NearbyVehicle, error)
}
