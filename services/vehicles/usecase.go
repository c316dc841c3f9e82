package vehicles

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

// VehicleUC defines the interface for vehicle catalog business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/wheelshare/wheelshare/services/vehicles VehicleUC
type VehicleUC interface {
	RegisterVehicle(ctx context.Context, ownerID uuid.UUID, req models.CreateVehicleRequest) (*models.Vehicle, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	ListOwnerVehicles(ctx context.Context, ownerID uuid.UUID) ([]*models.Vehicle, error)
	UpdateLocation(ctx context.Context, ownerID, id uuid.UUID, location models.Location) error
	SetAvailability(ctx context.Context, ownerID, id uuid.UUID, available bool) error
	VerifyVehicle(ctx context.Context, id uuid.UUID) error
	NearbyVehicles(ctx context.Context, location models.Location, radiusKm float64) ([]models.NearbyVehicle, error)
}
