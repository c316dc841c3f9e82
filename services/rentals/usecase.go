package rentals

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

// RentalUC defines the interface for vehicle rental business logic.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/wheelshare/wheelshare/services/rentals RentalUC
type RentalUC interface {
	RequestReservation(ctx context.Context, renterID uuid.UUID, req *models.CreateReservationRequest) (*models.Reservation, error)
	GetReservation(ctx context.Context, callerID, reservationID uuid.UUID) (*models.Reservation, error)
	ListMyReservations(ctx context.Context, renterID uuid.UUID) ([]*models.Reservation, error)
	ListVehicleReservations(ctx context.Context, ownerID, vehicleID uuid.UUID) ([]*models.Reservation, error)
	VehicleAvailability(ctx context.Context, vehicleID uuid.UUID, start, end time.Time) (bool, error)

	ConfirmReservation(ctx context.Context, ownerID, reservationID uuid.UUID) (*models.Reservation, error)
	StartReservation(ctx context.Context, ownerID, reservationID uuid.UUID) (*models.Reservation, error)
	CompleteReservation(ctx context.Context, ownerID, reservationID uuid.UUID) (*models.Reservation, error)
	CancelReservation(ctx context.Context, callerID, reservationID uuid.UUID, req *models.CancelReservationRequest) (*models.Reservation, error)
}

// RentalGW defines the interface for publishing reservation events.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/wheelshare/wheelshare/services/rentals RentalGW,PaymentGW
type RentalGW interface {
	PublishReservationRequested(ctx context.Context, event *models.ReservationEvent) error
	PublishReservationConfirmed(ctx context.Context, event *models.ReservationEvent) error
	PublishReservationCancelled(ctx context.Context, event *models.ReservationEvent) error
	PublishReservationCompleted(ctx context.Context, event *models.ReservationEvent) error
}

// PaymentGW defines the interface to the payment provider.
type PaymentGW interface {
	Authorize(ctx context.Context, req *models.PaymentAuthorizeRequest) (*models.PaymentResult, error)
	Refund(ctx context.Context, req *models.PaymentRefundRequest) error
}
