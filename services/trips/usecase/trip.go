package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wheelshare/wheelshare/internal/pkg/apperrors"
	"github.com/wheelshare/wheelshare/internal/pkg/logger"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	"github.com/wheelshare/wheelshare/services/trips"
	"github.com/wheelshare/wheelshare/services/vehicles"
)

type tripUC struct {
	cfg       *models.Config
	repo      trips.TripRepo
	vehicleUC vehicles.VehicleUC
	gw        trips.TripGW
	paymentGW trips.PaymentGW
}

// NewTripUC creates a new trip and booking use case
func NewTripUC(cfg *models.Config, repo trips.TripRepo, vehicleUC vehicles.VehicleUC, gw trips.TripGW, paymentGW trips.PaymentGW) trips.TripUC {
	return &tripUC{
		cfg:       cfg,
		repo:      repo,
		vehicleUC: vehicleUC,
		gw:        gw,
		paymentGW: paymentGW,
	}
}

func validateTripRequest(req *models.CreateTripRequest) error {
	if req.VehicleID == uuid.Nil {
		return fmt.Errorf("vehicle_id is required: %w", apperrors.ErrValidation)
	}
	if req.TotalSeats <= 0 {
		return fmt.Errorf("total_seats must be positive: %w", apperrors.ErrValidation)
	}
	if req.PricePerSeat < 0 {
		return fmt.Errorf("price_per_seat must not be negative: %w", apperrors.ErrValidation)
	}
	if !req.ArrivalTime.After(req.DepartureTime) {
		return fmt.Errorf("arrival_time must be after departure_time: %w", apperrors.ErrValidation)
	}
	return nil
}

// PublishTrip lists a new shared-ride trip on one of the driver's
// vehicles. The offered seats must fit the vehicle, leaving one seat
// for the driver.
func (uc *tripUC) PublishTrip(ctx context.Context, driverID uuid.UUID, req *models.CreateTripRequest) (*models.Trip, error) {
	if err := validateTripRequest(req); err != nil {
		return nil, err
	}

	vehicle, err := uc.vehicleUC.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.OwnerID != driverID {
		return nil, fmt.Errorf("vehicle does not belong to driver: %w", apperrors.ErrNotEligible)
	}
	if !vehicle.IsAvailable {
		return nil, fmt.Errorf("vehicle is not available: %w", apperrors.ErrNotEligible)
	}
	if req.TotalSeats > vehicle.SeatCapacity-1 {
		return nil, fmt.Errorf("vehicle seats %d passengers at most: %w", vehicle.SeatCapacity-1, apperrors.ErrValidation)
	}

	now := time.Now()
	trip := &models.Trip{
		ID:             uuid.New(),
		DriverID:       driverID,
		VehicleID:      req.VehicleID,
		Origin:         req.Origin,
		Destination:    req.Destination,
		Route:          req.Route,
		DepartureTime:  req.DepartureTime,
		ArrivalTime:    req.ArrivalTime,
		TotalSeats:     req.TotalSeats,
		AvailableSeats: req.TotalSeats,
		PricePerSeat:   req.PricePerSeat,
		Status:         models.TripStatusScheduled,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.repo.CreateTrip(ctx, trip); err != nil {
		return nil, err
	}

	if err := uc.gw.PublishTripPublished(ctx, trip); err != nil {
		logger.Warn("Failed to publish trip event",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}
	return trip, nil
}

// GetTrip retrieves a trip by ID
func (uc *tripUC) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	return uc.repo.GetTripByID(ctx, tripID)
}

// ListMyTrips retrieves the driver's published trips
func (uc *tripUC) ListMyTrips(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error) {
	return uc.repo.ListTripsByDriver(ctx, driverID)
}

// ListOpenTrips retrieves scheduled trips that can still be booked
func (uc *tripUC) ListOpenTrips(ctx context.Context, limit int) ([]*models.Trip, error) {
	if limit <= 0 || limit > uc.cfg.Search.MaxResults {
		limit = uc.cfg.Search.MaxResults
	}
	return uc.repo.ListOpenTrips(ctx, limit)
}

func (uc *tripUC) ownedTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.repo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID != driverID {
		return nil, fmt.Errorf("trip does not belong to driver: %w", apperrors.ErrNotEligible)
	}
	return trip, nil
}

// StartTrip moves a scheduled trip to in_progress. Pending bookings
// stay pending; the driver can still complete them after the ride.
func (uc *tripUC) StartTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error) {
	if _, err := uc.ownedTrip(ctx, driverID, tripID); err != nil {
		return nil, err
	}
	if err := uc.repo.StartTrip(ctx, tripID); err != nil {
		return nil, err
	}

	trip, err := uc.repo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if err := uc.gw.PublishTripStarted(ctx, trip); err != nil {
		logger.Warn("Failed to publish trip event",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}
	return trip, nil
}

// CompleteTrip moves an in_progress trip to completed, completing its
// approved bookings along with it.
func (uc *tripUC) CompleteTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error) {
	if _, err := uc.ownedTrip(ctx, driverID, tripID); err != nil {
		return nil, err
	}
	if err := uc.repo.CompleteTrip(ctx, tripID); err != nil {
		return nil, err
	}

	trip, err := uc.repo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if err := uc.gw.PublishTripCompleted(ctx, trip); err != nil {
		logger.Warn("Failed to publish trip event",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}
	return trip, nil
}

// CancelTrip cancels a scheduled trip, cancelling every pending and
// approved booking on it and refunding the paid ones.
func (uc *tripUC) CancelTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error) {
	if _, err := uc.ownedTrip(ctx, driverID, tripID); err != nil {
		return nil, err
	}

	cancelled, err := uc.repo.CancelTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	for _, booking := range cancelled {
		if booking.PaymentStatus == models.PaymentStatusRefunded {
			uc.refund(ctx, booking, "trip cancelled by driver")
		}
		booking.Status = models.BookingStatusCancelled
		if err := uc.gw.PublishBookingCancelled(ctx, bookingEvent(booking)); err != nil {
			logger.Warn("Failed to publish booking event",
				logger.String("booking_id", booking.ID.String()),
				logger.Err(err))
		}
	}

	trip, err := uc.repo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if err := uc.gw.PublishTripCancelled(ctx, trip); err != nil {
		logger.Warn("Failed to publish trip event",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}
	return trip, nil
}

func (uc *tripUC) refund(ctx context.Context, booking *models.Booking, reason string) {
	err := uc.paymentGW.Refund(ctx, &models.PaymentRefundRequest{
		ReferenceID: booking.ID,
		Amount:      booking.TotalPrice,
		Reason:      reason,
	})
	if err != nil {
		logger.Error("Failed to refund booking payment",
			logger.String("booking_id", booking.ID.String()),
			logger.Int("amount", booking.TotalPrice),
			logger.Err(err))
	}
}
