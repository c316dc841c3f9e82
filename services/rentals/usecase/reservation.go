package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wheelshare/wheelshare/internal/pkg/apperrors"
	"github.com/wheelshare/wheelshare/internal/pkg/logger"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	"github.com/wheelshare/wheelshare/services/rentals"
	"github.com/wheelshare/wheelshare/services/vehicles"
)

type rentalUC struct {
	cfg       *models.Config
	repo      rentals.RentalRepo
	vehicleUC vehicles.VehicleUC
	gw        rentals.RentalGW
	paymentGW rentals.PaymentGW
}

// NewRentalUC creates a new rental use case
func NewRentalUC(cfg *models.Config, repo rentals.RentalRepo, vehicleUC vehicles.VehicleUC, gw rentals.RentalGW, paymentGW rentals.PaymentGW) rentals.RentalUC {
	return &rentalUC{
		cfg:       cfg,
		repo:      repo,
		vehicleUC: vehicleUC,
		gw:        gw,
		paymentGW: paymentGW,
	}
}

func reservationEvent(reservation *models.Reservation) *models.ReservationEvent {
	return &models.ReservationEvent{
		ReservationID: reservation.ID,
		VehicleID:     reservation.VehicleID,
		RenterID:      reservation.RenterID,
		StartDate:     reservation.StartDate,
		EndDate:       reservation.EndDate,
		Status:        reservation.Status,
		OccurredAt:    time.Now(),
	}
}

// rentalDays counts billable days for the half-open [start, end) range,
// rounding partial days up.
func rentalDays(start, end time.Time) int {
	hours := end.Sub(start).Hours()
	days := int(hours / 24)
	if hours > float64(days)*24 {
		days++
	}
	return days
}

// RequestReservation creates a pending reservation on a vehicle over a
// half-open [start_date, end_date) range. Overlap with existing
// blocking reservations is rejected here as a courtesy; the
// authoritative check happens atomically at confirmation.
func (uc *rentalUC) RequestReservation(ctx context.Context, renterID uuid.UUID, req *models.CreateReservationRequest) (*models.Reservation, error) {
	if req.VehicleID == uuid.Nil {
		return nil, fmt.Errorf("vehicle_id is required: %w", apperrors.ErrValidation)
	}
	if !req.StartDate.Before(req.EndDate) {
		return nil, fmt.Errorf("start_date must be before end_date: %w", apperrors.ErrInvalidRange)
	}

	vehicle, err := uc.vehicleUC.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.OwnerID == renterID {
		return nil, fmt.Errorf("owner cannot rent own vehicle: %w", apperrors.ErrNotEligible)
	}
	if !vehicle.IsAvailable {
		return nil, fmt.Errorf("vehicle is not available for rental: %w", apperrors.ErrNotEligible)
	}

	blocking, err := uc.repo.BlockingReservations(ctx, req.VehicleID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if len(blocking) > 0 {
		return nil, fmt.Errorf("vehicle already reserved in range: %w", apperrors.ErrDateRangeConflict)
	}

	now := time.Now()
	reservation := &models.Reservation{
		ID:                uuid.New(),
		VehicleID:         req.VehicleID,
		RenterID:          renterID,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		TotalPrice:        rentalDays(req.StartDate, req.EndDate) * vehicle.DailyRate,
		Status:            models.ReservationStatusPending,
		PaymentStatus:     models.PaymentStatusUnpaid,
		AdditionalDrivers: req.AdditionalDrivers,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.CreateReservation(ctx, reservation); err != nil {
		return nil, err
	}

	if err := uc.gw.PublishReservationRequested(ctx, reservationEvent(reservation)); err != nil {
		logger.Warn("Failed to publish reservation event",
			logger.String("reservation_id", reservation.ID.String()),
			logger.Err(err))
	}
	return reservation, nil
}

// GetReservation retrieves a reservation visible to its renter or the
// vehicle's owner.
func (uc *rentalUC) GetReservation(ctx context.Context, callerID, reservationID uuid.UUID) (*models.Reservation, error) {
	reservation, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.RenterID == callerID {
		return reservation, nil
	}
	if _, err := uc.ownedVehicle(ctx, callerID, reservation.VehicleID); err != nil {
		return nil, err
	}
	return reservation, nil
}

// ListMyReservations retrieves the renter's reservations
func (uc *rentalUC) ListMyReservations(ctx context.Context, renterID uuid.UUID) ([]*models.Reservation, error) {
	return uc.repo.ListReservationsByRenter(ctx, renterID)
}

// ListVehicleReservations retrieves all reservations on the owner's vehicle
func (uc *rentalUC) ListVehicleReservations(ctx context.Context, ownerID, vehicleID uuid.UUID) ([]*models.Reservation, error) {
	if _, err := uc.ownedVehicle(ctx, ownerID, vehicleID); err != nil {
		return nil, err
	}
	return uc.repo.ListReservationsByVehicle(ctx, vehicleID)
}

// VehicleAvailability reports whether the vehicle is free over the
// half-open [start, end) range.
func (uc *rentalUC) VehicleAvailability(ctx context.Context, vehicleID uuid.UUID, start, end time.Time) (bool, error) {
	if !start.Before(end) {
		return false, fmt.Errorf("start must be before end: %w", apperrors.ErrInvalidRange)
	}
	if _, err := uc.vehicleUC.GetVehicle(ctx, vehicleID); err != nil {
		return false, err
	}
	blocking, err := uc.repo.BlockingReservations(ctx, vehicleID, start, end)
	if err != nil {
		return false, err
	}
	return len(blocking) == 0, nil
}

func (uc *rentalUC) ownedVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := uc.vehicleUC.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.OwnerID != ownerID {
		return nil, fmt.Errorf("vehicle does not belong to owner: %w", apperrors.ErrNotEligible)
	}
	return vehicle, nil
}

func (uc *rentalUC) ownedReservation(ctx context.Context, ownerID, reservationID uuid.UUID) (*models.Reservation, error) {
	reservation, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.ownedVehicle(ctx, ownerID, reservation.VehicleID); err != nil {
		return nil, err
	}
	return reservation, nil
}

// ConfirmReservation confirms a pending reservation on the owner's
// vehicle. Payment is captured first; the confirmation then couples the
// status change with the date-range check in one transaction. If the
// range was taken in the meantime, the payment is refunded and the
// reservation stays pending.
func (uc *rentalUC) ConfirmReservation(ctx context.Context, ownerID, reservationID uuid.UUID) (*models.Reservation, error) {
	reservation, err := uc.ownedReservation(ctx, ownerID, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status != models.ReservationStatusPending {
		return nil, fmt.Errorf("reservation is %s, cannot confirm: %w", reservation.Status, apperrors.ErrInvalidTransition)
	}

	result, err := uc.paymentGW.Authorize(ctx, &models.PaymentAuthorizeRequest{
		ReferenceID: reservation.ID,
		UserID:      reservation.RenterID,
		Amount:      reservation.TotalPrice,
		Currency:    uc.cfg.Payment.Currency,
	})
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("payment declined: %s: %w", result.Message, apperrors.ErrPaymentFailed)
	}

	confirmed, err := uc.repo.ConfirmReservation(ctx, reservationID)
	if err != nil {
		uc.refund(ctx, reservation, "reservation confirmation failed")
		return nil, err
	}

	if err := uc.gw.PublishReservationConfirmed(ctx, reservationEvent(confirmed)); err != nil {
		logger.Warn("Failed to publish reservation event",
			logger.String("reservation_id", confirmed.ID.String()),
			logger.Err(err))
	}
	return confirmed, nil
}

// StartReservation marks the rental in_progress at vehicle pickup
func (uc *rentalUC) StartReservation(ctx context.Context, ownerID, reservationID uuid.UUID) (*models.Reservation, error) {
	if _, err := uc.ownedReservation(ctx, ownerID, reservationID); err != nil {
		return nil, err
	}
	return uc.repo.StartReservation(ctx, reservationID)
}

// CompleteReservation marks the rental completed at vehicle return
func (uc *rentalUC) CompleteReservation(ctx context.Context, ownerID, reservationID uuid.UUID) (*models.Reservation, error) {
	if _, err := uc.ownedReservation(ctx, ownerID, reservationID); err != nil {
		return nil, err
	}

	completed, err := uc.repo.CompleteReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if err := uc.gw.PublishReservationCompleted(ctx, reservationEvent(completed)); err != nil {
		logger.Warn("Failed to publish reservation event",
			logger.String("reservation_id", completed.ID.String()),
			logger.Err(err))
	}
	return completed, nil
}

// CancelReservation cancels a reservation. The renter can cancel their
// own reservation; the owner can cancel any reservation on their
// vehicle. Cancelling a confirmed reservation frees its date range and
// refunds the payment. Repeated cancellation is a no-op.
func (uc *rentalUC) CancelReservation(ctx context.Context, callerID, reservationID uuid.UUID, req *models.CancelReservationRequest) (*models.Reservation, error) {
	reservation, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.RenterID != callerID {
		if _, err := uc.ownedVehicle(ctx, callerID, reservation.VehicleID); err != nil {
			return nil, err
		}
	}
	if reservation.Status == models.ReservationStatusCancelled {
		return reservation, nil
	}

	reason := ""
	if req != nil {
		reason = req.Reason
	}
	cancelled, released, err := uc.repo.CancelReservation(ctx, reservationID, reason)
	if err != nil {
		return nil, err
	}
	if released && cancelled.PaymentStatus == models.PaymentStatusRefunded {
		uc.refund(ctx, cancelled, reason)
	}

	if err := uc.gw.PublishReservationCancelled(ctx, reservationEvent(cancelled)); err != nil {
		logger.Warn("Failed to publish reservation event",
			logger.String("reservation_id", cancelled.ID.String()),
			logger.Err(err))
	}
	return cancelled, nil
}

func (uc *rentalUC) refund(ctx context.Context, reservation *models.Reservation, reason string) {
	err := uc.paymentGW.Refund(ctx, &models.PaymentRefundRequest{
		ReferenceID: reservation.ID,
		Amount:      reservation.TotalPrice,
		Reason:      reason,
	})
	if err != nil {
		logger.Error("Failed to refund reservation payment",
			logger.String("reservation_id", reservation.ID.String()),
			logger.Int("amount", reservation.TotalPrice),
			logger.Err(err))
	}
}
