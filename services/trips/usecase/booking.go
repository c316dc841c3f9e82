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
)

func bookingEvent(booking *models.Booking) *models.BookingEvent {
	return &models.BookingEvent{
		BookingID:   booking.ID,
		TripID:      booking.TripID,
		PassengerID: booking.PassengerID,
		Seats:       booking.Seats,
		Status:      booking.Status,
		OccurredAt:  time.Now(),
	}
}

// RequestBooking creates a pending booking for seats on a trip. The
// seat count is validated against current availability here, but the
// authoritative check happens atomically at approval time.
func (uc *tripUC) RequestBooking(ctx context.Context, passengerID uuid.UUID, req *models.CreateBookingRequest) (*models.Booking, error) {
	if req.TripID == uuid.Nil {
		return nil, fmt.Errorf("trip_id is required: %w", apperrors.ErrValidation)
	}
	if req.Seats <= 0 {
		return nil, fmt.Errorf("seats must be positive: %w", apperrors.ErrValidation)
	}

	trip, err := uc.repo.GetTripByID(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID == passengerID {
		return nil, fmt.Errorf("driver cannot book own trip: %w", apperrors.ErrNotEligible)
	}
	if trip.Status != models.TripStatusScheduled {
		return nil, fmt.Errorf("trip is %s: %w", trip.Status, apperrors.ErrTripNotBookable)
	}
	if req.Seats > trip.AvailableSeats {
		return nil, fmt.Errorf("%d seats requested, %d available: %w", req.Seats, trip.AvailableSeats, apperrors.ErrCapacityExceeded)
	}

	existing, err := uc.repo.GetActiveBooking(ctx, req.TripID, passengerID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("booking %s is already %s: %w", existing.ID, existing.Status, apperrors.ErrDuplicateBooking)
	}

	now := time.Now()
	booking := &models.Booking{
		ID:            uuid.New(),
		TripID:        req.TripID,
		PassengerID:   passengerID,
		Seats:         req.Seats,
		TotalPrice:    req.Seats * trip.PricePerSeat,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	if err := uc.gw.PublishBookingRequested(ctx, bookingEvent(booking)); err != nil {
		logger.Warn("Failed to publish booking event",
			logger.String("booking_id", booking.ID.String()),
			logger.Err(err))
	}
	return booking, nil
}

// GetBooking retrieves a booking visible to its passenger or the trip's
// driver.
func (uc *tripUC) GetBooking(ctx context.Context, callerID, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PassengerID == callerID {
		return booking, nil
	}
	trip, err := uc.repo.GetTripByID(ctx, booking.TripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID != callerID {
		return nil, fmt.Errorf("booking is not visible to caller: %w", apperrors.ErrNotEligible)
	}
	return booking, nil
}

// ListTripBookings retrieves all bookings on the driver's trip
func (uc *tripUC) ListTripBookings(ctx context.Context, driverID, tripID uuid.UUID) ([]*models.Booking, error) {
	if _, err := uc.ownedTrip(ctx, driverID, tripID); err != nil {
		return nil, err
	}
	return uc.repo.ListBookingsByTrip(ctx, tripID)
}

// ListMyBookings retrieves the passenger's bookings
func (uc *tripUC) ListMyBookings(ctx context.Context, passengerID uuid.UUID) ([]*models.Booking, error) {
	return uc.repo.ListBookingsByPassenger(ctx, passengerID)
}

// ApproveBooking approves a pending booking on the driver's trip.
// Payment is captured first; the approval then couples the status
// change with the seat reservation in one transaction. If the
// reservation fails after capture, the payment is refunded and the
// booking stays pending.
func (uc *tripUC) ApproveBooking(ctx context.Context, driverID, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.ownedTrip(ctx, driverID, booking.TripID); err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending {
		return nil, fmt.Errorf("booking is %s, cannot approve: %w", booking.Status, apperrors.ErrInvalidTransition)
	}

	result, err := uc.paymentGW.Authorize(ctx, &models.PaymentAuthorizeRequest{
		ReferenceID: booking.ID,
		UserID:      booking.PassengerID,
		Amount:      booking.TotalPrice,
		Currency:    uc.cfg.Payment.Currency,
	})
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("payment declined: %s: %w", result.Message, apperrors.ErrPaymentFailed)
	}

	approved, err := uc.repo.ApproveBooking(ctx, bookingID)
	if err != nil {
		uc.refund(ctx, booking, "booking approval failed")
		return nil, err
	}

	if err := uc.gw.PublishBookingApproved(ctx, bookingEvent(approved)); err != nil {
		logger.Warn("Failed to publish booking event",
			logger.String("booking_id", approved.ID.String()),
			logger.Err(err))
	}
	return approved, nil
}

// RejectBooking rejects a pending booking on the driver's trip
func (uc *tripUC) RejectBooking(ctx context.Context, driverID, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.ownedTrip(ctx, driverID, booking.TripID); err != nil {
		return nil, err
	}

	rejected, err := uc.repo.RejectBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := uc.gw.PublishBookingRejected(ctx, bookingEvent(rejected)); err != nil {
		logger.Warn("Failed to publish booking event",
			logger.String("booking_id", rejected.ID.String()),
			logger.Err(err))
	}
	return rejected, nil
}

// CancelBooking cancels a booking. The passenger can cancel their own
// booking; the driver can cancel any booking on their trip. Cancelling
// an approved booking releases its seats and refunds the payment.
// Repeated cancellation is a no-op.
func (uc *tripUC) CancelBooking(ctx context.Context, callerID, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PassengerID != callerID {
		if _, err := uc.ownedTrip(ctx, callerID, booking.TripID); err != nil {
			return nil, err
		}
	}
	if booking.Status == models.BookingStatusCancelled {
		return booking, nil
	}

	cancelled, released, err := uc.repo.CancelBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if released && cancelled.PaymentStatus == models.PaymentStatusRefunded {
		uc.refund(ctx, cancelled, "booking cancelled")
	}

	if err := uc.gw.PublishBookingCancelled(ctx, bookingEvent(cancelled)); err != nil {
		logger.Warn("Failed to publish booking event",
			logger.String("booking_id", cancelled.ID.String()),
			logger.Err(err))
	}
	return cancelled, nil
}

// CompleteBooking marks an approved booking completed after the ride
func (uc *tripUC) CompleteBooking(ctx context.Context, driverID, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.ownedTrip(ctx, driverID, booking.TripID); err != nil {
		return nil, err
	}

	completed, err := uc.repo.CompleteBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := uc.gw.PublishBookingCompleted(ctx, bookingEvent(completed)); err != nil {
		logger.Warn("Failed to publish booking event",
			logger.String("booking_id", completed.ID.String()),
			logger.Err(err))
	}
	return completed, nil
}
