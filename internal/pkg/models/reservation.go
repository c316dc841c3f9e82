package models

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the lifecycle status of a vehicle rental
type ReservationStatus string

const (
	ReservationStatusPending    ReservationStatus = "pending"
	ReservationStatusConfirmed  ReservationStatus = "confirmed"
	ReservationStatusInProgress ReservationStatus = "in_progress"
	ReservationStatusCompleted  ReservationStatus = "completed"
	ReservationStatusCancelled  ReservationStatus = "cancelled"
)

// reservationTransitions is the closed set of legal reservation transitions.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:    {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed:  {ReservationStatusInProgress, ReservationStatusCompleted, ReservationStatusCancelled},
	ReservationStatusInProgress: {ReservationStatusCompleted},
	ReservationStatusCompleted:  {},
	ReservationStatusCancelled:  {},
}

// CanTransitionTo reports whether moving to the target status is legal.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	for _, next := range reservationTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s ReservationStatus) IsTerminal() bool {
	return len(reservationTransitions[s]) == 0
}

// BlocksRange reports whether a reservation in this status holds its date
// range against competing reservations.
func (s ReservationStatus) BlocksRange() bool {
	return s == ReservationStatusConfirmed || s == ReservationStatusInProgress
}

// Reservation links a renter's claim on a vehicle over a half-open
// [StartDate, EndDate) range.
type Reservation struct {
	ID                uuid.UUID         `json:"id" db:"id"`
	VehicleID         uuid.UUID         `json:"vehicle_id" db:"vehicle_id"`
	RenterID          uuid.UUID         `json:"renter_id" db:"renter_id"`
	StartDate         time.Time         `json:"start_date" db:"start_date"`
	EndDate           time.Time         `json:"end_date" db:"end_date"`
	TotalPrice        int               `json:"total_price" db:"total_price"`
	Status            ReservationStatus `json:"status" db:"status"`
	PaymentStatus     PaymentStatus     `json:"payment_status" db:"payment_status"`
	AdditionalDrivers []uuid.UUID       `json:"additional_drivers,omitempty"`
	CancelReason      string            `json:"cancel_reason,omitempty" db:"cancel_reason"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" db:"updated_at"`
}

// Overlaps reports whether the reservation's range intersects
// [start, end) using half-open interval comparison.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartDate.Before(end) && start.Before(r.EndDate)
}

// CreateReservationRequest is the payload for requesting a vehicle rental
type CreateReservationRequest struct {
	VehicleID         uuid.UUID   `json:"vehicle_id"`
	StartDate         time.Time   `json:"start_date"`
	EndDate           time.Time   `json:"end_date"`
	AdditionalDrivers []uuid.UUID `json:"additional_drivers,omitempty"`
}

// CancelReservationRequest is the payload for cancelling a reservation
type CancelReservationRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ReservationEvent is published on reservation status transitions
type ReservationEvent struct {
	ReservationID uuid.UUID         `json:"reservation_id"`
	VehicleID     uuid.UUID         `json:"vehicle_id"`
	RenterID      uuid.UUID         `json:"renter_id"`
	StartDate     time.Time         `json:"start_date"`
	EndDate       time.Time         `json:"end_date"`
	Status        ReservationStatus `json:"status"`
	OccurredAt    time.Time         `json:"occurred_at"`
}
