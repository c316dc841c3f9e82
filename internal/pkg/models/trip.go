package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the lifecycle status of a shared-ride trip
type TripStatus string

const (
	TripStatusScheduled  TripStatus = "scheduled"
	TripStatusInProgress TripStatus = "in_progress"
	TripStatusCompleted  TripStatus = "completed"
	TripStatusCancelled  TripStatus = "cancelled"
)

// tripTransitions is the closed set of legal trip status transitions.
var tripTransitions = map[TripStatus][]TripStatus{
	TripStatusScheduled:  {TripStatusInProgress, TripStatusCancelled},
	TripStatusInProgress: {TripStatusCompleted},
	TripStatusCompleted:  {},
	TripStatusCancelled:  {},
}

// CanTransitionTo reports whether moving to the target status is legal.
func (s TripStatus) CanTransitionTo(target TripStatus) bool {
	for _, next := range tripTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s TripStatus) IsTerminal() bool {
	return len(tripTransitions[s]) == 0
}

// Trip represents a driver-created shared-ride offering
type Trip struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	DriverID       uuid.UUID  `json:"driver_id" db:"driver_id"`
	VehicleID      uuid.UUID  `json:"vehicle_id" db:"vehicle_id"`
	Origin         Location   `json:"origin"`
	Destination    Location   `json:"destination"`
	Route          []Location `json:"route,omitempty"`
	DepartureTime  time.Time  `json:"departure_time" db:"departure_time"`
	ArrivalTime    time.Time  `json:"arrival_time" db:"arrival_time"`
	TotalSeats     int        `json:"total_seats" db:"total_seats"`
	AvailableSeats int        `json:"available_seats" db:"available_seats"`
	PricePerSeat   int        `json:"price_per_seat" db:"price_per_seat"`
	Status         TripStatus `json:"status" db:"status"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// CreateTripRequest is the payload for publishing a new trip
type CreateTripRequest struct {
	VehicleID     uuid.UUID  `json:"vehicle_id"`
	Origin        Location   `json:"origin"`
	Destination   Location   `json:"destination"`
	Route         []Location `json:"route,omitempty"`
	DepartureTime time.Time  `json:"departure_time"`
	ArrivalTime   time.Time  `json:"arrival_time"`
	TotalSeats    int        `json:"total_seats"`
	PricePerSeat  int        `json:"price_per_seat"`
}
