package models

import (
	"time"

	"github.com/google/uuid"
)

// VehicleType represents the category of a listed vehicle
type VehicleType string

const (
	VehicleTypeCar        VehicleType = "car"
	VehicleTypeMotorcycle VehicleType = "motorcycle"
	VehicleTypeVan        VehicleType = "van"
)

// Location represents a geographic point with an optional address
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Address   string  `json:"address,omitempty" db:"address"`
}

// Vehicle represents a vehicle listed on the marketplace
type Vehicle struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	OwnerID      uuid.UUID   `json:"owner_id" db:"owner_id"`
	Brand        string      `json:"brand" db:"brand"`
	Model        string      `json:"model" db:"model"`
	Year         int         `json:"year" db:"year"`
	Plate        string      `json:"plate" db:"plate"`
	Type         VehicleType `json:"type" db:"type"`
	SeatCapacity int         `json:"seat_capacity" db:"seat_capacity"`
	FuelType     string      `json:"fuel_type" db:"fuel_type"`
	Transmission string      `json:"transmission" db:"transmission"`
	HourlyRate   int         `json:"hourly_rate" db:"hourly_rate"`
	DailyRate    int         `json:"daily_rate" db:"daily_rate"`
	Location     Location    `json:"location"`
	IsAvailable  bool        `json:"is_available" db:"is_available"`
	IsVerified   bool        `json:"is_verified" db:"is_verified"`
	Rating       float64     `json:"rating" db:"rating"`
	RatingCount  int         `json:"rating_count" db:"rating_count"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

// CreateVehicleRequest is the payload for listing a new vehicle
type CreateVehicleRequest struct {
	Brand        string      `json:"brand"`
	Model        string      `json:"model"`
	Year         int         `json:"year"`
	Plate        string      `json:"plate"`
	Type         VehicleType `json:"type"`
	SeatCapacity int         `json:"seat_capacity"`
	FuelType     string      `json:"fuel_type"`
	Transmission string      `json:"transmission"`
	HourlyRate   int         `json:"hourly_rate"`
	DailyRate    int         `json:"daily_rate"`
	Location     Location    `json:"location"`
}

// NearbyVehicle is a vehicle hit from a geo search with its distance
type NearbyVehicle struct {
	VehicleID  uuid.UUID `json:"vehicle_id"`
	DistanceKm float64   `json:"distance_km"`
}
