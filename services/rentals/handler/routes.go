package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/wheelshare/wheelshare/internal/pkg/middleware"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	"github.com/wheelshare/wheelshare/services/rentals"
	httpHandler "github.com/wheelshare/wheelshare/services/rentals/handler/http"
)

// Handler combines all handlers for vehicle rentals
type Handler struct {
	rentalsHTTP *httpHandler.RentalsHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(rentalUC rentals.RentalUC, cfg *models.Config) *Handler {
	return &Handler{
		rentalsHTTP: httpHandler.NewRentalsHandler(rentalUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/reservations", middleware.JWTAuthMiddleware(h.cfg.JWT))
	api.POST("", h.rentalsHTTP.RequestReservation)
	api.GET("/mine", h.rentalsHTTP.ListMyReservations)
	api.GET("/:reservationID", h.rentalsHTTP.GetReservation)
	api.POST("/:reservationID/confirm", h.rentalsHTTP.ConfirmReservation)
	api.POST("/:reservationID/start", h.rentalsHTTP.StartReservation)
	api.POST("/:reservationID/complete", h.rentalsHTTP.CompleteReservation)
	api.POST("/:reservationID/cancel", h.rentalsHTTP.CancelReservation)

	vehicles := e.Group("/vehicles/:vehicleID", middleware.JWTAuthMiddleware(h.cfg.JWT))
	vehicles.GET("/reservations", h.rentalsHTTP.ListVehicleReservations)
	vehicles.GET("/availability", h.rentalsHTTP.VehicleAvailability)
}
