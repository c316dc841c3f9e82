package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/wheelshare/wheelshare/internal/pkg/middleware"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	"github.com/wheelshare/wheelshare/services/trips"
	httpHandler "github.com/wheelshare/wheelshare/services/trips/handler/http"
)

// Handler combines all handlers for trips and bookings
type Handler struct {
	tripsHTTP *httpHandler.TripsHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(tripUC trips.TripUC, cfg *models.Config) *Handler {
	return &Handler{
		tripsHTTP: httpHandler.NewTripsHandler(tripUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/trips", middleware.JWTAuthMiddleware(h.cfg.JWT))
	api.POST("", h.tripsHTTP.PublishTrip)
	api.GET("", h.tripsHTTP.ListOpenTrips)
	api.GET("/mine", h.tripsHTTP.ListMyTrips)
	api.GET("/:tripID", h.tripsHTTP.GetTrip)
	api.POST("/:tripID/start", h.tripsHTTP.StartTrip)
	api.POST("/:tripID/complete", h.tripsHTTP.CompleteTrip)
	api.POST("/:tripID/cancel", h.tripsHTTP.CancelTrip)
	api.GET("/:tripID/bookings", h.tripsHTTP.ListTripBookings)

	bookings := e.Group("/bookings", middleware.JWTAuthMiddleware(h.cfg.JWT))
	bookings.POST("", h.tripsHTTP.RequestBooking)
	bookings.GET("/mine", h.tripsHTTP.ListMyBookings)
	bookings.GET("/:bookingID", h.tripsHTTP.GetBooking)
	bookings.POST("/:bookingID/approve", h.tripsHTTP.ApproveBooking)
	bookings.POST("/:bookingID/reject", h.tripsHTTP.RejectBooking)
	bookings.POST("/:bookingID/cancel", h.tripsHTTP.CancelBooking)
	bookings.POST("/:bookingID/complete", h.tripsHTTP.CompleteBooking)
}
