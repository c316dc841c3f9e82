package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/wheelshare/wheelshare/internal/pkg/middleware"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	httpHandler "github.com/wheelshare/wheelshare/services/vehicles/handler/http"
	"github.com/wheelshare/wheelshare/services/vehicles"
)

// Handler combines all handlers for the vehicle catalog
type Handler struct {
	vehiclesHTTP *httpHandler.VehiclesHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(vehicleUC vehicles.VehicleUC, cfg *models.Config) *Handler {
	return &Handler{
		vehiclesHTTP: httpHandler.NewVehiclesHandler(vehicleUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	api := e.Group("/vehicles", middleware.JWTAuthMiddleware(h.cfg.JWT))
	api.POST("", h.vehiclesHTTP.RegisterVehicle)
	api.GET("/mine", h.vehiclesHTTP.ListMyVehicles)
	api.GET("/nearby", h.vehiclesHTTP.NearbyVehicles)
	api.GET("/:vehicleID", h.vehiclesHTTP.GetVehicle)
	api.PUT("/:vehicleID/location", h.vehiclesHTTP.UpdateLocation)
	api.PUT("/:vehicleID/availability", h.vehiclesHTTP.SetAvailability)

	// Internal routes for back-office verification
	internal := e.Group("/internal/vehicles", apiKey.Handler())
	internal.POST("/:vehicleID/verify", h.vehiclesHTTP.VerifyVehicle)
}
