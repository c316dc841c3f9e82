package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wheelshare/wheelshare/internal/pkg/middleware"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	nrpkg "github.com/wheelshare/wheelshare/internal/pkg/newrelic"
	"github.com/wheelshare/wheelshare/internal/utils"
	"github.com/wheelshare/wheelshare/services/vehicles"
)

// VehiclesHandler handles HTTP requests for the vehicle catalog
type VehiclesHandler struct {
	vehicleUC vehicles.VehicleUC
}

// NewVehiclesHandler creates a new vehicle catalog HTTP handler
func NewVehiclesHandler(vehicleUC vehicles.VehicleUC) *VehiclesHandler {
	return &VehiclesHandler{vehicleUC: vehicleUC}
}

// RegisterVehicle handles vehicle listing requests
func (h *VehiclesHandler) RegisterVehicle(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Vehicles.Register")

	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateVehicleRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	vehicle, err := h.vehicleUC.RegisterVehicle(c.Request().Context(), ownerID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Vehicle registered successfully", vehicle)
}

// GetVehicle handles vehicle detail requests
func (h *VehiclesHandler) GetVehicle(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Vehicles.Get")

	id, err := uuid.Parse(c.Param("vehicleID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	vehicle, err := h.vehicleUC.GetVehicle(c.Request().Context(), id)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", vehicle)
}

// ListMyVehicles lists vehicles owned by the authenticated user
func (h *VehiclesHandler) ListMyVehicles(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Vehicles.ListMine")

	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.vehicleUC.ListOwnerVehicles(c.Request().Context(), ownerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateLocation moves a vehicle to a new location
func (h *VehiclesHandler) UpdateLocation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Vehicles.UpdateLocation")

	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("vehicleID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	var location models.Location
	if err := c.Bind(&location); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.vehicleUC.UpdateLocation(c.Request().Context(), ownerID, id, location); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

// SetAvailability toggles the vehicle availability flag
func (h *VehiclesHandler) SetAvailability(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Vehicles.SetAvailability")

	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("vehicleID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	var req availabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.vehicleUC.SetAvailability(c.Request().Context(), ownerID, id, req.Available); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", nil)
}

// VerifyVehicle marks a vehicle as platform-verified (internal endpoint)
func (h *VehiclesHandler) VerifyVehicle(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Vehicles.Verify")

	id, err := uuid.Parse(c.Param("vehicleID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	if err := h.vehicleUC.VerifyVehicle(c.Request().Context(), id); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle verified", nil)
}

// NearbyVehicles finds available vehicles around a point
func (h *VehiclesHandler) NearbyVehicles(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Vehicles.Nearby")

	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}

	radiusKm := 0.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid radius")
		}
	}

	result, err := h.vehicleUC.NearbyVehicles(c.Request().Context(), models.Location{Latitude: lat, Longitude: lng}, radiusKm)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}
