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
	"github.com/wheelshare/wheelshare/services/trips"
)

// TripsHandler handles HTTP requests for trips and bookings
type TripsHandler struct {
	tripUC trips.TripUC
}

// NewTripsHandler creates a new trips HTTP handler
func NewTripsHandler(tripUC trips.TripUC) *TripsHandler {
	return &TripsHandler{tripUC: tripUC}
}

// PublishTrip handles trip publishing requests
func (h *TripsHandler) PublishTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.Publish")

	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.PublishTrip(c.Request().Context(), driverID, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip published successfully", trip)
}

// GetTrip handles trip detail requests
func (h *TripsHandler) GetTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.Get")

	id, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), id)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", trip)
}

// ListMyTrips lists trips published by the authenticated driver
func (h *TripsHandler) ListMyTrips(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.ListMine")

	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.tripUC.ListMyTrips(c.Request().Context(), driverID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListOpenTrips lists scheduled trips with seats available
func (h *TripsHandler) ListOpenTrips(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.ListOpen")

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid limit")
		}
		limit = parsed
	}

	result, err := h.tripUC.ListOpenTrips(c.Request().Context(), limit)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TripsHandler) tripTransition(c echo.Context, name string, op func(echo.Context, uuid.UUID, uuid.UUID) (*models.Trip, error)) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, name)

	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := op(c, driverID, tripID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", trip)
}

// StartTrip moves a scheduled trip to in_progress
func (h *TripsHandler) StartTrip(c echo.Context) error {
	return h.tripTransition(c, "Trips.Start", func(c echo.Context, driverID, tripID uuid.UUID) (*models.Trip, error) {
		return h.tripUC.StartTrip(c.Request().Context(), driverID, tripID)
	})
}

// CompleteTrip moves an in_progress trip to completed
func (h *TripsHandler) CompleteTrip(c echo.Context) error {
	return h.tripTransition(c, "Trips.Complete", func(c echo.Context, driverID, tripID uuid.UUID) (*models.Trip, error) {
		return h.tripUC.CompleteTrip(c.Request().Context(), driverID, tripID)
	})
}

// CancelTrip cancels a scheduled trip and its bookings
func (h *TripsHandler) CancelTrip(c echo.Context) error {
	return h.tripTransition(c, "Trips.Cancel", func(c echo.Context, driverID, tripID uuid.UUID) (*models.Trip, error) {
		return h.tripUC.CancelTrip(c.Request().Context(), driverID, tripID)
	})
}
