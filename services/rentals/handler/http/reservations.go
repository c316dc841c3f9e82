package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wheelshare/wheelshare/internal/pkg/middleware"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	nrpkg "github.com/wheelshare/wheelshare/internal/pkg/newrelic"
	"github.com/wheelshare/wheelshare/internal/utils"
	"github.com/wheelshare/wheelshare/services/rentals"
)

// RentalsHandler handles HTTP requests for vehicle rentals
type RentalsHandler struct {
	rentalUC rentals.RentalUC
}

// NewRentalsHandler creates a new rentals HTTP handler
func NewRentalsHandler(rentalUC rentals.RentalUC) *RentalsHandler {
	return &RentalsHandler{rentalUC: rentalUC}
}

// RequestReservation handles rental reservation requests
func (h *RentalsHandler) RequestReservation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rentals.Request")

	renterID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	reservation, err := h.rentalUC.RequestReservation(c.Request().Context(), renterID, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Reservation requested successfully", reservation)
}

// GetReservation handles reservation detail requests
func (h *RentalsHandler) GetReservation(c echo.Context) error {
	return h.reservationOp(c, "Rentals.Get", h.rentalUC.GetReservation)
}

// ListMyReservations lists the authenticated renter's reservations
func (h *RentalsHandler) ListMyReservations(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rentals.ListMine")

	renterID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.rentalUC.ListMyReservations(c.Request().Context(), renterID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListVehicleReservations lists reservations on the owner's vehicle
func (h *RentalsHandler) ListVehicleReservations(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rentals.ListByVehicle")

	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	vehicleID, err := uuid.Parse(c.Param("vehicleID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	result, err := h.rentalUC.ListVehicleReservations(c.Request().Context(), ownerID, vehicleID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// VehicleAvailability reports whether a vehicle is free over a range
func (h *RentalsHandler) VehicleAvailability(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rentals.Availability")

	vehicleID, err := uuid.Parse(c.Param("vehicleID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}
	start, err := time.Parse(time.RFC3339, c.QueryParam("start"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid start date")
	}
	end, err := time.Parse(time.RFC3339, c.QueryParam("end"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid end date")
	}

	available, err := h.rentalUC.VehicleAvailability(c.Request().Context(), vehicleID, start, end)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", map[string]bool{"available": available})
}

func (h *RentalsHandler) reservationOp(c echo.Context, name string, op func(context.Context, uuid.UUID, uuid.UUID) (*models.Reservation, error)) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, name)

	callerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	reservationID, err := uuid.Parse(c.Param("reservationID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reservation ID")
	}

	reservation, err := op(c.Request().Context(), callerID, reservationID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", reservation)
}

// ConfirmReservation confirms a pending reservation, capturing payment
// and holding the date range
func (h *RentalsHandler) ConfirmReservation(c echo.Context) error {
	return h.reservationOp(c, "Rentals.Confirm", h.rentalUC.ConfirmReservation)
}

// StartReservation marks the rental in_progress at pickup
func (h *RentalsHandler) StartReservation(c echo.Context) error {
	return h.reservationOp(c, "Rentals.Start", h.rentalUC.StartReservation)
}

// CompleteReservation marks the rental completed at return
func (h *RentalsHandler) CompleteReservation(c echo.Context) error {
	return h.reservationOp(c, "Rentals.Complete", h.rentalUC.CompleteReservation)
}

// CancelReservation cancels a reservation, freeing its date range if it
// was confirmed
func (h *RentalsHandler) CancelReservation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rentals.Cancel")

	callerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	reservationID, err := uuid.Parse(c.Param("reservationID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reservation ID")
	}

	var req models.CancelReservationRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	reservation, err := h.rentalUC.CancelReservation(c.Request().Context(), callerID, reservationID, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", reservation)
}
