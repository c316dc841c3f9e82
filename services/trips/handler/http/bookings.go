package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wheelshare/wheelshare/internal/pkg/middleware"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	nrpkg "github.com/wheelshare/wheelshare/internal/pkg/newrelic"
	"github.com/wheelshare/wheelshare/internal/utils"
)

// RequestBooking handles seat booking requests
func (h *TripsHandler) RequestBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.Request")

	passengerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	booking, err := h.tripUC.RequestBooking(c.Request().Context(), passengerID, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking requested successfully", booking)
}

// GetBooking handles booking detail requests
func (h *TripsHandler) GetBooking(c echo.Context) error {
	return h.bookingTransition(c, "Bookings.Get", h.tripUC.GetBooking)
}

// ListTripBookings lists bookings on the driver's trip
func (h *TripsHandler) ListTripBookings(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.ListByTrip")

	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	result, err := h.tripUC.ListTripBookings(c.Request().Context(), driverID, tripID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListMyBookings lists the authenticated passenger's bookings
func (h *TripsHandler) ListMyBookings(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.ListMine")

	passengerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.tripUC.ListMyBookings(c.Request().Context(), passengerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TripsHandler) bookingTransition(c echo.Context, name string, op func(context.Context, uuid.UUID, uuid.UUID) (*models.Booking, error)) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, name)

	callerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := op(c.Request().Context(), callerID, bookingID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", booking)
}

// ApproveBooking approves a pending booking, capturing payment and
// reserving its seats
func (h *TripsHandler) ApproveBooking(c echo.Context) error {
	return h.bookingTransition(c, "Bookings.Approve", h.tripUC.ApproveBooking)
}

// RejectBooking rejects a pending booking
func (h *TripsHandler) RejectBooking(c echo.Context) error {
	return h.bookingTransition(c, "Bookings.Reject", h.tripUC.RejectBooking)
}

// CancelBooking cancels a booking, releasing seats if it was approved
func (h *TripsHandler) CancelBooking(c echo.Context) error {
	return h.bookingTransition(c, "Bookings.Cancel", h.tripUC.CancelBooking)
}

// CompleteBooking marks an approved booking completed
func (h *TripsHandler) CompleteBooking(c echo.Context) error {
	return h.bookingTransition(c, "Bookings.Complete", h.tripUC.CompleteBooking)
}
