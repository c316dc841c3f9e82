// Package apperrors defines the business-rule error kinds shared by the
// marketplace services. Callers classify failures with errors.Is and the
// HTTP layer maps each kind to a status code.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation marks malformed input the caller can correct.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a missing entity reference.
	ErrNotFound = errors.New("not found")

	// ErrCapacityExceeded marks a seat request beyond remaining capacity.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrTripNotBookable marks a booking attempt on a non-scheduled trip.
	ErrTripNotBookable = errors.New("trip not bookable")

	// ErrDateRangeConflict marks an overlap with a committed reservation.
	ErrDateRangeConflict = errors.New("date range conflict")

	// ErrInvalidRange marks a date range where start >= end.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInvalidTransition marks an illegal status transition.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNotEligible marks a review attempt without a completed interaction.
	ErrNotEligible = errors.New("not eligible")

	// ErrDuplicateReview marks a repeated review of the same target.
	ErrDuplicateReview = errors.New("duplicate review")

	// ErrDuplicateBooking marks a second active booking on the same trip.
	ErrDuplicateBooking = errors.New("duplicate booking")

	// ErrPaymentFailed marks a rejected payment authorization; the pending
	// state change is rolled back and the caller may retry.
	ErrPaymentFailed = errors.New("payment failed")

	// ErrInvariantViolation marks an internal consistency failure. It is
	// logged and surfaced as a generic server error, never ignored.
	ErrInvariantViolation = errors.New("invariant violation")
)

// HTTPStatus maps an error kind to the HTTP status code the transport
// layer should answer with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidRange):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrCapacityExceeded),
		errors.Is(err, ErrTripNotBookable),
		errors.Is(err, ErrDateRangeConflict),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrDuplicateReview),
		errors.Is(err, ErrDuplicateBooking):
		return http.StatusConflict
	case errors.Is(err, ErrNotEligible):
		return http.StatusForbidden
	case errors.Is(err, ErrPaymentFailed):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
