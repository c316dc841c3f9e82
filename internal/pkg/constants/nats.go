package constants

// NATS Subjects
const (
	// Booking ledger
	SubjectBookingRequested = "booking.requested"
	SubjectBookingApproved  = "booking.approved"
	SubjectBookingRejected  = "booking.rejected"
	SubjectBookingCancelled = "booking.cancelled"
	SubjectBookingCompleted = "booking.completed"

	// Rental ledger
	SubjectReservationRequested = "reservation.requested"
	SubjectReservationConfirmed = "reservation.confirmed"
	SubjectReservationCancelled = "reservation.cancelled"
	SubjectReservationCompleted = "reservation.completed"

	// Trip registry
	SubjectTripPublished = "trip.published"
	SubjectTripStarted   = "trip.started"
	SubjectTripCompleted = "trip.completed"
	SubjectTripCancelled = "trip.cancelled"

	// Review moderation
	SubjectReviewSubmitted = "review.submitted"
	SubjectReviewApproved  = "review.approved"
	SubjectReviewRejected  = "review.rejected"
)
