package trips

import (
	"context"

	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

// TripGW defines the interface for publishing trip and booking events.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/wheelshare/wheelshare/services/trips TripGW,PaymentGW
type TripGW interface {
	PublishTripPublished(ctx context.Context, trip *models.Trip) error
	PublishTripStarted(ctx context.Context, trip *models.Trip) error
	PublishTripCompleted(ctx context.Context, trip *models.Trip) error
	PublishTripCancelled(ctx context.Context, trip *models.Trip) error

	PublishBookingRequested(ctx context.Context, event *models.BookingEvent) error
	PublishBookingApproved(ctx context.Context, event *models.BookingEvent) error
	PublishBookingRejected(ctx context.Context, event *models.BookingEvent) error
	PublishBookingCancelled(ctx context.Context, event *models.BookingEvent) error
	PublishBookingCompleted(ctx context.Context, event *models.BookingEvent) error
}

// PaymentGW defines the interface to the payment provider.
type PaymentGW interface {
	Authorize(ctx context.Context, req *models.PaymentAuthorizeRequest) (*models.PaymentResult, error)
	Refund(ctx context.Context, req *models.PaymentRefundRequest) error
}
