package gateway

import (
	"context"

	"github.com/wheelshare/wheelshare/internal/pkg/constants"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	natspkg "github.com/wheelshare/wheelshare/internal/pkg/nats"
	"github.com/wheelshare/wheelshare/services/trips"
)

// TripGW publishes trip and booking lifecycle events to NATS.
type TripGW struct {
	natsClient *natspkg.Client
}

// NewTripGW creates a new trip gateway
func NewTripGW(natsClient *natspkg.Client) trips.TripGW {
	return &TripGW{
		natsClient: natsClient,
	}
}

func (g *TripGW) PublishTripPublished(_ context.Context, trip *models.Trip) error {
	return g.natsClient.PublishJSON(constants.SubjectTripPublished, trip)
}

func (g *TripGW) PublishTripStarted(_ context.Context, trip *models.Trip) error {
	return g.natsClient.PublishJSON(constants.SubjectTripStarted, trip)
}

func (g *TripGW) PublishTripCompleted(_ context.Context, trip *models.Trip) error {
	return g.natsClient.PublishJSON(constants.SubjectTripCompleted, trip)
}

func (g *TripGW) PublishTripCancelled(_ context.Context, trip *models.Trip) error {
	return g.natsClient.PublishJSON(constants.SubjectTripCancelled, trip)
}

func (g *TripGW) PublishBookingRequested(_ context.Context, event *models.BookingEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectBookingRequested, event)
}

func (g *TripGW) PublishBookingApproved(_ context.Context, event *models.BookingEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectBookingApproved, event)
}

func (g *TripGW) PublishBookingRejected(_ context.Context, event *models.BookingEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectBookingRejected, event)
}

func (g *TripGW) PublishBookingCancelled(_ context.Context, event *models.BookingEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectBookingCancelled, event)
}

func (g *TripGW) PublishBookingCompleted(_ context.Context, event *models.BookingEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectBookingCompleted, event)
}
