package gateway

import (
	"context"

	"github.com/wheelshare/wheelshare/internal/pkg/constants"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	natspkg "github.com/wheelshare/wheelshare/internal/pkg/nats"
	"github.com/wheelshare/wheelshare/services/rentals"
)

// RentalGW publishes reservation lifecycle events to NATS.
type RentalGW struct {
	natsClient *natspkg.Client
}

// NewRentalGW creates a new rental gateway
func NewRentalGW(natsClient *natspkg.Client) rentals.RentalGW {
	return &RentalGW{
		natsClient: natsClient,
	}
}

func (g *RentalGW) PublishReservationRequested(_ context.Context, event *models.ReservationEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectReservationRequested, event)
}

func (g *RentalGW) PublishReservationConfirmed(_ context.Context, event *models.ReservationEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectReservationConfirmed, event)
}

func (g *RentalGW) PublishReservationCancelled(_ context.Context, event *models.ReservationEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectReservationCancelled, event)
}

func (g *RentalGW) PublishReservationCompleted(_ context.Context, event *models.ReservationEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectReservationCompleted, event)
}
