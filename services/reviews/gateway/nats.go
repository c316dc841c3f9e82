package gateway

import (
	"context"

	"github.com/wheelshare/wheelshare/internal/pkg/constants"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	natspkg "github.com/wheelshare/wheelshare/internal/pkg/nats"
	"github.com/wheelshare/wheelshare/services/reviews"
)

// ReviewGW publishes review moderation events to NATS.
type ReviewGW struct {
	natsClient *natspkg.Client
}

// NewReviewGW creates a new review gateway
func NewReviewGW(natsClient *natspkg.Client) reviews.ReviewGW {
	return &ReviewGW{
		natsClient: natsClient,
	}
}

func (g *ReviewGW) PublishReviewSubmitted(_ context.Context, event *models.ReviewEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectReviewSubmitted, event)
}

func (g *ReviewGW) PublishReviewApproved(_ context.Context, event *models.ReviewEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectReviewApproved, event)
}

func (g *ReviewGW) PublishReviewRejected(_ context.Context, event *models.ReviewEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectReviewRejected, event)
}
