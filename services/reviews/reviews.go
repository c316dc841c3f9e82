package reviews

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

// ReviewRepo defines the interface for review data access.
//
// Moderation transitions recompute the target's rating aggregate in the
// same transaction, so a review is never visible without its effect on
// the aggregate.
//
//go:generate mockgen -destination=mocks/mock_reviews.go -package=mocks github.com/wheelshare/wheelshare/services/reviews ReviewRepo,ReviewUC,ReviewGW
type ReviewRepo interface {
	CreateReview(ctx context.Context, review *models.Review) error
	GetReviewByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	// GetReviewByAuthorAndTarget returns the author's non-rejected
	// review of the target, if any.
	GetReviewByAuthorAndTarget(ctx context.Context, authorID uuid.UUID, targetType models.ReviewTargetType, targetID uuid.UUID) (*models.Review, error)
	// ListVisibleReviews returns approved, non-hidden reviews of a target.
	ListVisibleReviews(ctx context.Context, targetType models.ReviewTargetType, targetID uuid.UUID) ([]*models.Review, error)
	ListPendingReviews(ctx context.Context, limit int) ([]*models.Review, error)

	// HasCompletedEngagement reports whether the author completed a
	// booking or rental that involved the target.
	HasCompletedEngagement(ctx context.Context, authorID uuid.UUID, targetType models.ReviewTargetType, targetID uuid.UUID) (bool, error)
	// TripDriver resolves the driver of a trip.
	TripDriver(ctx context.Context, tripID uuid.UUID) (uuid.UUID, error)

	// ApproveReview transitions pending->approved and folds the rating
	// into the target's aggregate.
	ApproveReview(ctx context.Context, reviewID uuid.UUID) (*models.Review, error)
	// RejectReview transitions pending->rejected.
	RejectReview(ctx context.Context, reviewID uuid.UUID) (*models.Review, error)
	// SetReviewHidden toggles visibility of an approved review,
	// recomputing the target's aggregate either way.
	SetReviewHidden(ctx context.Context, reviewID uuid.UUID, hidden bool) (*models.Review, error)
}

// ReviewUC defines the interface for review and reputation business logic.
type ReviewUC interface {
	SubmitReview(ctx context.Context, authorID uuid.UUID, req *models.SubmitReviewRequest) (*models.Review, error)
	GetReview(ctx context.Context, id uuid.UUID) (*models.Review, error)
	ListTargetReviews(ctx context.Context, targetType models.ReviewTargetType, targetID uuid.UUID) ([]*models.Review, error)
	ListPendingReviews(ctx context.Context, limit int) ([]*models.Review, error)
	ApproveReview(ctx context.Context, reviewID uuid.UUID) (*models.Review, error)
	RejectReview(ctx context.Context, reviewID uuid.UUID) (*models.Review, error)
	SetReviewHidden(ctx context.Context, reviewID uuid.UUID, hidden bool) (*models.Review, error)
}

// ReviewGW defines the interface for publishing review events.
type ReviewGW interface {
	PublishReviewSubmitted(ctx context.Context, event *models.ReviewEvent) error
	PublishReviewApproved(ctx context.Context, event *models.ReviewEvent) error
	PublishReviewRejected(ctx context.Context, event *models.ReviewEvent) error
}
