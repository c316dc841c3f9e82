package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wheelshare/wheelshare/internal/pkg/apperrors"
	"github.com/wheelshare/wheelshare/internal/pkg/logger"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	"github.com/wheelshare/wheelshare/services/reviews"
)

type reviewUC struct {
	cfg  *models.Config
	repo reviews.ReviewRepo
	gw   reviews.ReviewGW
}

// NewReviewUC creates a new review use case
func NewReviewUC(cfg *models.Config, repo reviews.ReviewRepo, gw reviews.ReviewGW) reviews.ReviewUC {
	return &reviewUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
}

func reviewEvent(review *models.Review) *models.ReviewEvent {
	return &models.ReviewEvent{
		ReviewID:   review.ID,
		TargetType: review.TargetType,
		TargetID:   review.TargetID,
		Rating:     review.Rating,
		Status:     review.Status,
		OccurredAt: time.Now(),
	}
}

func validateReviewRequest(req *models.SubmitReviewRequest) error {
	switch req.TargetType {
	case models.ReviewTargetVehicle, models.ReviewTargetRide, models.ReviewTargetUser:
	default:
		return fmt.Errorf("unknown target_type %q: %w", req.TargetType, apperrors.ErrValidation)
	}
	if req.TargetID == uuid.Nil {
		return fmt.Errorf("target_id is required: %w", apperrors.ErrValidation)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5: %w", apperrors.ErrValidation)
	}
	if len(strings.TrimSpace(req.Comment)) < models.MinCommentLength {
		return fmt.Errorf("comment must be at least %d characters: %w", models.MinCommentLength, apperrors.ErrValidation)
	}
	return nil
}

// SubmitReview accepts a review from a user who completed a booking or
// rental involving the target. One review per author per target; the
// review awaits moderation before counting toward ratings.
func (uc *reviewUC) SubmitReview(ctx context.Context, authorID uuid.UUID, req *models.SubmitReviewRequest) (*models.Review, error) {
	if err := validateReviewRequest(req); err != nil {
		return nil, err
	}
	if req.TargetType == models.ReviewTargetUser && req.TargetID == authorID {
		return nil, fmt.Errorf("cannot review yourself: %w", apperrors.ErrNotEligible)
	}
	if req.TargetType == models.ReviewTargetRide {
		// A ride review counts toward the driver's rating, so the
		// driver may not submit one.
		driverID, err := uc.repo.TripDriver(ctx, req.TargetID)
		if err != nil {
			return nil, err
		}
		if driverID == authorID {
			return nil, fmt.Errorf("cannot review your own trip: %w", apperrors.ErrNotEligible)
		}
	}

	eligible, err := uc.repo.HasCompletedEngagement(ctx, authorID, req.TargetType, req.TargetID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, fmt.Errorf("no completed booking or rental with target: %w", apperrors.ErrNotEligible)
	}

	existing, err := uc.repo.GetReviewByAuthorAndTarget(ctx, authorID, req.TargetType, req.TargetID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("review %s already submitted: %w", existing.ID, apperrors.ErrDuplicateReview)
	}

	now := time.Now()
	review := &models.Review{
		ID:         uuid.New(),
		AuthorID:   authorID,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
		Status:     models.ReviewStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	if err := uc.gw.PublishReviewSubmitted(ctx, reviewEvent(review)); err != nil {
		logger.Warn("Failed to publish review event",
			logger.String("review_id", review.ID.String()),
			logger.Err(err))
	}
	return review, nil
}

// GetReview retrieves a review by ID
func (uc *reviewUC) GetReview(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	return uc.repo.GetReviewByID(ctx, id)
}

// ListTargetReviews retrieves the visible reviews of a target
func (uc *reviewUC) ListTargetReviews(ctx context.Context, targetType models.ReviewTargetType, targetID uuid.UUID) ([]*models.Review, error) {
	switch targetType {
	case models.ReviewTargetVehicle, models.ReviewTargetRide, models.ReviewTargetUser:
	default:
		return nil, fmt.Errorf("unknown target_type %q: %w", targetType, apperrors.ErrValidation)
	}
	return uc.repo.ListVisibleReviews(ctx, targetType, targetID)
}

// ListPendingReviews retrieves reviews awaiting moderation
func (uc *reviewUC) ListPendingReviews(ctx context.Context, limit int) ([]*models.Review, error) {
	if limit <= 0 || limit > uc.cfg.Search.MaxResults {
		limit = uc.cfg.Search.MaxResults
	}
	return uc.repo.ListPendingReviews(ctx, limit)
}

// ApproveReview approves a pending review, folding it into the
// target's rating aggregate
func (uc *reviewUC) ApproveReview(ctx context.Context, reviewID uuid.UUID) (*models.Review, error) {
	review, err := uc.repo.ApproveReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if err := uc.gw.PublishReviewApproved(ctx, reviewEvent(review)); err != nil {
		logger.Warn("Failed to publish review event",
			logger.String("review_id", review.ID.String()),
			logger.Err(err))
	}
	return review, nil
}

// RejectReview rejects a pending review
func (uc *reviewUC) RejectReview(ctx context.Context, reviewID uuid.UUID) (*models.Review, error) {
	review, err := uc.repo.RejectReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if err := uc.gw.PublishReviewRejected(ctx, reviewEvent(review)); err != nil {
		logger.Warn("Failed to publish review event",
			logger.String("review_id", review.ID.String()),
			logger.Err(err))
	}
	return review, nil
}

// SetReviewHidden toggles visibility of an approved review
func (uc *reviewUC) SetReviewHidden(ctx context.Context, reviewID uuid.UUID, hidden bool) (*models.Review, error) {
	return uc.repo.SetReviewHidden(ctx, reviewID, hidden)
}
