package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/wheelshare/wheelshare/internal/pkg/apperrors"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

// ReviewRepo implements review data access backed by PostgreSQL.
type ReviewRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewReviewRepo creates a new review repository
func NewReviewRepo(cfg *models.Config, db *sqlx.DB) *ReviewRepo {
	return &ReviewRepo{
		cfg: cfg,
		db:  db,
	}
}

const reviewColumns = `
	id, author_id, target_type, target_id, rating, comment,
	status, hidden, created_at, updated_at
`

// CreateReview persists a new review awaiting moderation
func (r *ReviewRepo) CreateReview(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (
			id, author_id, target_type, target_id, rating, comment,
			status, hidden, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		review.ID,
		review.AuthorID,
		review.TargetType,
		review.TargetID,
		review.Rating,
		review.Comment,
		review.Status,
		review.Hidden,
		review.CreatedAt,
		review.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetReviewByID retrieves a review by its ID
func (r *ReviewRepo) GetReviewByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review := &models.Review{}
	if err := r.db.GetContext(ctx, review, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return review, nil
}

// GetReviewByAuthorAndTarget retrieves the author's non-rejected review
// of a target, if any. Rejected reviews do not block resubmission.
func (r *ReviewRepo) GetReviewByAuthorAndTarget(ctx context.Context, authorID uuid.UUID, targetType models.ReviewTargetType, targetID uuid.UUID) (*models.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE author_id = $1 AND target_type = $2 AND target_id = $3 AND status <> $4
		LIMIT 1`

	review := &models.Review{}
	err := r.db.GetContext(ctx, review, query, authorID, targetType, targetID, models.ReviewStatusRejected)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return review, nil
}

// ListVisibleReviews retrieves approved, non-hidden reviews of a target
func (r *ReviewRepo) ListVisibleReviews(ctx context.Context, targetType models.ReviewTargetType, targetID uuid.UUID) ([]*models.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE target_type = $1 AND target_id = $2 AND status = $3 AND hidden = false
		ORDER BY created_at DESC`

	var reviews []*models.Review
	if err := r.db.SelectContext(ctx, &reviews, query, targetType, targetID, models.ReviewStatusApproved); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// ListPendingReviews retrieves reviews awaiting moderation
func (r *ReviewRepo) ListPendingReviews(ctx context.Context, limit int) ([]*models.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2`

	var reviews []*models.Review
	if err := r.db.SelectContext(ctx, &reviews, query, models.ReviewStatusPending, limit); err != nil {
		return nil, fmt.Errorf("failed to list pending reviews: %w", err)
	}
	return reviews, nil
}

// HasCompletedEngagement reports whether the author completed a booking
// or rental involving the target, which is what makes them eligible to
// review it.
func (r *ReviewRepo) HasCompletedEngagement(ctx context.Context, authorID uuid.UUID, targetType models.ReviewTargetType, targetID uuid.UUID) (bool, error) {
	var query string
	switch targetType {
	case models.ReviewTargetRide:
		// Only passengers who completed the ride may review it; the
		// review lands on the driver's own profile.
		query = `
			SELECT EXISTS(
				SELECT 1 FROM bookings
				WHERE trip_id = $2 AND passenger_id = $1 AND status = 'completed'
			)`
	case models.ReviewTargetVehicle:
		// Author completed a rental of the vehicle or rode a completed
		// trip on it.
		query = `
			SELECT EXISTS(
				SELECT 1 FROM reservations
				WHERE renter_id = $1 AND vehicle_id = $2 AND status = 'completed'
				UNION
				SELECT 1 FROM bookings b
				JOIN trips t ON t.id = b.trip_id
				WHERE b.passenger_id = $1 AND t.vehicle_id = $2 AND b.status = 'completed'
			)`
	case models.ReviewTargetUser:
		// Author and target met through a completed booking or rental,
		// in either role.
		query = `
			SELECT EXISTS(
				SELECT 1 FROM bookings b
				JOIN trips t ON t.id = b.trip_id
				WHERE b.status = 'completed'
				  AND ((b.passenger_id = $1 AND t.driver_id = $2) OR (b.passenger_id = $2 AND t.driver_id = $1))
				UNION
				SELECT 1 FROM reservations res
				JOIN vehicles v ON v.id = res.vehicle_id
				WHERE res.status = 'completed'
				  AND ((res.renter_id = $1 AND v.owner_id = $2) OR (res.renter_id = $2 AND v.owner_id = $1))
			)`
	default:
		return false, fmt.Errorf("unknown review target type %q: %w", targetType, apperrors.ErrValidation)
	}

	var eligible bool
	if err := r.db.QueryRowContext(ctx, query, authorID, targetID).Scan(&eligible); err != nil {
		return false, fmt.Errorf("failed to check review eligibility: %w", err)
	}
	return eligible, nil
}

// TripDriver resolves the driver of a trip
func (r *ReviewRepo) TripDriver(ctx context.Context, tripID uuid.UUID) (uuid.UUID, error) {
	var driverID uuid.UUID
	err := r.db.QueryRowContext(ctx, `SELECT driver_id FROM trips WHERE id = $1`, tripID).Scan(&driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, apperrors.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to get trip driver: %w", err)
	}
	return driverID, nil
}

func lockReview(ctx context.Context, tx *sqlx.Tx, reviewID uuid.UUID) (*models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1 FOR UPDATE`

	review := &models.Review{}
	if err := tx.GetContext(ctx, review, query, reviewID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock review: %w", err)
	}
	return review, nil
}

// recomputeAggregate rewrites the target's rating and rating_count from
// the counted reviews. Vehicle reviews land on the vehicles row; user
// and ride reviews land on the subject user's profile, where a ride
// review counts toward the trip's driver.
func recomputeAggregate(ctx context.Context, tx *sqlx.Tx, targetType models.ReviewTargetType, targetID uuid.UUID) error {
	switch targetType {
	case models.ReviewTargetVehicle:
		query := `
			UPDATE vehicles SET
				rating = agg.avg_rating,
				rating_count = agg.cnt,
				updated_at = NOW()
			FROM (
				SELECT COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS cnt
				FROM reviews
				WHERE target_type = 'vehicle' AND target_id = $1
				  AND status = 'approved' AND hidden = false
			) AS agg
			WHERE vehicles.id = $1`
		if _, err := tx.ExecContext(ctx, query, targetID); err != nil {
			return fmt.Errorf("failed to recompute vehicle rating: %w", err)
		}
		return nil

	case models.ReviewTargetRide, models.ReviewTargetUser:
		subjectID := targetID
		if targetType == models.ReviewTargetRide {
			err := tx.QueryRowContext(ctx, `SELECT driver_id FROM trips WHERE id = $1`, targetID).Scan(&subjectID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return apperrors.ErrNotFound
				}
				return fmt.Errorf("failed to resolve ride driver: %w", err)
			}
		}

		query := `
			UPDATE profiles SET
				rating = agg.avg_rating,
				rating_count = agg.cnt,
				updated_at = NOW()
			FROM (
				SELECT COALESCE(AVG(r.rating), 0) AS avg_rating, COUNT(*) AS cnt
				FROM reviews r
				LEFT JOIN trips t ON r.target_type = 'ride' AND t.id = r.target_id
				WHERE r.status = 'approved' AND r.hidden = false
				  AND ((r.target_type = 'user' AND r.target_id = $1)
				    OR (r.target_type = 'ride' AND t.driver_id = $1))
			) AS agg
			WHERE profiles.user_id = $1`
		if _, err := tx.ExecContext(ctx, query, subjectID); err != nil {
			return fmt.Errorf("failed to recompute profile rating: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown review target type %q: %w", targetType, apperrors.ErrValidation)
	}
}

// ApproveReview transitions a pending review to approved and folds it
// into the target's rating aggregate, both in one transaction.
func (r *ReviewRepo) ApproveReview(ctx context.Context, reviewID uuid.UUID) (*models.Review, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	review, err := lockReview(ctx, tx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.Status != models.ReviewStatusPending {
		return nil, fmt.Errorf("review is %s, cannot approve: %w", review.Status, apperrors.ErrInvalidTransition)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE reviews SET status = $1, updated_at = NOW() WHERE id = $2`,
		models.ReviewStatusApproved, reviewID); err != nil {
		return nil, fmt.Errorf("failed to approve review: %w", err)
	}
	review.Status = models.ReviewStatusApproved

	if err := recomputeAggregate(ctx, tx, review.TargetType, review.TargetID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return review, nil
}

// RejectReview transitions a pending review to rejected. Rejected
// reviews never touch the aggregate.
func (r *ReviewRepo) RejectReview(ctx context.Context, reviewID uuid.UUID) (*models.Review, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	review, err := lockReview(ctx, tx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.Status != models.ReviewStatusPending {
		return nil, fmt.Errorf("review is %s, cannot reject: %w", review.Status, apperrors.ErrInvalidTransition)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE reviews SET status = $1, updated_at = NOW() WHERE id = $2`,
		models.ReviewStatusRejected, reviewID); err != nil {
		return nil, fmt.Errorf("failed to reject review: %w", err)
	}
	review.Status = models.ReviewStatusRejected

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return review, nil
}

// SetReviewHidden toggles visibility of an approved review and
// recomputes the target's aggregate so hidden reviews stop counting.
func (r *ReviewRepo) SetReviewHidden(ctx context.Context, reviewID uuid.UUID, hidden bool) (*models.Review, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	review, err := lockReview(ctx, tx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.Status != models.ReviewStatusApproved {
		return nil, fmt.Errorf("review is %s, cannot change visibility: %w", review.Status, apperrors.ErrInvalidTransition)
	}
	if review.Hidden == hidden {
		return review, tx.Commit()
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE reviews SET hidden = $1, updated_at = NOW() WHERE id = $2`,
		hidden, reviewID); err != nil {
		return nil, fmt.Errorf("failed to update review visibility: %w", err)
	}
	review.Hidden = hidden

	if err := recomputeAggregate(ctx, tx, review.TargetType, review.TargetID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return review, nil
}
