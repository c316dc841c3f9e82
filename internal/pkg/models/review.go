package models

import (
	"time"

	"github.com/google/uuid"
)

// ReviewTargetType identifies what kind of entity a review is about
type ReviewTargetType string

const (
	ReviewTargetVehicle ReviewTargetType = "vehicle"
	ReviewTargetRide    ReviewTargetType = "ride"
	ReviewTargetUser    ReviewTargetType = "user"
)

// ReviewStatus represents the moderation state of a review
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// MinCommentLength is the minimum accepted review comment length.
const MinCommentLength = 5

// Review represents a user's rating of a vehicle, ride or user
type Review struct {
	ID         uuid.UUID        `json:"id" db:"id"`
	AuthorID   uuid.UUID        `json:"author_id" db:"author_id"`
	TargetType ReviewTargetType `json:"target_type" db:"target_type"`
	TargetID   uuid.UUID        `json:"target_id" db:"target_id"`
	Rating     int              `json:"rating" db:"rating"`
	Comment    string           `json:"comment" db:"comment"`
	Status     ReviewStatus     `json:"status" db:"status"`
	Hidden     bool             `json:"hidden" db:"hidden"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at" db:"updated_at"`
}

// Counted reports whether the review contributes to its target's
// rating aggregates.
func (r *Review) Counted() bool {
	return r.Status == ReviewStatusApproved && !r.Hidden
}

// SubmitReviewRequest is the payload for submitting a review
type SubmitReviewRequest struct {
	TargetType ReviewTargetType `json:"target_type"`
	TargetID   uuid.UUID        `json:"target_id"`
	Rating     int              `json:"rating"`
	Comment    string           `json:"comment"`
}

// ReviewEvent is published on review moderation transitions
type ReviewEvent struct {
	ReviewID   uuid.UUID        `json:"review_id"`
	TargetType ReviewTargetType `json:"target_type"`
	TargetID   uuid.UUID        `json:"target_id"`
	Rating     int              `json:"rating"`
	Status     ReviewStatus     `json:"status"`
	OccurredAt time.Time        `json:"occurred_at"`
}
