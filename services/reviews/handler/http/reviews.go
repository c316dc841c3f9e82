package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wheelshare/wheelshare/internal/pkg/middleware"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	nrpkg "github.com/wheelshare/wheelshare/internal/pkg/newrelic"
	"github.com/wheelshare/wheelshare/internal/utils"
	"github.com/wheelshare/wheelshare/services/reviews"
)

// ReviewsHandler handles HTTP requests for reviews and moderation
type ReviewsHandler struct {
	reviewUC reviews.ReviewUC
}

// NewReviewsHandler creates a new reviews HTTP handler
func NewReviewsHandler(reviewUC reviews.ReviewUC) *ReviewsHandler {
	return &ReviewsHandler{reviewUC: reviewUC}
}

// SubmitReview handles review submissions
func (h *ReviewsHandler) SubmitReview(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reviews.Submit")

	authorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	review, err := h.reviewUC.SubmitReview(c.Request().Context(), authorID, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Review submitted for moderation", review)
}

// GetReview handles review detail requests
func (h *ReviewsHandler) GetReview(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reviews.Get")

	id, err := uuid.Parse(c.Param("reviewID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid review ID")
	}

	review, err := h.reviewUC.GetReview(c.Request().Context(), id)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", review)
}

// ListTargetReviews lists visible reviews of a vehicle, ride or user
func (h *ReviewsHandler) ListTargetReviews(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reviews.ListByTarget")

	targetID, err := uuid.Parse(c.Param("targetID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid target ID")
	}
	targetType := models.ReviewTargetType(c.Param("targetType"))

	result, err := h.reviewUC.ListTargetReviews(c.Request().Context(), targetType, targetID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPendingReviews lists reviews awaiting moderation
func (h *ReviewsHandler) ListPendingReviews(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reviews.ListPending")

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid limit")
		}
		limit = parsed
	}

	result, err := h.reviewUC.ListPendingReviews(c.Request().Context(), limit)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ReviewsHandler) moderate(c echo.Context, name string, op func(echo.Context, uuid.UUID) (*models.Review, error)) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, name)

	reviewID, err := uuid.Parse(c.Param("reviewID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid review ID")
	}

	review, err := op(c, reviewID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", review)
}

// ApproveReview approves a pending review
func (h *ReviewsHandler) ApproveReview(c echo.Context) error {
	return h.moderate(c, "Reviews.Approve", func(c echo.Context, reviewID uuid.UUID) (*models.Review, error) {
		return h.reviewUC.ApproveReview(c.Request().Context(), reviewID)
	})
}

// RejectReview rejects a pending review
func (h *ReviewsHandler) RejectReview(c echo.Context) error {
	return h.moderate(c, "Reviews.Reject", func(c echo.Context, reviewID uuid.UUID) (*models.Review, error) {
		return h.reviewUC.RejectReview(c.Request().Context(), reviewID)
	})
}

// HideReview hides an approved review from listings and aggregates
func (h *ReviewsHandler) HideReview(c echo.Context) error {
	return h.moderate(c, "Reviews.Hide", func(c echo.Context, reviewID uuid.UUID) (*models.Review, error) {
		return h.reviewUC.SetReviewHidden(c.Request().Context(), reviewID, true)
	})
}

// UnhideReview restores a hidden review
func (h *ReviewsHandler) UnhideReview(c echo.Context) error {
	return h.moderate(c, "Reviews.Unhide", func(c echo.Context, reviewID uuid.UUID) (*models.Review, error) {
		return h.reviewUC.SetReviewHidden(c.Request().Context(), reviewID, false)
	})
}
