package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/wheelshare/wheelshare/internal/pkg/middleware"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	"github.com/wheelshare/wheelshare/services/reviews"
	httpHandler "github.com/wheelshare/wheelshare/services/reviews/handler/http"
)

// Handler combines all handlers for reviews
type Handler struct {
	reviewsHTTP *httpHandler.ReviewsHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(reviewUC reviews.ReviewUC, cfg *models.Config) *Handler {
	return &Handler{
		reviewsHTTP: httpHandler.NewReviewsHandler(reviewUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	api := e.Group("/reviews", middleware.JWTAuthMiddleware(h.cfg.JWT))
	api.POST("", h.reviewsHTTP.SubmitReview)
	api.GET("/:reviewID", h.reviewsHTTP.GetReview)
	api.GET("/target/:targetType/:targetID", h.reviewsHTTP.ListTargetReviews)

	// Internal routes for back-office moderation
	internal := e.Group("/internal/reviews", apiKey.Handler())
	internal.GET("/pending", h.reviewsHTTP.ListPendingReviews)
	internal.POST("/:reviewID/approve", h.reviewsHTTP.ApproveReview)
	internal.POST("/:reviewID/reject", h.reviewsHTTP.RejectReview)
	internal.POST("/:reviewID/hide", h.reviewsHTTP.HideReview)
	internal.POST("/:reviewID/unhide", h.reviewsHTTP.UnhideReview)
}
