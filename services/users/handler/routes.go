package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/wheelshare/wheelshare/internal/pkg/middleware"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
	"github.com/wheelshare/wheelshare/services/users"
	httpHandler "github.com/wheelshare/wheelshare/services/users/handler/http"
)

// Handler combines all handlers for user accounts and profiles
type Handler struct {
	usersHTTP *httpHandler.UsersHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(userUC users.UserUC, cfg *models.Config) *Handler {
	return &Handler{
		usersHTTP: httpHandler.NewUsersHandler(userUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	e.POST("/auth/register", h.usersHTTP.Register)
	e.POST("/auth/login", h.usersHTTP.Login)

	api := e.Group("/users", middleware.JWTAuthMiddleware(h.cfg.JWT))
	api.GET("/me", h.usersHTTP.Me)
	api.PUT("/me/two-factor", h.usersHTTP.SetTwoFactor)
	api.GET("/:userID/profile", h.usersHTTP.GetProfile)

	// Internal routes for back-office verification
	internal := e.Group("/internal/users", apiKey.Handler())
	internal.PUT("/:userID/verification", h.usersHTTP.SetVerification)
}
