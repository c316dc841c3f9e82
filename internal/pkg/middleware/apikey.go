package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/wheelshare/wheelshare/internal/pkg/models"
	"github.com/wheelshare/wheelshare/internal/utils"
)

// APIKeyHeader is the header carrying the service API key
const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware validates API keys for service-to-service calls
type APIKeyMiddleware struct {
	cfg *models.APIKeyConfig
}

// NewAPIKeyMiddleware creates an API key middleware from configuration
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{cfg: cfg}
}

// Handler validates the API key header against the marketplace key
func (m *APIKeyMiddleware) Handler() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			if m.cfg.Marketplace == "" ||
				subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.Marketplace)) != 1 {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}

			return next(c)
		}
	}
}
