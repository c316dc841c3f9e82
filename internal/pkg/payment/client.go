// Package payment is the HTTP client for the external payment
// collaborator. Authorization and refund are synchronous; callers map a
// declined authorization to apperrors.ErrPaymentFailed and roll back the
// pending state change.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wheelshare/wheelshare/internal/pkg/apperrors"
	"github.com/wheelshare/wheelshare/internal/pkg/logger"
	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

// APIKeyHeader is the header carrying the payment service API key
const APIKeyHeader = "X-API-Key"

// Client calls the payment service over HTTP with API key authentication
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewClient creates a payment client from configuration
func NewClient(cfg models.PaymentConfig, apiKey string) *Client {
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: cfg.BaseURL,
		apiKey:  apiKey,
	}
}

// Authorize captures funds for a booking or reservation. A declined
// authorization returns apperrors.ErrPaymentFailed.
func (c *Client) Authorize(ctx context.Context, req *models.PaymentAuthorizeRequest) (*models.PaymentResult, error) {
	var result models.PaymentResult
	if err := c.postJSON(ctx, "/payments/authorize", req, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPaymentFailed, err)
	}

	if !result.Success {
		logger.Warn("Payment authorization declined",
			logger.String("reference_id", req.ReferenceID.String()),
			logger.String("message", result.Message))
		return &result, fmt.Errorf("%w: %s", apperrors.ErrPaymentFailed, result.Message)
	}

	return &result, nil
}

// Refund reverses a prior authorization. Used as compensation when the
// coupled accounting step fails after funds were captured.
func (c *Client) Refund(ctx context.Context, req *models.PaymentRefundRequest) error {
	var result models.PaymentResult
	if err := c.postJSON(ctx, "/payments/refund", req, &result); err != nil {
		return fmt.Errorf("refund failed: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("refund declined: %s", result.Message)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}
