package models

import (
	"github.com/google/uuid"
)

// PaymentAuthorizeRequest asks the payment collaborator to capture funds
// for a booking or reservation.
type PaymentAuthorizeRequest struct {
	ReferenceID uuid.UUID `json:"reference_id"`
	UserID      uuid.UUID `json:"user_id"`
	Amount      int       `json:"amount"`
	Currency    string    `json:"currency"`
}

// PaymentRefundRequest asks the payment collaborator to refund a prior
// authorization.
type PaymentRefundRequest struct {
	ReferenceID uuid.UUID `json:"reference_id"`
	Amount      int       `json:"amount"`
	Reason      string    `json:"reason,omitempty"`
}

// PaymentResult is the payment collaborator's synchronous answer.
type PaymentResult struct {
	TransactionID string `json:"transaction_id"`
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
}
