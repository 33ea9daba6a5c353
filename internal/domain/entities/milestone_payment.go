package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// MilestonePayment is a homeowner payment against one payment-schedule milestone
// of a selected quote.
//
// Storage model (DynamoDB, single table):
//   - PK: QUOTE#<quote_id>, SK: PAYMENT#<milestone>
//
// Provider payload:
//   - ProviderPayloadRaw keeps the gateway response body for traceability/audit.
//   - ProviderPayload is a parsed copy, useful for debugging.
type MilestonePayment struct {
	ID         string        `json:"id"`
	QuoteID    string        `json:"quote_id"`
	Milestone  string        `json:"milestone"`
	Percentage float64       `json:"percentage"`
	Amount     float64       `json:"amount"`
	Currency   string        `json:"currency"`
	Date       time.Time     `json:"date"`
	Status     PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
