package interfaces

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrInvalidPaymentRequest is returned by gateways that reject the payer payload
// before contacting the provider.
var ErrInvalidPaymentRequest = errors.New("invalid payment request")

// ErrUnsupportedCurrency is returned when the charge currency differs from the
// currency the provider account settles in.
var ErrUnsupportedCurrency = errors.New("unsupported payment currency")

// PaymentRequest is a charge for one quote milestone. Payload carries the
// provider specific fields supplied by the payer (card token, payer, method).
type PaymentRequest struct {
	ExternalReference string
	Description       string
	Amount            float64
	Currency          string
	Payload           json.RawMessage
}

// PaymentResult keeps the provider response for traceability.
type PaymentResult struct {
	ProviderPaymentID string
	ProviderStatus    string
	Response          json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, req PaymentRequest) (PaymentResult, error)
}
