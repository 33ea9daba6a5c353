package response

import (
	"time"

	"buildbid/internal/domain/entities"
)

type MilestonePaymentResponse struct {
	PaymentID  string    `json:"payment_id"`
	QuoteID    string    `json:"quote_id"`
	Milestone  string    `json:"milestone"`
	Percentage float64   `json:"percentage"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromMilestonePayment(p entities.MilestonePayment) MilestonePaymentResponse {
	return MilestonePaymentResponse{
		PaymentID:    p.ID,
		QuoteID:      p.QuoteID,
		Milestone:    p.Milestone,
		Percentage:   p.Percentage,
		Amount:       p.Amount,
		Currency:     p.Currency,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}

func FromMilestonePayments(payments []entities.MilestonePayment) []MilestonePaymentResponse {
	out := make([]MilestonePaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromMilestonePayment(p))
	}
	return out
}
