package request

import "encoding/json"

// MilestonePaymentRequest pays one milestone of a selected quote.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
// Any amount it carries is overwritten with the milestone amount.
type MilestonePaymentRequest struct {
	Milestone string          `json:"milestone" binding:"required"`
	MPPayload json.RawMessage `json:"mp_payload"`
}
