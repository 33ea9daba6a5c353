package response

import (
	"time"

	"buildbid/internal/domain/entities"
	"buildbid/internal/domain/quoting"
)

// QuoteResponse is a stored quote plus its display reference and the status as
// seen at read time (expired overlay applied).
type QuoteResponse struct {
	entities.Quote
	Reference       string               `json:"reference"`
	EffectiveStatus entities.QuoteStatus `json:"effective_status"`
}

func FromQuote(q entities.Quote, now time.Time) QuoteResponse {
	return QuoteResponse{
		Quote:           q,
		Reference:       quoting.GenerateReference(q),
		EffectiveStatus: quoting.EffectiveStatus(q, now),
	}
}

func FromQuotes(quotes []entities.Quote, now time.Time) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q, now))
	}
	return out
}
