package request

import (
	"errors"
	"strings"
	"time"

	"buildbid/internal/domain/entities"
	"buildbid/internal/domain/quoting"
)

var (
	ErrInvalidMethodology = errors.New("invalid methodology")
)

// QuoteRequest is the body of a quote submission. Nested blocks use the entity
// JSON shapes directly.
type QuoteRequest struct {
	SoWID               string                       `json:"sow_id"`
	BuilderID           string                       `json:"builder_id"`
	TotalPrice          float64                      `json:"total_price"`
	Currency            string                       `json:"currency"`
	Breakdown           []entities.BreakdownItem     `json:"breakdown"`
	Timeline            entities.Timeline            `json:"timeline"`
	Warranty            entities.Warranty            `json:"warranty"`
	Certifications      []entities.Certification     `json:"certifications"`
	Terms               entities.Terms               `json:"terms"`
	Methodology         string                       `json:"methodology"`
	ComplianceStatement entities.ComplianceStatement `json:"compliance_statement"`
	Notes               string                       `json:"notes"`
	ValidUntil          time.Time                    `json:"valid_until"`
}

func (r QuoteRequest) ToInput() (entities.QuoteInput, error) {
	methodology, err := parseMethodology(r.Methodology)
	if err != nil {
		return entities.QuoteInput{}, err
	}
	return entities.QuoteInput{
		TotalPrice:          r.TotalPrice,
		Currency:            r.Currency,
		Breakdown:           r.Breakdown,
		Timeline:            r.Timeline,
		Warranty:            r.Warranty,
		Certifications:      r.Certifications,
		Terms:               r.Terms,
		Methodology:         methodology,
		ComplianceStatement: r.ComplianceStatement,
		Notes:               r.Notes,
		ValidUntil:          r.ValidUntil,
	}, nil
}

// parseMethodology accepts NRM1/NRM2 in any case. An empty value is passed on and
// reported by quote validation as a missing field.
func parseMethodology(s string) (entities.Methodology, error) {
	switch m := entities.Methodology(strings.ToUpper(strings.TrimSpace(s))); m {
	case "", entities.MethodologyNRM1, entities.MethodologyNRM2:
		return m, nil
	}
	return "", ErrInvalidMethodology
}

type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// RevisionRequest carries the fields a builder changes in a revision. Omitted
// fields keep the previous version's value.
type RevisionRequest struct {
	TotalPrice          *float64                      `json:"total_price"`
	Breakdown           []entities.BreakdownItem      `json:"breakdown"`
	Timeline            *entities.Timeline            `json:"timeline"`
	Warranty            *entities.Warranty            `json:"warranty"`
	Certifications      []entities.Certification      `json:"certifications"`
	Terms               *entities.Terms               `json:"terms"`
	ComplianceStatement *entities.ComplianceStatement `json:"compliance_statement"`
	Notes               *string                       `json:"notes"`
	ValidUntil          *time.Time                    `json:"valid_until"`
}

func (r RevisionRequest) ToUpdates() quoting.RevisionUpdates {
	return quoting.RevisionUpdates{
		TotalPrice:          r.TotalPrice,
		Breakdown:           r.Breakdown,
		Timeline:            r.Timeline,
		Warranty:            r.Warranty,
		Certifications:      r.Certifications,
		Terms:               r.Terms,
		ComplianceStatement: r.ComplianceStatement,
		Notes:               r.Notes,
		ValidUntil:          r.ValidUntil,
	}
}
