package quoting

import (
	"errors"
	"fmt"
	"time"

	"buildbid/internal/domain/entities"

	"github.com/google/uuid"
)

var ErrInvalidStatusTransition = errors.New("invalid quote status transition")

// transitions is the legal next-status table. selected and withdrawn are terminal.
var transitions = map[entities.QuoteStatus][]entities.QuoteStatus{
	entities.QuoteStatusDraft: {
		entities.QuoteStatusSubmitted,
	},
	entities.QuoteStatusSubmitted: {
		entities.QuoteStatusUnderReview,
		entities.QuoteStatusClarificationRequested,
		entities.QuoteStatusWithdrawn,
	},
	entities.QuoteStatusUnderReview: {
		entities.QuoteStatusClarificationRequested,
		entities.QuoteStatusSelected,
		entities.QuoteStatusWithdrawn,
	},
	entities.QuoteStatusClarificationRequested: {
		entities.QuoteStatusUnderReview,
		entities.QuoteStatusRevised,
		entities.QuoteStatusWithdrawn,
	},
	entities.QuoteStatusRevised: {
		entities.QuoteStatusUnderReview,
		entities.QuoteStatusClarificationRequested,
		entities.QuoteStatusSelected,
		entities.QuoteStatusWithdrawn,
	},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to entities.QuoteStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateStatus returns a copy of q with the new status and a re-derived builder sort key.
func UpdateStatus(q entities.Quote, status entities.QuoteStatus, now time.Time) (entities.Quote, error) {
	if !CanTransition(q.Status, status) {
		return entities.Quote{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, q.Status, status)
	}
	out := q
	out.Status = status
	out.UpdatedAt = now.UTC()
	out.Keys = entities.DeriveQuoteKeys(out)
	return out, nil
}

// RevisionUpdates holds the fields a builder may change in a revision. Nil fields
// are carried over from the previous version.
type RevisionUpdates struct {
	TotalPrice          *float64
	Breakdown           []entities.BreakdownItem
	Timeline            *entities.Timeline
	Warranty            *entities.Warranty
	Certifications      []entities.Certification
	Terms               *entities.Terms
	ComplianceStatement *entities.ComplianceStatement
	Notes               *string
	ValidUntil          *time.Time
}

// CreateRevision produces the next version of q as a new record. The previous
// version is left untouched.
func CreateRevision(q entities.Quote, u RevisionUpdates, now time.Time) entities.Quote {
	out := q
	out.ID = uuid.NewString()
	out.Version = q.Version + 1
	out.Status = entities.QuoteStatusRevised
	out.UpdatedAt = now.UTC()

	if u.TotalPrice != nil {
		out.TotalPrice = *u.TotalPrice
	}
	if u.Breakdown != nil {
		out.Breakdown = u.Breakdown
	}
	if u.Timeline != nil {
		out.Timeline = *u.Timeline
	}
	if u.Warranty != nil {
		out.Warranty = *u.Warranty
	}
	if u.Certifications != nil {
		out.Certifications = u.Certifications
	}
	if u.Terms != nil {
		out.Terms = *u.Terms
	}
	if u.ComplianceStatement != nil {
		out.ComplianceStatement = *u.ComplianceStatement
	}
	if u.Notes != nil {
		out.Notes = *u.Notes
	}
	if u.ValidUntil != nil {
		out.ValidUntil = u.ValidUntil.UTC()
	}
	out.Keys = entities.DeriveQuoteKeys(out)
	return out
}

// IsExpired reports whether the quote's validity has lapsed; the boundary counts as expired.
func IsExpired(q entities.Quote, now time.Time) bool {
	return !q.ValidUntil.After(now)
}

func CanBeModified(q entities.Quote, now time.Time) bool {
	switch q.Status {
	case entities.QuoteStatusDraft, entities.QuoteStatusClarificationRequested:
		return !IsExpired(q, now)
	}
	return false
}

func CanBeWithdrawn(q entities.Quote, now time.Time) bool {
	switch q.Status {
	case entities.QuoteStatusSubmitted, entities.QuoteStatusUnderReview,
		entities.QuoteStatusClarificationRequested, entities.QuoteStatusRevised:
		return !IsExpired(q, now)
	}
	return false
}

// EffectiveStatus overlays expired on any non-terminal stored status.
func EffectiveStatus(q entities.Quote, now time.Time) entities.QuoteStatus {
	switch q.Status {
	case entities.QuoteStatusSelected, entities.QuoteStatusWithdrawn:
		return q.Status
	}
	if IsExpired(q, now) {
		return entities.QuoteStatusExpired
	}
	return q.Status
}
