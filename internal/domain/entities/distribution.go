package entities

import "time"

// InvitationStatus tracks a builder's answer to a quote invitation.
//
// Transitions: invited -> quoted | declined. Answered slots are immutable.
type InvitationStatus string

const (
	InvitationStatusInvited  InvitationStatus = "invited"
	InvitationStatusQuoted   InvitationStatus = "quoted"
	InvitationStatusDeclined InvitationStatus = "declined"
)

const DefaultMaxQuotes = 5

// Distribution records which builders were asked to quote for a scope of work.
//
// Storage model (DynamoDB, single table):
//   - PK: SOW#<sow_id>, SK: DISTRIBUTION#<id>
type Distribution struct {
	ID          string               `json:"id"`
	SoWID       string               `json:"sow_id"`
	HomeownerID string               `json:"homeowner_id"`
	Responses   []BuilderResponse    `json:"responses"`
	Settings    DistributionSettings `json:"settings"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

type BuilderResponse struct {
	BuilderID   string           `json:"builder_id"`
	Status      InvitationStatus `json:"status"`
	QuoteID     string           `json:"quote_id,omitempty"`
	Reason      string           `json:"reason,omitempty"`
	InvitedAt   time.Time        `json:"invited_at"`
	RespondedAt *time.Time       `json:"responded_at,omitempty"`
}

type DistributionSettings struct {
	MaxQuotes             int       `json:"max_quotes"`
	ResponseDeadline      time.Time `json:"response_deadline"`
	AllowQuestions        bool      `json:"allow_questions"`
	RequireCertifications bool      `json:"require_certifications"`
	AnonymizeHomeowner    bool      `json:"anonymize_homeowner"`
}

// Response returns the slot for builderID, if the builder was invited.
func (d Distribution) Response(builderID string) (int, bool) {
	for i, r := range d.Responses {
		if r.BuilderID == builderID {
			return i, true
		}
	}
	return -1, false
}
