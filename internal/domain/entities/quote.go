package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// QuoteStatus represents the lifecycle of a builder quote.
//
// Domain notes:
//   - expired is never stored; it is an overlay computed from ValidUntil on read.
//   - selected and withdrawn are terminal.
type QuoteStatus string

const (
	QuoteStatusDraft                  QuoteStatus = "draft"
	QuoteStatusSubmitted              QuoteStatus = "submitted"
	QuoteStatusUnderReview            QuoteStatus = "under-review"
	QuoteStatusClarificationRequested QuoteStatus = "clarification-requested"
	QuoteStatusRevised                QuoteStatus = "revised"
	QuoteStatusSelected               QuoteStatus = "selected"
	QuoteStatusWithdrawn              QuoteStatus = "withdrawn"
	QuoteStatusExpired                QuoteStatus = "expired"
)

// ParseQuoteStatus accepts the stored status values only; expired is rejected.
func ParseQuoteStatus(s string) (QuoteStatus, bool) {
	switch st := QuoteStatus(strings.TrimSpace(strings.ToLower(s))); st {
	case QuoteStatusDraft, QuoteStatusSubmitted, QuoteStatusUnderReview,
		QuoteStatusClarificationRequested, QuoteStatusRevised,
		QuoteStatusSelected, QuoteStatusWithdrawn:
		return st, true
	}
	return "", false
}

// Methodology is the cost breakdown classification used by the builder.
type Methodology string

const (
	MethodologyNRM1 Methodology = "NRM1"
	MethodologyNRM2 Methodology = "NRM2"
)

const DefaultCurrency = "GBP"

// Quote is a builder's priced response to a scope of work.
//
// Storage model (DynamoDB, single table):
//   - PK: QUOTE#<id>, SK: METADATA
//   - GSI1 (sow-index): SOW#<sow_id> / QUOTE#<padded price>#<id>
//   - GSI2 (builder-index): BUILDER#<builder_id> / <status>#<submitted_at>
//
// A revision is a new Quote (new ID, Version+1); earlier versions stay untouched.
type Quote struct {
	ID        string `json:"id"`
	SoWID     string `json:"sow_id"`
	BuilderID string `json:"builder_id"`
	Version   int    `json:"version"`

	TotalPrice float64         `json:"total_price"`
	Currency   string          `json:"currency"`
	Breakdown  []BreakdownItem `json:"breakdown"`

	Timeline Timeline `json:"timeline"`

	Warranty       Warranty        `json:"warranty"`
	Certifications []Certification `json:"certifications"`
	Terms          Terms           `json:"terms"`

	Methodology         Methodology         `json:"methodology"`
	ComplianceStatement ComplianceStatement `json:"compliance_statement"`

	Notes string `json:"notes,omitempty"`

	Status      QuoteStatus `json:"status"`
	ValidUntil  time.Time   `json:"valid_until"`
	SubmittedAt time.Time   `json:"submitted_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	Keys QuoteKeys `json:"-"`
}

// QuoteKeys are repository sort keys derived from the quote. They carry no domain meaning.
type QuoteKeys struct {
	SoWSortKey     string
	BuilderKey     string
	BuilderSortKey string
}

// BreakdownItem is one node of the cost breakdown tree.
type BreakdownItem struct {
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	Quantity        float64         `json:"quantity"`
	Unit            string          `json:"unit"`
	UnitRate        float64         `json:"unit_rate"`
	TotalCost       float64         `json:"total_cost"`
	LabourCost      float64         `json:"labour_cost"`
	MaterialCost    float64         `json:"material_cost"`
	EquipmentCost   float64         `json:"equipment_cost"`
	OverheadPercent float64         `json:"overhead_percentage"`
	ProfitPercent   float64         `json:"profit_percentage"`
	SubItems        []BreakdownItem `json:"sub_items,omitempty"`
}

type Timeline struct {
	TotalDuration int     `json:"total_duration"`
	Phases        []Phase `json:"phases"`
}

// Phase is a scheduled block of work. StartDay is an offset in days from project start.
type Phase struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	StartDay     int          `json:"start_day"`
	Duration     int          `json:"duration"`
	Dependencies []string     `json:"dependencies,omitempty"`
	Resources    ResourceList `json:"resources,omitempty"`
	Milestones   []Milestone  `json:"milestones,omitempty"`
}

func (p Phase) EndDay() int {
	return p.StartDay + p.Duration
}

type Milestone struct {
	Name        string `json:"name"`
	Day         int    `json:"day"`
	Deliverable string `json:"deliverable,omitempty"`
}

type WarrantyCover struct {
	DurationMonths int    `json:"duration_months"`
	Coverage       string `json:"coverage"`
}

type Warranty struct {
	Workmanship       WarrantyCover `json:"workmanship_warranty"`
	Materials         WarrantyCover `json:"materials_warranty"`
	InsuranceBacked   bool          `json:"insurance_backed"`
	InsuranceProvider string        `json:"insurance_provider,omitempty"`
}

type Certification struct {
	Name      string     `json:"name"`
	Issuer    string     `json:"issuer"`
	Number    string     `json:"number,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type PaymentMilestone struct {
	Milestone  string  `json:"milestone"`
	Percentage float64 `json:"percentage"`
	Trigger    string  `json:"trigger"`
}

type Terms struct {
	PaymentSchedule     []PaymentMilestone `json:"payment_schedule"`
	RetentionPercentage float64            `json:"retention_percentage,omitempty"`
	VariationPolicy     string             `json:"variation_policy,omitempty"`
}

type ComplianceItem struct {
	Compliant bool   `json:"compliant"`
	Notes     string `json:"notes,omitempty"`
}

// ComplianceStatement records the builder's declared compliance per standards body.
type ComplianceStatement struct {
	RIBA                ComplianceItem `json:"riba"`
	NRM                 ComplianceItem `json:"nrm"`
	NHBC                ComplianceItem `json:"nhbc"`
	RICS                ComplianceItem `json:"rics"`
	BuildingRegulations ComplianceItem `json:"building_regulations"`
}

// QuoteInput is the builder supplied part of a quote.
type QuoteInput struct {
	TotalPrice          float64
	Currency            string
	Breakdown           []BreakdownItem
	Timeline            Timeline
	Warranty            Warranty
	Certifications      []Certification
	Terms               Terms
	Methodology         Methodology
	ComplianceStatement ComplianceStatement
	Notes               string
	ValidUntil          time.Time
}

// NewQuote creates a draft quote. It does not validate.
func NewQuote(sowID, builderID string, in QuoteInput, now time.Time) Quote {
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	now = now.UTC()
	q := Quote{
		ID:                  uuid.NewString(),
		SoWID:               strings.TrimSpace(sowID),
		BuilderID:           strings.TrimSpace(builderID),
		Version:             1,
		TotalPrice:          in.TotalPrice,
		Currency:            currency,
		Breakdown:           in.Breakdown,
		Timeline:            in.Timeline,
		Warranty:            in.Warranty,
		Certifications:      in.Certifications,
		Terms:               in.Terms,
		Methodology:         in.Methodology,
		ComplianceStatement: in.ComplianceStatement,
		Notes:               in.Notes,
		Status:              QuoteStatusDraft,
		ValidUntil:          in.ValidUntil.UTC(),
		SubmittedAt:         now,
		UpdatedAt:           now,
	}
	q.Keys = DeriveQuoteKeys(q)
	return q
}

// MaxTotalPrice is the exclusive upper bound of a quote price. Prices below it fit
// the fixed-width sort key of the SoW index.
const MaxTotalPrice = 1e12

// DeriveQuoteKeys computes the repository sort keys for q.
//
// The price is zero padded so lexical order on the SoW index equals numeric order
// for every price below MaxTotalPrice.
func DeriveQuoteKeys(q Quote) QuoteKeys {
	return QuoteKeys{
		SoWSortKey:     fmt.Sprintf("QUOTE#%015.2f#%s", q.TotalPrice, q.ID),
		BuilderKey:     "BUILDER#" + q.BuilderID,
		BuilderSortKey: string(q.Status) + "#" + q.SubmittedAt.UTC().Format(time.RFC3339Nano),
	}
}
