package response

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"buildbid/internal/domain/entities"
	"buildbid/internal/domain/quoting"
	"buildbid/pkg"
)

func TestFromQuote(t *testing.T) {
	submitted := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	q := entities.Quote{
		ID:          "abcdef12-3456",
		SoWID:       "sow-1",
		Status:      entities.QuoteStatusSubmitted,
		SubmittedAt: submitted,
		ValidUntil:  submitted.Add(24 * time.Hour),
		Keys:        entities.QuoteKeys{SoWSortKey: "QUOTE#x"},
	}

	res := FromQuote(q, submitted.Add(48*time.Hour))
	if res.Reference != "QT-2603-ABCDEF" {
		t.Fatalf("unexpected reference: %s", res.Reference)
	}
	if res.EffectiveStatus != entities.QuoteStatusExpired || res.Status != entities.QuoteStatusSubmitted {
		t.Fatalf("unexpected statuses: stored=%s effective=%s", res.Status, res.EffectiveStatus)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(b, &body); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if body["id"] != "abcdef12-3456" || body["effective_status"] != "expired" {
		t.Fatalf("unexpected body: %s", b)
	}
	if _, ok := body["Keys"]; ok {
		t.Fatalf("repository keys must not be rendered: %s", b)
	}
}

func TestFromDistribution(t *testing.T) {
	d := entities.Distribution{ID: "d-1", Responses: []entities.BuilderResponse{
		{BuilderID: "b1", Status: entities.InvitationStatusInvited},
		{BuilderID: "b2", Status: entities.InvitationStatusQuoted},
		{BuilderID: "b3", Status: entities.InvitationStatusQuoted},
		{BuilderID: "b4", Status: entities.InvitationStatusDeclined},
	}}
	res := FromDistribution(d)
	if res.Invited != 1 || res.Quoted != 2 || res.Declined != 1 || res.ID != "d-1" {
		t.Fatalf("unexpected counts: %+v", res)
	}
}

func TestFromMilestonePayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.MilestonePayment{
		ID:                 "pay-1",
		QuoteID:            "q-1",
		Milestone:          "deposit",
		Percentage:         25,
		Amount:             2500,
		Currency:           "GBP",
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: json.RawMessage(`{"id":123}`),
		ProviderPayload:    map[string]interface{}{"a": "b"},
	}

	res := FromMilestonePayment(p)
	if res.PaymentID != "pay-1" || res.QuoteID != "q-1" || res.Milestone != "deposit" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Amount != 2500 || res.Status != "approved" || !res.Date.Equal(now) {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.MPPayloadRaw != `{"id":123}` || res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected payloads: %+v", res)
	}
	if got := FromMilestonePayments(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestEnvelope(t *testing.T) {
	b, _ := json.Marshal(OK(map[string]string{"k": "v"}))
	if string(b) != `{"success":true,"data":{"k":"v"}}` {
		t.Fatalf("unexpected ok envelope: %s", b)
	}

	b, _ = json.Marshal(Failure(pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)))
	if string(b) != `{"success":false,"error":{"code":"QUOTE_NOT_FOUND","message":"Quote not found"}}` {
		t.Fatalf("unexpected failure envelope: %s", b)
	}

	env := ValidationFailure([]quoting.ValidationError{{Field: "totalPrice", Message: "Total price must be greater than zero", Code: quoting.CodeInvalidValue}})
	if env.Error.Code != "VALIDATION_FAILED" || len(env.ValidationErrors) != 1 || env.ValidationErrors[0].Code != quoting.CodeInvalidValue {
		t.Fatalf("unexpected validation envelope: %+v", env)
	}
}
