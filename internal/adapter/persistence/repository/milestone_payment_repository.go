package repository

import (
	"context"
	"encoding/json"
	"time"

	"buildbid/internal/domain/entities"
	"buildbid/internal/usecase/interfaces"
)

type milestonePaymentItem struct {
	ID                 string                 `json:"id"`
	QuoteID            string                 `json:"quote_id"`
	Milestone          string                 `json:"milestone"`
	Percentage         float64                `json:"percentage"`
	Amount             float64                `json:"amount"`
	Currency           string                 `json:"currency"`
	Date               string                 `json:"date"`
	Status             string                 `json:"status"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
}

// MilestonePaymentRepository stores payments under the quote partition, one
// document per milestone.
type MilestonePaymentRepository struct {
	store interfaces.IDocumentStore
}

var _ interfaces.IMilestonePaymentRepository = (*MilestonePaymentRepository)(nil)

func NewMilestonePaymentRepository(store interfaces.IDocumentStore) *MilestonePaymentRepository {
	return &MilestonePaymentRepository{store: store}
}

func (r *MilestonePaymentRepository) Create(ctx context.Context, p entities.MilestonePayment) (entities.MilestonePayment, error) {
	body, err := json.Marshal(toMilestonePaymentItem(p))
	if err != nil {
		return entities.MilestonePayment{}, err
	}
	err = r.store.PutIfAbsent(ctx, interfaces.Document{
		Key:  interfaces.DocumentKey{PK: quotePrefix + p.QuoteID, SK: paymentPrefix + p.Milestone},
		Type: typePayment,
		Body: body,
	})
	if err != nil {
		return entities.MilestonePayment{}, err
	}
	return p, nil
}

func (r *MilestonePaymentRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.MilestonePayment, error) {
	docs, err := r.store.QueryByPartitionPrefix(ctx, quotePrefix+quoteID, paymentPrefix)
	if err != nil {
		return nil, err
	}
	items := make([]entities.MilestonePayment, 0, len(docs))
	for _, doc := range docs {
		var it milestonePaymentItem
		if err := decodeBody(doc, typePayment, &it); err != nil {
			return nil, err
		}
		items = append(items, fromMilestonePaymentItem(it))
	}
	return items, nil
}

func toMilestonePaymentItem(p entities.MilestonePayment) milestonePaymentItem {
	return milestonePaymentItem{
		ID:                 p.ID,
		QuoteID:            p.QuoteID,
		Milestone:          p.Milestone,
		Percentage:         p.Percentage,
		Amount:             p.Amount,
		Currency:           p.Currency,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromMilestonePaymentItem(it milestonePaymentItem) entities.MilestonePayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.MilestonePayment{
		ID:                 it.ID,
		QuoteID:            it.QuoteID,
		Milestone:          it.Milestone,
		Percentage:         it.Percentage,
		Amount:             it.Amount,
		Currency:           it.Currency,
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
