package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"buildbid/internal/domain/entities"
	"buildbid/internal/usecase/interfaces"
)

type builderClaim struct {
	QuoteID string `json:"quote_id"`
	Version int    `json:"version"`
}

// QuoteRepository stores quotes as documents and guards one quote per builder and
// scope of work with a claim document written in the same transaction.
type QuoteRepository struct {
	store interfaces.IDocumentStore
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(store interfaces.IDocumentStore) *QuoteRepository {
	return &QuoteRepository{store: store}
}

func (r *QuoteRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	return r.write(ctx, q, interfaces.TransactItem{IfAbsent: true})
}

// CreateRevision moves the claim only while it still holds the previous version,
// so two revisions of the same version cannot both be written.
func (r *QuoteRepository) CreateRevision(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	return r.write(ctx, q, interfaces.TransactItem{IfVersion: q.Version - 1})
}

func (r *QuoteRepository) write(ctx context.Context, q entities.Quote, claim interfaces.TransactItem) (entities.Quote, error) {
	quoteDoc, err := toQuoteDocument(q)
	if err != nil {
		return entities.Quote{}, err
	}
	claimBody, err := json.Marshal(builderClaim{QuoteID: q.ID, Version: q.Version})
	if err != nil {
		return entities.Quote{}, err
	}

	claim.Document = interfaces.Document{
		Key:     claimKey(q.SoWID, q.BuilderID),
		Type:    typeBuilderClaim,
		Version: q.Version,
		Body:    claimBody,
	}
	err = r.store.TransactPut(ctx, []interfaces.TransactItem{
		{Document: quoteDoc, IfAbsent: true},
		claim,
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	doc, err := toQuoteDocument(q)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := r.store.Put(ctx, doc); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	doc, err := r.store.Get(ctx, quoteKey(id))
	if err != nil {
		return entities.Quote{}, err
	}
	if doc.Key.PK == "" {
		return entities.Quote{}, nil
	}
	return fromQuoteDocument(doc)
}

// ListBySoW returns every stored version for the scope of work, cheapest first.
func (r *QuoteRepository) ListBySoW(ctx context.Context, sowID string) ([]entities.Quote, error) {
	docs, err := r.store.QueryByIndex(ctx, interfaces.IndexSoW, sowPrefix+sowID, quotePrefix)
	if err != nil {
		return nil, err
	}
	return fromQuoteDocuments(docs)
}

// ListByBuilder returns the builder's quotes, optionally narrowed to one status.
func (r *QuoteRepository) ListByBuilder(ctx context.Context, builderID string, status entities.QuoteStatus) ([]entities.Quote, error) {
	prefix := ""
	if status != "" {
		prefix = string(status) + "#"
	}
	docs, err := r.store.QueryByIndex(ctx, interfaces.IndexBuilder, builderPrefix+builderID, prefix)
	if err != nil {
		return nil, err
	}
	return fromQuoteDocuments(docs)
}

func toQuoteDocument(q entities.Quote) (interfaces.Document, error) {
	body, err := json.Marshal(q)
	if err != nil {
		return interfaces.Document{}, fmt.Errorf("marshal quote %s: %w", q.ID, err)
	}
	keys := entities.DeriveQuoteKeys(q)
	return interfaces.Document{
		Key:    quoteKey(q.ID),
		Type:   typeQuote,
		GSI1PK: sowPrefix + q.SoWID,
		GSI1SK: keys.SoWSortKey,
		GSI2PK: keys.BuilderKey,
		GSI2SK: keys.BuilderSortKey,
		Body:   body,
	}, nil
}

func fromQuoteDocument(doc interfaces.Document) (entities.Quote, error) {
	var q entities.Quote
	if err := decodeBody(doc, typeQuote, &q); err != nil {
		return entities.Quote{}, err
	}
	q.Keys = entities.DeriveQuoteKeys(q)
	return q, nil
}

func fromQuoteDocuments(docs []interfaces.Document) ([]entities.Quote, error) {
	quotes := make([]entities.Quote, 0, len(docs))
	for _, doc := range docs {
		q, err := fromQuoteDocument(doc)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}
