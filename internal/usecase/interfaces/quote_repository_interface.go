package interfaces

import (
	"context"

	"buildbid/internal/domain/entities"
)

// IQuoteRepository persists quotes and the one-quote-per-builder claim of a scope of work.
//
// The quote service must be able to:
//   - insert a first version atomically with the builder claim (ErrConditionFailed on a duplicate)
//   - insert a revision and move the claim to it, only while the claim holds the previous
//     version (ErrConditionFailed when another revision got there first)
//   - list quotes per scope of work (price order) and per builder (status order)
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	CreateRevision(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListBySoW(ctx context.Context, sowID string) ([]entities.Quote, error)
	ListByBuilder(ctx context.Context, builderID string, status entities.QuoteStatus) ([]entities.Quote, error)
}
