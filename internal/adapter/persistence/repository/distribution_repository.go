package repository

import (
	"context"
	"encoding/json"

	"buildbid/internal/domain/entities"
	"buildbid/internal/usecase/interfaces"
)

// DistributionRepository keeps distributions under their scope of work partition.
type DistributionRepository struct {
	store interfaces.IDocumentStore
}

var _ interfaces.IDistributionRepository = (*DistributionRepository)(nil)

func NewDistributionRepository(store interfaces.IDocumentStore) *DistributionRepository {
	return &DistributionRepository{store: store}
}

func (r *DistributionRepository) Create(ctx context.Context, d entities.Distribution) (entities.Distribution, error) {
	doc, err := toDistributionDocument(d)
	if err != nil {
		return entities.Distribution{}, err
	}
	if err := r.store.PutIfAbsent(ctx, doc); err != nil {
		return entities.Distribution{}, err
	}
	return d, nil
}

func (r *DistributionRepository) Update(ctx context.Context, d entities.Distribution) (entities.Distribution, error) {
	doc, err := toDistributionDocument(d)
	if err != nil {
		return entities.Distribution{}, err
	}
	if err := r.store.Put(ctx, doc); err != nil {
		return entities.Distribution{}, err
	}
	return d, nil
}

func (r *DistributionRepository) ListBySoW(ctx context.Context, sowID string) ([]entities.Distribution, error) {
	docs, err := r.store.QueryByPartitionPrefix(ctx, sowPrefix+sowID, distributionPrefix)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Distribution, 0, len(docs))
	for _, doc := range docs {
		var d entities.Distribution
		if err := decodeBody(doc, typeDistribution, &d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func toDistributionDocument(d entities.Distribution) (interfaces.Document, error) {
	body, err := json.Marshal(d)
	if err != nil {
		return interfaces.Document{}, err
	}
	return interfaces.Document{
		Key:  interfaces.DocumentKey{PK: sowPrefix + d.SoWID, SK: distributionPrefix + d.ID},
		Type: typeDistribution,
		Body: body,
	}, nil
}
