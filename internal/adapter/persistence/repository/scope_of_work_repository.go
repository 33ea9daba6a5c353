package repository

import (
	"context"
	"encoding/json"

	"buildbid/internal/domain/entities"
	"buildbid/internal/usecase/interfaces"
)

// ScopeOfWorkRepository reads scopes of work written by the upstream generator.
type ScopeOfWorkRepository struct {
	store interfaces.IDocumentStore
}

var _ interfaces.IScopeOfWorkRepository = (*ScopeOfWorkRepository)(nil)

func NewScopeOfWorkRepository(store interfaces.IDocumentStore) *ScopeOfWorkRepository {
	return &ScopeOfWorkRepository{store: store}
}

func (r *ScopeOfWorkRepository) GetByID(ctx context.Context, id string) (entities.ScopeOfWork, error) {
	doc, err := r.store.Get(ctx, sowKey(id))
	if err != nil {
		return entities.ScopeOfWork{}, err
	}
	if doc.Key.PK == "" {
		return entities.ScopeOfWork{}, nil
	}
	var sow entities.ScopeOfWork
	if err := decodeBody(doc, typeScopeOfWork, &sow); err != nil {
		return entities.ScopeOfWork{}, err
	}
	return sow, nil
}

// Save writes a scope of work in the layout the upstream generator uses.
func (r *ScopeOfWorkRepository) Save(ctx context.Context, sow entities.ScopeOfWork) error {
	body, err := json.Marshal(sow)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, interfaces.Document{Key: sowKey(sow.ID), Type: typeScopeOfWork, Body: body})
}
