package interfaces

import (
	"context"

	"buildbid/internal/domain/entities"
)

// IScopeOfWorkRepository is a read-only view of scopes of work produced upstream.
type IScopeOfWorkRepository interface {
	GetByID(ctx context.Context, id string) (entities.ScopeOfWork, error)
}
