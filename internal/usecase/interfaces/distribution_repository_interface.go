package interfaces

import (
	"context"

	"buildbid/internal/domain/entities"
)

type IDistributionRepository interface {
	Create(ctx context.Context, d entities.Distribution) (entities.Distribution, error)
	Update(ctx context.Context, d entities.Distribution) (entities.Distribution, error)
	ListBySoW(ctx context.Context, sowID string) ([]entities.Distribution, error)
}
