package interfaces

import (
	"context"

	"buildbid/internal/domain/entities"
)

// IMilestonePaymentRepository stores one payment per quote milestone.
// Create returns ErrConditionFailed when the milestone was already paid.
type IMilestonePaymentRepository interface {
	Create(ctx context.Context, p entities.MilestonePayment) (entities.MilestonePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.MilestonePayment, error)
}
