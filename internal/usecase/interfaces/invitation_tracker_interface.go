package interfaces

import "context"

// IInvitationTracker records that an invited builder answered with a quote.
type IInvitationTracker interface {
	MarkQuoted(ctx context.Context, sowID, builderID, quoteID string) error
}
