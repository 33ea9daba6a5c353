package interfaces

import "buildbid/internal/domain/entities"

// Submission and comparison outcomes reported to IMetricsRecorder.
const (
	OutcomeAccepted  = "accepted"
	OutcomeRejected  = "rejected"
	OutcomeDuplicate = "duplicate"
	OutcomeNotFound  = "not_found"
	OutcomeEmpty     = "empty"
	OutcomeError     = "error"
)

type IMetricsRecorder interface {
	QuoteSubmitted(outcome string)
	QuoteStatusChanged(from, to entities.QuoteStatus)
	QuotesCompared(outcome string, quotes int)
}
