package entities

import "time"

// ScopeOfWork is the homeowner brief a quote responds to. It is produced upstream
// and only read by this service.
//
// Storage model (DynamoDB, single table):
//   - PK: SOW#<id>, SK: METADATA
type ScopeOfWork struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	HomeownerID string    `json:"homeowner_id"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
