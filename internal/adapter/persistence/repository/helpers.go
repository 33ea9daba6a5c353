package repository

import (
	"encoding/json"
	"fmt"

	"buildbid/internal/usecase/interfaces"
)

// Document types and key layout of the single table.
const (
	typeQuote        = "quote"
	typeBuilderClaim = "builder_claim"
	typeScopeOfWork  = "scope_of_work"
	typeDistribution = "distribution"
	typePayment      = "milestone_payment"

	metadataSK         = "METADATA"
	quotePrefix        = "QUOTE#"
	sowPrefix          = "SOW#"
	builderPrefix      = "BUILDER#"
	distributionPrefix = "DISTRIBUTION#"
	paymentPrefix      = "PAYMENT#"
)

func quoteKey(id string) interfaces.DocumentKey {
	return interfaces.DocumentKey{PK: quotePrefix + id, SK: metadataSK}
}

func sowKey(id string) interfaces.DocumentKey {
	return interfaces.DocumentKey{PK: sowPrefix + id, SK: metadataSK}
}

// claimKey marks that a builder holds a quote on a scope of work.
func claimKey(sowID, builderID string) interfaces.DocumentKey {
	return interfaces.DocumentKey{PK: sowPrefix + sowID, SK: builderPrefix + builderID}
}

func decodeBody(doc interfaces.Document, wantType string, v any) error {
	if doc.Type != wantType {
		return fmt.Errorf("document %s/%s has type %q, want %q", doc.Key.PK, doc.Key.SK, doc.Type, wantType)
	}
	return json.Unmarshal(doc.Body, v)
}
