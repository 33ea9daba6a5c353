package quoting

import (
	"fmt"
	"time"

	"buildbid/internal/domain/entities"
)

const (
	LowNetMarginThreshold = 5.0
	ExpiryWarningWindow   = 7 * 24 * time.Hour
)

// Warnings lists non-blocking concerns about a quote that passed validation.
func Warnings(q entities.Quote, now time.Time) []string {
	warnings := []string{}

	if m := CalculateMargins(q); m.NetMargin < LowNetMarginThreshold {
		warnings = append(warnings, fmt.Sprintf("Net margin of %.2f%% is below %.0f%%", m.NetMargin, LowNetMarginThreshold))
	}
	if !IsExpired(q, now) && q.ValidUntil.Sub(now) <= ExpiryWarningWindow {
		warnings = append(warnings, "Quote expires within 7 days")
	}
	if len(q.Certifications) == 0 {
		warnings = append(warnings, "No certifications provided")
	}
	if phases := len(q.Timeline.Phases); phases > 0 {
		if onPath := len(CriticalPath(q)); onPath < phases {
			warnings = append(warnings, fmt.Sprintf("Critical path covers %d of %d phases", onPath, phases))
		}
	}
	return warnings
}
