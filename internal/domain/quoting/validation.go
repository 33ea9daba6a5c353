// Package quoting holds the pure quote rules: validation, cost breakdown and schedule
// analysis, lifecycle transitions and cross-quote comparison. Nothing here does I/O.
package quoting

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"buildbid/internal/domain/entities"
)

type ErrorCode string

const (
	CodeRequiredField        ErrorCode = "REQUIRED_FIELD"
	CodeInvalidValue         ErrorCode = "INVALID_VALUE"
	CodeCalculationError     ErrorCode = "CALCULATION_ERROR"
	CodeTimelineConflict     ErrorCode = "TIMELINE_CONFLICT"
	CodeMissingNRM2Elements  ErrorCode = "MISSING_NRM2_ELEMENTS"
	CodePaymentScheduleError ErrorCode = "PAYMENT_SCHEDULE_ERROR"
	CodeInvalidDate          ErrorCode = "INVALID_DATE"
)

// ValidationError is one field level defect of a quote.
type ValidationError struct {
	Field   string    `json:"field"`
	Message string    `json:"message"`
	Code    ErrorCode `json:"code"`
}

const (
	// BreakdownTolerance is the accepted relative gap between the breakdown sum and the total price.
	BreakdownTolerance = 0.01
	// PaymentScheduleTolerance is the accepted gap, in percentage points, from 100.
	PaymentScheduleTolerance = 0.01
	// MaxBreakdownDepth bounds the nesting of breakdown sub-items.
	MaxBreakdownDepth = 8
)

// NRM2Categories are the breakdown categories an NRM2 quote must cover.
var NRM2Categories = []string{"substructure", "superstructure", "internal-finishes", "services", "preliminaries"}

// ValidateQuote checks every quote invariant and returns all defects found.
// Checks are independent; now is the reference instant for date checks.
func ValidateQuote(q entities.Quote, now time.Time) []ValidationError {
	errs := make([]ValidationError, 0)
	errs = append(errs, checkIdentity(q)...)
	errs = append(errs, checkPrice(q)...)
	errs = append(errs, checkBreakdown(q)...)
	errs = append(errs, checkTimeline(q)...)
	errs = append(errs, checkWarranty(q)...)
	errs = append(errs, checkValidity(q, now)...)
	errs = append(errs, checkMethodology(q)...)
	errs = append(errs, checkNRM2(q)...)
	errs = append(errs, checkPaymentSchedule(q)...)
	return errs
}

func checkIdentity(q entities.Quote) []ValidationError {
	var errs []ValidationError
	if strings.TrimSpace(q.SoWID) == "" {
		errs = append(errs, ValidationError{Field: "sowId", Message: "Scope of work is required", Code: CodeRequiredField})
	}
	if strings.TrimSpace(q.BuilderID) == "" {
		errs = append(errs, ValidationError{Field: "builderId", Message: "Builder is required", Code: CodeRequiredField})
	}
	if len(q.Breakdown) == 0 {
		errs = append(errs, ValidationError{Field: "breakdown", Message: "Cost breakdown is required", Code: CodeRequiredField})
	}
	return errs
}

func checkPrice(q entities.Quote) []ValidationError {
	switch {
	case !(q.TotalPrice > 0):
		return []ValidationError{{Field: "totalPrice", Message: "Total price must be greater than zero", Code: CodeInvalidValue}}
	case q.TotalPrice >= entities.MaxTotalPrice:
		return []ValidationError{{
			Field:   "totalPrice",
			Message: fmt.Sprintf("Total price must be below %.0f", entities.MaxTotalPrice),
			Code:    CodeInvalidValue,
		}}
	}
	return nil
}

func checkBreakdown(q entities.Quote) []ValidationError {
	var errs []ValidationError
	if depth := BreakdownDepth(q.Breakdown); depth > MaxBreakdownDepth {
		errs = append(errs, ValidationError{
			Field:   "breakdown",
			Message: fmt.Sprintf("Breakdown nesting depth %d exceeds the maximum of %d", depth, MaxBreakdownDepth),
			Code:    CodeInvalidValue,
		})
		return errs
	}
	if errs = checkCostValues(q.Breakdown, "breakdown"); len(errs) > 0 {
		return errs
	}
	totals := CalculateTotals(q.Breakdown)
	direct := totals.TotalLabour + totals.TotalMaterials + totals.TotalEquipment
	if !finite(totals.TotalCost, direct, totals.TotalOverheads, totals.TotalProfit) {
		return []ValidationError{{Field: "breakdown", Message: "Breakdown costs are out of range", Code: CodeInvalidValue}}
	}
	sum := totals.TotalCost
	if math.Abs(sum-q.TotalPrice) > math.Abs(q.TotalPrice)*BreakdownTolerance {
		errs = append(errs, ValidationError{
			Field:   "breakdown",
			Message: fmt.Sprintf("Breakdown total %.2f does not match total price %.2f (tolerance 1%%)", sum, q.TotalPrice),
			Code:    CodeCalculationError,
		})
	}
	return errs
}

// checkCostValues rejects negative or non-finite costs and percentages at any depth.
func checkCostValues(items []entities.BreakdownItem, path string) []ValidationError {
	var errs []ValidationError
	for i, item := range items {
		prefix := fmt.Sprintf("%s[%d]", path, i)
		for _, f := range []struct {
			name  string
			value float64
		}{
			{"totalCost", item.TotalCost},
			{"labourCost", item.LabourCost},
			{"materialCost", item.MaterialCost},
			{"equipmentCost", item.EquipmentCost},
			{"overheadPercent", item.OverheadPercent},
			{"profitPercent", item.ProfitPercent},
		} {
			if f.value < 0 || !finite(f.value) {
				errs = append(errs, ValidationError{
					Field:   prefix + "." + f.name,
					Message: fmt.Sprintf("%s must be a finite, non-negative number", f.name),
					Code:    CodeInvalidValue,
				})
			}
		}
		errs = append(errs, checkCostValues(item.SubItems, prefix+".subItems")...)
	}
	return errs
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

func checkTimeline(q entities.Quote) []ValidationError {
	var errs []ValidationError
	if q.Timeline.TotalDuration <= 0 {
		errs = append(errs, ValidationError{Field: "timeline.totalDuration", Message: "Total duration must be greater than zero", Code: CodeInvalidValue})
	}
	for _, c := range PhaseConflicts(q.Timeline.Phases) {
		errs = append(errs, ValidationError{
			Field:   "timeline.phases",
			Message: fmt.Sprintf("Phase %q starts on day %d before phase %q ends on day %d", c.Phase, c.Start, c.Overlaps, c.OverlapEnd),
			Code:    CodeTimelineConflict,
		})
	}
	return errs
}

// PhaseConflict describes a phase starting before an earlier phase has finished.
type PhaseConflict struct {
	Phase      string
	Start      int
	Overlaps   string
	OverlapEnd int
}

// PhaseConflicts sorts phases by start day and reports every phase that starts before
// the latest end of all phases preceding it. This includes the adjacent-pair case and
// overlaps with non-adjacent earlier phases.
func PhaseConflicts(phases []entities.Phase) []PhaseConflict {
	if len(phases) < 2 {
		return nil
	}
	sorted := sortedByStart(phases)
	var conflicts []PhaseConflict
	latest := sorted[0]
	for _, p := range sorted[1:] {
		if p.StartDay < latest.EndDay() {
			conflicts = append(conflicts, PhaseConflict{Phase: p.ID, Start: p.StartDay, Overlaps: latest.ID, OverlapEnd: latest.EndDay()})
		}
		if p.EndDay() > latest.EndDay() {
			latest = p
		}
	}
	return conflicts
}

func checkWarranty(q entities.Quote) []ValidationError {
	if q.Warranty.Workmanship.DurationMonths > 0 {
		return nil
	}
	return []ValidationError{{Field: "warranty.workmanshipWarranty.duration", Message: "Workmanship warranty duration must be greater than zero", Code: CodeInvalidValue}}
}

func checkValidity(q entities.Quote, now time.Time) []ValidationError {
	if q.ValidUntil.After(now) {
		return nil
	}
	return []ValidationError{{Field: "validUntil", Message: "Valid until date must be in the future", Code: CodeInvalidDate}}
}

func checkMethodology(q entities.Quote) []ValidationError {
	switch q.Methodology {
	case entities.MethodologyNRM1, entities.MethodologyNRM2:
		return nil
	case "":
		return []ValidationError{{Field: "methodology", Message: "Methodology is required", Code: CodeRequiredField}}
	}
	return []ValidationError{{Field: "methodology", Message: "Methodology must be NRM1 or NRM2", Code: CodeInvalidValue}}
}

func checkNRM2(q entities.Quote) []ValidationError {
	if q.Methodology != entities.MethodologyNRM2 {
		return nil
	}
	missing := MissingNRM2Categories(q.Breakdown)
	if len(missing) == 0 {
		return nil
	}
	return []ValidationError{{
		Field:   "breakdown",
		Message: "Missing required NRM2 elements: " + strings.Join(missing, ", "),
		Code:    CodeMissingNRM2Elements,
	}}
}

// MissingNRM2Categories lists, in canonical order, the NRM2 categories absent from
// the top level of the breakdown.
func MissingNRM2Categories(breakdown []entities.BreakdownItem) []string {
	present := make(map[string]struct{}, len(breakdown))
	for _, item := range breakdown {
		present[strings.ToLower(strings.TrimSpace(item.Category))] = struct{}{}
	}
	var missing []string
	for _, c := range NRM2Categories {
		if _, ok := present[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

func checkPaymentSchedule(q entities.Quote) []ValidationError {
	total := 0.0
	for _, m := range q.Terms.PaymentSchedule {
		total += m.Percentage
	}
	if math.Abs(total-100) <= PaymentScheduleTolerance {
		return nil
	}
	return []ValidationError{{
		Field:   "terms.paymentSchedule",
		Message: fmt.Sprintf("Payment schedule percentages must total 100%%, got %.2f%%", total),
		Code:    CodePaymentScheduleError,
	}}
}

func sortedByStart(phases []entities.Phase) []entities.Phase {
	sorted := make([]entities.Phase, len(phases))
	copy(sorted, phases)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].StartDay < sorted[j].StartDay })
	return sorted
}
