package quoting

import (
	"time"

	"buildbid/internal/domain/entities"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func validQuote() entities.Quote {
	q := entities.NewQuote("sow-1", "builder-1", entities.QuoteInput{
		TotalPrice: 10000,
		Currency:   "gbp",
		Breakdown: []entities.BreakdownItem{
			{Category: "substructure", TotalCost: 2000, LabourCost: 800, MaterialCost: 1000, EquipmentCost: 100, OverheadPercent: 10, ProfitPercent: 10},
			{Category: "superstructure", TotalCost: 3000, LabourCost: 1200, MaterialCost: 1500, EquipmentCost: 100, OverheadPercent: 10, ProfitPercent: 10},
			{Category: "internal-finishes", TotalCost: 2000, LabourCost: 1000, MaterialCost: 800, OverheadPercent: 10, ProfitPercent: 10},
			{Category: "services", TotalCost: 2000, LabourCost: 900, MaterialCost: 900, OverheadPercent: 10, ProfitPercent: 10},
			{Category: "preliminaries", TotalCost: 1000, LabourCost: 500, EquipmentCost: 300, OverheadPercent: 10, ProfitPercent: 10},
		},
		Timeline: entities.Timeline{
			TotalDuration: 30,
			Phases: []entities.Phase{
				{ID: "A", Name: "Groundworks", StartDay: 0, Duration: 10},
				{ID: "B", Name: "Frame", StartDay: 10, Duration: 10, Dependencies: []string{"A"}},
				{ID: "C", Name: "Fit out", StartDay: 20, Duration: 10, Dependencies: []string{"B"}},
			},
		},
		Warranty: entities.Warranty{
			Workmanship:     entities.WarrantyCover{DurationMonths: 24, Coverage: "All workmanship"},
			Materials:       entities.WarrantyCover{DurationMonths: 12, Coverage: "Manufacturer defects"},
			InsuranceBacked: true,
		},
		Certifications: []entities.Certification{{Name: "Gas Safe", Issuer: "Gas Safe Register"}},
		Terms: entities.Terms{PaymentSchedule: []entities.PaymentMilestone{
			{Milestone: "deposit", Percentage: 10, Trigger: "contract signed"},
			{Milestone: "frame", Percentage: 40, Trigger: "frame complete"},
			{Milestone: "completion", Percentage: 50, Trigger: "practical completion"},
		}},
		Methodology: entities.MethodologyNRM2,
		ComplianceStatement: entities.ComplianceStatement{
			RIBA:                entities.ComplianceItem{Compliant: true},
			NRM:                 entities.ComplianceItem{Compliant: true},
			NHBC:                entities.ComplianceItem{Compliant: true},
			RICS:                entities.ComplianceItem{Compliant: true},
			BuildingRegulations: entities.ComplianceItem{Compliant: true},
		},
		ValidUntil: testNow.Add(30 * 24 * time.Hour),
	}, testNow)
	return q
}

func codesOf(errs []ValidationError) []ErrorCode {
	out := make([]ErrorCode, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Code)
	}
	return out
}
