package usecase

import (
	"time"

	"buildbid/internal/domain/entities"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func validInput() entities.QuoteInput {
	return entities.QuoteInput{
		TotalPrice: 10000,
		Breakdown: []entities.BreakdownItem{
			{Category: "substructure", TotalCost: 2000, LabourCost: 800, MaterialCost: 1000, ProfitPercent: 10},
			{Category: "superstructure", TotalCost: 3000, LabourCost: 1200, MaterialCost: 1500, ProfitPercent: 10},
			{Category: "internal-finishes", TotalCost: 2000, LabourCost: 1000, MaterialCost: 800, ProfitPercent: 10},
			{Category: "services", TotalCost: 2000, LabourCost: 900, MaterialCost: 900, ProfitPercent: 10},
			{Category: "preliminaries", TotalCost: 1000, LabourCost: 500, ProfitPercent: 10},
		},
		Timeline: entities.Timeline{TotalDuration: 20, Phases: []entities.Phase{
			{ID: "A", Name: "Groundworks", StartDay: 0, Duration: 10},
			{ID: "B", Name: "Frame", StartDay: 10, Duration: 10, Dependencies: []string{"A"}},
		}},
		Warranty:       entities.Warranty{Workmanship: entities.WarrantyCover{DurationMonths: 12}},
		Certifications: []entities.Certification{{Name: "Gas Safe"}},
		Terms: entities.Terms{PaymentSchedule: []entities.PaymentMilestone{
			{Milestone: "deposit", Percentage: 25, Trigger: "contract signed"},
			{Milestone: "completion", Percentage: 75, Trigger: "handover"},
		}},
		Methodology: entities.MethodologyNRM2,
		ValidUntil:  testNow.Add(30 * 24 * time.Hour),
	}
}

func storedQuote(status entities.QuoteStatus) entities.Quote {
	q := entities.NewQuote("sow-1", "builder-1", validInput(), testNow.Add(-24*time.Hour))
	q.Status = status
	q.Keys = entities.DeriveQuoteKeys(q)
	return q
}
