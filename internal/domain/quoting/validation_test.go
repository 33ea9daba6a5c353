package quoting

import (
	"math"
	"testing"

	"buildbid/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuote_ValidQuoteHasNoErrors(t *testing.T) {
	assert.Empty(t, ValidateQuote(validQuote(), testNow))
}

func TestValidateQuote_Invariants(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(q *entities.Quote)
		field  string
		code   ErrorCode
	}{
		{"missing sow", func(q *entities.Quote) { q.SoWID = " " }, "sowId", CodeRequiredField},
		{"missing builder", func(q *entities.Quote) { q.BuilderID = "" }, "builderId", CodeRequiredField},
		{"zero price", func(q *entities.Quote) { q.TotalPrice = 0 }, "totalPrice", CodeInvalidValue},
		{"missing methodology", func(q *entities.Quote) { q.Methodology = "" }, "methodology", CodeRequiredField},
		{"unknown methodology", func(q *entities.Quote) { q.Methodology = "RICS" }, "methodology", CodeInvalidValue},
		{"price beyond the sort key width", func(q *entities.Quote) { q.TotalPrice = entities.MaxTotalPrice }, "totalPrice", CodeInvalidValue},
		{"infinite price", func(q *entities.Quote) { q.TotalPrice = math.Inf(1) }, "totalPrice", CodeInvalidValue},
		{"breakdown off by more than 1%", func(q *entities.Quote) { q.TotalPrice = 10200 }, "breakdown", CodeCalculationError},
		{"zero duration", func(q *entities.Quote) { q.Timeline.TotalDuration = 0 }, "timeline.totalDuration", CodeInvalidValue},
		{"overlapping phases", func(q *entities.Quote) { q.Timeline.Phases[1].StartDay = 5 }, "timeline.phases", CodeTimelineConflict},
		{"no workmanship warranty", func(q *entities.Quote) { q.Warranty.Workmanship.DurationMonths = 0 }, "warranty.workmanshipWarranty.duration", CodeInvalidValue},
		{"valid until in the past", func(q *entities.Quote) { q.ValidUntil = testNow.Add(-1) }, "validUntil", CodeInvalidDate},
		{"valid until now", func(q *entities.Quote) { q.ValidUntil = testNow }, "validUntil", CodeInvalidDate},
		{"payment schedule short", func(q *entities.Quote) { q.Terms.PaymentSchedule[0].Percentage = 9 }, "terms.paymentSchedule", CodePaymentScheduleError},
		{"payment schedule empty", func(q *entities.Quote) { q.Terms.PaymentSchedule = nil }, "terms.paymentSchedule", CodePaymentScheduleError},
		{"negative labour cost", func(q *entities.Quote) { q.Breakdown[0].LabourCost = -800 }, "breakdown[0].labourCost", CodeInvalidValue},
		{"negative item total", func(q *entities.Quote) { q.Breakdown[1].TotalCost = -3000 }, "breakdown[1].totalCost", CodeInvalidValue},
		{"infinite material cost", func(q *entities.Quote) { q.Breakdown[2].MaterialCost = math.Inf(1) }, "breakdown[2].materialCost", CodeInvalidValue},
		{"nan equipment cost", func(q *entities.Quote) { q.Breakdown[3].EquipmentCost = math.NaN() }, "breakdown[3].equipmentCost", CodeInvalidValue},
		{"negative nested profit", func(q *entities.Quote) {
			q.Breakdown[4].SubItems = []entities.BreakdownItem{{Category: "site", ProfitPercent: -5}}
		}, "breakdown[4].subItems[0].profitPercent", CodeInvalidValue},
		{"direct costs overflow", func(q *entities.Quote) {
			q.Breakdown[0].LabourCost = 1e308
			q.Breakdown[1].LabourCost = 1e308
		}, "breakdown", CodeInvalidValue},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := validQuote()
			tc.mutate(&q)
			errs := ValidateQuote(q, testNow)
			require.NotEmpty(t, errs)
			found := false
			for _, e := range errs {
				if e.Field == tc.field && e.Code == tc.code {
					found = true
				}
			}
			assert.True(t, found, "expected %s on %s, got %+v", tc.code, tc.field, errs)
		})
	}
}

func TestValidateQuote_BreakdownWithinTolerance(t *testing.T) {
	q := validQuote()
	q.TotalPrice = 10099
	assert.NotContains(t, codesOf(ValidateQuote(q, testNow)), CodeCalculationError)
}

func TestValidateQuote_NestedItemsCountTowardsTotal(t *testing.T) {
	q := validQuote()
	q.Breakdown[4].SubItems = []entities.BreakdownItem{{Category: "site setup", TotalCost: 500}}
	q.TotalPrice = 10500
	assert.NotContains(t, codesOf(ValidateQuote(q, testNow)), CodeCalculationError)
}

func TestValidateQuote_PaymentScheduleTolerance(t *testing.T) {
	q := validQuote()
	q.Terms.PaymentSchedule[2].Percentage = 50.005
	assert.NotContains(t, codesOf(ValidateQuote(q, testNow)), CodePaymentScheduleError)
}

func TestValidateQuote_MissingNRM2Elements(t *testing.T) {
	q := validQuote()
	q.Breakdown = []entities.BreakdownItem{
		{Category: "substructure", TotalCost: 4000},
		{Category: "services", TotalCost: 4000},
		{Category: "preliminaries", TotalCost: 2000},
	}

	var nrm []ValidationError
	for _, e := range ValidateQuote(q, testNow) {
		if e.Code == CodeMissingNRM2Elements {
			nrm = append(nrm, e)
		}
	}
	require.Len(t, nrm, 1)
	assert.Equal(t, "breakdown", nrm[0].Field)
	assert.Contains(t, nrm[0].Message, "superstructure")
	assert.Contains(t, nrm[0].Message, "internal-finishes")
	assert.NotContains(t, nrm[0].Message, "substructure")
	assert.NotContains(t, nrm[0].Message, "preliminaries")
	assert.Equal(t, []string{"superstructure", "internal-finishes"}, MissingNRM2Categories(q.Breakdown))
}

func TestValidateQuote_NRM1SkipsCategoryCheck(t *testing.T) {
	q := validQuote()
	q.Methodology = entities.MethodologyNRM1
	q.Breakdown = []entities.BreakdownItem{{Category: "general", TotalCost: 10000}}
	assert.NotContains(t, codesOf(ValidateQuote(q, testNow)), CodeMissingNRM2Elements)
}

func TestValidateQuote_ReportsSimultaneousDefects(t *testing.T) {
	q := validQuote()
	q.TotalPrice = -1
	q.Timeline.TotalDuration = 0
	q.Warranty.Workmanship.DurationMonths = 0
	q.Terms.PaymentSchedule = nil

	codes := codesOf(ValidateQuote(q, testNow))
	assert.Contains(t, codes, CodeInvalidValue)
	assert.Contains(t, codes, CodeCalculationError)
	assert.Contains(t, codes, CodePaymentScheduleError)
	assert.GreaterOrEqual(t, len(codes), 5)
}

func TestValidateQuote_IsDeterministic(t *testing.T) {
	q := validQuote()
	q.TotalPrice = 0
	q.Terms.PaymentSchedule = nil
	assert.Equal(t, ValidateQuote(q, testNow), ValidateQuote(q, testNow))
}

func TestValidateQuote_RejectsDeepBreakdown(t *testing.T) {
	item := entities.BreakdownItem{Category: "leaf", TotalCost: 1}
	for i := 0; i < MaxBreakdownDepth; i++ {
		item = entities.BreakdownItem{Category: "branch", SubItems: []entities.BreakdownItem{item}}
	}
	q := validQuote()
	q.Breakdown = append(q.Breakdown, item)

	errs := ValidateQuote(q, testNow)
	require.NotEmpty(t, errs)
	assert.Equal(t, "breakdown", errs[0].Field)
	assert.Equal(t, CodeInvalidValue, errs[0].Code)
}

func TestPhaseConflicts(t *testing.T) {
	t.Run("adjacent overlap", func(t *testing.T) {
		conflicts := PhaseConflicts([]entities.Phase{
			{ID: "A", StartDay: 0, Duration: 5},
			{ID: "B", StartDay: 4, Duration: 3},
		})
		require.Len(t, conflicts, 1)
		assert.Equal(t, "B", conflicts[0].Phase)
		assert.Equal(t, "A", conflicts[0].Overlaps)
	})

	t.Run("non adjacent overlap", func(t *testing.T) {
		conflicts := PhaseConflicts([]entities.Phase{
			{ID: "A", StartDay: 0, Duration: 20},
			{ID: "C", StartDay: 4, Duration: 1},
			{ID: "B", StartDay: 2, Duration: 1},
			{ID: "D", StartDay: 20, Duration: 1},
		})
		ids := []string{}
		for _, c := range conflicts {
			ids = append(ids, c.Phase)
			assert.Equal(t, "A", c.Overlaps)
		}
		assert.Equal(t, []string{"B", "C"}, ids)
	})

	t.Run("touching phases do not conflict", func(t *testing.T) {
		assert.Empty(t, PhaseConflicts([]entities.Phase{
			{ID: "B", StartDay: 5, Duration: 3},
			{ID: "A", StartDay: 0, Duration: 5},
		}))
	})
}
