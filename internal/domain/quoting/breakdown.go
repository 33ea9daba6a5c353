package quoting

import (
	"fmt"
	"math"
	"strings"

	"buildbid/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// BreakdownTotals aggregates a cost breakdown tree.
type BreakdownTotals struct {
	TotalCost      float64 `json:"total_cost"`
	TotalLabour    float64 `json:"total_labour"`
	TotalMaterials float64 `json:"total_materials"`
	TotalEquipment float64 `json:"total_equipment"`
	TotalOverheads float64 `json:"total_overheads"`
	TotalProfit    float64 `json:"total_profit"`
}

// Margins are percentages rounded to two decimals.
type Margins struct {
	GrossMargin        float64 `json:"gross_margin"`
	NetMargin          float64 `json:"net_margin"`
	OverheadPercentage float64 `json:"overhead_percentage"`
	ProfitPercentage   float64 `json:"profit_percentage"`
}

// CalculateTotals walks the breakdown depth first and sums every node, branches
// included. Overhead and profit are derived per node from its own total cost.
func CalculateTotals(breakdown []entities.BreakdownItem) BreakdownTotals {
	var t BreakdownTotals
	accumulate(&t, breakdown)
	return t
}

func accumulate(t *BreakdownTotals, items []entities.BreakdownItem) {
	for _, item := range items {
		t.TotalCost += item.TotalCost
		t.TotalLabour += item.LabourCost
		t.TotalMaterials += item.MaterialCost
		t.TotalEquipment += item.EquipmentCost
		t.TotalOverheads += item.TotalCost * item.OverheadPercent / 100
		t.TotalProfit += item.TotalCost * item.ProfitPercent / 100
		if len(item.SubItems) > 0 {
			accumulate(t, item.SubItems)
		}
	}
}

// BreakdownDepth returns the nesting depth of the tree; a flat list has depth 1.
func BreakdownDepth(items []entities.BreakdownItem) int {
	if len(items) == 0 {
		return 0
	}
	deepest := 0
	for _, item := range items {
		if d := BreakdownDepth(item.SubItems); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// CalculateMargins derives gross/net margins against the quoted price and the
// overhead/profit share of the breakdown cost.
func CalculateMargins(q entities.Quote) Margins {
	t := CalculateTotals(q.Breakdown)
	direct := t.TotalLabour + t.TotalMaterials + t.TotalEquipment
	return Margins{
		GrossMargin:        Round2(percentOf(q.TotalPrice-direct, q.TotalPrice)),
		NetMargin:          Round2(percentOf(t.TotalProfit, q.TotalPrice)),
		OverheadPercentage: Round2(percentOf(t.TotalOverheads, t.TotalCost)),
		ProfitPercentage:   Round2(percentOf(t.TotalProfit, t.TotalCost)),
	}
}

// GenerateReference builds the display code QT-YYMM-XXXXXX from the submission
// month and the first six id characters. It is not a lookup key.
func GenerateReference(q entities.Quote) string {
	id := strings.ToUpper(strings.ReplaceAll(q.ID, "-", ""))
	if len(id) > 6 {
		id = id[:6]
	}
	return fmt.Sprintf("QT-%s-%s", q.SubmittedAt.UTC().Format("0601"), id)
}

// Round2 rounds half away from zero to two decimals. Non-finite input yields 0.
func Round2(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func percentOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}
