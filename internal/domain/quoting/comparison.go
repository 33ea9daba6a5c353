package quoting

import (
	"fmt"
	"sort"
	"time"

	"buildbid/internal/domain/entities"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type RecommendationType string

const (
	RecommendationBestValue   RecommendationType = "best-value"
	RecommendationLowestPrice RecommendationType = "lowest-price"
	RecommendationFastest     RecommendationType = "fastest"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

const (
	// pointsPerStandard is awarded for each declared standards-body compliance.
	pointsPerStandard = 20
	// belowAverageRatio flags prices or durations under 80% of the average.
	belowAverageRatio = 0.8
)

type Range struct {
	Lowest  float64 `json:"lowest"`
	Highest float64 `json:"highest"`
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
}

type WarrantyRanges struct {
	Workmanship Range `json:"workmanship"`
	Materials   Range `json:"materials"`
}

type ComparisonMetrics struct {
	PriceRange           Range          `json:"price_range"`
	TimelineRange        Range          `json:"timeline_range"`
	ComplianceRange      Range          `json:"compliance_range"`
	WarrantyRange        WarrantyRanges `json:"warranty_range"`
	InsuranceBackedCount int            `json:"insurance_backed_count"`
}

type Recommendation struct {
	Type      RecommendationType `json:"type"`
	QuoteID   string             `json:"quote_id"`
	Reason    string             `json:"reason"`
	Score     float64            `json:"score"`
	Pros      []string           `json:"pros"`
	Cons      []string           `json:"cons"`
	RiskLevel RiskLevel          `json:"risk_level"`
}

// ComparedQuote is a quote with the per-quote figures the comparison derived.
type ComparedQuote struct {
	Quote           entities.Quote       `json:"quote"`
	Reference       string               `json:"reference"`
	EffectiveStatus entities.QuoteStatus `json:"effective_status"`
	ComplianceScore float64              `json:"compliance_score"`
	PriceScore      float64              `json:"price_score"`
	TimelineScore   float64              `json:"timeline_score"`
	ValueScore      float64              `json:"value_score"`
	Margins         Margins              `json:"margins"`
	CriticalPath    []string             `json:"critical_path"`
}

type QuoteRisk struct {
	QuoteID   string    `json:"quote_id"`
	RiskLevel RiskLevel `json:"risk_level"`
	Factors   []string  `json:"factors"`
}

type RiskAnalysis struct {
	OverallRisk RiskLevel   `json:"overall_risk"`
	Quotes      []QuoteRisk `json:"quotes"`
}

type Comparison struct {
	Quotes            []ComparedQuote   `json:"quotes"`
	ComparisonMetrics ComparisonMetrics `json:"comparison_metrics"`
	Recommendations   []Recommendation  `json:"recommendations"`
	RiskAnalysis      RiskAnalysis      `json:"risk_analysis"`
}

// ComplianceScore awards 20 points per compliant standards body, out of 100.
func ComplianceScore(c entities.ComplianceStatement) float64 {
	score := 0.0
	for _, item := range []entities.ComplianceItem{c.RIBA, c.NRM, c.NHBC, c.RICS, c.BuildingRegulations} {
		if item.Compliant {
			score += pointsPerStandard
		}
	}
	return score
}

// Median of values; the mean of the two middle values for an even count.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// RangeOf summarizes values. An empty input yields the zero Range.
func RangeOf(values []float64) Range {
	if len(values) == 0 {
		return Range{}
	}
	return Range{
		Lowest:  floats.Min(values),
		Highest: floats.Max(values),
		Average: Round2(stat.Mean(values, nil)),
		Median:  Median(values),
	}
}

// invertedScore maps v onto 0..100 where the lowest value scores 100.
func invertedScore(v float64, r Range) float64 {
	if r.Highest == r.Lowest {
		return 100
	}
	return (r.Highest - v) / (r.Highest - r.Lowest) * 100
}

// CompareQuotes computes metrics, recommendations and risk for quotes answering
// one scope of work. quotes must not be empty.
func CompareQuotes(quotes []entities.Quote, now time.Time) Comparison {
	n := len(quotes)
	prices := make([]float64, n)
	durations := make([]float64, n)
	compliance := make([]float64, n)
	workmanship := make([]float64, n)
	materials := make([]float64, n)
	insured := 0
	for i, q := range quotes {
		prices[i] = q.TotalPrice
		durations[i] = float64(q.Timeline.TotalDuration)
		compliance[i] = ComplianceScore(q.ComplianceStatement)
		workmanship[i] = float64(q.Warranty.Workmanship.DurationMonths)
		materials[i] = float64(q.Warranty.Materials.DurationMonths)
		if q.Warranty.InsuranceBacked {
			insured++
		}
	}

	metrics := ComparisonMetrics{
		PriceRange:      RangeOf(prices),
		TimelineRange:   RangeOf(durations),
		ComplianceRange: RangeOf(compliance),
		WarrantyRange: WarrantyRanges{
			Workmanship: RangeOf(workmanship),
			Materials:   RangeOf(materials),
		},
		InsuranceBackedCount: insured,
	}

	compared := make([]ComparedQuote, n)
	for i, q := range quotes {
		priceScore := invertedScore(prices[i], metrics.PriceRange)
		timelineScore := invertedScore(durations[i], metrics.TimelineRange)
		compared[i] = ComparedQuote{
			Quote:           q,
			Reference:       GenerateReference(q),
			EffectiveStatus: EffectiveStatus(q, now),
			ComplianceScore: compliance[i],
			PriceScore:      Round2(priceScore),
			TimelineScore:   Round2(timelineScore),
			ValueScore:      Round2((priceScore + timelineScore + compliance[i]) / 3),
			Margins:         CalculateMargins(q),
			CriticalPath:    CriticalPath(q),
		}
	}

	return Comparison{
		Quotes:            compared,
		ComparisonMetrics: metrics,
		Recommendations:   recommend(compared, metrics),
		RiskAnalysis:      analyzeRisk(compared, metrics),
	}
}

func recommend(compared []ComparedQuote, m ComparisonMetrics) []Recommendation {
	bestValue, cheapest, fastest := 0, 0, 0
	for i, c := range compared {
		if c.ValueScore > compared[bestValue].ValueScore {
			bestValue = i
		}
		if c.Quote.TotalPrice < compared[cheapest].Quote.TotalPrice {
			cheapest = i
		}
		if c.Quote.Timeline.TotalDuration < compared[fastest].Quote.Timeline.TotalDuration {
			fastest = i
		}
	}

	bv := compared[bestValue]
	best := Recommendation{
		Type:      RecommendationBestValue,
		QuoteID:   bv.Quote.ID,
		Reason:    fmt.Sprintf("Best balance of price, timeline and compliance (value score %.2f)", bv.ValueScore),
		Score:     bv.ValueScore,
		Pros:      prosOf(bv, m),
		Cons:      consOf(bv, m),
		RiskLevel: complianceRisk(bv.ComplianceScore),
	}

	lp := compared[cheapest]
	lowest := Recommendation{
		Type:      RecommendationLowestPrice,
		QuoteID:   lp.Quote.ID,
		Reason:    fmt.Sprintf("Lowest price at %s %.2f", lp.Quote.Currency, lp.Quote.TotalPrice),
		Score:     lp.ValueScore,
		Pros:      prosOf(lp, m),
		Cons:      consOf(lp, m),
		RiskLevel: RiskLow,
	}
	if lp.Quote.TotalPrice < m.PriceRange.Average*belowAverageRatio {
		lowest.RiskLevel = RiskMedium
		lowest.Cons = append(lowest.Cons, "Price is more than 20% below the average; confirm the full scope has been priced")
	}

	fq := compared[fastest]
	quickest := Recommendation{
		Type:      RecommendationFastest,
		QuoteID:   fq.Quote.ID,
		Reason:    fmt.Sprintf("Shortest programme at %d days", fq.Quote.Timeline.TotalDuration),
		Score:     fq.ValueScore,
		Pros:      prosOf(fq, m),
		Cons:      consOf(fq, m),
		RiskLevel: RiskLow,
	}
	if float64(fq.Quote.Timeline.TotalDuration) < m.TimelineRange.Average*belowAverageRatio {
		quickest.RiskLevel = RiskMedium
		quickest.Cons = append(quickest.Cons, "Timeline is more than 20% shorter than the average; check the programme is achievable")
	}

	return []Recommendation{best, lowest, quickest}
}

func prosOf(c ComparedQuote, m ComparisonMetrics) []string {
	pros := []string{}
	q := c.Quote
	if q.TotalPrice == m.PriceRange.Lowest {
		pros = append(pros, "Lowest price")
	} else if q.TotalPrice < m.PriceRange.Average {
		pros = append(pros, "Below average price")
	}
	if float64(q.Timeline.TotalDuration) == m.TimelineRange.Lowest {
		pros = append(pros, "Shortest timeline")
	}
	if c.ComplianceScore == 100 {
		pros = append(pros, "Fully compliant with all standards")
	}
	if q.Warranty.InsuranceBacked {
		pros = append(pros, "Insurance-backed warranty")
	}
	if float64(q.Warranty.Workmanship.DurationMonths) == m.WarrantyRange.Workmanship.Highest {
		pros = append(pros, fmt.Sprintf("Longest workmanship warranty (%d months)", q.Warranty.Workmanship.DurationMonths))
	}
	return pros
}

func consOf(c ComparedQuote, m ComparisonMetrics) []string {
	cons := []string{}
	q := c.Quote
	if q.TotalPrice == m.PriceRange.Highest && m.PriceRange.Highest != m.PriceRange.Lowest {
		cons = append(cons, "Highest price")
	}
	if float64(q.Timeline.TotalDuration) == m.TimelineRange.Highest && m.TimelineRange.Highest != m.TimelineRange.Lowest {
		cons = append(cons, "Longest timeline")
	}
	if c.ComplianceScore < 60 {
		cons = append(cons, fmt.Sprintf("Low compliance score (%.0f/100)", c.ComplianceScore))
	}
	if !q.Warranty.InsuranceBacked {
		cons = append(cons, "Warranty is not insurance-backed")
	}
	if len(q.Certifications) == 0 {
		cons = append(cons, "No certifications provided")
	}
	return cons
}

func complianceRisk(score float64) RiskLevel {
	switch {
	case score >= 80:
		return RiskLow
	case score >= 60:
		return RiskMedium
	default:
		return RiskHigh
	}
}

func analyzeRisk(compared []ComparedQuote, m ComparisonMetrics) RiskAnalysis {
	ra := RiskAnalysis{OverallRisk: RiskLow, Quotes: make([]QuoteRisk, 0, len(compared))}
	for _, c := range compared {
		q := c.Quote
		factors := []string{}
		if q.TotalPrice < m.PriceRange.Average*belowAverageRatio {
			factors = append(factors, "Price significantly below average")
		}
		if float64(q.Timeline.TotalDuration) < m.TimelineRange.Average*belowAverageRatio {
			factors = append(factors, "Timeline significantly shorter than average")
		}
		if c.ComplianceScore < 60 {
			factors = append(factors, "Low compliance score")
		}
		if !q.Warranty.InsuranceBacked {
			factors = append(factors, "No insurance-backed warranty")
		}
		if len(q.Certifications) == 0 {
			factors = append(factors, "No certifications")
		}
		if c.EffectiveStatus == entities.QuoteStatusExpired {
			factors = append(factors, "Quote has expired")
		}

		level := RiskLow
		switch {
		case len(factors) >= 3:
			level = RiskHigh
		case len(factors) >= 1:
			level = RiskMedium
		}
		if riskRank(level) > riskRank(ra.OverallRisk) {
			ra.OverallRisk = level
		}
		ra.Quotes = append(ra.Quotes, QuoteRisk{QuoteID: q.ID, RiskLevel: level, Factors: factors})
	}
	return ra
}

func riskRank(l RiskLevel) int {
	switch l {
	case RiskHigh:
		return 2
	case RiskMedium:
		return 1
	}
	return 0
}
