package quoting

import (
	"buildbid/internal/domain/entities"
)

type ResourceSummary struct {
	TotalLabourDays    float64  `json:"total_labour_days"`
	TotalEquipmentDays float64  `json:"total_equipment_days"`
	TotalMaterialsCost float64  `json:"total_materials_cost"`
	SubcontractorCost  float64  `json:"subcontractor_cost"`
	CriticalResources  []string `json:"critical_resources"`
}

// CriticalPath returns the ids of the phases that gate progress.
//
// Phases are taken in start order; a phase joins the path when it has no
// dependencies or when at least one dependency is already on the path. This is a
// single forward pass that assumes dependencies are listed in causal order, not a
// longest-path computation.
func CriticalPath(q entities.Quote) []string {
	path := make([]string, 0, len(q.Timeline.Phases))
	onPath := make(map[string]struct{}, len(q.Timeline.Phases))
	for _, p := range sortedByStart(q.Timeline.Phases) {
		if !joinsPath(p, onPath) {
			continue
		}
		path = append(path, p.ID)
		onPath[p.ID] = struct{}{}
	}
	return path
}

func joinsPath(p entities.Phase, onPath map[string]struct{}) bool {
	if len(p.Dependencies) == 0 {
		return true
	}
	for _, dep := range p.Dependencies {
		if _, ok := onPath[dep]; ok {
			return true
		}
	}
	return false
}

// SummarizeResources totals phase resources per type and lists the critical ones
// as "<phase>: <resource>".
func SummarizeResources(q entities.Quote) ResourceSummary {
	s := ResourceSummary{CriticalResources: []string{}}
	for _, p := range q.Timeline.Phases {
		for _, r := range p.Resources {
			switch v := r.(type) {
			case entities.LabourResource:
				s.TotalLabourDays += v.Days
			case entities.EquipmentResource:
				s.TotalEquipmentDays += v.Days
			case entities.MaterialsResource:
				s.TotalMaterialsCost += v.Cost
			case entities.SubcontractorResource:
				s.SubcontractorCost += v.Cost
			}
			if r.IsCritical() {
				s.CriticalResources = append(s.CriticalResources, p.Name+": "+r.Label())
			}
		}
	}
	return s
}
