package quoting

import (
	"testing"

	"buildbid/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func quoteWithPhases(phases ...entities.Phase) entities.Quote {
	return entities.Quote{Timeline: entities.Timeline{TotalDuration: 30, Phases: phases}}
}

func TestCriticalPath(t *testing.T) {
	t.Run("dependency chain", func(t *testing.T) {
		q := quoteWithPhases(
			entities.Phase{ID: "A", StartDay: 0, Duration: 5},
			entities.Phase{ID: "B", StartDay: 5, Duration: 3, Dependencies: []string{"A"}},
			entities.Phase{ID: "C", StartDay: 20, Duration: 2, Dependencies: []string{"B"}},
		)
		assert.Equal(t, []string{"A", "B", "C"}, CriticalPath(q))
	})

	t.Run("unknown dependency excluded", func(t *testing.T) {
		q := quoteWithPhases(
			entities.Phase{ID: "A", StartDay: 0, Duration: 5},
			entities.Phase{ID: "D", StartDay: 10, Duration: 2, Dependencies: []string{"X"}},
		)
		assert.Equal(t, []string{"A"}, CriticalPath(q))
	})

	t.Run("processes phases in start order", func(t *testing.T) {
		q := quoteWithPhases(
			entities.Phase{ID: "B", StartDay: 5, Duration: 3, Dependencies: []string{"A"}},
			entities.Phase{ID: "A", StartDay: 0, Duration: 5},
		)
		assert.Equal(t, []string{"A", "B"}, CriticalPath(q))
	})

	t.Run("any dependency on path is enough", func(t *testing.T) {
		q := quoteWithPhases(
			entities.Phase{ID: "A", StartDay: 0, Duration: 5},
			entities.Phase{ID: "B", StartDay: 5, Duration: 3, Dependencies: []string{"X", "A"}},
		)
		assert.Equal(t, []string{"A", "B"}, CriticalPath(q))
	})

	t.Run("no phases", func(t *testing.T) {
		assert.Empty(t, CriticalPath(entities.Quote{}))
	})
}

func TestSummarizeResources(t *testing.T) {
	q := quoteWithPhases(
		entities.Phase{ID: "A", Name: "Groundworks", Resources: entities.ResourceList{
			entities.LabourResource{Trade: "groundworker", Days: 10, Critical: true},
			entities.EquipmentResource{Description: "excavator", Days: 4},
		}},
		entities.Phase{ID: "B", Name: "Services", Resources: entities.ResourceList{
			entities.MaterialsResource{Description: "copper pipe", Cost: 800},
			entities.SubcontractorResource{Description: "electrician", Cost: 2500, Critical: true},
			entities.LabourResource{Description: "plumber", Days: 3},
		}},
	)

	s := SummarizeResources(q)
	assert.Equal(t, 13.0, s.TotalLabourDays)
	assert.Equal(t, 4.0, s.TotalEquipmentDays)
	assert.Equal(t, 800.0, s.TotalMaterialsCost)
	assert.Equal(t, 2500.0, s.SubcontractorCost)
	assert.Equal(t, []string{"Groundworks: groundworker", "Services: electrician"}, s.CriticalResources)
}

func TestSummarizeResources_Empty(t *testing.T) {
	s := SummarizeResources(entities.Quote{})
	assert.NotNil(t, s.CriticalResources)
	assert.Empty(t, s.CriticalResources)
}
