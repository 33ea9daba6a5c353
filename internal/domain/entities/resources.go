package entities

import (
	"encoding/json"
	"fmt"
)

// ResourceType tags the variant of a phase resource requirement.
type ResourceType string

const (
	ResourceLabour        ResourceType = "labour"
	ResourceEquipment     ResourceType = "equipment"
	ResourceMaterials     ResourceType = "materials"
	ResourceSubcontractor ResourceType = "subcontractor"
)

// Resource is a phase resource requirement. The set of implementations is closed:
// LabourResource, EquipmentResource, MaterialsResource and SubcontractorResource.
type Resource interface {
	Type() ResourceType
	Label() string
	IsCritical() bool
	sealed()
}

type LabourResource struct {
	Description string
	Trade       string
	Days        float64
	Critical    bool
}

type EquipmentResource struct {
	Description string
	Days        float64
	Critical    bool
}

type MaterialsResource struct {
	Description string
	Cost        float64
	Critical    bool
}

type SubcontractorResource struct {
	Description string
	Trade       string
	Cost        float64
	Critical    bool
}

func (LabourResource) Type() ResourceType        { return ResourceLabour }
func (EquipmentResource) Type() ResourceType     { return ResourceEquipment }
func (MaterialsResource) Type() ResourceType     { return ResourceMaterials }
func (SubcontractorResource) Type() ResourceType { return ResourceSubcontractor }

func (r LabourResource) Label() string        { return labelOf(r.Description, r.Trade) }
func (r EquipmentResource) Label() string     { return r.Description }
func (r MaterialsResource) Label() string     { return r.Description }
func (r SubcontractorResource) Label() string { return labelOf(r.Description, r.Trade) }

func (r LabourResource) IsCritical() bool        { return r.Critical }
func (r EquipmentResource) IsCritical() bool     { return r.Critical }
func (r MaterialsResource) IsCritical() bool     { return r.Critical }
func (r SubcontractorResource) IsCritical() bool { return r.Critical }

func (LabourResource) sealed()        {}
func (EquipmentResource) sealed()     {}
func (MaterialsResource) sealed()     {}
func (SubcontractorResource) sealed() {}

func labelOf(description, trade string) string {
	if description != "" {
		return description
	}
	return trade
}

// ResourceList is the JSON form of a phase's resources, discriminated by "type".
type ResourceList []Resource

type resourceEnvelope struct {
	Type        ResourceType `json:"type"`
	Description string       `json:"description"`
	Trade       string       `json:"trade,omitempty"`
	Days        float64      `json:"days,omitempty"`
	Cost        float64      `json:"cost,omitempty"`
	Critical    bool         `json:"critical,omitempty"`
}

func (l ResourceList) MarshalJSON() ([]byte, error) {
	out := make([]resourceEnvelope, 0, len(l))
	for _, r := range l {
		env := resourceEnvelope{Type: r.Type(), Critical: r.IsCritical()}
		switch v := r.(type) {
		case LabourResource:
			env.Description, env.Trade, env.Days = v.Description, v.Trade, v.Days
		case EquipmentResource:
			env.Description, env.Days = v.Description, v.Days
		case MaterialsResource:
			env.Description, env.Cost = v.Description, v.Cost
		case SubcontractorResource:
			env.Description, env.Trade, env.Cost = v.Description, v.Trade, v.Cost
		}
		out = append(out, env)
	}
	return json.Marshal(out)
}

func (l *ResourceList) UnmarshalJSON(data []byte) error {
	var raw []resourceEnvelope
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(ResourceList, 0, len(raw))
	for i, env := range raw {
		switch env.Type {
		case ResourceLabour:
			out = append(out, LabourResource{Description: env.Description, Trade: env.Trade, Days: env.Days, Critical: env.Critical})
		case ResourceEquipment:
			out = append(out, EquipmentResource{Description: env.Description, Days: env.Days, Critical: env.Critical})
		case ResourceMaterials:
			out = append(out, MaterialsResource{Description: env.Description, Cost: env.Cost, Critical: env.Critical})
		case ResourceSubcontractor:
			out = append(out, SubcontractorResource{Description: env.Description, Trade: env.Trade, Cost: env.Cost, Critical: env.Critical})
		default:
			return fmt.Errorf("resources[%d]: unknown resource type %q", i, env.Type)
		}
	}
	*l = out
	return nil
}
