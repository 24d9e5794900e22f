package dynform

import "github.com/dmitrymomot/formkit/pkg/control"

// Model types understood by Kind.
const (
	TypeGroup = "group"
	TypeArray = "array"
)

// PropertySource exposes named properties to message templates.
type PropertySource interface {
	Property(name string) (any, bool)
}

// Model describes one node of a dynamic form: its presentation properties,
// validator configuration and error message templates. Group models list
// their children in Group, array models in Items.
type Model struct {
	ID          string         `json:"id" yaml:"id"`
	Type        string         `json:"type,omitempty" yaml:"type,omitempty"`
	Label       string         `json:"label,omitempty" yaml:"label,omitempty"`
	Hint        string         `json:"hint,omitempty" yaml:"hint,omitempty"`
	Placeholder string         `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Value       any            `json:"value,omitempty" yaml:"value,omitempty"`
	Properties  map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`

	Validators      ValidatorsMap `json:"validators" yaml:"validators"`
	AsyncValidators ValidatorsMap `json:"asyncValidators" yaml:"asyncValidators"`
	ErrorMessages   ErrorMessages `json:"errorMessages" yaml:"errorMessages"`

	Group []*Model `json:"group,omitempty" yaml:"group,omitempty"`
	Items []*Model `json:"items,omitempty" yaml:"items,omitempty"`
}

// Kind returns the control kind the model builds.
func (m *Model) Kind() control.Kind {
	switch {
	case m.Type == TypeGroup || len(m.Group) > 0:
		return control.KindGroup
	case m.Type == TypeArray || len(m.Items) > 0:
		return control.KindArray
	default:
		return control.KindLeaf
	}
}

// Property implements PropertySource. Well-known fields are looked up by
// their lower camel-case name, anything else in Properties.
func (m *Model) Property(name string) (any, bool) {
	if m == nil {
		return nil, false
	}
	switch name {
	case "id":
		return m.ID, true
	case "type":
		return m.Type, true
	case "label":
		return m.Label, true
	case "hint":
		return m.Hint, true
	case "placeholder":
		return m.Placeholder, true
	case "value":
		return m.Value, true
	}
	v, ok := m.Properties[name]
	return v, ok
}

// children returns the non-nil child models for the model's kind.
func (m *Model) children() []*Model {
	var src []*Model
	switch m.Kind() {
	case control.KindGroup:
		src = m.Group
	case control.KindArray:
		src = m.Items
	default:
		return nil
	}
	out := make([]*Model, 0, len(src))
	for _, child := range src {
		if child != nil {
			out = append(out, child)
		}
	}
	return out
}
