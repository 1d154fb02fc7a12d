package model

import "fmt"

// ComponentID is the (group, name, version) coordinate of a component.
type ComponentID struct {
	Group   string
	Name    string
	Version string
}

func (id ComponentID) String() string {
	return fmt.Sprintf("%s:%s:%s", id.Group, id.Name, id.Version)
}

// ImplicitCapability is the capability a variant provides when it declares
// none: the owning component's own coordinates.
func (id ComponentID) ImplicitCapability() Capability {
	return Capability{Group: id.Group, Name: id.Name, Version: id.Version}
}

// Variant is a named, attribute- and capability-tagged configuration exposed
// by a component. Construct via NewVariant and treat as read-only afterwards;
// selection never mutates a variant.
type Variant struct {
	Name         string
	Attributes   AttributeSet
	Capabilities []Capability
}

func NewVariant(name string, attrs AttributeSet, caps ...Capability) Variant {
	v := Variant{Name: name, Attributes: attrs}
	if len(caps) > 0 {
		v.Capabilities = make([]Capability, len(caps))
		copy(v.Capabilities, caps)
	}
	return v
}

// EffectiveCapabilities returns the declared capabilities, or the implicit
// capability of the owning component when none are declared.
func (v Variant) EffectiveCapabilities(owner ComponentID) []Capability {
	if len(v.Capabilities) > 0 {
		return v.Capabilities
	}
	return []Capability{owner.ImplicitCapability()}
}

// Component owns an ordered list of variants. Candidate ordering in
// diagnostics follows the variant declaration order given here.
type Component struct {
	ID       ComponentID
	Variants []Variant
}

func NewComponent(group, name, version string, variants ...Variant) Component {
	c := Component{ID: ComponentID{Group: group, Name: name, Version: version}}
	if len(variants) > 0 {
		c.Variants = make([]Variant, len(variants))
		copy(c.Variants, variants)
	}
	return c
}
