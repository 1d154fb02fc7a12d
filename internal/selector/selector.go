// Package selector implements attribute- and capability-based variant
// selection for a single component.
//
// Selection is a pure function over immutable inputs: it either returns
// exactly one variant or fails with a structured diagnostic error
// (NoMatchingVariantError or AmbiguousVariantError). It never mutates the
// component, the request or the schema, so a single schema and component set
// can serve any number of concurrent selections.
package selector

import (
	"github.com/facet-platform/facet/internal/model"
	"github.com/facet-platform/facet/internal/schema"
)

// Request is the consumer side of a selection: the attributes the consumer
// asks for and the capabilities the matched variant must provide. An empty
// capability list means the component's implicit capability.
type Request struct {
	Attributes   model.AttributeSet
	Capabilities []model.RequestedCapability
}

// AttributeAssessment records how one attribute compared on one candidate.
//
// Exactly one of three shapes occurs: a matched requested attribute
// (Requested && Provided && Compatible), a mismatched requested attribute
// (Requested && !Compatible), or an extra producer-only attribute
// (!Requested && Provided).
type AttributeAssessment struct {
	Name          string
	ConsumerValue string
	ProducerValue string
	Requested     bool
	Provided      bool
	Compatible    bool
}

// Candidate is one capability-filtered variant together with its
// per-attribute assessments, in rendering order: the variant's own attributes
// in declaration order, then any requested attributes the variant lacks.
type Candidate struct {
	Variant      model.Variant
	Capabilities []model.Capability
	Assessments  []AttributeAssessment
}

// Compatible reports whether every requested attribute is satisfied.
func (c Candidate) Compatible() bool {
	for _, a := range c.Assessments {
		if a.Requested && !a.Compatible {
			return false
		}
	}
	return true
}

// extras returns the names of attributes present on the variant that the
// consumer did not request.
func (c Candidate) extras() map[string]struct{} {
	out := make(map[string]struct{})
	for _, a := range c.Assessments {
		if a.Provided && !a.Requested {
			out[a.Name] = struct{}{}
		}
	}
	return out
}

// Select picks exactly one variant of component for the given request, or
// fails with a NoMatchingVariantError or AmbiguousVariantError carrying the
// full candidate diagnostics.
//
// Behavior is undefined for a component with no variants; metadata loading is
// expected to reject such components before selection.
func Select(req Request, component model.Component, sch *schema.Schema) (model.Variant, error) {
	requested := req.Capabilities
	if len(requested) == 0 {
		implicit := component.ID.ImplicitCapability()
		requested = []model.RequestedCapability{{
			Group:   implicit.Group,
			Name:    implicit.Name,
			Version: implicit.Version,
		}}
	}

	// Capability filter. Variants failing it are excluded outright and do
	// not contribute to diagnostics.
	candidates := make([]Candidate, 0, len(component.Variants))
	for _, v := range component.Variants {
		caps := v.EffectiveCapabilities(component.ID)
		if !providesAll(caps, requested) {
			continue
		}
		candidates = append(candidates, Candidate{
			Variant:      v,
			Capabilities: caps,
			Assessments:  assess(req.Attributes, v.Attributes, sch),
		})
	}

	// Attribute compatibility filter.
	compatible := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Compatible() {
			compatible = append(compatible, c)
		}
	}

	switch len(compatible) {
	case 0:
		return model.Variant{}, &NoMatchingVariantError{
			ComponentID: component.ID,
			Candidates:  candidates,
		}
	case 1:
		return compatible[0].Variant, nil
	}

	surviving := discardDominated(compatible)
	if len(surviving) == 1 {
		return surviving[0].Variant, nil
	}
	return model.Variant{}, &AmbiguousVariantError{
		ComponentID: component.ID,
		Candidates:  surviving,
	}
}

func providesAll(declared []model.Capability, requested []model.RequestedCapability) bool {
	for _, r := range requested {
		found := false
		for _, c := range declared {
			if r.Matches(c) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// assess compares a variant's attributes against the consumer request. The
// variant's own attributes come first in declaration order (matched and extra
// interleaved), then any requested attributes the variant does not provide.
func assess(consumer, producer model.AttributeSet, sch *schema.Schema) []AttributeAssessment {
	out := make([]AttributeAssessment, 0, producer.Len())
	for _, name := range producer.Names() {
		pv, _ := producer.Value(name)
		cv, requested := consumer.Value(name)
		a := AttributeAssessment{
			Name:          name,
			ConsumerValue: cv,
			ProducerValue: pv,
			Requested:     requested,
			Provided:      true,
		}
		if requested {
			a.Compatible = sch.Compatible(name, cv, pv)
		}
		out = append(out, a)
	}
	for _, name := range consumer.Names() {
		if producer.Has(name) {
			continue
		}
		cv, _ := consumer.Value(name)
		// Absent producer value: non-matching.
		out = append(out, AttributeAssessment{
			Name:          name,
			ConsumerValue: cv,
			Requested:     true,
		})
	}
	return out
}

// discardDominated applies the extra-attribute domination rule: a candidate
// whose extra-attribute set is a strict subset of another's displaces it.
// Candidates with disjoint non-empty extras are mutually non-dominating.
func discardDominated(candidates []Candidate) []Candidate {
	extras := make([]map[string]struct{}, len(candidates))
	for i, c := range candidates {
		extras[i] = c.extras()
	}

	surviving := make([]Candidate, 0, len(candidates))
	for i := range candidates {
		dominated := false
		for j := range candidates {
			if i != j && strictSubset(extras[j], extras[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			surviving = append(surviving, candidates[i])
		}
	}
	return surviving
}

// strictSubset reports whether a is a strict subset of b.
func strictSubset(a, b map[string]struct{}) bool {
	if len(a) >= len(b) {
		return false
	}
	for name := range a {
		if _, ok := b[name]; !ok {
			return false
		}
	}
	return true
}
