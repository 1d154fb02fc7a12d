// Package schema holds the per-resolution registry of attribute
// compatibility rules.
//
// A schema is built once (from configuration or programmatically) and then
// read by any number of concurrent selections; it must not be modified after
// it has been handed to a selector.
package schema

// Decision is a single rule's verdict on one consumer/producer value pair.
type Decision int

const (
	// DecisionNone means the rule expresses no opinion on the pair.
	DecisionNone Decision = iota
	DecisionCompatible
	DecisionIncompatible
)

// CompatibilityRule decides whether a producer value satisfies a
// consumer-requested value beyond plain equality.
type CompatibilityRule func(consumer, producer string) Decision

// Schema maps attribute names to ordered compatibility rules.
//
// Rules run in registration order; the first rule that expresses an opinion
// wins. Attributes with no registered rule (or where every rule abstains)
// fall back to plain equality.
type Schema struct {
	rules map[string][]CompatibilityRule
}

func New() *Schema {
	return &Schema{rules: make(map[string][]CompatibilityRule)}
}

// Register appends a rule for the named attribute.
func (s *Schema) Register(attribute string, rule CompatibilityRule) {
	s.rules[attribute] = append(s.rules[attribute], rule)
}

// RegisterCompatiblePairs registers a rule that accepts the given
// consumer value -> producer values pairs in addition to plain equality.
func (s *Schema) RegisterCompatiblePairs(attribute string, pairs map[string][]string) {
	accepted := make(map[string]map[string]bool, len(pairs))
	for consumer, producers := range pairs {
		set := make(map[string]bool, len(producers))
		for _, p := range producers {
			set[p] = true
		}
		accepted[consumer] = set
	}
	s.Register(attribute, func(consumer, producer string) Decision {
		if accepted[consumer][producer] {
			return DecisionCompatible
		}
		return DecisionNone
	})
}

// Compatible reports whether producer satisfies consumer for the named
// attribute under this schema. A nil schema means plain equality everywhere.
func (s *Schema) Compatible(attribute, consumer, producer string) bool {
	if s != nil {
		for _, rule := range s.rules[attribute] {
			switch rule(consumer, producer) {
			case DecisionCompatible:
				return true
			case DecisionIncompatible:
				return false
			}
		}
	}
	return consumer == producer
}
