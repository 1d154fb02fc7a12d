package selector

import "github.com/facet-platform/facet/internal/model"

// NoMatchingVariantError means no capability-filtered candidate satisfied all
// consumer-requested attributes. Candidates are the capability-filtered
// variants in declaration order, each carrying mismatch detail.
//
// The rendered message is a contract: callers surface it verbatim.
type NoMatchingVariantError struct {
	ComponentID model.ComponentID
	Candidates  []Candidate
}

func (e *NoMatchingVariantError) Error() string {
	return renderNoMatch(e.ComponentID, e.Candidates)
}

// AmbiguousVariantError means more than one candidate survived capability
// filtering, attribute compatibility and extra-attribute domination.
// Candidates are the surviving (non-dominated) variants in declaration order.
//
// The rendered message is a contract: callers surface it verbatim.
type AmbiguousVariantError struct {
	ComponentID model.ComponentID
	Candidates  []Candidate
}

func (e *AmbiguousVariantError) Error() string {
	return renderAmbiguous(e.ComponentID, e.Candidates)
}
