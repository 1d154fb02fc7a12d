package selector

import (
	"fmt"
	"strings"

	"github.com/facet-platform/facet/internal/model"
)

// Diagnostic message rendering. The exact text is part of the selection
// contract; tooling and users match it literally.

func renderAmbiguous(id model.ComponentID, candidates []Candidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cannot choose between the following variants of %s:", id)
	for _, c := range candidates {
		fmt.Fprintf(&b, "\n  - %s", c.Variant.Name)
	}
	b.WriteString("\nAll of them match the consumer attributes:")
	for _, c := range candidates {
		writeCandidateHeader(&b, c)
		for _, a := range c.Assessments {
			switch {
			case a.Provided && !a.Requested:
				fmt.Fprintf(&b, "\n      - Found %s '%s' but wasn't required.", a.Name, a.ProducerValue)
			case a.Requested && a.Compatible:
				fmt.Fprintf(&b, "\n      - Required %s '%s' and found compatible value '%s'.", a.Name, a.ConsumerValue, a.ProducerValue)
			}
		}
	}
	return b.String()
}

func renderNoMatch(id model.ComponentID, candidates []Candidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Unable to find a matching variant of %s:", id)
	for _, c := range candidates {
		writeCandidateHeader(&b, c)
		for _, a := range c.Assessments {
			switch {
			case a.Requested && a.Provided && !a.Compatible:
				fmt.Fprintf(&b, "\n      - Required %s '%s' and found incompatible value '%s'.", a.Name, a.ConsumerValue, a.ProducerValue)
			case a.Requested && !a.Provided:
				fmt.Fprintf(&b, "\n      - Required %s '%s' but no value was provided.", a.Name, a.ConsumerValue)
			}
		}
	}
	return b.String()
}

func writeCandidateHeader(b *strings.Builder, c Candidate) {
	noun := "capability"
	if len(c.Capabilities) > 1 {
		noun = "capabilities"
	}
	fmt.Fprintf(b, "\n  - Variant '%s' %s %s:", c.Variant.Name, noun, model.DisplayCapabilities(c.Capabilities))
}
