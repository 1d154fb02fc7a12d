package api

// JSON payloads for the resolution API.

// AttributePair is one name/value pair; attribute order in a selection
// request follows the array order.
type AttributePair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SelectRequest asks for one variant of a registered component.
// Capabilities use the "group:name[:version]" form; version may be exact,
// "*" or a semver range.
type SelectRequest struct {
	Component    string          `json:"component"`
	Attributes   []AttributePair `json:"attributes,omitempty"`
	Capabilities []string        `json:"capabilities,omitempty"`
}

type VariantPayload struct {
	Name         string          `json:"name"`
	Attributes   []AttributePair `json:"attributes,omitempty"`
	Capabilities []string        `json:"capabilities"`
}

type SelectResponse struct {
	Component string         `json:"component"`
	Variant   VariantPayload `json:"variant"`
}

// CandidatePayload is the per-candidate diagnostic detail mirrored from the
// selector's failure types.
type CandidatePayload struct {
	Name         string            `json:"name"`
	Capabilities []string          `json:"capabilities"`
	Assessments  []AssessmentEntry `json:"assessments,omitempty"`
}

type AssessmentEntry struct {
	Attribute     string `json:"attribute"`
	ConsumerValue string `json:"consumerValue,omitempty"`
	ProducerValue string `json:"producerValue,omitempty"`
	Requested     bool   `json:"requested"`
	Provided      bool   `json:"provided"`
	Compatible    bool   `json:"compatible"`
}

// SelectionFailure carries the selector's verbatim diagnostic text plus the
// structured candidate list. Kind is "ambiguous" or "no-match".
type SelectionFailure struct {
	Kind       string             `json:"kind"`
	Component  string             `json:"component"`
	Message    string             `json:"message"`
	Candidates []CandidatePayload `json:"candidates"`
}

type RegisterResponse struct {
	Component string `json:"component"`
	Variants  int    `json:"variants"`
}

type ComponentsResponse struct {
	Components []string `json:"components"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
