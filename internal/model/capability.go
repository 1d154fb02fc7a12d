package model

import (
	"fmt"
	"strings"

	"github.com/facet-platform/facet/internal/semver"
)

// Capability is a (group, name, version) identity a variant claims to provide.
//
// A variant that declares no capabilities implicitly provides the capability
// derived from its owning component's coordinates.
type Capability struct {
	Group   string
	Name    string
	Version string
}

func (c Capability) String() string {
	return fmt.Sprintf("%s:%s:%s", c.Group, c.Name, c.Version)
}

// DisplayCapabilities renders a declared-capability list for diagnostics:
// a single capability as "g:n:v", several joined with " and ".
func DisplayCapabilities(caps []Capability) string {
	parts := make([]string, len(caps))
	for i, c := range caps {
		parts[i] = c.String()
	}
	return strings.Join(parts, " and ")
}

// RequestedCapability is a consumer-side capability filter.
//
// Version may be exact, empty or "*" (any version), or a semver range such
// as "^1.0" when the producer side declares semver versions.
type RequestedCapability struct {
	Group   string
	Name    string
	Version string
}

// Matches reports whether a declared capability satisfies this request.
func (r RequestedCapability) Matches(c Capability) bool {
	if r.Group != c.Group || r.Name != c.Name {
		return false
	}
	return semver.MatchRequested(r.Version, c.Version)
}
