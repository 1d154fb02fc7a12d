package model

import (
	"fmt"
	"strings"
)

// ParseCapability parses the "group:name:version" display form.
func ParseCapability(s string) (Capability, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Capability{}, fmt.Errorf("model: capability %q: want group:name:version", s)
	}
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return Capability{}, fmt.Errorf("model: capability %q: empty coordinate", s)
		}
	}
	return Capability{Group: parts[0], Name: parts[1], Version: parts[2]}, nil
}

// ParseRequestedCapability parses a consumer-side capability filter:
// "group:name" (any version) or "group:name:version" where version may be
// exact, "*" or a semver range.
func ParseRequestedCapability(s string) (RequestedCapability, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return RequestedCapability{}, fmt.Errorf("model: requested capability %q: want group:name[:version]", s)
	}
	if strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return RequestedCapability{}, fmt.Errorf("model: requested capability %q: empty coordinate", s)
	}
	r := RequestedCapability{Group: parts[0], Name: parts[1]}
	if len(parts) == 3 {
		r.Version = parts[2]
	}
	return r, nil
}
