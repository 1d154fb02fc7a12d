// Package registry is the daemon's in-memory component store.
//
// Registered entries are immutable; the lock only guards the map itself, so
// readers can run selections concurrently against the same entry.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/facet-platform/facet/internal/model"
	"github.com/facet-platform/facet/internal/schema"
)

// Entry pairs a component with the schema it was registered with.
type Entry struct {
	Component model.Component
	Schema    *schema.Schema
}

type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Put registers or replaces the entry for the component's coordinates.
func (r *Registry) Put(component model.Component, sch *schema.Schema) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[component.ID.String()] = Entry{Component: component, Schema: sch}
}

// Get looks up an entry by its "group:name:version" key.
func (r *Registry) Get(key string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	return e, ok
}

// Delete removes the entry for key, reporting whether it existed.
func (r *Registry) Delete(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; !ok {
		return false
	}
	delete(r.entries, key)
	return true
}

// Keys returns the registered component ids, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// ErrNotFound is returned by lookup helpers when no component is registered
// under the requested coordinates.
var ErrNotFound = fmt.Errorf("registry: component not found")

// Lookup is Get with an error for handler-layer convenience.
func (r *Registry) Lookup(key string) (Entry, error) {
	e, ok := r.Get(key)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return e, nil
}
