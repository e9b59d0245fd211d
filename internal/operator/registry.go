// Package operator defines the stance-transition operators, their registry,
// and the trigger-to-operator candidate table.
package operator

import (
	"sort"
	"sync"
)

// #region registry

// Registry is a catalog of operator definitions keyed by name. Read-mostly
// after initialization; safe for concurrent use across conversations.
type Registry struct {
	mu   sync.RWMutex
	defs map[Name]Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[Name]Definition)}
}

// NewBuiltinRegistry returns a registry pre-populated with all built-in
// operators. Tests wanting isolation should use this instead of Default.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, def := range builtins() {
		r.Register(def)
	}
	return r
}

// Register upserts a definition by name. Registering the same name twice
// replaces the earlier definition.
func (r *Registry) Register(def Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs[def.Name] = def
}

// Get resolves a definition by name.
func (r *Registry) Get(name Name) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	return def, ok
}

// Has reports whether a definition is registered under name.
func (r *Registry) Has(name Name) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.defs[name]
	return ok
}

// All returns every registered definition, sorted by name for determinism.
func (r *Registry) All() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Definition, 0, len(r.defs))
	for _, def := range r.defs {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// #endregion registry

// #region default-instance

// Default is the process-wide registry with all built-in operators. The
// planner takes a registry parameter; Default is a convenience, not a
// requirement.
var Default = NewBuiltinRegistry()

// #endregion default-instance
