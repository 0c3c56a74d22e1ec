// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package gen

import (
	"sort"

	"github.com/acalejos/scout/internal/spec"
)

// Registry is a caller-owned map of qualified type names to definitions.
// There is no global registration: callers create a Registry, pass it by
// reference, and decide what a collision means. A prefix qualifies every
// registered name, letting concurrent callers target disjoint namespaces.
type Registry struct {
	prefix string
	defs   map[string]*Definition
}

// NewRegistry creates an empty registry. prefix, when non-empty, is
// prepended to every registered name.
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		defs:   make(map[string]*Definition),
	}
}

// Register adds a definition under its qualified name and renames the
// definition to that name, so anything rendering it afterwards emits the
// qualified form. Registering a name that already exists returns a
// NameCollisionError and leaves the existing entry untouched.
func (r *Registry) Register(def *Definition) error {
	name := r.Qualify(def.Name)
	if _, exists := r.defs[name]; exists {
		return &spec.NameCollisionError{Name: name}
	}
	def.Name = name
	r.defs[name] = def
	return nil
}

// Lookup returns the definition registered under the qualified form of
// name.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	def, ok := r.defs[r.Qualify(name)]
	return def, ok
}

// Qualify returns the registry-qualified form of a type name.
func (r *Registry) Qualify(name string) string {
	if r.prefix == "" {
		return name
	}
	return r.prefix + name
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
