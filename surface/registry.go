// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"sort"
	"sync"
)

// Factory creates a new Surface with the given options.
type Factory func(opts Options) (Surface, error)

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// Registry maps surface kinds to factories.
//
// Example registration:
//
//	func init() {
//	    surface.Register("button", buttonFactory)
//	}
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a registry holding the built-in kinds.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register(KindLink, func(opts Options) (Surface, error) {
		return NewLink(opts), nil
	})
	r.Register(KindContainer, func(opts Options) (Surface, error) {
		return NewContainer(opts), nil
	})
	return r
}

// Register adds a kind to the global registry.
// Registering a kind that already exists replaces the previous factory.
func Register(kind string, factory Factory) {
	globalRegistry.Register(kind, factory)
}

// Unregister removes a kind from the global registry.
func Unregister(kind string) {
	globalRegistry.Unregister(kind)
}

// Kinds returns all kinds in the global registry, sorted.
func Kinds() []string {
	return globalRegistry.Kinds()
}

// New creates a surface of the given kind from the global registry.
func New(kind string, opts Options) (Surface, error) {
	return globalRegistry.New(kind, opts)
}

// Register adds a kind to this registry. A nil factory unregisters kind.
func (r *Registry) Register(kind string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if factory == nil {
		delete(r.factories, kind)
		return
	}
	r.factories[kind] = factory
}

// Unregister removes a kind from this registry.
func (r *Registry) Unregister(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, kind)
}

// Kinds returns all registered kinds, sorted.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// New creates a surface of the given kind.
func (r *Registry) New(kind string, opts Options) (Surface, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	factory, ok := r.factories[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, &KindNotFoundError{Kind: kind}
	}

	s, err := factory(opts)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrNilSurface
	}
	return s, nil
}

// Errors.
var (
	// ErrInvalidSize is returned for negative or non-finite dimensions.
	ErrInvalidSize = errors.New("surface: invalid size")

	// ErrNilSurface is returned when a factory returns neither a surface
	// nor an error.
	ErrNilSurface = errors.New("surface: factory returned nil surface")
)

// KindNotFoundError indicates a kind is not registered.
type KindNotFoundError struct {
	Kind string
}

func (e *KindNotFoundError) Error() string {
	return "surface: kind not found: " + e.Kind
}
