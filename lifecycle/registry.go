// Package lifecycle provides ordered bring-up and tear-down of the
// auxiliary facilities the front-end depends on, keyed by facility kind.
// Callers decide the order; the registry only dispatches.
package lifecycle

import (
	"fmt"
	"sync"
)

// Kind identifies a registered facility
type Kind string

const (
	// KindLogging is the log facility; it comes up first and goes
	// down last
	KindLogging Kind = "logging"

	// KindResources is the string-resource catalog facility
	KindResources Kind = "resources"
)

// Module is a facility with explicit bring-up and tear-down steps
type Module interface {
	// Kind returns the facility kind this module provides
	Kind() Kind

	// BringUp makes the facility usable
	BringUp() error

	// TearDown releases the facility
	TearDown() error
}

// ModuleFunc adapts a pair of functions into a Module
func ModuleFunc(kind Kind, up, down func() error) Module {
	return &funcModule{kind: kind, up: up, down: down}
}

type funcModule struct {
	kind Kind
	up   func() error
	down func() error
}

func (m *funcModule) Kind() Kind { return m.kind }

func (m *funcModule) BringUp() error {
	if m.up == nil {
		return nil
	}
	return m.up()
}

func (m *funcModule) TearDown() error {
	if m.down == nil {
		return nil
	}
	return m.down()
}

// Registry manages facility modules
type Registry struct {
	modules map[Kind]Module
	mu      sync.RWMutex
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[Kind]Module),
	}
}

// Register adds a module; registering the same kind twice is an error
func (r *Registry) Register(m Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kind := m.Kind()
	if _, ok := r.modules[kind]; ok {
		return fmt.Errorf("facility %q already registered", kind)
	}
	r.modules[kind] = m
	return nil
}

// BringUp starts the facility of the given kind
func (r *Registry) BringUp(kind Kind) error {
	m, err := r.lookup(kind)
	if err != nil {
		return err
	}
	if err := m.BringUp(); err != nil {
		return fmt.Errorf("failed to bring up facility %q: %w", kind, err)
	}
	return nil
}

// TearDown stops the facility of the given kind
func (r *Registry) TearDown(kind Kind) error {
	m, err := r.lookup(kind)
	if err != nil {
		return err
	}
	if err := m.TearDown(); err != nil {
		return fmt.Errorf("failed to tear down facility %q: %w", kind, err)
	}
	return nil
}

// Kinds returns the kinds currently registered
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.modules))
	for kind := range r.modules {
		kinds = append(kinds, kind)
	}
	return kinds
}

func (r *Registry) lookup(kind Kind) (Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.modules[kind]
	if !ok {
		return nil, fmt.Errorf("no facility registered for kind %q", kind)
	}
	return m, nil
}
