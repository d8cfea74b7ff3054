// Package handlers maps command names to their handlers for the
// interactive loop.
package handlers

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Handler executes one named command
type Handler interface {
	// Name returns the command name this handler responds to
	Name() string

	// Synopsis returns a one-line description for help output
	Synopsis() string

	// Execute runs the command with the remaining line fields
	Execute(ctx context.Context, args []string) error
}

// HandlerFunc adapts a function into a Handler
func HandlerFunc(name, synopsis string, fn func(ctx context.Context, args []string) error) Handler {
	return &funcHandler{name: name, synopsis: synopsis, fn: fn}
}

type funcHandler struct {
	name     string
	synopsis string
	fn       func(ctx context.Context, args []string) error
}

func (h *funcHandler) Name() string     { return h.name }
func (h *funcHandler) Synopsis() string { return h.synopsis }

func (h *funcHandler) Execute(ctx context.Context, args []string) error {
	return h.fn(ctx, args)
}

// Registry manages command handlers
type Registry struct {
	handlers map[string]Handler
	mu       sync.RWMutex
}

// NewRegistry creates an empty handler registry
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register registers a handler under its name, replacing any previous
// handler with the same name
func (r *Registry) Register(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[h.Name()] = h
}

// Get retrieves a handler by command name
func (r *Registry) Get(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the registered command names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch executes the handler registered for name
func (r *Registry) Dispatch(ctx context.Context, name string, args []string) error {
	h, ok := r.Get(name)
	if !ok {
		return fmt.Errorf("no handler for command: %s", name)
	}
	return h.Execute(ctx, args)
}
