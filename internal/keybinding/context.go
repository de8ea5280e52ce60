package keybinding

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDuplicateContext indicates a context id was registered twice.
// This is a programming-time contract violation, not a recoverable
// runtime condition; callers at startup should treat it as fatal.
var ErrDuplicateContext = errors.New("keybinding: duplicate context id")

// Built-in context identifiers, always present in a ContextRegistry.
const (
	// NoopContextID names the built-in context that is always enabled.
	NoopContextID = "noop.context"

	// DefaultContextID names the built-in context that is always disabled.
	DefaultContextID = "default.context"
)

// Context is a named predicate gating whether a matched binding is
// currently eligible to fire.
type Context struct {
	// ID is the unique context identifier.
	ID string

	// IsEnabled reports whether the binding may fire right now.
	IsEnabled func(binding Binding) bool
}

// ContextRegistry holds named keybinding contexts.
type ContextRegistry struct {
	mu       sync.RWMutex
	contexts map[string]Context
}

// NewContextRegistry creates a registry with the built-in NOOP and
// DEFAULT contexts already present.
func NewContextRegistry() *ContextRegistry {
	r := &ContextRegistry{
		contexts: make(map[string]Context),
	}
	r.contexts[NoopContextID] = Context{
		ID:        NoopContextID,
		IsEnabled: func(Binding) bool { return true },
	}
	r.contexts[DefaultContextID] = Context{
		ID:        DefaultContextID,
		IsEnabled: func(Binding) bool { return false },
	}
	return r
}

// Register inserts each context by id. An already-present id fails with
// ErrDuplicateContext; contexts preceding the duplicate stay registered.
func (r *ContextRegistry) Register(contexts ...Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ctx := range contexts {
		if ctx.ID == "" {
			return fmt.Errorf("keybinding: empty context id")
		}
		if _, exists := r.contexts[ctx.ID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateContext, ctx.ID)
		}
		r.contexts[ctx.ID] = ctx
	}
	return nil
}

// Get returns the context for an id.
func (r *ContextRegistry) Get(id string) (Context, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctx, ok := r.contexts[id]
	return ctx, ok
}
