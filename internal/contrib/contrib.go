// Package contrib fans out startup keybinding and context registration
// to an ordered list of contributors.
package contrib

import (
	"errors"
	"fmt"

	"github.com/dshills/keyscope/internal/keybinding"
)

// ErrAlreadyInitialized indicates the runner was initialized twice.
var ErrAlreadyInitialized = errors.New("contrib: contributions already initialized")

// Contribution supplies default-scope keybindings and contexts at
// startup. Each contribution is invoked exactly once, in order.
type Contribution interface {
	// Name identifies the contribution in logs and errors.
	Name() string

	// RegisterContexts registers the contribution's keybinding contexts.
	RegisterContexts(registry *keybinding.ContextRegistry) error

	// RegisterKeybindings registers the contribution's default bindings.
	RegisterKeybindings(registry *keybinding.Registry)
}

// Runner invokes an ordered list of contributions once during
// initialization. The registries expose only mutation methods; control
// flow lives here.
type Runner struct {
	contributions []Contribution
	initialized   bool
}

// NewRunner creates a runner over the given contributions, preserving
// order.
func NewRunner(contributions ...Contribution) *Runner {
	return &Runner{
		contributions: contributions,
	}
}

// Add appends contributions. Only valid before Initialize.
func (r *Runner) Add(contributions ...Contribution) error {
	if r.initialized {
		return ErrAlreadyInitialized
	}
	r.contributions = append(r.contributions, contributions...)
	return nil
}

// Initialize invokes every contribution once: contexts first, then
// keybindings, so bindings can reference contexts from any contributor.
// A duplicate context id is a programming-time fault and aborts
// initialization.
func (r *Runner) Initialize(registry *keybinding.Registry) error {
	if r.initialized {
		return ErrAlreadyInitialized
	}
	r.initialized = true

	for _, c := range r.contributions {
		if err := c.RegisterContexts(registry.Contexts()); err != nil {
			return fmt.Errorf("contrib: %s: %w", c.Name(), err)
		}
	}
	for _, c := range r.contributions {
		c.RegisterKeybindings(registry)
	}
	return nil
}
