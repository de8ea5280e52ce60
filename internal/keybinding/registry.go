package keybinding

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/keyscope/internal/command"
	"github.com/dshills/keyscope/internal/keycode"
	"github.com/dshills/keyscope/internal/log"
)

// Passthrough is the reserved pseudo-command meaning "intentionally do
// nothing": the matched event is neither suppressed nor consumed and
// propagates to the host untouched.
const Passthrough = "passthrough"

// ErrCollision indicates a keystroke is already bound for the same
// context. Bindings with differing contexts may share a keystroke.
var ErrCollision = errors.New("keybinding: keystroke already bound in this context")

// CommandDirectory is the command lookup contract consumed during
// dispatch. The registry never executes a command except through the
// active handler returned here.
type CommandDirectory interface {
	// HasCommand reports whether id resolves to a known command.
	HasCommand(id string) bool

	// GetActiveHandler returns the executable handler for id, if any
	// handler is currently enabled.
	GetActiveHandler(id string) (command.Handler, bool)
}

// Registry owns per-scope ordered binding lists and resolves a physical
// keystroke to at most one command to execute.
//
// All registration and dispatch failures caused by malformed input are
// logged, never returned to the dispatch caller.
type Registry struct {
	mu       sync.RWMutex
	scopes   [][]Binding
	commands CommandDirectory
	contexts *ContextRegistry
	logger   *log.Logger
}

// NewRegistry creates a registry with all scopes empty.
func NewRegistry(commands CommandDirectory, contexts *ContextRegistry, logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Null
	}
	return &Registry{
		scopes:   make([][]Binding, scopeEnd),
		commands: commands,
		contexts: contexts,
		logger:   logger.WithComponent("keybinding"),
	}
}

// Contexts returns the context registry this registry consults.
func (r *Registry) Contexts() *ContextRegistry {
	return r.contexts
}

// RegisterKeybinding adds a binding to the DEFAULT scope. A malformed
// keystroke or a collision with an existing binding in the same context
// rejects the registration with a logged warning; the caller proceeds.
func (r *Registry) RegisterKeybinding(binding Binding) {
	if err := r.register(ScopeDefault, binding); err != nil {
		r.logger.Warn("rejected keybinding %q -> %s: %v", binding.Keybinding, binding.Command, err)
	}
}

// RegisterKeybindings adds each binding to the DEFAULT scope.
func (r *Registry) RegisterKeybindings(bindings ...Binding) {
	for _, b := range bindings {
		r.RegisterKeybinding(b)
	}
}

func (r *Registry) register(scope Scope, binding Binding) error {
	code, err := keycode.Parse(binding.Keybinding)
	if err != nil {
		return err
	}

	for _, existing := range r.KeybindingsForKeyCode(code) {
		if existing.Context == binding.Context {
			return fmt.Errorf("%w: %q already maps to %s", ErrCollision, binding.Keybinding, existing.Command)
		}
	}

	r.mu.Lock()
	r.scopes[scope] = append(r.scopes[scope], binding)
	r.mu.Unlock()
	return nil
}

// KeybindingsForCommand returns the command's bindings from the highest
// scope that has any, scanning WORKSPACE down to DEFAULT. A command's
// bindings in a lower scope are invisible once any higher scope binds
// it. Only commands still resolvable in the command directory count.
func (r *Registry) KeybindingsForCommand(commandID string) []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for scope := scopeEnd - 1; scope >= ScopeDefault; scope-- {
		var result []Binding
		for _, b := range r.scopes[scope] {
			if b.Command == commandID && r.commands.HasCommand(b.Command) {
				result = append(result, b)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return nil
}

// KeybindingsForKeyCode returns all unshadowed bindings matching the
// key code, scanning DEFAULT up to WORKSPACE, priority-sorted so that
// bindings with a resolvable context precede bindings without one
// (stable otherwise). Unparsable stored bindings are skipped with a
// logged warning.
func (r *Registry) KeybindingsForKeyCode(code keycode.KeyCode) []Binding {
	r.mu.RLock()

	var result []Binding
	for scope := ScopeDefault; scope < scopeEnd; scope++ {
		for _, b := range r.scopes[scope] {
			stored, err := keycode.Parse(b.Keybinding)
			if err != nil {
				r.logger.Warn("skipping unparsable keybinding %q for %s: %v", b.Keybinding, b.Command, err)
				continue
			}
			if !stored.Equals(code) {
				continue
			}
			if r.isShadowedLocked(scope, b) {
				continue
			}
			result = append(result, b)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		return r.contextResolvable(result[i]) && !r.contextResolvable(result[j])
	})
	return result
}

// IsKeybindingShadowed reports whether any more specific scope has a
// binding for the same command.
func (r *Registry) IsKeybindingShadowed(scope Scope, binding Binding) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isShadowedLocked(scope, binding)
}

// isShadowedLocked walks the bounded scope range above the given scope.
// Comparison is by command id only: a higher-scope binding for the same
// command shadows a lower-scope one even on a different keystroke,
// which is what gives higher scopes whole-command override semantics.
func (r *Registry) isShadowedLocked(scope Scope, binding Binding) bool {
	for higher := scope + 1; higher < scopeEnd; higher++ {
		for _, other := range r.scopes[higher] {
			if other.Command == binding.Command {
				return true
			}
		}
	}
	return false
}

// contextResolvable reports whether the binding carries a context id
// that resolves in the context registry.
func (r *Registry) contextResolvable(binding Binding) bool {
	if !binding.HasContext() {
		return false
	}
	_, ok := r.contexts.Get(binding.Context)
	return ok
}

// isEligible reports whether the binding may fire: either global, or
// its context resolves and its predicate evaluates true.
func (r *Registry) isEligible(binding Binding) bool {
	if !binding.HasContext() {
		return true
	}
	ctx, ok := r.contexts.Get(binding.Context)
	return ok && ctx.IsEnabled != nil && ctx.IsEnabled(binding)
}

// Run dispatches a key-down event. Events whose default is already
// prevented are ignored. The first context-eligible candidate in sorted
// order is the terminal choice: for the Passthrough pseudo-command the
// event is left untouched; for any other command the active handler
// executes if one exists, and the event is marked handled either way.
// If no candidate is eligible the event passes through unmodified.
func (r *Registry) Run(event *keycode.Event) {
	if event == nil || event.DefaultPrevented() {
		return
	}

	code := keycode.FromEvent(event)
	for _, b := range r.KeybindingsForKeyCode(code) {
		if !r.isEligible(b) {
			continue
		}
		if b.Command == Passthrough {
			return
		}

		if h, ok := r.commands.GetActiveHandler(b.Command); ok {
			if err := h.Execute(); err != nil {
				r.logger.Error("command %s failed: %v", b.Command, err)
			}
		} else {
			r.logger.Debug("no active handler for %s", b.Command)
		}

		event.PreventDefault()
		event.StopPropagation()
		return
	}
}

// SetKeymap replaces a scope's bindings wholesale. Every keystroke is
// validated up front; the first invalid entry discards the entire batch
// and resets the scope to empty, with a logged warning. Partial
// application never happens.
func (r *Registry) SetKeymap(scope Scope, bindings []Binding) {
	if err := r.setKeymap(scope, bindings); err != nil {
		r.logger.Warn("keymap for %s scope rejected: %v", scope, err)
	}
}

func (r *Registry) setKeymap(scope Scope, bindings []Binding) error {
	if !scope.valid() {
		return fmt.Errorf("keybinding: invalid scope %s", scope)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range bindings {
		if _, err := keycode.Parse(b.Keybinding); err != nil {
			r.scopes[scope] = nil
			return fmt.Errorf("invalid keybinding %q for %s: %w", b.Keybinding, b.Command, err)
		}
	}

	r.scopes[scope] = append([]Binding(nil), bindings...)
	return nil
}

// ResetKeybindingsForScope clears one scope.
func (r *Registry) ResetKeybindingsForScope(scope Scope) {
	if !scope.valid() {
		return
	}
	r.mu.Lock()
	r.scopes[scope] = nil
	r.mu.Unlock()
}

// ResetKeybindings clears all scopes above DEFAULT.
func (r *Registry) ResetKeybindings() {
	r.mu.Lock()
	for scope := ScopeUser; scope < scopeEnd; scope++ {
		r.scopes[scope] = nil
	}
	r.mu.Unlock()
}

// BindingsForScope returns a copy of a scope's bindings in insertion
// order.
func (r *Registry) BindingsForScope(scope Scope) []Binding {
	if !scope.valid() {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Binding(nil), r.scopes[scope]...)
}
