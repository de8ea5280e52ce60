// Package command provides the command directory consumed by keybinding
// dispatch: command registration plus active-handler lookup.
package command

import (
	"errors"
	"fmt"
	"sync"
)

// Registry errors.
var (
	// ErrDuplicateCommand indicates a command id is already registered.
	ErrDuplicateCommand = errors.New("command: duplicate command id")

	// ErrUnknownCommand indicates a command id is not registered.
	ErrUnknownCommand = errors.New("command: unknown command id")
)

// Command describes a registered command.
type Command struct {
	// ID is the unique command identifier, e.g. "file.save".
	ID string

	// Label is the human-readable name shown in UI surfaces.
	Label string
}

// Handler executes a command. A command may have several handlers; the
// first enabled one is the active handler.
type Handler interface {
	// IsEnabled reports whether the handler can execute right now.
	IsEnabled() bool

	// Execute runs the command.
	Execute() error
}

// HandlerFunc adapts a function to the Handler interface.
// A HandlerFunc is always enabled.
type HandlerFunc func() error

// IsEnabled implements Handler.
func (f HandlerFunc) IsEnabled() bool { return true }

// Execute implements Handler.
func (f HandlerFunc) Execute() error { return f() }

// Registry holds commands and their handlers.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
	handlers map[string][]Handler
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
		handlers: make(map[string][]Handler),
	}
}

// Register adds a command with its handlers.
// Registering an id twice is an error.
func (r *Registry) Register(cmd Command, handlers ...Handler) error {
	if cmd.ID == "" {
		return fmt.Errorf("command: empty command id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[cmd.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, cmd.ID)
	}

	r.commands[cmd.ID] = cmd
	r.handlers[cmd.ID] = append(r.handlers[cmd.ID], handlers...)
	return nil
}

// AddHandler registers an additional handler for an existing command.
func (r *Registry) AddHandler(id string, h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[id]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	r.handlers[id] = append(r.handlers[id], h)
	return nil
}

// GetCommand returns the command for an id.
func (r *Registry) GetCommand(id string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.commands[id]
	return cmd, ok
}

// HasCommand reports whether an id resolves to a registered command.
func (r *Registry) HasCommand(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.commands[id]
	return ok
}

// GetActiveHandler returns the first enabled handler for a command.
func (r *Registry) GetActiveHandler(id string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.handlers[id] {
		if h.IsEnabled() {
			return h, true
		}
	}
	return nil, false
}

// Commands returns all registered commands.
func (r *Registry) Commands() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}
	return result
}
