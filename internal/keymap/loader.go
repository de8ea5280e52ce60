// Package keymap loads persisted keybinding records and the keyscope
// application configuration, and reloads keymap files on change.
package keymap

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/dshills/keyscope/internal/keybinding"
	"github.com/dshills/keyscope/internal/log"
)

// Record is the persisted form of a keybinding, one JSON object per
// binding. A keymap file is a JSON array of records.
type Record struct {
	Command    string `json:"command"`
	Keybinding string `json:"keybinding"`
	Context    string `json:"context,omitempty"`
}

// Binding converts the record to a registry binding.
func (r Record) Binding() keybinding.Binding {
	return keybinding.Binding{
		Command:    r.Command,
		Keybinding: r.Keybinding,
		Context:    r.Context,
	}
}

// Loader applies persisted keymap files to a keybinding registry.
// Each applied batch gets a generation id so reloads are traceable in
// logs.
type Loader struct {
	registry *keybinding.Registry
	logger   *log.Logger
}

// NewLoader creates a loader targeting the given registry.
func NewLoader(registry *keybinding.Registry, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Null
	}
	return &Loader{
		registry: registry,
		logger:   logger.WithComponent("keymap"),
	}
}

// LoadReader decodes a JSON array of records and replaces the scope's
// keymap wholesale. A decode failure resets the scope to empty so no
// partial keymap is ever active.
func (l *Loader) LoadReader(scope keybinding.Scope, r io.Reader) error {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		l.registry.ResetKeybindingsForScope(scope)
		return fmt.Errorf("keymap: decoding %s keymap: %w", scope, err)
	}

	bindings := make([]keybinding.Binding, 0, len(records))
	for _, rec := range records {
		bindings = append(bindings, rec.Binding())
	}

	generation := uuid.NewString()
	l.registry.SetKeymap(scope, bindings)
	l.logger.Info("applied %s keymap: %d bindings (generation %s)", scope, len(bindings), generation)
	return nil
}

// LoadFile loads a keymap file into a scope. A missing file clears the
// scope and is not an error.
func (l *Loader) LoadFile(scope keybinding.Scope, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.registry.ResetKeybindingsForScope(scope)
			return nil
		}
		return fmt.Errorf("keymap: opening %s keymap: %w", scope, err)
	}
	defer f.Close()

	return l.LoadReader(scope, f)
}
