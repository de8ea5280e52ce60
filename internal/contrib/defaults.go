package contrib

import (
	"github.com/dshills/keyscope/internal/keybinding"
)

// Defaults is the built-in contribution: the stock context set and the
// default-scope bindings every installation starts from. User and
// workspace keymaps layer on top of these.
type Defaults struct{}

// Name implements Contribution.
func (Defaults) Name() string { return "defaults" }

// RegisterContexts implements Contribution.
func (Defaults) RegisterContexts(registry *keybinding.ContextRegistry) error {
	return registry.Register(
		keybinding.Context{
			ID:        "editor.focused",
			IsEnabled: func(keybinding.Binding) bool { return true },
		},
		keybinding.Context{
			ID:        "panel.visible",
			IsEnabled: func(keybinding.Binding) bool { return true },
		},
	)
}

// RegisterKeybindings implements Contribution.
func (Defaults) RegisterKeybindings(registry *keybinding.Registry) {
	registry.RegisterKeybindings(
		keybinding.Binding{Command: "file.save", Keybinding: "ctrlcmd+s"},
		keybinding.Binding{Command: "file.open", Keybinding: "ctrlcmd+o"},
		keybinding.Binding{Command: "edit.undo", Keybinding: "ctrlcmd+z"},
		keybinding.Binding{Command: "edit.redo", Keybinding: "ctrlcmd+shift+z"},
		keybinding.Binding{Command: "edit.find", Keybinding: "ctrlcmd+f", Context: "editor.focused"},
		keybinding.Binding{Command: "panel.toggle", Keybinding: "ctrlcmd+b"},
		keybinding.Binding{Command: "panel.close", Keybinding: "escape", Context: "panel.visible"},
		keybinding.Binding{Command: keybinding.Passthrough, Keybinding: "ctrl+c"},
	)
}
