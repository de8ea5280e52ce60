package keybinding

// Binding maps a keystroke to a command, optionally gated by a context.
// Bindings are immutable once registered.
type Binding struct {
	// Command is the command identifier to execute.
	Command string

	// Keybinding is the keystroke string, e.g. "ctrl+shift+a".
	Keybinding string

	// Context is the optional context identifier gating this binding.
	// Empty means the binding is global.
	Context string
}

// Equals reports structural equality: command, keystroke, and context
// must all match. Used for collision and identity checks.
func (b Binding) Equals(other Binding) bool {
	return b.Command == other.Command &&
		b.Keybinding == other.Keybinding &&
		b.Context == other.Context
}

// HasContext reports whether the binding names a context.
func (b Binding) HasContext() bool {
	return b.Context != ""
}
