// Package keybinding resolves physical keystrokes to commands through
// scoped, context-gated binding tables.
//
// Bindings live in three priority scopes: default < user < workspace.
// Default-scope bindings are contributed once at startup; user and
// workspace scopes are replaced wholesale when a keymap loads and
// cleared on reset. No binding is ever deleted individually.
//
// A keyboard event enters through Registry.Run, is normalized to a
// keycode.KeyCode, matched against every scope, filtered by shadowing
// (a command bound in a higher scope hides all of its lower-scope
// bindings), priority-sorted (contextual bindings first), and the first
// context-eligible candidate wins. The chosen binding's active handler
// executes through the command directory, and the event is marked
// handled — unless the binding names the Passthrough pseudo-command, in
// which case the event propagates untouched.
//
// Dispatch is single-threaded and synchronous: everything runs on the
// host's event-handling thread, and candidate evaluation stops at the
// first eligible binding.
//
// Malformed keystroke strings never surface as errors to the dispatch
// caller; they degrade to logged warnings and the binding is ignored.
package keybinding
