package keybinding

import (
	"fmt"
	"strings"
)

// Scope is the priority tier a binding belongs to. Higher tiers
// override lower ones per command.
type Scope int

const (
	// ScopeDefault holds bindings contributed at startup.
	ScopeDefault Scope = iota

	// ScopeUser holds bindings loaded from user settings.
	ScopeUser

	// ScopeWorkspace holds bindings loaded from workspace settings.
	ScopeWorkspace

	// scopeEnd is the sentinel terminating the scope range.
	scopeEnd
)

// String returns the scope's name.
func (s Scope) String() string {
	switch s {
	case ScopeDefault:
		return "default"
	case ScopeUser:
		return "user"
	case ScopeWorkspace:
		return "workspace"
	default:
		return fmt.Sprintf("scope(%d)", s)
	}
}

// valid reports whether s is a real scope, not the sentinel.
func (s Scope) valid() bool {
	return s >= ScopeDefault && s < scopeEnd
}

// ParseScope maps a scope name to its Scope value.
func ParseScope(name string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "default":
		return ScopeDefault, nil
	case "user":
		return ScopeUser, nil
	case "workspace":
		return ScopeWorkspace, nil
	default:
		return 0, fmt.Errorf("keybinding: unknown scope %q", name)
	}
}
