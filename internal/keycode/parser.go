package keycode

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dshills/keyscope/internal/platform"
)

// ParseError describes a key specification that violates the grammar or
// uses a modifier alias unavailable on the current host.
type ParseError struct {
	// Spec is the full keystroke string that failed to parse.
	Spec string

	// Message describes what went wrong.
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("keycode: parsing %q: %s", e.Spec, e.Message)
}

func parseErr(spec, format string, args ...any) error {
	return &ParseError{Spec: spec, Message: fmt.Sprintf(format, args...)}
}

// appleOnlyAliases are modifier aliases that only resolve on Apple hosts.
var appleOnlyAliases = map[string]bool{
	"cmd":    true,
	"option": true,
}

var (
	tableMu    sync.Mutex
	modAliases map[string]Modifier
)

// modifierTable returns the platform-dependent modifier alias table,
// building it on first use.
func modifierTable() map[string]Modifier {
	tableMu.Lock()
	defer tableMu.Unlock()

	if modAliases == nil {
		modAliases = buildModifierTable(platform.IsApple())
	}
	return modAliases
}

func buildModifierTable(apple bool) map[string]Modifier {
	t := map[string]Modifier{
		"ctrl":  ModCtrl,
		"shift": ModShift,
		"alt":   ModAlt,
		"meta":  ModMeta,
	}
	if apple {
		t["cmd"] = ModMeta
		t["option"] = ModAlt
		t["ctrlcmd"] = ModMeta
	} else {
		t["ctrlcmd"] = ModCtrl
	}
	return t
}

// ResetPlatformTables discards the cached platform-dependent parse
// tables. Call after platform detection changes so the next Parse
// rebuilds them.
func ResetPlatformTables() {
	tableMu.Lock()
	modAliases = nil
	tableMu.Unlock()
}

// Parse parses a keystroke string like "ctrl+shift+a" into a KeyCode.
//
// The string is a "+"-joined list of tokens: zero or more modifiers
// followed by exactly one primary key. Recognized modifiers are ctrl,
// shift, alt, meta, plus the platform aliases cmd and option (Apple
// hosts only) and ctrlcmd (meta on Apple hosts, ctrl elsewhere).
// The primary key is a special key name ("enter", "f5", "pageup") or a
// single character. Tokens are case-insensitive.
//
// Failures return a *ParseError: an unrecognized token, an Apple-only
// alias on a non-Apple host, more than one primary key, or no primary
// key at all.
func Parse(keystroke string) (KeyCode, error) {
	spec := strings.TrimSpace(keystroke)
	if spec == "" {
		return KeyCode{}, parseErr(keystroke, "empty keystroke")
	}

	aliases := modifierTable()

	var mods Modifier
	primary := KeyCode{Key: KeyNone}
	havePrimary := false

	for _, raw := range strings.Split(spec, "+") {
		token := strings.ToLower(strings.TrimSpace(raw))
		if token == "" {
			return KeyCode{}, parseErr(keystroke, "empty token")
		}

		if mod, ok := aliases[token]; ok {
			mods = mods.With(mod)
			continue
		}
		if appleOnlyAliases[token] {
			return KeyCode{}, parseErr(keystroke, "modifier %q is only available on Apple hosts", token)
		}

		// Not a modifier: must be the primary key.
		code, ok := parsePrimary(token)
		if !ok {
			return KeyCode{}, parseErr(keystroke, "unrecognized token %q", token)
		}
		if havePrimary {
			return KeyCode{}, parseErr(keystroke, "multiple primary keys")
		}
		primary = code
		havePrimary = true
	}

	if !havePrimary {
		return KeyCode{}, parseErr(keystroke, "missing primary key")
	}

	primary.Mods = primary.Mods.With(mods)
	return primary, nil
}

// parsePrimary resolves a lowercase token to a primary key.
func parsePrimary(token string) (KeyCode, bool) {
	if key := KeyFromName(token); key != KeyNone {
		return KeyCode{Key: key}, true
	}
	if utf8.RuneCountInString(token) == 1 {
		r, _ := utf8.DecodeRuneInString(token)
		return NewRune(r, ModNone), true
	}
	return KeyCode{}, false
}

// MustParse parses a keystroke and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(keystroke string) KeyCode {
	code, err := Parse(keystroke)
	if err != nil {
		panic("invalid keystroke: " + keystroke + ": " + err.Error())
	}
	return code
}
