package keycode

import (
	"strings"
	"unicode"
)

// KeyCode is an immutable normalized representation of a physical key
// plus its modifier set. Two KeyCodes are equal iff the primary key and
// the full modifier set match exactly.
type KeyCode struct {
	// Key is the primary key. Character keys use KeyRune.
	Key Key

	// Rune holds the character for KeyRune codes, always lowercase.
	Rune rune

	// Mods is the modifier set.
	Mods Modifier
}

// New builds a KeyCode for a special key with the given modifiers.
func New(key Key, mods Modifier) KeyCode {
	return KeyCode{Key: key, Mods: mods}
}

// NewRune builds a KeyCode for a character key with the given modifiers.
// Uppercase characters are normalized to lowercase plus ModShift.
func NewRune(r rune, mods Modifier) KeyCode {
	if unicode.IsUpper(r) {
		r = unicode.ToLower(r)
		mods = mods.With(ModShift)
	}
	if r == ' ' {
		return KeyCode{Key: KeySpace, Mods: mods}
	}
	return KeyCode{Key: KeyRune, Rune: r, Mods: mods}
}

// FromEvent derives the normalized KeyCode for a live key event,
// independent of string parsing.
func FromEvent(ev *Event) KeyCode {
	if ev == nil {
		return KeyCode{}
	}
	if ev.Key == KeyRune {
		return NewRune(ev.Rune, ev.Modifiers)
	}
	return KeyCode{Key: ev.Key, Mods: ev.Modifiers}
}

// Equals reports structural equality over the primary key and the full
// modifier set.
func (k KeyCode) Equals(other KeyCode) bool {
	return k.Key == other.Key && k.Rune == other.Rune && k.Mods == other.Mods
}

// IsZero reports whether the KeyCode carries no key at all.
func (k KeyCode) IsZero() bool {
	return k.Key == KeyNone && k.Rune == 0 && k.Mods == ModNone
}

// String returns the canonical serialization: lowercase, "+"-joined,
// modifiers first in ctrl, meta, shift, alt order. The result parses
// back to an equal KeyCode.
func (k KeyCode) String() string {
	var parts []string
	if mods := k.Mods.String(); mods != "" {
		parts = strings.Split(mods, "+")
	}

	switch k.Key {
	case KeyRune:
		parts = append(parts, string(k.Rune))
	default:
		parts = append(parts, k.Key.String())
	}

	return strings.Join(parts, "+")
}
