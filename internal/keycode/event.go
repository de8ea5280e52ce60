package keycode

import "time"

// Event represents a single key-down event as delivered by the host UI.
//
// The dispatch registry reads the default-prevented flag as an early exit
// and sets both flags as its output signal to the host.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time

	defaultPrevented   bool
	propagationStopped bool
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) *Event {
	return &Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) *Event {
	return &Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// PreventDefault marks the event's default action as suppressed.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether the default action is suppressed.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation marks the event as consumed.
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

// PropagationStopped reports whether the event has been consumed.
func (e *Event) PropagationStopped() bool {
	return e.propagationStopped
}

// String returns the canonical serialization of the event's key code.
func (e *Event) String() string {
	return FromEvent(e).String()
}
