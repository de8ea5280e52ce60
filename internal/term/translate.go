package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyscope/internal/keycode"
)

// specialKeys maps tcell special keys to our key identifiers.
var specialKeys = map[tcell.Key]keycode.Key{
	tcell.KeyEscape:     keycode.KeyEscape,
	tcell.KeyEnter:      keycode.KeyEnter,
	tcell.KeyTab:        keycode.KeyTab,
	tcell.KeyBackspace:  keycode.KeyBackspace,
	tcell.KeyBackspace2: keycode.KeyBackspace,
	tcell.KeyDelete:     keycode.KeyDelete,
	tcell.KeyInsert:     keycode.KeyInsert,
	tcell.KeyHome:       keycode.KeyHome,
	tcell.KeyEnd:        keycode.KeyEnd,
	tcell.KeyPgUp:       keycode.KeyPageUp,
	tcell.KeyPgDn:       keycode.KeyPageDown,
	tcell.KeyUp:         keycode.KeyUp,
	tcell.KeyDown:       keycode.KeyDown,
	tcell.KeyLeft:       keycode.KeyLeft,
	tcell.KeyRight:      keycode.KeyRight,
	tcell.KeyF1:         keycode.KeyF1,
	tcell.KeyF2:         keycode.KeyF2,
	tcell.KeyF3:         keycode.KeyF3,
	tcell.KeyF4:         keycode.KeyF4,
	tcell.KeyF5:         keycode.KeyF5,
	tcell.KeyF6:         keycode.KeyF6,
	tcell.KeyF7:         keycode.KeyF7,
	tcell.KeyF8:         keycode.KeyF8,
	tcell.KeyF9:         keycode.KeyF9,
	tcell.KeyF10:        keycode.KeyF10,
	tcell.KeyF11:        keycode.KeyF11,
	tcell.KeyF12:        keycode.KeyF12,
}

// TranslateKey converts a tcell key event into a dispatchable key event.
// Returns nil for keys the binding model has no representation for.
func TranslateKey(ev *tcell.EventKey) *keycode.Event {
	mods := translateMods(ev.Modifiers())

	k := ev.Key()
	if k == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return keycode.NewSpecialEvent(keycode.KeySpace, mods)
		}
		return keycode.NewRuneEvent(r, mods)
	}

	// Named keys first: enter, tab, and backspace share code points with
	// control characters and must not be unfolded as ctrl+letter.
	if key, ok := specialKeys[k]; ok {
		return keycode.NewSpecialEvent(key, mods)
	}

	// Terminals fold ctrl+letter into a control character; unfold it
	// back into a rune plus the ctrl modifier.
	switch {
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return keycode.NewRuneEvent(r, mods.With(keycode.ModCtrl))
	case k == tcell.KeyCtrlSpace:
		return keycode.NewSpecialEvent(keycode.KeySpace, mods.With(keycode.ModCtrl))
	}
	return nil
}

func translateMods(m tcell.ModMask) keycode.Modifier {
	var mods keycode.Modifier
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(keycode.ModCtrl)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(keycode.ModMeta)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(keycode.ModShift)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(keycode.ModAlt)
	}
	return mods
}
