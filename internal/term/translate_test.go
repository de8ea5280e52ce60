package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyscope/internal/keycode"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"plain rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), "a"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "alt+x"},
		{"meta rune", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModMeta), "meta+p"},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space"},
		{"ctrl letter unfolds", tcell.NewEventKey(tcell.KeyCtrlS, rune(tcell.KeyCtrlS), tcell.ModCtrl), "ctrl+s"},
		{"ctrl space", tcell.NewEventKey(tcell.KeyCtrlSpace, 0, tcell.ModCtrl), "ctrl+space"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "escape"},
		{"enter not ctrl+m", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "enter"},
		{"tab not ctrl+i", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), "tab"},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "backspace"},
		{"shift arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), "shift+up"},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "f5"},
		{"ctrl alt pagedown", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModCtrl|tcell.ModAlt), "ctrl+alt+pagedown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := TranslateKey(tt.ev)
			if ev == nil {
				t.Fatal("TranslateKey() = nil, want event")
			}
			if got := ev.String(); got != tt.want {
				t.Errorf("TranslateKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslateKeyUntranslatable(t *testing.T) {
	if ev := TranslateKey(tcell.NewEventKey(tcell.KeyPrint, 0, tcell.ModNone)); ev != nil {
		t.Errorf("TranslateKey(print) = %v, want nil", ev)
	}
}

func TestTranslateKeyRoundTripsThroughParse(t *testing.T) {
	ev := TranslateKey(tcell.NewEventKey(tcell.KeyCtrlB, rune(tcell.KeyCtrlB), tcell.ModCtrl))
	code := keycode.FromEvent(ev)

	parsed, err := keycode.Parse(code.String())
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", code.String(), err)
	}
	if !parsed.Equals(code) {
		t.Errorf("Parse(%q) = %v, want %v", code.String(), parsed, code)
	}
}
