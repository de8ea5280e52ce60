package keycode

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		code KeyCode
		want string
	}{
		{KeyCode{Key: KeyRune, Rune: 'a'}, "a"},
		{KeyCode{Key: KeyRune, Rune: 's', Mods: ModCtrl}, "ctrl+s"},
		{KeyCode{Key: KeyRune, Rune: 'a', Mods: ModCtrl | ModShift}, "ctrl+shift+a"},
		{KeyCode{Key: KeyRune, Rune: 'p', Mods: ModCtrl | ModMeta | ModShift | ModAlt}, "ctrl+meta+shift+alt+p"},
		{KeyCode{Key: KeyEnter}, "enter"},
		{KeyCode{Key: KeyF4, Mods: ModAlt}, "alt+f4"},
		{KeyCode{Key: KeySpace, Mods: ModCtrl}, "ctrl+space"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	setHost(t, "linux")

	codes := []KeyCode{
		{Key: KeyRune, Rune: 'a'},
		{Key: KeyRune, Rune: 's', Mods: ModCtrl},
		{Key: KeyRune, Rune: 'z', Mods: ModCtrl | ModShift | ModAlt},
		{Key: KeyRune, Rune: '/', Mods: ModCtrl},
		{Key: KeyEnter},
		{Key: KeyTab, Mods: ModShift},
		{Key: KeyF12, Mods: ModMeta},
		{Key: KeySpace, Mods: ModCtrl},
		{Key: KeyPageDown, Mods: ModCtrl | ModAlt},
	}

	for _, kc := range codes {
		t.Run(kc.String(), func(t *testing.T) {
			parsed, err := Parse(kc.String())
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", kc.String(), err)
			}
			if !parsed.Equals(kc) {
				t.Errorf("Parse(String()) = %v, want %v", parsed, kc)
			}
		})
	}
}

func TestEquals(t *testing.T) {
	a := KeyCode{Key: KeyRune, Rune: 's', Mods: ModCtrl | ModShift}
	b := KeyCode{Key: KeyRune, Rune: 's', Mods: ModShift | ModCtrl}
	if !a.Equals(b) {
		t.Error("modifier order should not affect equality")
	}

	c := KeyCode{Key: KeyRune, Rune: 's', Mods: ModCtrl}
	if a.Equals(c) {
		t.Error("differing modifier sets compared equal")
	}

	d := KeyCode{Key: KeyRune, Rune: 't', Mods: ModCtrl | ModShift}
	if a.Equals(d) {
		t.Error("differing primary keys compared equal")
	}
}

func TestNewRuneNormalizes(t *testing.T) {
	got := NewRune('A', ModCtrl)
	want := KeyCode{Key: KeyRune, Rune: 'a', Mods: ModCtrl | ModShift}
	if !got.Equals(want) {
		t.Errorf("NewRune('A', ctrl) = %v, want %v", got, want)
	}

	if got := NewRune(' ', ModNone); got.Key != KeySpace {
		t.Errorf("NewRune(' ') = %v, want space key", got)
	}
}

func TestFromEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   *Event
		want KeyCode
	}{
		{"rune", NewRuneEvent('s', ModCtrl), KeyCode{Key: KeyRune, Rune: 's', Mods: ModCtrl}},
		{"uppercase rune", NewRuneEvent('A', ModNone), KeyCode{Key: KeyRune, Rune: 'a', Mods: ModShift}},
		{"special", NewSpecialEvent(KeyTab, ModNone), KeyCode{Key: KeyTab}},
		{"space rune", NewRuneEvent(' ', ModCtrl), KeyCode{Key: KeySpace, Mods: ModCtrl}},
		{"nil", nil, KeyCode{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromEvent(tt.ev); !got.Equals(tt.want) {
				t.Errorf("FromEvent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventFlags(t *testing.T) {
	ev := NewRuneEvent('s', ModCtrl)
	if ev.DefaultPrevented() || ev.PropagationStopped() {
		t.Fatal("new event should have no flags set")
	}

	ev.PreventDefault()
	ev.StopPropagation()
	if !ev.DefaultPrevented() {
		t.Error("DefaultPrevented() = false after PreventDefault")
	}
	if !ev.PropagationStopped() {
		t.Error("PropagationStopped() = false after StopPropagation")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mods Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "ctrl"},
		{ModAlt | ModCtrl, "ctrl+alt"},
		{ModShift | ModMeta | ModCtrl | ModAlt, "ctrl+meta+shift+alt"},
	}

	for _, tt := range tests {
		if got := tt.mods.String(); got != tt.want {
			t.Errorf("Modifier(%b).String() = %q, want %q", tt.mods, got, tt.want)
		}
	}
}

func TestModifierOps(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModShift)
	if !m.Has(ModCtrl) || !m.Has(ModShift) {
		t.Error("With did not set modifiers")
	}
	if m.Has(ModAlt) {
		t.Error("Has reported unset modifier")
	}
	if m.Without(ModCtrl).Has(ModCtrl) {
		t.Error("Without did not clear modifier")
	}
	if !ModNone.IsEmpty() {
		t.Error("ModNone.IsEmpty() = false")
	}
}
