package keybinding

import (
	"errors"
	"testing"
)

func TestBuiltinContexts(t *testing.T) {
	r := NewContextRegistry()

	noop, ok := r.Get(NoopContextID)
	if !ok {
		t.Fatal("NOOP context not present")
	}
	if !noop.IsEnabled(Binding{}) {
		t.Error("NOOP context should always be enabled")
	}

	def, ok := r.Get(DefaultContextID)
	if !ok {
		t.Fatal("DEFAULT context not present")
	}
	if def.IsEnabled(Binding{}) {
		t.Error("DEFAULT context should always be disabled")
	}
}

func TestRegisterContext(t *testing.T) {
	r := NewContextRegistry()

	err := r.Register(Context{
		ID:        "editor.focus",
		IsEnabled: func(Binding) bool { return true },
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, ok := r.Get("editor.focus"); !ok {
		t.Error("Get() did not find registered context")
	}
	if _, ok := r.Get("no.such.context"); ok {
		t.Error("Get() found unregistered context")
	}
}

func TestRegisterDuplicateContext(t *testing.T) {
	r := NewContextRegistry()

	ctx := Context{ID: "panel.visible", IsEnabled: func(Binding) bool { return true }}
	if err := r.Register(ctx); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := r.Register(ctx); !errors.Is(err, ErrDuplicateContext) {
		t.Errorf("duplicate Register() error = %v, want ErrDuplicateContext", err)
	}
}

func TestRegisterBuiltinCollision(t *testing.T) {
	r := NewContextRegistry()

	err := r.Register(Context{ID: NoopContextID, IsEnabled: func(Binding) bool { return true }})
	if !errors.Is(err, ErrDuplicateContext) {
		t.Errorf("Register(%s) error = %v, want ErrDuplicateContext", NoopContextID, err)
	}
}

func TestRegisterEmptyContextID(t *testing.T) {
	r := NewContextRegistry()
	if err := r.Register(Context{}); err == nil {
		t.Error("Register() with empty id succeeded, want error")
	}
}

func TestRegisterMultiple(t *testing.T) {
	r := NewContextRegistry()

	enabled := func(Binding) bool { return true }
	err := r.Register(
		Context{ID: "a.context", IsEnabled: enabled},
		Context{ID: "b.context", IsEnabled: enabled},
	)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	for _, id := range []string{"a.context", "b.context"} {
		if _, ok := r.Get(id); !ok {
			t.Errorf("Get(%q) did not find context", id)
		}
	}
}
