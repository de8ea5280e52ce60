package command

import (
	"errors"
	"testing"
)

// toggleHandler is a handler whose enablement can be flipped in tests.
type toggleHandler struct {
	enabled bool
	calls   int
}

func (h *toggleHandler) IsEnabled() bool { return h.enabled }
func (h *toggleHandler) Execute() error {
	h.calls++
	return nil
}

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Command{ID: "file.save", Label: "Save File"}, HandlerFunc(func() error { return nil })); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	cmd, ok := r.GetCommand("file.save")
	if !ok {
		t.Fatal("GetCommand() did not find registered command")
	}
	if cmd.Label != "Save File" {
		t.Errorf("Label = %q, want %q", cmd.Label, "Save File")
	}
	if !r.HasCommand("file.save") {
		t.Error("HasCommand() = false for registered command")
	}
	if r.HasCommand("file.missing") {
		t.Error("HasCommand() = true for unknown command")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Command{ID: "edit.copy"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	err := r.Register(Command{ID: "edit.copy"})
	if !errors.Is(err, ErrDuplicateCommand) {
		t.Errorf("second Register() error = %v, want ErrDuplicateCommand", err)
	}
}

func TestRegisterEmptyID(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Command{}); err == nil {
		t.Error("Register() with empty id succeeded, want error")
	}
}

func TestGetActiveHandler(t *testing.T) {
	r := NewRegistry()
	disabled := &toggleHandler{enabled: false}
	enabled := &toggleHandler{enabled: true}

	if err := r.Register(Command{ID: "view.toggle"}, disabled, enabled); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	h, ok := r.GetActiveHandler("view.toggle")
	if !ok {
		t.Fatal("GetActiveHandler() found no handler")
	}
	if h != Handler(enabled) {
		t.Error("GetActiveHandler() returned disabled handler")
	}

	enabled.enabled = false
	if _, ok := r.GetActiveHandler("view.toggle"); ok {
		t.Error("GetActiveHandler() returned handler while all disabled")
	}

	if _, ok := r.GetActiveHandler("no.such"); ok {
		t.Error("GetActiveHandler() returned handler for unknown command")
	}
}

func TestAddHandler(t *testing.T) {
	r := NewRegistry()
	if err := r.AddHandler("missing", HandlerFunc(func() error { return nil })); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("AddHandler() error = %v, want ErrUnknownCommand", err)
	}

	if err := r.Register(Command{ID: "nav.back"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.AddHandler("nav.back", HandlerFunc(func() error { return nil })); err != nil {
		t.Errorf("AddHandler() error = %v", err)
	}
	if _, ok := r.GetActiveHandler("nav.back"); !ok {
		t.Error("GetActiveHandler() found no handler after AddHandler")
	}
}
