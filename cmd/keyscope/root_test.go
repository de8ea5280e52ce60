package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/keyscope/internal/keybinding"
	"github.com/dshills/keyscope/internal/keycode"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestNewAppWiresScopesFromConfig(t *testing.T) {
	dir := t.TempDir()
	userKeymap := filepath.Join(dir, "user.json")
	writeFile(t, userKeymap, `[{"command":"file.save","keybinding":"ctrl+f5"}]`)
	writeFile(t, filepath.Join(dir, "keyscope.toml"), `
log_level = "error"
user_keymap = "`+userKeymap+`"
`)

	configPath = filepath.Join(dir, "keyscope.toml")
	defer func() { configPath = "keyscope.toml" }()

	var errOut bytes.Buffer
	a, err := newApp(&errOut)
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}

	// User scope carries the loaded keymap and shadows the default
	// binding for the same command.
	got := a.registry.KeybindingsForCommand("file.save")
	if len(got) != 1 || got[0].Keybinding != "ctrl+f5" {
		t.Errorf("KeybindingsForCommand(file.save) = %v, want the user binding", got)
	}

	// Every bound command resolves, so dispatch consumes its keystroke.
	code := keycode.MustParse("ctrl+f5")
	if candidates := a.registry.KeybindingsForKeyCode(code); len(candidates) == 0 {
		t.Error("user binding not reachable by key code")
	}
	if !a.commands.HasCommand("file.save") {
		t.Error("file.save not registered as a command")
	}
}

func TestNewAppExecutesThroughRegistry(t *testing.T) {
	configPath = filepath.Join(t.TempDir(), "absent.toml")
	defer func() { configPath = "keyscope.toml" }()

	var errOut bytes.Buffer
	a, err := newApp(&errOut)
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}

	var executed string
	a.onExecute = func(id string) { executed = id }

	ev := keycode.NewSpecialEvent(keycode.KeyEscape, keycode.ModNone)
	a.registry.Run(ev)

	// escape binds panel.close behind the panel.visible context, which
	// the built-in contribution keeps enabled.
	if executed != "panel.close" {
		t.Errorf("executed = %q, want panel.close", executed)
	}
	if !ev.DefaultPrevented() {
		t.Error("event not marked default-prevented after dispatch")
	}
	if got := a.registry.BindingsForScope(keybinding.ScopeUser); len(got) != 0 {
		t.Errorf("user scope = %v, want empty with no keymap configured", got)
	}
}
