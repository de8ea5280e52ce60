// Package term adapts a tcell terminal screen to the key event model
// used by the dispatch registry.
package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyscope/internal/keycode"
)

// Terminal is a thin screen wrapper used by the interactive probe. It
// reads raw terminal key events and hands them out as dispatchable key
// events.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// New creates a terminal over the default tcell screen.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init puts the terminal into raw mode.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Init()
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// Clear erases the screen contents.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Clear()
}

// Print draws a string starting at the given cell.
func (t *Terminal) Print(x, y int, s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, r := range s {
		t.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// Show flushes pending drawing to the terminal.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Show()
}

// NextKey blocks until a translatable key event arrives. It returns
// false when the screen has been finalized.
func (t *Terminal) NextKey() (*keycode.Event, bool) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if translated := TranslateKey(ev); translated != nil {
				return translated, true
			}
		case *tcell.EventResize:
			t.mu.Lock()
			t.screen.Sync()
			t.mu.Unlock()
		case nil:
			return nil, false
		}
	}
}
