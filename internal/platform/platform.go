// Package platform detects the host operating system for key parsing.
//
// Modifier aliases like "cmd", "option", and "ctrlcmd" resolve differently
// on Apple hosts than elsewhere, so the key code parser consults this
// package at parse time. Detection is cached; Reset clears the cache so a
// changed probe takes effect on the next query.
package platform

import (
	"runtime"
	"sync"
)

// Probe reports the host operating system identifier.
// Identifiers follow GOOS conventions ("darwin", "linux", "windows").
type Probe interface {
	OS() (string, error)
}

// ProbeFunc adapts a function to the Probe interface.
type ProbeFunc func() (string, error)

// OS implements Probe.
func (f ProbeFunc) OS() (string, error) { return f() }

// GoosProbe reports the compile-time GOOS value.
type GoosProbe struct{}

// OS implements Probe.
func (GoosProbe) OS() (string, error) { return runtime.GOOS, nil }

var (
	mu       sync.Mutex
	probe    Probe = GoosProbe{}
	cached   string
	resolved bool
)

// SetProbe replaces the detection probe and clears the cached result.
func SetProbe(p Probe) {
	mu.Lock()
	defer mu.Unlock()
	if p == nil {
		p = GoosProbe{}
	}
	probe = p
	resolved = false
	cached = ""
}

// Reset clears the cached detection result.
// The next call to OS or IsApple re-runs the probe.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	resolved = false
	cached = ""
}

// OS returns the detected host operating system identifier.
// Falls back to runtime.GOOS if the probe fails.
func OS() string {
	mu.Lock()
	defer mu.Unlock()

	if resolved {
		return cached
	}

	os, err := probe.OS()
	if err != nil || os == "" {
		os = runtime.GOOS
	}
	cached = os
	resolved = true
	return cached
}

// IsApple reports whether the host is an Apple operating system.
func IsApple() bool {
	switch OS() {
	case "darwin", "ios":
		return true
	}
	return false
}
