// Package keycode models normalized key codes for keybinding dispatch.
//
// A KeyCode is an immutable value pairing a primary key with a modifier
// set. It serializes to a canonical lowercase "+"-joined string such as
// "ctrl+shift+a", and Parse accepts exactly that grammar plus the
// platform-dependent aliases cmd, option, and ctrlcmd.
//
// Parsing is platform-sensitive: ctrlcmd resolves to meta on Apple hosts
// and ctrl elsewhere, while cmd and option are rejected outright on
// non-Apple hosts. The alias tables are cached; ResetPlatformTables
// rebuilds them after platform detection changes.
//
// Round-trip invariant: for every valid KeyCode kc,
// Parse(kc.String()) yields a KeyCode equal to kc.
package keycode
