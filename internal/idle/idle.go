// Package idle reports how long the user has gone without keyboard or mouse
// input.
//
// Each supported platform compiles one default backend:
//
//	linux          XScreenSaver extension (or the session-bus screensavers with -tags dbus)
//	darwin (cgo)   IOKit HIDIdleTime
//	darwin         ioreg HIDIdleTime
//	windows        GetLastInputInfo
//
// Every query opens and releases its own native handles, so calls are
// independent and safe from multiple goroutines.
package idle

import "time"

// Querier reads the current idle time from one native source.
type Querier interface {
	// Name identifies the backend, e.g. "x11" or "iokit".
	Name() string
	// IdleTime returns the time since the last user input.
	IdleTime() (time.Duration, error)
}

// Duration returns how long the user has been idle (no keyboard/mouse input)
// using the backend compiled in for this platform.
//
// A failure never means zero idle time; callers must treat it as unknown.
func Duration() (time.Duration, error) {
	return Default().IdleTime()
}

// Default returns the backend selected at build time for this platform.
func Default() Querier {
	for _, b := range platformBackends() {
		if b.name == defaultBackend {
			return b.build(Options{})
		}
	}
	return unsupported{}
}
