package idle

import (
	"fmt"
	"strings"
	"time"
)

// Options configures backends built by Lookup. Zero values select each
// backend's own defaults.
type Options struct {
	// DBusTimeout bounds each GetActiveTime call.
	DBusTimeout time.Duration
	// Display overrides $DISPLAY for the X11 backend.
	Display string
}

type backend struct {
	name  string
	build func(Options) Querier
}

// Backends lists the backend names compiled for this platform, default first.
func Backends() []string {
	entries := platformBackends()
	names := make([]string, 0, len(entries))
	for _, b := range entries {
		names = append(names, b.name)
	}
	return names
}

// DefaultBackend returns the name of the backend selected at build time.
func DefaultBackend() string {
	return defaultBackend
}

// Lookup returns the named backend. An empty name or "auto" selects the
// build-time default.
func Lookup(name string, opts Options) (Querier, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "auto" {
		name = defaultBackend
	}

	for _, b := range platformBackends() {
		if b.name == name {
			return b.build(opts), nil
		}
	}

	return nil, fmt.Errorf("unknown idle backend %q (available: %s)", name, strings.Join(Backends(), ", "))
}
