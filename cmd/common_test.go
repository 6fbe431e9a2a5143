package cmd

import (
	"testing"
	"time"

	"github.com/Digni/user-idle/internal/config"
	"github.com/Digni/user-idle/internal/idle"
	"github.com/Digni/user-idle/internal/logging"
)

type fakeQuerier struct {
	name string
	idle time.Duration
	err  error
}

func (f fakeQuerier) Name() string { return f.name }

func (f fakeQuerier) IdleTime() (time.Duration, error) { return f.idle, f.err }

type lookupCall struct {
	name string
	opts idle.Options
}

// stubCommandSeams swaps config loading, backend lookup and logging for the
// duration of t, and returns the recorded lookups.
func stubCommandSeams(t *testing.T, cfg config.Config, q idle.Querier) *[]lookupCall {
	t.Helper()

	origLoad := loadConfigForCommand
	origLookup := lookupBackend
	origBootstrap := commandLoggingBootstrap
	origBackend, origFormat, origThreshold := backendFlag, formatFlag, checkThreshold
	t.Cleanup(func() {
		loadConfigForCommand = origLoad
		lookupBackend = origLookup
		commandLoggingBootstrap = origBootstrap
		backendFlag, formatFlag, checkThreshold = origBackend, origFormat, origThreshold
	})

	backendFlag, formatFlag, checkThreshold = "", "", 0

	var calls []lookupCall
	loadConfigForCommand = func() (config.LoadResult, error) {
		return config.LoadResult{Config: cfg, Source: config.SourceSelection{Type: config.SourceDefaults}}, nil
	}
	lookupBackend = func(name string, opts idle.Options) (idle.Querier, error) {
		calls = append(calls, lookupCall{name: name, opts: opts})
		return q, nil
	}
	commandLoggingBootstrap = func(config.LoggingConfig, logging.Role) error { return nil }

	return &calls
}

func TestNewQuerier_OverrideAndOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Backend = "x11"
	cfg.DBus.TimeoutMillis = 750
	cfg.X11.Display = ":7"
	calls := stubCommandSeams(t, cfg, fakeQuerier{name: "dbus"})

	if _, err := newQuerier(cfg, ""); err != nil {
		t.Fatalf("newQuerier() error = %v", err)
	}
	if _, err := newQuerier(cfg, "dbus"); err != nil {
		t.Fatalf("newQuerier(override) error = %v", err)
	}

	if len(*calls) != 2 {
		t.Fatalf("lookup calls = %d, want 2", len(*calls))
	}
	if got := (*calls)[0].name; got != "x11" {
		t.Fatalf("configured lookup name = %q, want %q", got, "x11")
	}
	if got := (*calls)[1].name; got != "dbus" {
		t.Fatalf("override lookup name = %q, want %q", got, "dbus")
	}
	want := idle.Options{DBusTimeout: 750 * time.Millisecond, Display: ":7"}
	if got := (*calls)[0].opts; got != want {
		t.Fatalf("lookup options = %+v, want %+v", got, want)
	}
}
