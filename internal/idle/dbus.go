package idle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultDBusTimeout bounds a single GetActiveTime call.
const DefaultDBusTimeout = 5 * time.Second

// Screensaver identifies a screensaver service on the session bus.
type Screensaver struct {
	Service   string
	Path      string
	Interface string
	// Unit is the unit of the service's GetActiveTime reply.
	Unit time.Duration
}

// Screensavers is the probe order used by the D-Bus backend.
var Screensavers = []Screensaver{
	{
		Service:   "org.freedesktop.ScreenSaver",
		Path:      "/org/freedesktop/ScreenSaver",
		Interface: "org.freedesktop.ScreenSaver",
		Unit:      time.Millisecond,
	},
	{
		Service:   "org.gnome.ScreenSaver",
		Path:      "/org/gnome/ScreenSaver",
		Interface: "org.gnome.ScreenSaver",
		Unit:      time.Second,
	},
	{
		Service:   "org.kde.ScreenSaver",
		Path:      "/org/kde/ScreenSaver",
		Interface: "org.kde.ScreenSaver",
		Unit:      time.Second,
	},
}

type sessionBus interface {
	GetActiveTime(ctx context.Context, s Screensaver) (uint32, error)
	Close() error
}

// DBus queries the session-bus screensaver services in Screensavers order and
// returns the first answer.
type DBus struct {
	// Timeout bounds each candidate's call. Zero means DefaultDBusTimeout.
	Timeout time.Duration

	connect func(ctx context.Context) (sessionBus, error)
	catalog []Screensaver
}

func (DBus) Name() string { return "dbus" }

func (b DBus) IdleTime() (time.Duration, error) {
	connect := b.connect
	if connect == nil {
		connect = connectSessionBus
	}

	catalog := b.catalog
	if catalog == nil {
		catalog = Screensavers
	}

	timeout := b.Timeout
	if timeout <= 0 {
		timeout = DefaultDBusTimeout
	}

	var errs []error
	for _, s := range catalog {
		idle, err := queryScreensaver(connect, s, timeout)
		if err != nil {
			slog.Debug("idle.dbus.candidate.skipped", "service", s.Service, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", s.Service, err))
			continue
		}

		slog.Debug("idle.dbus.candidate.answered", "service", s.Service, "idle_ms", idle.Milliseconds())
		return idle, nil
	}

	return 0, unavailable("dbus", "no screensaver service available", errors.Join(errs...))
}

// queryScreensaver opens its own connection for s, so a stuck candidate
// never holds up the next one past timeout.
func queryScreensaver(connect func(ctx context.Context) (sessionBus, error), s Screensaver, timeout time.Duration) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	bus, err := connect(ctx)
	if err != nil {
		return 0, fmt.Errorf("connect session bus: %w", err)
	}
	defer bus.Close()

	active, err := bus.GetActiveTime(ctx, s)
	if err != nil {
		return 0, fmt.Errorf("GetActiveTime: %w", err)
	}

	return time.Duration(active) * s.Unit, nil
}
