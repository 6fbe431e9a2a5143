//go:build linux

package idle

var (
	x11Backend = backend{
		name:  "x11",
		build: func(opts Options) Querier { return X11{Display: opts.Display} },
	}
	dbusBackend = backend{
		name:  "dbus",
		build: func(opts Options) Querier { return DBus{Timeout: opts.DBusTimeout} },
	}
)
