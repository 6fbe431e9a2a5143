//go:build linux && dbus

package idle

const defaultBackend = "dbus"

func platformBackends() []backend {
	return []backend{dbusBackend, x11Backend}
}
