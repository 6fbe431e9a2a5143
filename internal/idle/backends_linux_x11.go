//go:build linux && !dbus

package idle

const defaultBackend = "x11"

func platformBackends() []backend {
	return []backend{x11Backend, dbusBackend}
}
