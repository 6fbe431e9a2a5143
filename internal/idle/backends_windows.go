//go:build windows

package idle

const defaultBackend = "win32"

func platformBackends() []backend {
	return []backend{
		{name: "win32", build: func(Options) Querier { return Win32{} }},
	}
}
