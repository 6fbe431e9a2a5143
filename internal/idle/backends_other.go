//go:build !linux && !darwin && !windows

package idle

const defaultBackend = "unsupported"

func platformBackends() []backend {
	return []backend{
		{name: "unsupported", build: func(Options) Querier { return unsupported{} }},
	}
}
