//go:build darwin && !cgo

package idle

const defaultBackend = "ioreg"

func platformBackends() []backend {
	return []backend{
		{name: "ioreg", build: func(Options) Querier { return IOReg{} }},
	}
}
