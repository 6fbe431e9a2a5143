//go:build darwin && cgo

package idle

const defaultBackend = "iokit"

func platformBackends() []backend {
	return []backend{
		{name: "iokit", build: func(Options) Querier { return IOKit{} }},
		{name: "ioreg", build: func(Options) Querier { return IOReg{} }},
	}
}
