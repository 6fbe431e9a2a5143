package server

import (
	"net/http"
	"time"

	"github.com/Digni/user-idle/internal/idle"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the idle query instruments on a private registry so tests
// and multiple servers never collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	lastIdle *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "user_idle",
			Name:      "queries_total",
			Help:      "Idle time queries by backend and result.",
		}, []string{"backend", "result"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "user_idle",
			Name:      "query_duration_seconds",
			Help:      "Time spent in one idle time query.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"backend"}),
		lastIdle: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "user_idle",
			Name:      "last_idle_seconds",
			Help:      "Idle time reported by the most recent successful query.",
		}, []string{"backend"}),
	}
}

// Observe records one query outcome.
func (m *Metrics) Observe(backend string, idleTime, elapsed time.Duration, err error) {
	m.duration.WithLabelValues(backend).Observe(elapsed.Seconds())
	if err != nil {
		m.queries.WithLabelValues(backend, idle.KindOf(err).String()).Inc()
		return
	}
	m.queries.WithLabelValues(backend, "ok").Inc()
	m.lastIdle.WithLabelValues(backend).Set(idleTime.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
