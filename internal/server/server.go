package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Digni/user-idle/internal/config"
	"github.com/Digni/user-idle/internal/idle"
	"github.com/Digni/user-idle/internal/logging"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("server.response.encode_failed", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func errorCode(err error) string {
	switch idle.KindOf(err) {
	case idle.KindUnavailable:
		return "idle_unavailable"
	case idle.KindNative:
		return "idle_native_failure"
	case idle.KindAnomaly:
		return "idle_anomaly"
	default:
		return "idle_query_failed"
	}
}

// NewMux builds the HTTP handler for user-idle's server endpoints. Every
// /idle request runs its own query against q.
func NewMux(q idle.Querier, logger *slog.Logger, metrics *Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /idle", func(w http.ResponseWriter, r *http.Request) {
		requestID := logging.EnsureRequestID(r.Header.Get(logging.RequestIDHeader))
		w.Header().Set(logging.RequestIDHeader, requestID)
		logger := logger.With("request_id", requestID, "method", r.Method, "path", r.URL.Path)
		logger.Debug("server.idle.request.started")

		start := time.Now()
		idleTime, err := q.IdleTime()
		elapsed := time.Since(start)
		metrics.Observe(q.Name(), idleTime, elapsed, err)

		if err != nil {
			logger.Warn("server.idle.request.completed", append(logging.QueryFields(q.Name(), 0, elapsed, err), "status_code", http.StatusServiceUnavailable)...)
			writeJSONError(w, http.StatusServiceUnavailable, errorCode(err), err.Error())
			return
		}

		logger.Info("server.idle.request.completed", append(logging.QueryFields(q.Name(), idleTime, elapsed, nil), "status_code", http.StatusOK)...)
		writeJSON(w, http.StatusOK, idle.NewReport(q.Name(), idleTime))
	})

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.Handle("GET /metrics", metrics.Handler())

	return mux
}

// Start serves the idle endpoints on cfg.Server.Address until the listener fails.
func Start(cfg config.Config, q idle.Querier) error {
	mux := NewMux(q, slog.Default(), NewMetrics())
	slog.Info("server.started", "address", cfg.Server.Address, "backend", q.Name())
	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return srv.ListenAndServe()
}
