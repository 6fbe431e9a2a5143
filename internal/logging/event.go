package logging

import (
	"strings"
	"time"

	"github.com/Digni/user-idle/internal/idle"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// NewRequestID returns a random request identifier.
func NewRequestID() string {
	return uuid.NewString()
}

// EnsureRequestID keeps a caller-supplied id and generates one otherwise.
func EnsureRequestID(existing string) string {
	if trimmed := strings.TrimSpace(existing); trimmed != "" {
		return trimmed
	}
	return NewRequestID()
}

// QueryFields describes one idle query as slog key/value pairs.
func QueryFields(backend string, idleTime, elapsed time.Duration, err error) []any {
	fields := []any{
		"backend", backend,
		"duration_ms", elapsed.Milliseconds(),
	}
	if err != nil {
		return append(fields, "status", "error", "error_kind", idle.KindOf(err).String(), "error", err)
	}
	return append(fields, "status", "ok", "idle_ms", idleTime.Milliseconds())
}
