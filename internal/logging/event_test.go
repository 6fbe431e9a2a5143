package logging

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Digni/user-idle/internal/idle"
	"github.com/google/uuid"
)

func TestEventEnsureRequestID(t *testing.T) {
	got := EnsureRequestID("  req-123  ")
	if got != "req-123" {
		t.Fatalf("EnsureRequestID preserved existing id = %q, want %q", got, "req-123")
	}

	generated := EnsureRequestID("   ")
	if _, err := uuid.Parse(generated); err != nil {
		t.Fatalf("EnsureRequestID generated id = %q, want a uuid: %v", generated, err)
	}
}

func TestEventNewRequestIDUnique(t *testing.T) {
	first := NewRequestID()
	second := NewRequestID()
	if first == second {
		t.Fatalf("request ids should be unique, got %q twice", first)
	}
}

func TestEventQueryFields_Success(t *testing.T) {
	fields := fieldMap(t, QueryFields("x11", 1500*time.Millisecond, 3*time.Millisecond, nil))

	if fields["backend"] != "x11" {
		t.Fatalf("backend = %v, want x11", fields["backend"])
	}
	if fields["status"] != "ok" {
		t.Fatalf("status = %v, want ok", fields["status"])
	}
	if fields["idle_ms"] != int64(1500) {
		t.Fatalf("idle_ms = %v, want 1500", fields["idle_ms"])
	}
	if fields["duration_ms"] != int64(3) {
		t.Fatalf("duration_ms = %v, want 3", fields["duration_ms"])
	}
	if _, ok := fields["error"]; ok {
		t.Fatalf("unexpected error field in %v", fields)
	}
}

func TestEventQueryFields_Failure(t *testing.T) {
	queryErr := fmt.Errorf("query: %w", &idle.Error{Kind: idle.KindAnomaly, Backend: "win32", Cause: "last input ahead of tick count"})
	fields := fieldMap(t, QueryFields("win32", 0, time.Millisecond, queryErr))

	if fields["status"] != "error" {
		t.Fatalf("status = %v, want error", fields["status"])
	}
	if fields["error_kind"] != "anomaly" {
		t.Fatalf("error_kind = %v, want anomaly", fields["error_kind"])
	}
	if _, ok := fields["idle_ms"]; ok {
		t.Fatalf("failed query must not report idle_ms, got %v", fields)
	}

	plain := fieldMap(t, QueryFields("x11", 0, 0, errors.New("boom")))
	if plain["error_kind"] != "unknown" {
		t.Fatalf("error_kind for foreign error = %v, want unknown", plain["error_kind"])
	}
}

func fieldMap(t *testing.T, kv []any) map[string]any {
	t.Helper()
	if len(kv)%2 != 0 {
		t.Fatalf("odd number of fields: %v", kv)
	}
	out := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			t.Fatalf("field key %v is %T, want string", kv[i], kv[i])
		}
		out[key] = kv[i+1]
	}
	return out
}
