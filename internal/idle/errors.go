package idle

import (
	"errors"
	"runtime"
	"time"
)

// Kind classifies why an idle time query failed.
type Kind int

const (
	// KindUnavailable means no backend could be reached: every candidate
	// was tried, or the connection a backend depends on could not be opened.
	KindUnavailable Kind = iota + 1
	// KindNative means a required native call reported failure.
	KindNative
	// KindAnomaly means the native values would produce a negative duration.
	KindAnomaly
)

func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindNative:
		return "native_failure"
	case KindAnomaly:
		return "anomaly"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against an *Error of the same Kind.
var (
	ErrUnavailable = errors.New("idle time unavailable")
	ErrNative      = errors.New("native idle time query failed")
	ErrAnomaly     = errors.New("idle time anomaly")
)

// Error is returned by every backend when no idle time could be obtained.
type Error struct {
	Kind    Kind
	Backend string
	// Cause is the human-readable reason.
	Cause string
	// Err is the underlying native or transport error, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Cause
	if e.Backend != "" {
		msg = e.Backend + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnavailable:
		return e.Kind == KindUnavailable
	case ErrNative:
		return e.Kind == KindNative
	case ErrAnomaly:
		return e.Kind == KindAnomaly
	}
	return false
}

// KindOf returns the Kind carried by err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var idleErr *Error
	if errors.As(err, &idleErr) {
		return idleErr.Kind
	}
	return 0
}

func unavailable(backend, cause string, err error) error {
	return &Error{Kind: KindUnavailable, Backend: backend, Cause: cause, Err: err}
}

func nativeFailure(backend, cause string, err error) error {
	return &Error{Kind: KindNative, Backend: backend, Cause: cause, Err: err}
}

func anomaly(backend, cause string) error {
	return &Error{Kind: KindAnomaly, Backend: backend, Cause: cause}
}

// unsupported is the default on platforms without a native backend.
type unsupported struct{}

func (unsupported) Name() string { return "unsupported" }

func (unsupported) IdleTime() (time.Duration, error) {
	return 0, unavailable("unsupported", "idle detection is not supported on "+runtime.GOOS, nil)
}
