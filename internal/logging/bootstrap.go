package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Digni/user-idle/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

const redactedValue = "[REDACTED]"

// Role selects the log file a process writes to.
type Role string

const (
	RoleCLI    Role = "cli"
	RoleServer Role = "server"
)

// Filename returns the log file name for r inside the logging dir.
func (r Role) Filename() string {
	if r == RoleServer {
		return "server.log"
	}
	return "cli.log"
}

type bootstrapOptions struct {
	openFile   func(path string, cfg config.LoggingConfig) io.Writer
	stderr     io.Writer
	attempts   int
	retryDelay time.Duration
	sleep      func(time.Duration)
}

func (o bootstrapOptions) withDefaults() bootstrapOptions {
	if o.openFile == nil {
		o.openFile = openRotatingFile
	}
	if o.stderr == nil {
		o.stderr = os.Stderr
	}
	if o.attempts <= 0 {
		o.attempts = 3
	}
	if o.retryDelay <= 0 {
		o.retryDelay = 50 * time.Millisecond
	}
	if o.sleep == nil {
		o.sleep = time.Sleep
	}
	return o
}

// Bootstrap builds the logger for role and installs it as the slog default.
func Bootstrap(cfg config.LoggingConfig, role Role) *slog.Logger {
	logger := bootstrapWithOptions(cfg, role, bootstrapOptions{})
	slog.SetDefault(logger)
	return logger
}

func bootstrapWithOptions(cfg config.LoggingConfig, role Role, opts bootstrapOptions) *slog.Logger {
	opts = opts.withDefaults()

	handlerOpts := &slog.HandlerOptions{
		Level:       ParseLevel(cfg.Level),
		ReplaceAttr: redactAttr,
	}
	newLogger := func(w io.Writer) *slog.Logger {
		return slog.New(slog.NewJSONHandler(w, handlerOpts)).With("role", string(role))
	}

	// Without file logging, diagnostics still go to stderr at the configured level.
	if !cfg.Enabled {
		return newLogger(opts.stderr)
	}

	path := filepath.Join(cfg.Dir, role.Filename())
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		fmt.Fprintf(opts.stderr, "warning: unable to create log directory %q: %v; logging to stderr\n", cfg.Dir, err)
		return newLogger(opts.stderr)
	}

	return newLogger(&retryingWriter{
		path:     path,
		file:     opts.openFile(path, cfg),
		stderr:   opts.stderr,
		attempts: opts.attempts,
		delay:    opts.retryDelay,
		sleep:    opts.sleep,
	})
}

func openRotatingFile(path string, cfg config.LoggingConfig) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
	}
}

// ParseLevel maps a config level name onto a slog level; unknown names
// select info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		return slog.LevelError
	case "warn":
		return slog.LevelWarn
	case "debug":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// retryingWriter writes to the log file, retrying transient failures, and
// diverts the record to stderr once the file stays unwritable.
type retryingWriter struct {
	path     string
	file     io.Writer
	stderr   io.Writer
	attempts int
	delay    time.Duration
	sleep    func(time.Duration)
	warned   sync.Once
}

func (w *retryingWriter) Write(p []byte) (int, error) {
	var err error
	for i := 0; i < w.attempts; i++ {
		if i > 0 {
			w.sleep(w.delay)
		}
		var n int
		if n, err = w.file.Write(p); err == nil {
			return n, nil
		}
	}

	w.warned.Do(func() {
		fmt.Fprintf(w.stderr, "warning: log file %q not writable after %d attempts (%v); logging to stderr\n", w.path, w.attempts, err)
	})
	return w.stderr.Write(p)
}

func redactAttr(_ []string, attr slog.Attr) slog.Attr {
	switch {
	case attr.Key == slog.TimeKey:
		return slog.String(slog.TimeKey, attr.Value.Time().UTC().Format(time.RFC3339))
	case isSensitiveKey(attr.Key):
		return slog.String(attr.Key, redactedValue)
	}
	return attr
}

var sensitiveMarkers = []string{"token", "secret", "password", "authorization", "cookie"}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "-", "_"))
	for _, marker := range sensitiveMarkers {
		if strings.Contains(normalized, marker) {
			return true
		}
	}
	return false
}
