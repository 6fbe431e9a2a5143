package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Digni/user-idle/internal/config"
	"github.com/Digni/user-idle/internal/logging"
)

var commandLoggingBootstrap = func(cfg config.LoggingConfig, role logging.Role) error {
	logging.Bootstrap(cfg, role)
	return nil
}

// initializeCommandLogging installs the logger for role. If that fails the
// command still runs, logging JSON to errWriter at the configured level.
func initializeCommandLogging(errWriter io.Writer, cfg config.LoggingConfig, role logging.Role) {
	if err := commandLoggingBootstrap(cfg, role); err != nil {
		fmt.Fprintf(errWriter, "warning: unable to initialize %s logging: %v; logging to stderr\n", role, err)
		handler := slog.NewJSONHandler(errWriter, &slog.HandlerOptions{Level: logging.ParseLevel(cfg.Level)})
		slog.SetDefault(slog.New(handler))
	}
}
