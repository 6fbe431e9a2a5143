package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Digni/user-idle/internal/config"
	"github.com/Digni/user-idle/internal/idle"
	"github.com/Digni/user-idle/internal/logging"
	"github.com/spf13/cobra"
)

var (
	loadConfigForCommand = config.Load
	lookupBackend        = idle.Lookup
)

// prepareCommand loads config and starts CLI logging for one-shot commands.
func prepareCommand(cmd *cobra.Command) (config.Config, error) {
	loadResult, err := loadConfigForCommand()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	initializeCommandLogging(cmd.ErrOrStderr(), loadResult.Config.Logging, logging.RoleCLI)
	slog.Debug("config.loaded", "source", string(loadResult.Source.Type), "path", loadResult.Source.Path)
	return loadResult.Config, nil
}

// newQuerier builds the backend named by override, or by config when empty.
func newQuerier(cfg config.Config, override string) (idle.Querier, error) {
	name := cfg.Backend
	if override != "" {
		name = override
	}
	return lookupBackend(name, idle.Options{
		DBusTimeout: cfg.DBus.Timeout(),
		Display:     cfg.X11.Display,
	})
}

func queryIdle(q idle.Querier) (time.Duration, error) {
	start := time.Now()
	idleTime, err := q.IdleTime()
	fields := logging.QueryFields(q.Name(), idleTime, time.Since(start), err)
	if err != nil {
		slog.Warn("idle.query.failed", fields...)
		return 0, err
	}
	slog.Debug("idle.query.completed", fields...)
	return idleTime, nil
}

func printConfigSourceDetails(cmd *cobra.Command, source config.SourceSelection) {
	w := cmd.ErrOrStderr()
	if source.Path != "" {
		fmt.Fprintf(w, "config source: %s (%s)\n", source.Path, source.Type)
	} else {
		fmt.Fprintf(w, "config source: %s\n", source.Type)
	}
	if source.Reason != "" {
		fmt.Fprintf(w, "config reason: %s\n", source.Reason)
	}
}
