package config

import (
	"fmt"
	"strings"
)

// Validate enforces enumerations and positive sizes.
func Validate(cfg Config) error {
	switch cfg.Output.Format {
	case "human", "ms", "seconds", "json":
		// valid
	default:
		return fmt.Errorf("output.format must be one of human, ms, seconds, json")
	}

	if cfg.DBus.TimeoutMillis <= 0 {
		return fmt.Errorf("dbus.timeout_ms must be greater than 0")
	}

	if cfg.Check.ThresholdSeconds < 0 {
		return fmt.Errorf("check.threshold_seconds must not be negative")
	}

	switch cfg.Check.FallbackPolicy {
	case "error", "active", "idle":
		// valid
	default:
		return fmt.Errorf("check.fallback_policy must be one of error, active, idle")
	}

	if cfg.Server.Address == "" {
		return fmt.Errorf("server.address is required")
	}

	if err := validateLogging(cfg.Logging); err != nil {
		return err
	}

	return nil
}

func validateLogging(logging LoggingConfig) error {
	switch strings.ToLower(logging.Level) {
	case "error", "warn", "info", "debug":
		// valid
	default:
		return fmt.Errorf("logging.level must be one of error, warn, info, debug")
	}

	if logging.MaxSizeMB <= 0 {
		return fmt.Errorf("logging.max_size_mb must be greater than 0")
	}

	if logging.MaxBackups <= 0 {
		return fmt.Errorf("logging.max_backups must be greater than 0")
	}

	if strings.TrimSpace(logging.Dir) == "" {
		return fmt.Errorf("logging.dir is required")
	}

	return nil
}
