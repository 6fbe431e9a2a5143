package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "USER_IDLE_CONFIG"

type Config struct {
	Backend string        `yaml:"backend" env:"USER_IDLE_BACKEND"`
	Output  OutputConfig  `yaml:"output"`
	DBus    DBusConfig    `yaml:"dbus"`
	X11     X11Config     `yaml:"x11"`
	Check   CheckConfig   `yaml:"check"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

type OutputConfig struct {
	// Format is one of human, ms, seconds, json.
	Format string `yaml:"format" env:"USER_IDLE_FORMAT"`
}

type DBusConfig struct {
	TimeoutMillis int `yaml:"timeout_ms" env:"USER_IDLE_DBUS_TIMEOUT_MS"`
}

type X11Config struct {
	// Display overrides $DISPLAY when set.
	Display string `yaml:"display" env:"USER_IDLE_DISPLAY"`
}

type CheckConfig struct {
	ThresholdSeconds int `yaml:"threshold_seconds" env:"USER_IDLE_CHECK_THRESHOLD_SECONDS"`
	// FallbackPolicy decides the check result when idle time is unknown:
	// "error" fails, "active" and "idle" report that state.
	FallbackPolicy string `yaml:"fallback_policy" env:"USER_IDLE_CHECK_FALLBACK_POLICY"`
}

type ServerConfig struct {
	Address string `yaml:"address" env:"USER_IDLE_SERVER_ADDRESS"`
}

type LoggingConfig struct {
	Enabled    bool   `yaml:"enabled" env:"USER_IDLE_LOG_ENABLED"`
	Level      string `yaml:"level" env:"USER_IDLE_LOG_LEVEL"`
	Dir        string `yaml:"dir"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	Compress   bool   `yaml:"compress"`
}

// Timeout returns the per-service D-Bus call timeout.
func (c DBusConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMillis) * time.Millisecond
}

// Threshold returns the idle threshold used by the check command.
func (c CheckConfig) Threshold() time.Duration {
	return time.Duration(c.ThresholdSeconds) * time.Second
}

func DefaultConfig() Config {
	return Config{
		Backend: "auto",
		Output: OutputConfig{
			Format: "human",
		},
		DBus: DBusConfig{
			TimeoutMillis: 5000,
		},
		Check: CheckConfig{
			ThresholdSeconds: 300,
			FallbackPolicy:   "error",
		},
		Server: ServerConfig{
			Address: "127.0.0.1:8229",
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Level:      "warn",
			Dir:        defaultLogDir(),
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   false,
		},
	}
}

// LoadResult is a parsed config together with where it came from.
type LoadResult struct {
	Config Config
	Source SourceSelection
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(configDir, "user-idle"), nil
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load resolves the config source, reads it over the defaults and applies
// environment overrides.
func Load() (LoadResult, error) {
	source, err := ResolveConfigSource(ResolveOptions{EnvPath: os.Getenv(EnvConfigPath)})
	if err != nil {
		return LoadResult{Config: DefaultConfig()}, err
	}
	return LoadSource(source)
}

// LoadSource reads the config named by source.
func LoadSource(source SourceSelection) (LoadResult, error) {
	result := LoadResult{Config: DefaultConfig(), Source: source}

	if source.Path != "" {
		data, err := os.ReadFile(source.Path)
		if err != nil {
			if !(errors.Is(err, fs.ErrNotExist) && source.Type == SourceConfigFile) {
				return result, fmt.Errorf("read config: %w", err)
			}
		} else {
			cfg, err := LoadFromBytes(data)
			if err != nil {
				return result, err
			}
			result.Config = cfg
		}
	}

	if err := ApplyEnv(&result.Config); err != nil {
		return result, err
	}
	normalize(&result.Config)

	if err := Validate(result.Config); err != nil {
		return result, fmt.Errorf("invalid config: %w", err)
	}

	return result, nil
}

// LoadFromBytes parses YAML over the defaults.
func LoadFromBytes(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	normalize(&cfg)
	return cfg, nil
}

func normalize(cfg *Config) {
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	if cfg.Backend == "" {
		cfg.Backend = "auto"
	}

	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))

	switch cfg.Check.FallbackPolicy {
	case "error", "active", "idle":
		// valid
	default:
		slog.Warn("config.check.fallback_policy.unrecognized", "value", cfg.Check.FallbackPolicy, "using", "error")
		cfg.Check.FallbackPolicy = "error"
	}

	cfg.Logging.Dir = normalizeLoggingDir(cfg.Logging.Dir)
}

// Init creates a default config file if one doesn't exist.
func Init() (string, error) {
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}
	return initAt(path)
}

func initAt(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config already exists at %s", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}

	return path, nil
}
