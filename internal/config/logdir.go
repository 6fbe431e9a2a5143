package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// relativeLogDir is used when no per-user location can be determined. A
// configured dir equal to it is treated as "use the platform default".
const relativeLogDir = "logs"

const appDirName = "user-idle"

type logDirResolverOptions struct {
	GOOS         string
	getenv       func(string) string
	userHomeDir  func() (string, error)
	userCacheDir func() (string, error)
}

func (o logDirResolverOptions) withDefaults() logDirResolverOptions {
	if strings.TrimSpace(o.GOOS) == "" {
		o.GOOS = runtime.GOOS
	}
	if o.getenv == nil {
		o.getenv = os.Getenv
	}
	if o.userHomeDir == nil {
		o.userHomeDir = os.UserHomeDir
	}
	if o.userCacheDir == nil {
		o.userCacheDir = os.UserCacheDir
	}
	return o
}

func defaultLogDir() string {
	return resolveDefaultLogDir(logDirResolverOptions{})
}

// resolveDefaultLogDir picks the per-user state location for log files:
//
//	darwin   ~/Library/Logs/user-idle
//	linux    $XDG_STATE_HOME/user-idle/logs or ~/.local/state/user-idle/logs
//	windows  %LOCALAPPDATA%\user-idle\Logs or the user cache dir
func resolveDefaultLogDir(opts logDirResolverOptions) string {
	opts = opts.withDefaults()

	envDir := func(key string, elem ...string) string {
		base := strings.TrimSpace(opts.getenv(key))
		if base == "" {
			return ""
		}
		return filepath.Join(append([]string{base}, elem...)...)
	}
	underDir := func(lookup func() (string, error), elem ...string) string {
		base, err := lookup()
		if err != nil || strings.TrimSpace(base) == "" {
			return ""
		}
		return filepath.Join(append([]string{base}, elem...)...)
	}

	var candidates []string
	switch opts.GOOS {
	case "darwin":
		candidates = []string{underDir(opts.userHomeDir, "Library", "Logs", appDirName)}
	case "linux":
		candidates = []string{
			envDir("XDG_STATE_HOME", appDirName, "logs"),
			underDir(opts.userHomeDir, ".local", "state", appDirName, "logs"),
		}
	case "windows":
		candidates = []string{
			envDir("LOCALAPPDATA", appDirName, "Logs"),
			underDir(opts.userCacheDir, appDirName, "Logs"),
		}
	}

	for _, dir := range candidates {
		if dir != "" {
			return dir
		}
	}
	return relativeLogDir
}

// normalizeLoggingDir maps an empty or bare "logs" dir onto the platform
// default so log files never land in the working directory by accident.
func normalizeLoggingDir(dir string) string {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" || (!filepath.IsAbs(trimmed) && filepath.Clean(trimmed) == relativeLogDir) {
		return defaultLogDir()
	}
	return dir
}
