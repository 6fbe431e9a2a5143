package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

type SourceType string

const (
	SourceDefaults    SourceType = "defaults"
	SourceConfigFile  SourceType = "config_file"
	SourceEnvironment SourceType = "environment"
)

// SourceSelection records which config source won and why.
type SourceSelection struct {
	Type   SourceType
	Path   string
	Reason string
}

type resolveFileState int

const (
	resolveFilePresent resolveFileState = iota
	resolveFileMissing
	resolveFileUnreadable
)

type ResolveOptions struct {
	EnvPath       string
	GOOS          string
	PreferredPath string
	XDGPath       string
	inspectFile   func(path string) (resolveFileState, error)
}

// XDGConfigPath returns ~/.config/user-idle/config.yaml, which macOS users
// often expect instead of ~/Library/Application Support.
func XDGConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get user home dir: %w", err)
	}
	return filepath.Join(home, ".config", "user-idle", "config.yaml"), nil
}

func inspectConfigFile(path string) (resolveFileState, error) {
	f, err := os.Open(path)
	if err == nil {
		_ = f.Close()
		return resolveFilePresent, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return resolveFileMissing, nil
	}

	if errors.Is(err, fs.ErrPermission) {
		return resolveFileUnreadable, nil
	}

	return resolveFileMissing, fmt.Errorf("inspect config file %q: %w", path, err)
}

func resolveDefaultPath(preferredOverride string) (string, error) {
	if preferredOverride != "" {
		return preferredOverride, nil
	}
	return ConfigPath()
}

func resolveXDGPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return XDGConfigPath()
}

// ResolveConfigSource returns a single deterministic config winner without parsing.
func ResolveConfigSource(opts ResolveOptions) (SourceSelection, error) {
	if opts.EnvPath != "" {
		return SourceSelection{Type: SourceEnvironment, Path: opts.EnvPath, Reason: "selected by " + EnvConfigPath}, nil
	}

	inspect := opts.inspectFile
	if inspect == nil {
		inspect = inspectConfigFile
	}

	goos := opts.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	preferred, err := resolveDefaultPath(opts.PreferredPath)
	if err != nil {
		return SourceSelection{}, err
	}

	state, err := inspect(preferred)
	if err != nil {
		return SourceSelection{}, err
	}
	if state == resolveFilePresent {
		return SourceSelection{Type: SourceConfigFile, Path: preferred, Reason: "selected config path"}, nil
	}

	if goos == "darwin" {
		xdg, err := resolveXDGPath(opts.XDGPath)
		if err != nil {
			return SourceSelection{}, err
		}

		xdgState, err := inspect(xdg)
		if err != nil {
			return SourceSelection{}, err
		}

		if xdgState == resolveFilePresent {
			reason := "fallback to XDG path because preferred config is missing"
			if state == resolveFileUnreadable {
				reason = "fallback to XDG path because preferred config is unreadable"
			}
			return SourceSelection{Type: SourceConfigFile, Path: xdg, Reason: reason}, nil
		}
	}

	return SourceSelection{Type: SourceDefaults, Reason: "no config file or environment path found"}, nil
}
