package config

import (
	"testing"
)

func TestResolveConfigSource_PreferenceAndFallback(t *testing.T) {
	tests := []struct {
		name          string
		goos          string
		states        map[string]resolveFileState
		envPath       string
		wantType      SourceType
		wantPath      string
		wantReason    string
		wantErr       bool
		inspectErrFor string
	}{
		{
			name: "preferred wins when both preferred and xdg exist",
			goos: "darwin",
			states: map[string]resolveFileState{
				"preferred.yaml": resolveFilePresent,
				"xdg.yaml":       resolveFilePresent,
			},
			wantType:   SourceConfigFile,
			wantPath:   "preferred.yaml",
			wantReason: "selected config path",
		},
		{
			name: "xdg fallback when preferred missing on darwin",
			goos: "darwin",
			states: map[string]resolveFileState{
				"preferred.yaml": resolveFileMissing,
				"xdg.yaml":       resolveFilePresent,
			},
			wantType:   SourceConfigFile,
			wantPath:   "xdg.yaml",
			wantReason: "fallback to XDG path because preferred config is missing",
		},
		{
			name: "xdg fallback when preferred unreadable on darwin",
			goos: "darwin",
			states: map[string]resolveFileState{
				"preferred.yaml": resolveFileUnreadable,
				"xdg.yaml":       resolveFilePresent,
			},
			wantType:   SourceConfigFile,
			wantPath:   "xdg.yaml",
			wantReason: "fallback to XDG path because preferred config is unreadable",
		},
		{
			name: "no xdg fallback off darwin",
			goos: "linux",
			states: map[string]resolveFileState{
				"preferred.yaml": resolveFileMissing,
				"xdg.yaml":       resolveFilePresent,
			},
			wantType:   SourceDefaults,
			wantReason: "no config file or environment path found",
		},
		{
			name: "environment path wins over a present config file",
			goos: "darwin",
			states: map[string]resolveFileState{
				"preferred.yaml": resolveFilePresent,
				"xdg.yaml":       resolveFilePresent,
			},
			envPath:    "env.yaml",
			wantType:   SourceEnvironment,
			wantPath:   "env.yaml",
			wantReason: "selected by USER_IDLE_CONFIG",
		},
		{
			name: "defaults win when no source exists",
			goos: "darwin",
			states: map[string]resolveFileState{
				"preferred.yaml": resolveFileMissing,
				"xdg.yaml":       resolveFileMissing,
			},
			wantType:   SourceDefaults,
			wantPath:   "",
			wantReason: "no config file or environment path found",
		},
		{
			name:          "unexpected inspect error fails fast",
			goos:          "darwin",
			states:        map[string]resolveFileState{"preferred.yaml": resolveFileMissing},
			inspectErrFor: "preferred.yaml",
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, err := ResolveConfigSource(ResolveOptions{
				GOOS:          tt.goos,
				EnvPath:       tt.envPath,
				PreferredPath: "preferred.yaml",
				XDGPath:       "xdg.yaml",
				inspectFile: func(path string) (resolveFileState, error) {
					if path == tt.inspectErrFor {
						return resolveFileMissing, assertError("boom")
					}
					if state, ok := tt.states[path]; ok {
						return state, nil
					}
					return resolveFileMissing, nil
				},
			})

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if source.Type != tt.wantType {
				t.Fatalf("source type = %q, want %q", source.Type, tt.wantType)
			}

			if source.Path != tt.wantPath {
				t.Fatalf("source path = %q, want %q", source.Path, tt.wantPath)
			}

			if source.Reason != tt.wantReason {
				t.Fatalf("source reason = %q, want %q", source.Reason, tt.wantReason)
			}
		})
	}
}

func TestResolveConfigSource_RepeatedRunsStayDeterministic(t *testing.T) {
	states := map[string]resolveFileState{
		"preferred.yaml": resolveFilePresent,
		"xdg.yaml":       resolveFilePresent,
	}

	for i := 0; i < 10; i++ {
		source, err := ResolveConfigSource(ResolveOptions{
			GOOS:          "darwin",
			PreferredPath: "preferred.yaml",
			XDGPath:       "xdg.yaml",
			inspectFile: func(path string) (resolveFileState, error) {
				return states[path], nil
			},
		})
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
		if source.Path != "preferred.yaml" {
			t.Fatalf("run %d: got %q, want preferred.yaml", i, source.Path)
		}
	}
}

type assertError string

func (e assertError) Error() string {
	return string(e)
}
