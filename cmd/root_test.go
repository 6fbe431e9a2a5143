package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Digni/user-idle/internal/config"
	"github.com/Digni/user-idle/internal/idle"
	"github.com/spf13/cobra"
)

func TestWriteIdle_Formats(t *testing.T) {
	d := 61*time.Second + 234*time.Millisecond + 999*time.Microsecond

	tests := []struct {
		format string
		want   string
	}{
		{format: "human", want: "1m1.234s\n"},
		{format: "ms", want: "61234\n"},
		{format: "seconds", want: "61\n"},
		{format: "JSON", want: `{"backend":"x11","idle_ms":61234,"idle":"1m1.234s"}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var out bytes.Buffer
			if err := writeIdle(&out, tt.format, "x11", d); err != nil {
				t.Fatalf("writeIdle() error = %v", err)
			}
			if out.String() != tt.want {
				t.Fatalf("writeIdle(%q) = %q, want %q", tt.format, out.String(), tt.want)
			}
		})
	}
}

func TestWriteIdle_UnknownFormat(t *testing.T) {
	err := writeIdle(&bytes.Buffer{}, "xml", "x11", time.Second)
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("writeIdle(xml) error = %v, want unknown output format", err)
	}
}

func TestRunIdle_UsesConfiguredFormat(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.Format = "ms"
	stubCommandSeams(t, cfg, fakeQuerier{name: "x11", idle: 2500 * time.Millisecond})

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := runIdle(cmd, nil); err != nil {
		t.Fatalf("runIdle() error = %v", err)
	}
	if out.String() != "2500\n" {
		t.Fatalf("output = %q, want %q", out.String(), "2500\n")
	}
}

func TestRunIdle_FlagsOverrideConfig(t *testing.T) {
	calls := stubCommandSeams(t, config.DefaultConfig(), fakeQuerier{name: "dbus", idle: 7 * time.Second})
	formatFlag = "json"
	backendFlag = "dbus"

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := runIdle(cmd, nil); err != nil {
		t.Fatalf("runIdle() error = %v", err)
	}
	if want := `{"backend":"dbus","idle_ms":7000,"idle":"7s"}` + "\n"; out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
	if len(*calls) != 1 || (*calls)[0].name != "dbus" {
		t.Fatalf("lookup calls = %+v, want one lookup of dbus", *calls)
	}
}

func TestRunIdle_QueryFailureIsNotZero(t *testing.T) {
	queryErr := &idle.Error{Kind: idle.KindUnavailable, Backend: "x11", Cause: "failed to open display"}
	stubCommandSeams(t, config.DefaultConfig(), fakeQuerier{name: "x11", err: queryErr})

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	err := runIdle(cmd, nil)
	if !errors.Is(err, idle.ErrUnavailable) {
		t.Fatalf("runIdle() error = %v, want ErrUnavailable", err)
	}
	if out.Len() != 0 {
		t.Fatalf("output = %q, want nothing on failure", out.String())
	}
	if code := exitCode(err); code != 1 {
		t.Fatalf("exitCode = %d, want 1", code)
	}
}

func TestRunIdle_UnknownBackend(t *testing.T) {
	stubCommandSeams(t, config.DefaultConfig(), nil)
	lookupBackend = idle.Lookup
	backendFlag = "bogus"

	err := runIdle(&cobra.Command{}, nil)
	if err == nil || !strings.Contains(err.Error(), `unknown idle backend "bogus"`) {
		t.Fatalf("runIdle() error = %v, want unknown idle backend", err)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "plain error", err: errors.New("boom"), want: 1},
		{name: "exit error", err: &exitError{code: 2, err: errors.New("boom")}, want: 2},
		{name: "wrapped exit error", err: fmt.Errorf("run: %w", &exitError{code: 1}), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Fatalf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}

	if msg := (&exitError{code: 1}).Error(); msg != "" {
		t.Fatalf("silent exitError message = %q, want empty", msg)
	}
}
