package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

var (
	backendFlag string
	formatFlag  string
)

var rootCmd = &cobra.Command{
	Use:     "user-idle",
	Short:   "Report how long the user has been idle",
	Version: Version,
	Long: `user-idle reports the time since the last keyboard or mouse input.

It asks the platform directly: the XScreenSaver extension or the session-bus
screensaver on Linux, IOKit on macOS and GetLastInputInfo on Windows.

Usage:
  user-idle                      Print the current idle time
  user-idle --format json        Print it as JSON
  user-idle check --threshold 5m Exit 0 when idle, 1 when active
  user-idle serve                Serve idle time over HTTP`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runIdle,
}

func runIdle(cmd *cobra.Command, _ []string) error {
	cfg, err := prepareCommand(cmd)
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if formatFlag != "" {
		format = formatFlag
	}

	q, err := newQuerier(cfg, backendFlag)
	if err != nil {
		return err
	}

	idleTime, err := queryIdle(q)
	if err != nil {
		return fmt.Errorf("query idle time: %w", err)
	}

	return writeIdle(cmd.OutOrStdout(), format, q.Name(), idleTime)
}

// exitError carries a process exit code. A nil err exits quietly.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func exitCode(err error) int {
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return 1
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&backendFlag, "backend", "b", "", "Idle backend to query (default from config, see 'user-idle backends')")
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: human, ms, seconds or json (default from config)")
}
