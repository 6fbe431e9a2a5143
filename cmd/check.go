package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Digni/user-idle/internal/config"
	"github.com/spf13/cobra"
)

const (
	exitIdle   = 0
	exitActive = 1
	exitFailed = 2
)

const (
	stateIdle   = "idle"
	stateActive = "active"
)

var checkThreshold time.Duration

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Exit 0 when the user is idle, 1 when active",
	Long: `Compare the current idle time against a threshold.

Prints "idle" and exits 0 when the idle time is at or above the threshold,
prints "active" and exits 1 otherwise. When no idle time can be obtained
the config's check.fallback_policy decides: "error" (default) exits 2,
"active" and "idle" report that state instead.

Example:
  user-idle check --threshold 10m && echo "away"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := prepareCommand(cmd)
		if err != nil {
			return &exitError{code: exitFailed, err: err}
		}

		q, err := newQuerier(cfg, backendFlag)
		if err != nil {
			return &exitError{code: exitFailed, err: err}
		}

		idleTime, queryErr := queryIdle(q)
		state, err := evaluateIdle(idleTime, queryErr, checkThresholdFor(cmd, cfg.Check), cfg.Check.FallbackPolicy)
		if err != nil {
			return &exitError{code: exitFailed, err: fmt.Errorf("query idle time: %w", err)}
		}

		fmt.Fprintln(cmd.OutOrStdout(), state)
		if state == stateActive {
			return &exitError{code: exitActive}
		}
		return nil
	},
}

func checkThresholdFor(cmd *cobra.Command, cfg config.CheckConfig) time.Duration {
	if f := cmd.Flags().Lookup("threshold"); f != nil && f.Changed {
		return checkThreshold
	}
	return cfg.Threshold()
}

// evaluateIdle maps a reading onto idle/active. A failed query only yields a
// state when policy names one explicitly.
func evaluateIdle(idleTime time.Duration, queryErr error, threshold time.Duration, policy string) (string, error) {
	if queryErr != nil {
		switch policy {
		case stateActive, stateIdle:
			slog.Warn("check.fallback.applied", "policy", policy, "error", queryErr)
			return policy, nil
		default:
			return "", queryErr
		}
	}

	if idleTime >= threshold {
		return stateIdle, nil
	}
	return stateActive, nil
}

func init() {
	checkCmd.Flags().DurationVarP(&checkThreshold, "threshold", "t", 0, "Idle threshold, e.g. 90s or 5m (default from config check.threshold_seconds)")

	rootCmd.AddCommand(checkCmd)
}
