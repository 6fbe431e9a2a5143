package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Digni/user-idle/internal/idle"
)

// writeIdle prints one idle reading. seconds is floored to whole seconds.
func writeIdle(w io.Writer, format, backend string, d time.Duration) error {
	var err error
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "human":
		_, err = fmt.Fprintln(w, d.Truncate(time.Millisecond))
	case "ms":
		_, err = fmt.Fprintln(w, d.Milliseconds())
	case "seconds":
		_, err = fmt.Fprintln(w, int64(d/time.Second))
	case "json":
		err = json.NewEncoder(w).Encode(idle.NewReport(backend, d))
	default:
		return fmt.Errorf("unknown output format %q (want human, ms, seconds or json)", format)
	}
	if err != nil {
		return fmt.Errorf("write idle time: %w", err)
	}
	return nil
}
