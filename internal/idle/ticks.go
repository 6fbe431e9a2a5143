package idle

import (
	"fmt"
	"time"
)

// tickSource exposes the two Win32 millisecond tick counters.
type tickSource interface {
	// LastInputTick is the tick count at the most recent input event.
	LastInputTick() (uint32, error)
	// TickCount is the current tick count.
	TickCount() uint32
}

// idleFromTicks reads the last-input tick before the current tick, so input
// arriving between the two reads can never look like a future timestamp.
func idleFromTicks(src tickSource) (time.Duration, error) {
	last, err := src.LastInputTick()
	if err != nil {
		return 0, nativeFailure("win32", "last-input query failed", err)
	}

	now := src.TickCount()
	if last > now {
		return 0, anomaly("win32", fmt.Sprintf("last input tick %d is ahead of tick count %d", last, now))
	}

	return time.Duration(now-last) * time.Millisecond, nil
}
