package idle

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// hidValueKind is the representation IOKit used for the HIDIdleTime property.
type hidValueKind int

// Keep in sync with the enum in iokit_darwin.go.
const (
	hidValueAbsent hidValueKind = iota
	hidValueData
	hidValueNumber
	hidValueOther
)

// decodeHIDIdleTime converts a HIDIdleTime property read from the registry.
// data holds the raw CFData bytes; number holds the CFNumber value.
func decodeHIDIdleTime(kind hidValueKind, data []byte, number int64) (time.Duration, error) {
	var ns int64
	switch kind {
	case hidValueData:
		if len(data) < 8 {
			return 0, nativeFailure("iokit", fmt.Sprintf("HIDIdleTime data is %d bytes, want 8", len(data)), nil)
		}
		ns = int64(binary.NativeEndian.Uint64(data[:8]))
	case hidValueNumber:
		ns = number
	case hidValueAbsent:
		return 0, nativeFailure("iokit", "HIDIdleTime property not found", nil)
	default:
		return 0, nativeFailure("iokit", "HIDIdleTime has unsupported representation", nil)
	}

	if ns < 0 {
		return 0, anomaly("iokit", fmt.Sprintf("HIDIdleTime is negative (%dns)", ns))
	}

	return time.Duration(ns) * time.Nanosecond, nil
}

var hidIdleTimeRe = regexp.MustCompile(`"?HIDIdleTime"?\s*=\s*(\S+)`)

// parseHIDIdleTime extracts HIDIdleTime (nanoseconds) from `ioreg -c IOHIDSystem` output.
func parseHIDIdleTime(out []byte) (time.Duration, error) {
	m := hidIdleTimeRe.FindSubmatch(out)
	if m == nil {
		return 0, nativeFailure("ioreg", "HIDIdleTime not found in ioreg output", nil)
	}

	ns, err := strconv.ParseInt(string(m[1]), 10, 64)
	if err != nil {
		return 0, nativeFailure("ioreg", "parse HIDIdleTime", err)
	}
	if ns < 0 {
		return 0, anomaly("ioreg", fmt.Sprintf("HIDIdleTime is negative (%dns)", ns))
	}

	return time.Duration(ns) * time.Nanosecond, nil
}
