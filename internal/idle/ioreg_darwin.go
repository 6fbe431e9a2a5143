//go:build darwin

package idle

import (
	"os/exec"
	"time"
)

// IOReg reads HIDIdleTime by running ioreg. It needs no cgo, at the cost of a
// process spawn per query.
type IOReg struct{}

func (IOReg) Name() string { return "ioreg" }

func (IOReg) IdleTime() (time.Duration, error) {
	out, err := exec.Command("ioreg", "-c", "IOHIDSystem", "-d", "4").Output()
	if err != nil {
		return 0, unavailable("ioreg", "run ioreg", err)
	}
	return parseHIDIdleTime(out)
}
