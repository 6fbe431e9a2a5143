//go:build linux

package idle

import (
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/screensaver"
	"github.com/jezek/xgb/xproto"
)

// X11 reads the idle time from the X server's MIT-SCREEN-SAVER extension.
type X11 struct {
	// Display is the X display to connect to. Empty means $DISPLAY.
	Display string
}

func (X11) Name() string { return "x11" }

func (x X11) IdleTime() (time.Duration, error) {
	conn, err := xgb.NewConnDisplay(x.Display)
	if err != nil {
		return 0, unavailable("x11", "failed to open display", err)
	}
	defer conn.Close()

	if err := screensaver.Init(conn); err != nil {
		return 0, nativeFailure("x11", "screensaver extension unavailable", err)
	}

	root := xproto.Setup(conn).DefaultScreen(conn).Root
	info, err := screensaver.QueryInfo(conn, xproto.Drawable(root)).Reply()
	if err != nil {
		return 0, nativeFailure("x11", "extension query not OK", err)
	}

	// MsSinceUserInput is already milliseconds.
	return time.Duration(info.MsSinceUserInput) * time.Millisecond, nil
}
