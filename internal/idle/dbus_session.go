package idle

import (
	"context"

	"github.com/godbus/dbus/v5"
)

// godbusSession is a private session-bus connection owned by one probe.
type godbusSession struct {
	conn *dbus.Conn
}

func connectSessionBus(ctx context.Context) (sessionBus, error) {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return godbusSession{conn: conn}, nil
}

func (s godbusSession) GetActiveTime(ctx context.Context, ss Screensaver) (uint32, error) {
	var active uint32
	obj := s.conn.Object(ss.Service, dbus.ObjectPath(ss.Path))
	if err := obj.CallWithContext(ctx, ss.Interface+".GetActiveTime", 0).Store(&active); err != nil {
		return 0, err
	}
	return active, nil
}

func (s godbusSession) Close() error {
	return s.conn.Close()
}
