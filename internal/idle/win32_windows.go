//go:build windows

package idle

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetLastInputInfo = user32.NewProc("GetLastInputInfo")
	procGetTickCount     = kernel32.NewProc("GetTickCount")
)

// lastInputInfo mirrors LASTINPUTINFO.
type lastInputInfo struct {
	cbSize uint32
	dwTime uint32
}

// Win32 derives idle time from GetTickCount and GetLastInputInfo.
type Win32 struct {
	ticks tickSource
}

func (Win32) Name() string { return "win32" }

func (w Win32) IdleTime() (time.Duration, error) {
	src := w.ticks
	if src == nil {
		src = win32Ticks{}
	}
	return idleFromTicks(src)
}

type win32Ticks struct{}

func (win32Ticks) LastInputTick() (uint32, error) {
	info := lastInputInfo{cbSize: uint32(unsafe.Sizeof(lastInputInfo{}))}
	ret, _, err := procGetLastInputInfo.Call(uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return 0, err
	}
	return info.dwTime, nil
}

func (win32Ticks) TickCount() uint32 {
	ret, _, _ := procGetTickCount.Call()
	return uint32(ret)
}
