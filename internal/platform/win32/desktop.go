//go:build windows

package win32

import (
	"errors"
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/yourusername/explorer-position/internal/platform"
	"github.com/yourusername/explorer-position/internal/types"
)

type desktop struct{}

// monitorInfoEx mirrors MONITORINFOEXW
type monitorInfoEx struct {
	win.MONITORINFO
	Device [32]uint16
}

type enumState struct {
	list []types.Monitor
	err  error
}

// Callbacks are never freed, so one is shared by every enumeration. enumMu
// guards current while EnumDisplayMonitors runs.
var (
	enumMu       sync.Mutex
	current      *enumState
	enumCallback = syscall.NewCallback(enumProc)
)

func enumProc(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
	s := current
	var info monitorInfoEx
	info.CbSize = uint32(unsafe.Sizeof(info))

	ret, _, err := procGetMonitorInfoW.Call(uintptr(hMonitor), uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		s.err = platform.NewQueryError("GetMonitorInfoW", err)
		return 0 // stop enumeration
	}

	s.list = append(s.list, types.Monitor{
		Index:    len(s.list),
		Bounds:   rectFromWin(info.RcMonitor),
		WorkArea: rectFromWin(info.RcWork),
		Primary:  info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
		Device:   windows.UTF16ToString(info.Device[:]),
	})
	return 1
}

func (desktop) Monitors() ([]types.Monitor, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	state := &enumState{}
	current = state
	defer func() { current = nil }()

	ret, _, err := procEnumDisplayMonitors.Call(0, 0, enumCallback, 0)
	if state.err != nil {
		return nil, state.err
	}
	if ret == 0 {
		return nil, platform.NewQueryError("EnumDisplayMonitors", err)
	}
	if len(state.list) == 0 {
		return nil, platform.NewQueryError("EnumDisplayMonitors", errors.New("no monitors detected"))
	}
	return state.list, nil
}

func (desktop) CursorPos() (types.Point, error) {
	var pt win.POINT
	ret, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		return types.Point{}, platform.NewQueryError("GetCursorPos", err)
	}
	return types.Point{X: pt.X, Y: pt.Y}, nil
}

func (desktop) WindowRect(h platform.Handle) (types.Rect, error) {
	var r win.RECT
	ret, _, err := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return types.Rect{}, platform.NewQueryError("GetWindowRect", err)
	}
	return rectFromWin(r), nil
}

func (desktop) MoveResize(h platform.Handle, r types.Rect) error {
	ret, _, err := procSetWindowPos.Call(
		uintptr(h),
		0,
		uintptr(r.Left),
		uintptr(r.Top),
		uintptr(r.Width()),
		uintptr(r.Height()),
		uintptr(win.SWP_NOZORDER|win.SWP_NOOWNERZORDER),
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos failed: %w", err)
	}
	return nil
}

func rectFromWin(r win.RECT) types.Rect {
	return types.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}
