//go:build windows

package win32

import "golang.org/x/sys/windows"

// Raw procs for calls whose lxn/win wrappers return a bare bool and drop the
// last error, plus the ones lxn/win does not wrap (EnumDisplayMonitors,
// GetWindowTextW, PostThreadMessageW).
var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
	procGetCursorPos        = user32.NewProc("GetCursorPos")
	procGetWindowRect       = user32.NewProc("GetWindowRect")
	procSetWindowPos        = user32.NewProc("SetWindowPos")
	procGetWindowTextW      = user32.NewProc("GetWindowTextW")
	procPostThreadMessageW  = user32.NewProc("PostThreadMessageW")
)

