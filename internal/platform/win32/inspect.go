//go:build windows

package win32

import (
	"strings"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/yourusername/explorer-position/internal/platform"
)

type inspector struct{}

func (inspector) Inspect(h platform.Handle) (platform.WindowInfo, error) {
	hwnd := win.HWND(h)
	info := platform.WindowInfo{
		Handle:   h,
		Visible:  win.IsWindowVisible(hwnd),
		TopLevel: win.GetAncestor(hwnd, win.GA_ROOT) == hwnd,
	}

	name, err := processNameOf(hwnd)
	if err != nil {
		return info, err
	}
	info.ProcessName = name
	info.ClassName = className(hwnd)
	info.Title = windowText(hwnd)
	return info, nil
}

// processNameOf returns the image base name of the process owning hwnd
func processNameOf(hwnd win.HWND) (string, error) {
	var pid uint32
	win.GetWindowThreadProcessId(hwnd, &pid)
	if pid == 0 {
		return "", platform.NewQueryError("GetWindowThreadProcessId", windows.ERROR_INVALID_WINDOW_HANDLE)
	}

	proc, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return "", platform.NewQueryError("OpenProcess", err)
	}
	defer windows.CloseHandle(proc)

	buf := make([]uint16, windows.MAX_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(proc, 0, &buf[0], &size); err != nil {
		return "", platform.NewQueryError("QueryFullProcessImageName", err)
	}
	return baseName(windows.UTF16ToString(buf[:size])), nil
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[i+1:]
	}
	return path
}

func className(hwnd win.HWND) string {
	buf := make([]uint16, 256)
	n, err := win.GetClassName(hwnd, &buf[0], len(buf))
	if err != nil {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func windowText(hwnd win.HWND) string {
	buf := make([]uint16, 1024)
	n, _, _ := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:n])
}
