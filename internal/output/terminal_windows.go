//go:build windows

package output

import (
	"golang.org/x/sys/windows"
)

// getTerminalSize returns the visible console window size
func getTerminalSize() (width, height int) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Stdout, &info); err != nil {
		return 80, 24
	}
	width = int(info.Window.Right-info.Window.Left) + 1
	height = int(info.Window.Bottom-info.Window.Top) + 1
	if width <= 0 || height <= 0 {
		return 80, 24
	}
	return width, height
}
