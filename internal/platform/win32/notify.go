//go:build windows

package win32

import (
	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

type notifier struct{}

func (notifier) Notify(title, text string) error {
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	m, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return err
	}
	win.MessageBox(0, m, t, win.MB_OK|win.MB_ICONERROR)
	return nil
}
