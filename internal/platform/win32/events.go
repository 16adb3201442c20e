//go:build windows

package win32

import (
	"context"
	"errors"
	"runtime"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/yourusername/explorer-position/internal/logging"
	"github.com/yourusername/explorer-position/internal/platform"
)

// hookEvents delivers EVENT_OBJECT_SHOW through an out-of-context WinEvent
// hook. The hook fires on the installing thread's message loop, so Watch
// keeps its goroutine locked to one OS thread for the whole subscription.
type hookEvents struct {
	inspector platform.WindowInspector
}

func (e *hookEvents) Watch(ctx context.Context, filter platform.Filter, fn func(platform.WindowInfo)) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// Make sure the thread has a message queue before anyone posts to it
	var msg win.MSG
	win.PeekMessage(&msg, 0, 0, 0, win.PM_NOREMOVE)
	threadID := windows.GetCurrentThreadId()

	callback := func(hook win.HWINEVENTHOOK, event uint32, hwnd win.HWND, idObject, idChild int32, eventThread, eventTime uint32) uintptr {
		if event != win.EVENT_OBJECT_SHOW {
			return 0
		}
		if idObject != win.OBJID_WINDOW || idChild != win.CHILDID_SELF {
			return 0
		}
		e.dispatch(platform.Handle(hwnd), filter, fn)
		return 0
	}

	hook, err := win.SetWinEventHook(
		win.EVENT_OBJECT_SHOW,
		win.EVENT_OBJECT_SHOW,
		0,
		callback,
		0,
		0,
		win.WINEVENT_OUTOFCONTEXT|win.WINEVENT_SKIPOWNPROCESS,
	)
	if err != nil {
		return platform.NewQueryError("SetWinEventHook", err)
	}
	defer win.UnhookWinEvent(hook)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			procPostThreadMessageW.Call(uintptr(threadID), uintptr(win.WM_QUIT), 0, 0)
		case <-done:
		}
	}()

	logging.Info().Msg("watching for shown windows")

	for {
		switch win.GetMessage(&msg, 0, 0, 0) {
		case 0: // WM_QUIT
			return ctx.Err()
		case -1:
			return platform.NewQueryError("GetMessage", errors.New("message loop failed"))
		}
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
}

// dispatch applies the structural checks, then the caller's filter
func (e *hookEvents) dispatch(h platform.Handle, filter platform.Filter, fn func(platform.WindowInfo)) {
	hwnd := win.HWND(h)
	if !win.IsWindowVisible(hwnd) {
		return
	}
	if win.GetAncestor(hwnd, win.GA_ROOT) != hwnd {
		return
	}

	info, err := e.inspector.Inspect(h)
	if err != nil {
		logging.Debug().Err(err).Uint64("hwnd", uint64(h)).Msg("cannot inspect shown window")
		return
	}
	if filter != nil && !filter(info) {
		return
	}
	fn(info)
}
