// Package platform declares the desktop services the repositioning handler
// depends on. The Windows implementation lives in internal/platform/win32.
package platform

import (
	"context"

	"github.com/yourusername/explorer-position/internal/types"
)

// Handle identifies a top-level window (an HWND on Windows).
type Handle uintptr

// WindowInfo is what the event filter sees about a shown window.
type WindowInfo struct {
	Handle      Handle `json:"handle"`
	Visible     bool   `json:"visible"`
	TopLevel    bool   `json:"topLevel"` // No parent ancestor
	ProcessName string `json:"processName"`
	ClassName   string `json:"className"`
	Title       string `json:"title"`
}

// Process is one entry of the running-process list.
type Process struct {
	PID  uint32 `json:"pid"`
	Name string `json:"name"` // Executable image name, e.g. "explorer.exe"
}

// Filter decides whether a shown window should be handed to the handler.
type Filter func(WindowInfo) bool

// Desktop queries and changes live window geometry.
type Desktop interface {
	// Monitors enumerates displays. Order is stable within a call only.
	Monitors() ([]types.Monitor, error)
	CursorPos() (types.Point, error)
	WindowRect(h Handle) (types.Rect, error)
	// MoveResize sets the outer bounds of h without changing its z-order.
	MoveResize(h Handle, r types.Rect) error
}

// WindowInspector reads the identity of a window.
type WindowInspector interface {
	Inspect(h Handle) (WindowInfo, error)
}

// WindowEvents delivers window-shown notifications.
type WindowEvents interface {
	// Watch calls fn for every visible top-level window that is shown and
	// accepted by filter. It blocks until ctx is done or the subscription fails.
	Watch(ctx context.Context, filter Filter, fn func(WindowInfo)) error
}

// Processes lists running processes.
type Processes interface {
	List() ([]Process, error)
	Self() (Process, error)
}

// Notifier shows a user-facing message.
type Notifier interface {
	Notify(title, text string) error
}
