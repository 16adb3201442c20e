package snapshot

import (
	"fmt"

	"github.com/yourusername/explorer-position/internal/placement"
	"github.com/yourusername/explorer-position/internal/platform"
	"github.com/yourusername/explorer-position/internal/types"
)

// Snapshot is a read-only view of desktop geometry at one point in time.
// It holds everything one placement needs and is discarded afterwards, so
// monitor changes between events are always picked up.
type Snapshot struct {
	Cursor   types.Point     `json:"cursor"`
	Monitors []types.Monitor `json:"monitors"`
	Window   types.Rect      `json:"window"`
	Current  int             `json:"current"` // Monitor the window is on now
}

// Fetch queries monitors, cursor and the window's bounds once.
func Fetch(d platform.Desktop, h platform.Handle) (*Snapshot, error) {
	monitors, err := d.Monitors()
	if err != nil {
		return nil, fmt.Errorf("enumerate monitors: %w", err)
	}

	cursor, err := d.CursorPos()
	if err != nil {
		return nil, fmt.Errorf("cursor position: %w", err)
	}

	window, err := d.WindowRect(h)
	if err != nil {
		return nil, fmt.Errorf("window bounds: %w", err)
	}

	return &Snapshot{
		Cursor:   cursor,
		Monitors: monitors,
		Window:   window,
		Current:  types.NearestMonitor(window, monitors),
	}, nil
}

// Request converts the snapshot into a placement request
func (s *Snapshot) Request() placement.Request {
	return placement.Request{
		Cursor:   s.Cursor,
		Monitors: s.Monitors,
		Window:   s.Window,
		Current:  s.Current,
	}
}

// CurrentMonitor returns the monitor the window is on, or false when unknown
func (s *Snapshot) CurrentMonitor() (types.Monitor, bool) {
	if s.Current < 0 || s.Current >= len(s.Monitors) {
		return types.Monitor{}, false
	}
	return s.Monitors[s.Current], true
}
