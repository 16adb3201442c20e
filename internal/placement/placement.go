// Package placement computes where a newly shown window should go: on the
// monitor under the cursor, kept inside that monitor's work area.
package placement

import (
	"errors"

	"github.com/yourusername/explorer-position/internal/types"
)

// ErrNoMonitorAtCursor is returned when the cursor lies on no monitor's full
// bounds. The window must be left where it is.
var ErrNoMonitorAtCursor = errors.New("no monitor contains the cursor")

// Margin is the minimum distance kept between a window and the work-area edges.
type Margin struct {
	X int32 `json:"x" yaml:"x"`
	Y int32 `json:"y" yaml:"y"`
}

// Options is the placement policy. It is built once at startup and never
// mutated.
type Options struct {
	PositionUnderCursor bool   // Follow the cursor instead of keeping the relative position
	Margin              Margin // Edge margin for cursor placement
	UseTaskbarMargin    bool   // Switch to TaskbarMargin when the cursor is on a taskbar strip
	TaskbarMargin       Margin
}

// Request holds the geometry captured for one placement.
type Request struct {
	Cursor   types.Point
	Monitors []types.Monitor
	Window   types.Rect // Current outer window bounds
	Current  int        // Index of the monitor the window is on now
}

// Result is the computed rectangle plus what drove it.
type Result struct {
	X         int32  `json:"x"`
	Y         int32  `json:"y"`
	Width     int32  `json:"width"`
	Height    int32  `json:"height"`
	Monitor   int    `json:"monitor"` // Index of the target monitor in Request.Monitors
	Margin    Margin `json:"margin"`  // Margin applied, zero when not following the cursor
	InTaskbar bool   `json:"inTaskbar"`
}

// Rect returns the result as screen bounds
func (r Result) Rect() types.Rect {
	return types.RectFromSize(r.X, r.Y, r.Width, r.Height)
}

// Compute places req.Window on the monitor containing req.Cursor.
//
// The window is never enlarged; it shrinks to fit the target work area. With
// PositionUnderCursor the cursor ends up horizontally centered and a third of
// the way down the window, clamped so the window stays the margin away from
// the work-area edges. Otherwise the window keeps its offset from the work-area
// origin of the monitor it is currently on.
func Compute(req Request, opts Options) (Result, error) {
	target, ok := types.FindMonitorContaining(req.Cursor, req.Monitors)
	if !ok {
		return Result{}, ErrNoMonitorAtCursor
	}
	mon := req.Monitors[target]
	work := mon.WorkArea

	screenWidth := work.Width()
	screenHeight := work.Height()
	width := min(req.Window.Width(), screenWidth)
	height := min(req.Window.Height(), screenHeight)

	result := Result{
		Width:   width,
		Height:  height,
		Monitor: target,
	}

	var left, top int32
	if opts.PositionUnderCursor {
		inTaskbar := opts.UseTaskbarMargin && types.IsInTaskbarArea(req.Cursor, work, mon.Bounds)
		margin := opts.Margin
		if inTaskbar {
			margin = opts.TaskbarMargin
		}
		result.Margin = margin
		result.InTaskbar = inTaskbar

		left = req.Cursor.X - mon.Bounds.Left - width/2
		left = types.Clamp(left, margin.X, screenWidth-width-margin.X)

		top = req.Cursor.Y - mon.Bounds.Top - height/3
		top = types.Clamp(top, margin.Y, screenHeight-height-margin.Y)
	} else {
		current := work
		if req.Current >= 0 && req.Current < len(req.Monitors) {
			current = req.Monitors[req.Current].WorkArea
		}
		left = req.Window.Left - current.Left
		top = req.Window.Top - current.Top
	}

	result.X = work.Left + left
	result.Y = work.Top + top
	return result, nil
}
