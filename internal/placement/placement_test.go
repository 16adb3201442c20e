package placement

import (
	"errors"
	"testing"

	"github.com/yourusername/explorer-position/internal/types"
)

func defaultOptions() Options {
	return Options{
		PositionUnderCursor: true,
		Margin:              Margin{X: 20, Y: 20},
		UseTaskbarMargin:    true,
		TaskbarMargin:       Margin{X: 120, Y: 20},
	}
}

// singleMonitor is a 1920x1080 display with a 40px taskbar at the bottom.
func singleMonitor() []types.Monitor {
	return []types.Monitor{{
		Index:    0,
		Bounds:   types.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080},
		WorkArea: types.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1040},
		Primary:  true,
	}}
}

// dualMonitors adds a 2560x1440 display left of the primary, raised by 360px.
func dualMonitors() []types.Monitor {
	return append(singleMonitor(), types.Monitor{
		Index:    1,
		Bounds:   types.Rect{Left: -2560, Top: -360, Right: 0, Bottom: 1080},
		WorkArea: types.Rect{Left: -2560, Top: -360, Right: 0, Bottom: 1080},
	})
}

func TestCompute(t *testing.T) {
	window := types.RectFromSize(100, 100, 800, 600)

	tests := []struct {
		name     string
		monitors []types.Monitor
		cursor   types.Point
		window   types.Rect
		opts     Options
		want     Result
	}{
		{
			name:     "centered under cursor",
			monitors: singleMonitor(),
			cursor:   types.Point{X: 960, Y: 520},
			window:   window,
			opts:     defaultOptions(),
			want:     Result{X: 560, Y: 320, Width: 800, Height: 600, Monitor: 0, Margin: Margin{X: 20, Y: 20}},
		},
		{
			name:     "cursor near left edge",
			monitors: singleMonitor(),
			cursor:   types.Point{X: 5, Y: 520},
			window:   window,
			opts:     defaultOptions(),
			want:     Result{X: 20, Y: 320, Width: 800, Height: 600, Monitor: 0, Margin: Margin{X: 20, Y: 20}},
		},
		{
			name:     "cursor near bottom right",
			monitors: singleMonitor(),
			cursor:   types.Point{X: 1900, Y: 1000},
			window:   window,
			opts:     defaultOptions(),
			want:     Result{X: 1100, Y: 420, Width: 800, Height: 600, Monitor: 0, Margin: Margin{X: 20, Y: 20}},
		},
		{
			name:     "cursor in taskbar uses taskbar margin",
			monitors: singleMonitor(),
			cursor:   types.Point{X: 10, Y: 1060},
			window:   window,
			opts:     defaultOptions(),
			want:     Result{X: 120, Y: 420, Width: 800, Height: 600, Monitor: 0, Margin: Margin{X: 120, Y: 20}, InTaskbar: true},
		},
		{
			name:     "taskbar margin on the right side",
			monitors: singleMonitor(),
			cursor:   types.Point{X: 1910, Y: 1060},
			window:   window,
			opts:     defaultOptions(),
			want:     Result{X: 1000, Y: 420, Width: 800, Height: 600, Monitor: 0, Margin: Margin{X: 120, Y: 20}, InTaskbar: true},
		},
		{
			name:     "taskbar margin disabled",
			monitors: singleMonitor(),
			cursor:   types.Point{X: 10, Y: 1060},
			window:   window,
			opts: Options{
				PositionUnderCursor: true,
				Margin:              Margin{X: 20, Y: 20},
				TaskbarMargin:       Margin{X: 120, Y: 20},
			},
			want: Result{X: 20, Y: 420, Width: 800, Height: 600, Monitor: 0, Margin: Margin{X: 20, Y: 20}},
		},
		{
			name:     "window larger than work area",
			monitors: singleMonitor(),
			cursor:   types.Point{X: 960, Y: 520},
			window:   types.RectFromSize(0, 0, 2500, 1500),
			opts:     defaultOptions(),
			want:     Result{X: 20, Y: 20, Width: 1920, Height: 1040, Monitor: 0, Margin: Margin{X: 20, Y: 20}},
		},
		{
			name:     "moves to secondary monitor under cursor",
			monitors: dualMonitors(),
			cursor:   types.Point{X: -1280, Y: 360},
			window:   window,
			opts:     defaultOptions(),
			want:     Result{X: -1680, Y: 160, Width: 800, Height: 600, Monitor: 1, Margin: Margin{X: 20, Y: 20}},
		},
		{
			name:     "odd sizes truncate",
			monitors: singleMonitor(),
			cursor:   types.Point{X: 960, Y: 520},
			window:   types.RectFromSize(0, 0, 801, 601),
			opts:     defaultOptions(),
			want:     Result{X: 560, Y: 320, Width: 801, Height: 601, Monitor: 0, Margin: Margin{X: 20, Y: 20}},
		},
		{
			name:     "keeps relative position when not following cursor",
			monitors: dualMonitors(),
			cursor:   types.Point{X: -1280, Y: 360},
			window:   types.RectFromSize(300, 200, 800, 600),
			opts:     Options{Margin: Margin{X: 20, Y: 20}},
			want:     Result{X: -2260, Y: -160, Width: 800, Height: 600, Monitor: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Request{
				Cursor:   tt.cursor,
				Monitors: tt.monitors,
				Window:   tt.window,
				Current:  types.NearestMonitor(tt.window, tt.monitors),
			}
			got, err := Compute(req, tt.opts)
			if err != nil {
				t.Fatalf("Compute() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Compute() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCompute_WorkAreaBelowTopTaskbar(t *testing.T) {
	// Taskbar docked at the top: the cursor offset is measured from the full
	// bounds while the result is anchored to the work area.
	monitors := []types.Monitor{{
		Bounds:   types.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080},
		WorkArea: types.Rect{Left: 0, Top: 40, Right: 1920, Bottom: 1080},
	}}
	req := Request{
		Cursor:   types.Point{X: 960, Y: 540},
		Monitors: monitors,
		Window:   types.RectFromSize(0, 40, 800, 600),
	}

	got, err := Compute(req, defaultOptions())
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	if got.X != 560 || got.Y != 380 {
		t.Errorf("Compute() position = (%d, %d), want (560, 380)", got.X, got.Y)
	}
}

func TestCompute_NoMonitorAtCursor(t *testing.T) {
	req := Request{
		Cursor:   types.Point{X: -5000, Y: -5000},
		Monitors: dualMonitors(),
		Window:   types.RectFromSize(100, 100, 800, 600),
	}

	_, err := Compute(req, defaultOptions())
	if !errors.Is(err, ErrNoMonitorAtCursor) {
		t.Errorf("Compute() error = %v, want ErrNoMonitorAtCursor", err)
	}

	req.Monitors = nil
	req.Cursor = types.Point{}
	if _, err := Compute(req, defaultOptions()); !errors.Is(err, ErrNoMonitorAtCursor) {
		t.Errorf("Compute() with no monitors error = %v, want ErrNoMonitorAtCursor", err)
	}
}

func TestCompute_RelativeFallsBackToTarget(t *testing.T) {
	req := Request{
		Cursor:   types.Point{X: 960, Y: 520},
		Monitors: singleMonitor(),
		Window:   types.RectFromSize(300, 200, 800, 600),
		Current:  7,
	}

	got, err := Compute(req, Options{})
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	if got.X != 300 || got.Y != 200 {
		t.Errorf("Compute() position = (%d, %d), want (300, 200)", got.X, got.Y)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	req := Request{
		Cursor:   types.Point{X: -300, Y: 900},
		Monitors: dualMonitors(),
		Window:   types.RectFromSize(400, 300, 1000, 700),
		Current:  0,
	}

	first, err := Compute(req, defaultOptions())
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	second, err := Compute(req, defaultOptions())
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("Compute() not deterministic: %+v then %+v", first, second)
	}
}

func TestCompute_ClampAndSizeLaws(t *testing.T) {
	monitors := dualMonitors()
	opts := defaultOptions()
	sizes := []int32{0, 1, 299, 800, 1039, 1040, 1919, 1920, 2600, 3000}
	cursors := []types.Point{
		{X: 0, Y: 0},
		{X: 960, Y: 540},
		{X: 1920, Y: 1080},
		{X: 5, Y: 1075},
		{X: -2560, Y: -360},
		{X: -1, Y: 1079},
		{X: -1280, Y: 200},
	}

	for _, cursor := range cursors {
		for _, w := range sizes {
			for _, h := range sizes {
				window := types.RectFromSize(50, 50, w, h)
				req := Request{Cursor: cursor, Monitors: monitors, Window: window, Current: 0}

				got, err := Compute(req, opts)
				if err != nil {
					t.Fatalf("Compute(cursor %v, %dx%d) unexpected error: %v", cursor, w, h, err)
				}

				work := monitors[got.Monitor].WorkArea
				if got.Width > work.Width() || got.Height > work.Height() {
					t.Errorf("size %dx%d exceeds work area %v", got.Width, got.Height, work)
				}
				if got.Width > w || got.Height > h {
					t.Errorf("size %dx%d larger than window %dx%d", got.Width, got.Height, w, h)
				}

				left := got.X - work.Left
				maxLeft := work.Width() - got.Width - got.Margin.X
				if maxLeft >= got.Margin.X {
					if left < got.Margin.X || left > maxLeft {
						t.Errorf("cursor %v size %dx%d: left %d outside [%d, %d]", cursor, w, h, left, got.Margin.X, maxLeft)
					}
				} else if left != got.Margin.X {
					t.Errorf("cursor %v size %dx%d: degenerate left = %d, want %d", cursor, w, h, left, got.Margin.X)
				}

				top := got.Y - work.Top
				maxTop := work.Height() - got.Height - got.Margin.Y
				if maxTop >= got.Margin.Y {
					if top < got.Margin.Y || top > maxTop {
						t.Errorf("cursor %v size %dx%d: top %d outside [%d, %d]", cursor, w, h, top, got.Margin.Y, maxTop)
					}
				} else if top != got.Margin.Y {
					t.Errorf("cursor %v size %dx%d: degenerate top = %d, want %d", cursor, w, h, top, got.Margin.Y)
				}
			}
		}
	}
}

func TestResultRect(t *testing.T) {
	r := Result{X: 560, Y: 320, Width: 800, Height: 600}
	want := types.Rect{Left: 560, Top: 320, Right: 1360, Bottom: 920}
	if got := r.Rect(); got != want {
		t.Errorf("Rect() = %v, want %v", got, want)
	}
}
