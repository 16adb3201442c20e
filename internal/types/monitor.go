package types

import "fmt"

// Monitor is a snapshot of one display's geometry.
type Monitor struct {
	Index    int    `json:"index"`
	Bounds   Rect   `json:"bounds"`   // Entire physical display
	WorkArea Rect   `json:"workArea"` // Bounds minus taskbar and app bars
	Primary  bool   `json:"primary"`
	Device   string `json:"device,omitempty"`
}

// SizeString returns the full resolution, e.g. "1920x1080"
func (m Monitor) SizeString() string {
	return fmt.Sprintf("%dx%d", m.Bounds.Width(), m.Bounds.Height())
}

// FindMonitorContaining returns the index of the first monitor whose full
// bounds contain p. The boolean is false when p is on no monitor.
func FindMonitorContaining(p Point, monitors []Monitor) (int, bool) {
	for i, m := range monitors {
		if PointInRect(p, m.Bounds) {
			return i, true
		}
	}
	return -1, false
}

// IsInTaskbarArea reports whether p lies inside the monitor but outside its
// work area, i.e. on a reserved strip such as the taskbar.
func IsInTaskbarArea(p Point, workArea, fullBounds Rect) bool {
	return PointInRect(p, fullBounds) && !PointInRect(p, workArea)
}

// NearestMonitor returns the index of the monitor sharing the largest area
// with r. If r touches no monitor, the monitor closest to r's center is used.
// Returns -1 only for an empty list.
func NearestMonitor(r Rect, monitors []Monitor) int {
	if len(monitors) == 0 {
		return -1
	}

	best := -1
	var bestArea int64
	for i, m := range monitors {
		if area := r.Overlap(m.Bounds); area > bestArea {
			best = i
			bestArea = area
		}
	}
	if best >= 0 {
		return best
	}

	center := r.Center()
	best = 0
	bestDist := distanceSq(center, monitors[0].Bounds)
	for i := 1; i < len(monitors); i++ {
		if d := distanceSq(center, monitors[i].Bounds); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// distanceSq is the squared distance from p to the closest point of r
func distanceSq(p Point, r Rect) int64 {
	dx := int64(0)
	if p.X < r.Left {
		dx = int64(r.Left - p.X)
	} else if p.X > r.Right {
		dx = int64(p.X - r.Right)
	}
	dy := int64(0)
	if p.Y < r.Top {
		dy = int64(r.Top - p.Y)
	} else if p.Y > r.Bottom {
		dy = int64(p.Y - r.Bottom)
	}
	return dx*dx + dy*dy
}
