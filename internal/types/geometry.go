package types

import "fmt"

// Point is a position in virtual-desktop coordinates.
// Coordinates can be negative (a monitor left of or above the primary one).
type Point struct {
	X int32 `json:"x" yaml:"x"`
	Y int32 `json:"y" yaml:"y"`
}

// String formats the point as "(x, y)"
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Rect represents screen bounds as edges, the way Win32 reports them.
// Left <= Right and Top <= Bottom are assumed, not validated.
type Rect struct {
	Left   int32 `json:"left" yaml:"left"`
	Top    int32 `json:"top" yaml:"top"`
	Right  int32 `json:"right" yaml:"right"`
	Bottom int32 `json:"bottom" yaml:"bottom"`
}

// RectFromSize builds a Rect from a top-left corner and a size
func RectFromSize(x, y, width, height int32) Rect {
	return Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

// Width returns Right - Left
func (r Rect) Width() int32 {
	return r.Right - r.Left
}

// Height returns Bottom - Top
func (r Rect) Height() int32 {
	return r.Bottom - r.Top
}

// Origin returns the top-left corner
func (r Rect) Origin() Point {
	return Point{X: r.Left, Y: r.Top}
}

// Center returns the center point of a Rect
func (r Rect) Center() Point {
	return Point{
		X: r.Left + r.Width()/2,
		Y: r.Top + r.Height()/2,
	}
}

// Contains checks if a point is inside the rect.
// All four edges count as inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right &&
		p.Y >= r.Top && p.Y <= r.Bottom
}

// Overlap returns the area of intersection between two Rects
func (r Rect) Overlap(other Rect) int64 {
	left := max(r.Left, other.Left)
	right := min(r.Right, other.Right)
	top := max(r.Top, other.Top)
	bottom := min(r.Bottom, other.Bottom)

	if left >= right || top >= bottom {
		return 0
	}
	return int64(right-left) * int64(bottom-top)
}

// String formats the rect as "(left, top) - (right, bottom)"
func (r Rect) String() string {
	return fmt.Sprintf("(%d, %d) - (%d, %d)", r.Left, r.Top, r.Right, r.Bottom)
}

// PointInRect reports whether p lies within r, boundary included
func PointInRect(p Point, r Rect) bool {
	return r.Contains(p)
}

// Clamp limits value to [lo, hi]. When the range is empty (lo > hi) the
// lower bound wins.
func Clamp(value, lo, hi int32) int32 {
	if value > hi {
		value = hi
	}
	if value < lo {
		value = lo
	}
	return value
}
