package output

import (
	"math"

	"github.com/yourusername/explorer-position/internal/types"
)

// ScalingContext maps virtual-screen pixels to terminal cells
type ScalingContext struct {
	// Virtual screen bounds in pixels
	MinX, MinY float64
	MaxX, MaxY float64

	// Uniform pixels-to-columns factor
	Scale float64

	// Terminal characters are roughly twice as tall as they are wide
	AspectRatio float64

	// Canvas size needed to hold the scaled desktop plus a border
	CanvasWidth  int
	CanvasHeight int
}

const border = 2

// NewScalingContext fits the union of all monitor bounds into a terminal of
// termWidth x termHeight cells, keeping the desktop's proportions.
func NewScalingContext(monitors []types.Monitor, termWidth, termHeight int) *ScalingContext {
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	for _, m := range monitors {
		minX = math.Min(minX, float64(m.Bounds.Left))
		minY = math.Min(minY, float64(m.Bounds.Top))
		maxX = math.Max(maxX, float64(m.Bounds.Right))
		maxY = math.Max(maxY, float64(m.Bounds.Bottom))
	}
	if len(monitors) == 0 || maxX <= minX || maxY <= minY {
		// Default to 1920x1080 if no monitors
		minX, minY, maxX, maxY = 0, 0, 1920, 1080
	}

	// Border on both sides plus the closing edge column/row
	availWidth := termWidth - 2*border - 1
	availHeight := termHeight - 2*border - 1
	if availWidth < 10 {
		availWidth = 10
	}
	if availHeight < 5 {
		availHeight = 5
	}

	const aspect = 2.0
	pixelWidth := maxX - minX
	pixelHeight := maxY - minY
	scale := math.Min(float64(availWidth)/pixelWidth, float64(availHeight)*aspect/pixelHeight)

	return &ScalingContext{
		MinX:         minX,
		MinY:         minY,
		MaxX:         maxX,
		MaxY:         maxY,
		Scale:        scale,
		AspectRatio:  aspect,
		CanvasWidth:  int(math.Round(pixelWidth*scale)) + 2*border + 1,
		CanvasHeight: int(math.Round(pixelHeight*scale/aspect)) + 2*border + 1,
	}
}

// PixelToTerminal converts screen coordinates to canvas cells
func (sc *ScalingContext) PixelToTerminal(x, y int32) (int, int) {
	relX := float64(x) - sc.MinX
	relY := float64(y) - sc.MinY

	termX := int(math.Round(relX * sc.Scale))
	termY := int(math.Round(relY * sc.Scale / sc.AspectRatio))

	return termX + border, termY + border
}

// ScaleRect converts a screen rectangle to a canvas box. Corners are mapped
// independently so adjacent monitors share their edge column.
func (sc *ScalingContext) ScaleRect(r types.Rect) (x, y, w, h int) {
	x, y = sc.PixelToTerminal(r.Left, r.Top)
	right, bottom := sc.PixelToTerminal(r.Right, r.Bottom)
	w = right - x + 1
	h = bottom - y + 1

	// Minimum size of 3x2 for visibility
	if w < 3 {
		w = 3
	}
	if h < 2 {
		h = 2
	}
	return x, y, w, h
}

// ClampToCanvas ensures a box lies within the canvas
func (sc *ScalingContext) ClampToCanvas(x, y, w, h int) (int, int, int, int) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > sc.CanvasWidth {
		w = sc.CanvasWidth - x
	}
	if y+h > sc.CanvasHeight {
		h = sc.CanvasHeight - y
	}
	return x, y, w, h
}
