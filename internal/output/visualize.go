package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/yourusername/explorer-position/internal/placement"
	"github.com/yourusername/explorer-position/internal/types"
)

// VisualizationOptions controls the appearance of the visualization
type VisualizationOptions struct {
	UseUnicode bool
	MaxWidth   int
	MaxHeight  int
}

// DefaultVisualizationOptions sizes the preview to the current terminal
func DefaultVisualizationOptions() VisualizationOptions {
	width, height := getTerminalSize()
	return VisualizationOptions{
		UseUnicode: supportsUnicode(),
		MaxWidth:   width,
		MaxHeight:  height - 4, // Leave room for header and footer
	}
}

// Preview is what gets drawn: the monitor layout, optionally with the cursor
// and the rectangle the engine picked.
type Preview struct {
	Monitors  []types.Monitor
	Cursor    *types.Point
	Placement *placement.Result
}

// Visualize renders p as text
func Visualize(p Preview, opts VisualizationOptions) string {
	if len(p.Monitors) == 0 {
		return "No monitors found\n"
	}

	sc := NewScalingContext(p.Monitors, opts.MaxWidth, opts.MaxHeight)
	canvas := NewCanvas(sc.CanvasWidth, sc.CanvasHeight, opts.UseUnicode)
	pal := canvas.Palette()

	for _, m := range p.Monitors {
		for _, strip := range ReservedStrips(m.Bounds, m.WorkArea) {
			x, y, w, h := sc.ClampToCanvas(sc.ScaleRect(strip))
			canvas.FillRect(x, y, w, h, pal.Reserved)
		}
	}

	// Borders after fills so strips never hide an edge
	for _, m := range p.Monitors {
		x, y, w, h := sc.ClampToCanvas(sc.ScaleRect(m.Bounds))
		canvas.DrawBox(x, y, w, h, pal.Monitor)
		canvas.DrawLabel(x, y+1, w, monitorLabel(m))
	}

	if p.Placement != nil {
		x, y, w, h := sc.ClampToCanvas(sc.ScaleRect(p.Placement.Rect()))
		canvas.FillRect(x+1, y+1, w-2, h-2, ' ')
		canvas.DrawBox(x, y, w, h, pal.Window)
		canvas.DrawLabel(x, y+1, w, fmt.Sprintf("window %dx%d", p.Placement.Width, p.Placement.Height))
	}

	if p.Cursor != nil {
		cx, cy := sc.PixelToTerminal(p.Cursor.X, p.Cursor.Y)
		canvas.SetCell(cx, cy, pal.Cursor)
	}

	var sb strings.Builder
	sb.WriteString(header(p))
	sb.WriteString(canvas.String())
	sb.WriteString("\n")
	sb.WriteString(footer(p))
	return sb.String()
}

// ReservedStrips returns the parts of bounds outside workArea, usually a
// single taskbar strip
func ReservedStrips(bounds, workArea types.Rect) []types.Rect {
	var strips []types.Rect
	if workArea.Top > bounds.Top {
		strips = append(strips, types.Rect{Left: bounds.Left, Top: bounds.Top, Right: bounds.Right, Bottom: workArea.Top})
	}
	if workArea.Bottom < bounds.Bottom {
		strips = append(strips, types.Rect{Left: bounds.Left, Top: workArea.Bottom, Right: bounds.Right, Bottom: bounds.Bottom})
	}
	if workArea.Left > bounds.Left {
		strips = append(strips, types.Rect{Left: bounds.Left, Top: workArea.Top, Right: workArea.Left, Bottom: workArea.Bottom})
	}
	if workArea.Right < bounds.Right {
		strips = append(strips, types.Rect{Left: workArea.Right, Top: workArea.Top, Right: bounds.Right, Bottom: workArea.Bottom})
	}
	return strips
}

func monitorLabel(m types.Monitor) string {
	label := fmt.Sprintf("[%d] %s", m.Index, m.SizeString())
	if m.Primary {
		label += " *"
	}
	return label
}

func header(p Preview) string {
	s := fmt.Sprintf("Monitors: %d", len(p.Monitors))
	if p.Cursor != nil {
		s += fmt.Sprintf("  Cursor: %s", p.Cursor)
	}
	return s + "\n"
}

func footer(p Preview) string {
	if p.Placement == nil {
		return ""
	}
	r := p.Placement
	s := fmt.Sprintf("Placement: %s on monitor %d, margin %d/%d", r.Rect(), r.Monitor, r.Margin.X, r.Margin.Y)
	if r.InTaskbar {
		s += " (taskbar)"
	}
	return s + "\n"
}

// supportsUnicode checks if the terminal supports Unicode
func supportsUnicode() bool {
	lang := os.Getenv("LANG")
	lcAll := os.Getenv("LC_ALL")
	if strings.Contains(lang, "UTF-8") || strings.Contains(lcAll, "UTF-8") {
		return true
	}
	// Windows Terminal sets this and renders box drawing fine
	return os.Getenv("WT_SESSION") != ""
}

// PrintVisualization writes a colored visualization to w
func PrintVisualization(w io.Writer, p Preview, opts VisualizationOptions) {
	result := Visualize(p, opts)

	if color.NoColor {
		fmt.Fprint(w, result)
		return
	}
	cyan := color.New(color.FgCyan)
	cyan.Fprint(w, result)
}
