package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/yourusername/explorer-position/internal/placement"
	"github.com/yourusername/explorer-position/internal/types"
)

// PrintMonitorsTable prints monitors in a table format
func PrintMonitorsTable(w io.Writer, monitors []types.Monitor) {
	table := tablewriter.NewWriter(w)
	table.Header("Index", "Device", "Size", "Bounds", "Work Area", "Primary")

	for _, m := range monitors {
		primary := ""
		if m.Primary {
			primary = "yes"
		}

		table.Append(
			fmt.Sprintf("%d", m.Index),
			truncate(m.Device, 20),
			m.SizeString(),
			m.Bounds.String(),
			m.WorkArea.String(),
			primary,
		)
	}

	table.Render()
}

// PrintPlacement prints the engine's decision for one window
func PrintPlacement(w io.Writer, cursor types.Point, window types.Rect, monitors []types.Monitor, r placement.Result) {
	fmt.Fprintf(w, "Cursor: %s\n", cursor)
	fmt.Fprintf(w, "Window: %s (%dx%d)\n", window, window.Width(), window.Height())
	if r.Monitor >= 0 && r.Monitor < len(monitors) {
		m := monitors[r.Monitor]
		fmt.Fprintf(w, "Target monitor: %d %s\n", m.Index, m.SizeString())
		fmt.Fprintf(w, "Work area: %s\n", m.WorkArea)
	}
	fmt.Fprintf(w, "Margin: %d/%d\n", r.Margin.X, r.Margin.Y)
	fmt.Fprintf(w, "In taskbar: %v\n", r.InTaskbar)
	fmt.Fprintf(w, "Result: %s (%dx%d)\n", r.Rect(), r.Width, r.Height)
}

// Helper functions

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
