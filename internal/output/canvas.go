package output

import (
	"strings"
)

// BoxStyle defines the character set for drawing boxes
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// Palette is everything the preview draws with
type Palette struct {
	Monitor  BoxStyle
	Window   BoxStyle
	Reserved rune // Taskbar strips outside the work area
	Cursor   rune
}

var (
	// ASCIIStyle uses simple ASCII characters for box drawing
	ASCIIStyle = BoxStyle{
		TopLeft:     '+',
		TopRight:    '+',
		BottomLeft:  '+',
		BottomRight: '+',
		Horizontal:  '-',
		Vertical:    '|',
	}

	// UnicodeStyle uses Unicode box drawing characters
	UnicodeStyle = BoxStyle{
		TopLeft:     '┌',
		TopRight:    '┐',
		BottomLeft:  '└',
		BottomRight: '┘',
		Horizontal:  '─',
		Vertical:    '│',
	}

	asciiWindowStyle = BoxStyle{
		TopLeft:     '#',
		TopRight:    '#',
		BottomLeft:  '#',
		BottomRight: '#',
		Horizontal:  '=',
		Vertical:    '#',
	}

	unicodeWindowStyle = BoxStyle{
		TopLeft:     '╔',
		TopRight:    '╗',
		BottomLeft:  '╚',
		BottomRight: '╝',
		Horizontal:  '═',
		Vertical:    '║',
	}

	ASCIIPalette   = Palette{Monitor: ASCIIStyle, Window: asciiWindowStyle, Reserved: ':', Cursor: 'X'}
	UnicodePalette = Palette{Monitor: UnicodeStyle, Window: unicodeWindowStyle, Reserved: '░', Cursor: '●'}
)

// Canvas represents a 2D character buffer for drawing
type Canvas struct {
	Width   int
	Height  int
	buffer  [][]rune
	palette Palette
}

// NewCanvas creates a new canvas with the specified dimensions
func NewCanvas(width, height int, useUnicode bool) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
		for j := range buffer[i] {
			buffer[i][j] = ' '
		}
	}

	palette := ASCIIPalette
	if useUnicode {
		palette = UnicodePalette
	}

	return &Canvas{
		Width:   width,
		Height:  height,
		buffer:  buffer,
		palette: palette,
	}
}

// Palette returns the characters the canvas draws with
func (c *Canvas) Palette() Palette {
	return c.palette
}

// SetCell sets a character at the specified position. Out-of-range writes
// are dropped.
func (c *Canvas) SetCell(x, y int, r rune) {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		c.buffer[y][x] = r
	}
}

// GetCell returns the character at the specified position
func (c *Canvas) GetCell(x, y int) rune {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		return c.buffer[y][x]
	}
	return ' '
}

// DrawBox draws a box in the given style
func (c *Canvas) DrawBox(x, y, width, height int, style BoxStyle) {
	if width < 2 || height < 2 {
		return
	}

	c.SetCell(x, y, style.TopLeft)
	c.SetCell(x+width-1, y, style.TopRight)
	c.SetCell(x, y+height-1, style.BottomLeft)
	c.SetCell(x+width-1, y+height-1, style.BottomRight)

	for i := 1; i < width-1; i++ {
		c.SetCell(x+i, y, style.Horizontal)
		c.SetCell(x+i, y+height-1, style.Horizontal)
	}

	for i := 1; i < height-1; i++ {
		c.SetCell(x, y+i, style.Vertical)
		c.SetCell(x+width-1, y+i, style.Vertical)
	}
}

// DrawText writes text at the specified position, one cell per rune
func (c *Canvas) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		c.SetCell(x+i, y, r)
		i++
	}
}

// DrawLabel writes text inside a box of the given width, truncated to fit
// between the borders
func (c *Canvas) DrawLabel(x, y, width int, text string) {
	if width <= 2 {
		return
	}
	c.DrawText(x+1, y, truncate(text, width-2))
}

// FillRect fills a rectangle with a character
func (c *Canvas) FillRect(x, y, width, height int, r rune) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			c.SetCell(x+dx, y+dy, r)
		}
	}
}

// String renders the canvas with trailing spaces trimmed from each row
func (c *Canvas) String() string {
	var sb strings.Builder
	for i, row := range c.buffer {
		sb.WriteString(strings.TrimRight(string(row), " "))
		if i < len(c.buffer)-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
