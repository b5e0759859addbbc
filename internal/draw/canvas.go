package draw

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Canvas is a grid of terminal cells. Each cell holds the text for exactly one
// column, already styled. Render only emits cells that differ from the last
// rendered frame, which keeps output small over slow links.
type Canvas struct {
	width  int
	height int
	cells  []string // current frame, row-major
	prev   []string // last rendered frame
	force  bool     // next Render repaints every cell
}

// NewCanvas creates a blank canvas of width x height cells.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize changes the canvas size. Any size change forces a full repaint.
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == c.width && height == c.height && c.cells != nil {
		return
	}
	c.width = width
	c.height = height
	c.cells = make([]string, width*height)
	c.prev = make([]string, width*height)
	c.force = true
	c.Clear()
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in rows.
func (c *Canvas) Height() int {
	return c.height
}

// ForceRedraw makes the next Render repaint every cell (e.g. after the
// terminal was cleared).
func (c *Canvas) ForceRedraw() {
	c.force = true
}

// Clear blanks the current frame. Nothing is written until Render.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = " "
	}
}

// Set stores raw cell content at 0-based (col, row). Out-of-range cells are ignored.
func (c *Canvas) Set(col, row int, cell string) {
	if col < 0 || col >= c.width || row < 0 || row >= c.height {
		return
	}
	c.cells[row*c.width+col] = cell
}

// Get returns the cell content at 0-based (col, row), or "" when out of range.
func (c *Canvas) Get(col, row int) string {
	if col < 0 || col >= c.width || row < 0 || row >= c.height {
		return ""
	}
	return c.cells[row*c.width+col]
}

// SetRune stores r styled with style at (col, row).
func (c *Canvas) SetRune(col, row int, r rune, style lipgloss.Style) {
	c.Set(col, row, style.Render(string(r)))
}

// Text writes s starting at (col, row), one rune per cell.
func (c *Canvas) Text(col, row int, s string, style lipgloss.Style) {
	for _, r := range s {
		c.SetRune(col, row, r, style)
		col++
	}
}

// TextCentered writes s centered on column centerCol.
func (c *Canvas) TextCentered(centerCol, row int, s string, style lipgloss.Style) {
	c.Text(centerCol-len([]rune(s))/2, row, s, style)
}

// Fill blanks a rectangle.
func (c *Canvas) Fill(col, row, width, height int) {
	for y := row; y < row+height; y++ {
		for x := col; x < col+width; x++ {
			c.Set(x, y, " ")
		}
	}
}

// Box draws a single-line frame whose top-left corner is (col, row) and whose
// outer size is width x height. A non-empty title is embedded in the top edge.
func (c *Canvas) Box(col, row, width, height int, title string, style lipgloss.Style) {
	if width < 2 || height < 2 {
		return
	}
	right := col + width - 1
	bottom := row + height - 1

	c.SetRune(col, row, '┌', style)
	c.SetRune(right, row, '┐', style)
	c.SetRune(col, bottom, '└', style)
	c.SetRune(right, bottom, '┘', style)
	for x := col + 1; x < right; x++ {
		c.SetRune(x, row, '─', style)
		c.SetRune(x, bottom, '─', style)
	}
	for y := row + 1; y < bottom; y++ {
		c.SetRune(col, y, '│', style)
		c.SetRune(right, y, '│', style)
	}
	if title != "" && len([]rune(title))+4 < width {
		c.Text(col+2, row, " "+title+" ", style)
	}
}

// Render writes the changed cells to cw. Coordinates are emitted 1-based and
// cw applies its own offset.
func (c *Canvas) Render(cw *ChunkWriter) {
	for row := 0; row < c.height; row++ {
		lastCol := -2
		for col := 0; col < c.width; col++ {
			idx := row*c.width + col
			cell := c.cells[idx]
			if !c.force && cell == c.prev[idx] {
				continue
			}
			if col != lastCol+1 {
				cw.MoveCursor(col+1, row+1)
			}
			cw.WriteString(cell)
			c.prev[idx] = cell
			lastCol = col
		}
	}
	c.force = false
}

// String returns the current frame as plain lines, for tests and debugging.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.height; row++ {
		for col := 0; col < c.width; col++ {
			b.WriteString(c.cells[row*c.width+col])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
