// Package draw renders text frames to a terminal with ANSI escape sequences.
package draw

// Glyphs used for board contents.
const (
	GlyphHead = '●'
	GlyphBody = '○'
	GlyphFood = '◆'
)

// CellWidth is the number of terminal columns per board cell. Terminal cells
// are about twice as tall as wide, so two columns make a square.
const CellWidth = 2

// ControlLines is the key help shown next to the board.
var ControlLines = []string{
	"↑↓←→ WASD HJKL  Move",
	"Space / P      Pause",
	"R            Restart",
	"Q / Esc         Quit",
}
