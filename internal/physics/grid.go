package physics

// Grid is a fixed-size occupancy map for a cell-based board.
// Cells are stored row-major, so free-cell enumeration visits rows top to
// bottom and columns left to right.
//
// Set and Unset are idempotent; the occupied count only changes when a cell
// actually flips.
type Grid struct {
	cols     int
	rows     int
	cells    []bool
	occupied int
}

// NewGrid creates an empty grid covering cols x rows cells.
// Non-positive dimensions are clamped to 1.
func NewGrid(cols, rows int) *Grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]bool, cols*rows),
	}
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the grid height in cells.
func (g *Grid) Rows() int {
	return g.rows
}

// Clear empties every cell without reallocating.
func (g *Grid) Clear() {
	clear(g.cells)
	g.occupied = 0
}

// InBounds reports whether (col, row) lies inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// Set marks a cell occupied. Out-of-bounds cells are ignored.
func (g *Grid) Set(col, row int) {
	if !g.InBounds(col, row) {
		return
	}
	idx := row*g.cols + col
	if !g.cells[idx] {
		g.cells[idx] = true
		g.occupied++
	}
}

// Unset marks a cell free. Out-of-bounds cells are ignored.
func (g *Grid) Unset(col, row int) {
	if !g.InBounds(col, row) {
		return
	}
	idx := row*g.cols + col
	if g.cells[idx] {
		g.cells[idx] = false
		g.occupied--
	}
}

// Occupied reports whether a cell is taken. Out-of-bounds cells report false.
func (g *Grid) Occupied(col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	return g.cells[row*g.cols+col]
}

// Free returns the number of unoccupied cells.
func (g *Grid) Free() int {
	return len(g.cells) - g.occupied
}

// NthFree returns the n-th (0-based) free cell in row-major order.
// ok is false when n is out of range.
func (g *Grid) NthFree(n int) (col, row int, ok bool) {
	if n < 0 || n >= g.Free() {
		return 0, 0, false
	}
	for idx, taken := range g.cells {
		if taken {
			continue
		}
		if n == 0 {
			return idx % g.cols, idx / g.cols, true
		}
		n--
	}
	return 0, 0, false
}
