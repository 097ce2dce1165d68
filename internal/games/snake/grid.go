package snake

// Grid is the fixed-size board. Cells are stored in row-major order and every
// access goes through a bounds check.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates an empty grid. Non-positive dimensions yield an empty board.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether p lies on the board.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the cell at p. ok is false when p is off the board.
func (g *Grid) At(p Position) (c Cell, ok bool) {
	if !g.InBounds(p) {
		return CellEmpty, false
	}
	return g.cells[p.Y*g.width+p.X], true
}

// Set stores c at p and reports whether p was on the board.
func (g *Grid) Set(p Position, c Cell) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[p.Y*g.width+p.X] = c
	return true
}

// Clear resets every cell to CellEmpty.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = CellEmpty
	}
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  cells,
	}
}
