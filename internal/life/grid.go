package life

// Grid stores a 2D array of cells in row-major order. Callers outside this
// package only get read access; writes happen through the double buffer.
type Grid struct {
	w, h  int
	cells []Cell
}

func newGrid(w, h int) *Grid {
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) Cell { return g.cells[g.Index(x, y)] }

// Cell returns the cell at linear index i.
func (g *Grid) Cell(i int) Cell { return g.cells[i] }

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c.alive {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.w != o.w || g.h != o.h || len(g.cells) != len(o.cells) {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

func (g *Grid) set(x, y int, c Cell) { g.cells[g.Index(x, y)] = c }

func (g *Grid) clear() {
	for i := range g.cells {
		g.cells[i] = Dead()
	}
}
