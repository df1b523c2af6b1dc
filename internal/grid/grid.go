package grid

import "github.com/specialistvlad/gridbelt/internal/cell"

// Pos addresses a cell by row and column. Positions outside the grid are
// valid values; InBounds tells them apart.
type Pos struct {
	Row int
	Col int
}

// Add returns p shifted by the given deltas.
func (p Pos) Add(dRow, dCol int) Pos {
	return Pos{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Grid is a fixed-size, row-major array of cells.
type Grid struct {
	width  int
	height int
	cells  []cell.Cell
}

// New returns a width x height grid of empty Down conveyors.
func New(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic("grid: negative dimensions")
	}
	g := &Grid{width: width, height: height, cells: make([]cell.Cell, width*height)}
	for i := range g.cells {
		g.cells[i] = cell.NewConveyor(cell.Down)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// Index returns the row-major index of p. p must be in bounds.
func (g *Grid) Index(p Pos) int {
	return p.Row*g.width + p.Col
}

// PosOf is the inverse of Index.
func (g *Grid) PosOf(i int) Pos {
	return Pos{Row: i / g.width, Col: i % g.width}
}

// At returns the cell at p. p must be in bounds.
func (g *Grid) At(p Pos) cell.Cell {
	return g.cells[g.Index(p)]
}

// Value returns the value slot at p. p must be in bounds.
func (g *Grid) Value(p Pos) cell.Value {
	return g.cells[g.Index(p)].Value
}

// SetValue overwrites the value slot at p.
func (g *Grid) SetValue(p Pos, v cell.Value) {
	g.cells[g.Index(p)].Value = v
}

// Put replaces the whole cell at p. Kinds without a value slot always read
// as CannotHold, whatever value c carries.
func (g *Grid) Put(p Pos, c cell.Cell) {
	if !c.Kind.HoldsValues() {
		c.Value = cell.Blocked()
	}
	g.cells[g.Index(p)] = c
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	out := &Grid{width: g.width, height: g.height, cells: make([]cell.Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// LiveValues counts the cells currently holding a real value.
func (g *Grid) LiveValues() int {
	n := 0
	for _, c := range g.cells {
		if c.Value.IsReal() {
			n++
		}
	}
	return n
}
