package grid

import "github.com/specialistvlad/gridbelt/internal/cell"

// Snapshot is a read-only copy of a grid's value layer.
type Snapshot struct {
	width  int
	height int
	values []cell.Value
}

// Snapshot copies the current value of every cell. Passing a previous
// snapshot reuses its storage.
func (g *Grid) Snapshot(reuse *Snapshot) *Snapshot {
	s := reuse
	if s == nil || cap(s.values) < len(g.cells) {
		s = &Snapshot{values: make([]cell.Value, len(g.cells))}
	}
	s.width, s.height = g.width, g.height
	s.values = s.values[:len(g.cells)]
	for i, c := range g.cells {
		s.values[i] = c.Value
	}
	return s
}

// Value returns the value p held when the snapshot was taken. Positions
// outside the grid read as Empty.
func (s *Snapshot) Value(p Pos) cell.Value {
	if p.Row < 0 || p.Row >= s.height || p.Col < 0 || p.Col >= s.width {
		return cell.EmptyValue()
	}
	return s.values[p.Row*s.width+p.Col]
}
