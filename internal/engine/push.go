package engine

import (
	"github.com/specialistvlad/gridbelt/internal/cell"
	"github.com/specialistvlad/gridbelt/internal/grid"
)

// push tries to deposit v at dest. The caller clears its own slot only when
// push reports success.
func (m *Machine) push(v cell.Value, dest grid.Pos) bool {
	if !m.grid.InBounds(dest) {
		return true
	}
	i := m.grid.Index(dest)

	switch cur := m.grid.Value(dest); {
	case cur.Kind == cell.CannotHold:
		return false
	case cur.IsEmpty():
		m.activate(dest)
	default:
		if m.acted[i] {
			return false
		}
		// Let the occupant move on first.
		m.activate(dest)
	}

	if !m.grid.Value(dest).IsEmpty() {
		return false
	}
	m.grid.SetValue(dest, v)
	m.acted[i] = true
	return true
}

// activate runs the behavior of the cell at p unless it already acted this
// tick. The cell is marked before its behavior runs so that a push cycling
// back to it fails instead of recursing.
func (m *Machine) activate(p grid.Pos) {
	i := m.grid.Index(p)
	if m.acted[i] || m.fault != nil {
		return
	}
	m.acted[i] = true

	c := m.grid.At(p)
	switch c.Kind {
	case cell.Conveyor:
		m.runConveyor(p, c.Direction)
	case cell.LogicalConveyor:
		m.runLogicalConveyor(p)
	case cell.Operator:
		if c.Op.Unary() {
			m.runUnary(p, c.Op)
		} else {
			m.runBinary(p, c.Op)
		}
	case cell.Processor:
		m.runProcessor(p, c.Proc)
	case cell.Wall:
	}
}
