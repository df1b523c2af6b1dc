package engine

import (
	"github.com/specialistvlad/gridbelt/internal/cell"
	"github.com/specialistvlad/gridbelt/internal/grid"
)

func (m *Machine) runConveyor(p grid.Pos, d cell.Direction) {
	v := m.grid.Value(p)
	if !v.IsReal() {
		return
	}
	if m.push(v, p.Add(d.Offset())) {
		m.grid.SetValue(p, cell.EmptyValue())
	}
}

// runLogicalConveyor moves the value above p one column sideways. The value
// below p in the snapshot picks the side: zero goes right, anything else
// goes left.
func (m *Machine) runLogicalConveyor(p grid.Pos) {
	if p.Row == 0 || p.Row == m.grid.Height()-1 {
		return
	}

	var dCol int
	switch sel := m.snap.Value(p.Add(1, 0)); sel.Kind {
	case cell.Integer:
		if sel.N == 0 {
			dCol = 1
		} else {
			dCol = -1
		}
	case cell.Character, cell.Halt:
		dCol = -1
	default:
		return
	}

	src := p.Add(-1, 0)
	v := m.grid.Value(src)
	if !v.IsReal() {
		return
	}
	m.transfer(v, p.Add(0, dCol), src)
}

func (m *Machine) runBinary(p grid.Pos, op cell.Op) {
	if p.Col == 0 || p.Col == m.grid.Width()-1 {
		return
	}
	left, right := p.Add(0, -1), p.Add(0, 1)
	a, okA := m.grid.Value(left).Numeric()
	b, okB := m.grid.Value(right).Numeric()
	if !okA || !okB {
		return
	}

	result, err := evaluate(op, a, b)
	if err != nil {
		m.fault = &FaultError{Tick: m.tick, Pos: p, Op: op, Err: err}
		return
	}
	m.transfer(cell.Int(result), p.Add(1, 0), left, right)
}

// runUnary decides from the snapshot but consumes the live operand, which
// must still be numeric.
func (m *Machine) runUnary(p grid.Pos, op cell.Op) {
	if p.Col == 0 {
		return
	}
	left := p.Add(0, -1)
	n, ok := m.snap.Value(left).Numeric()
	if !ok {
		return
	}
	live := m.grid.Value(left)
	if _, ok := live.Numeric(); !ok {
		return
	}

	var result cell.Value
	switch op {
	case cell.Invert:
		result = cell.Int(truth(n == 0))
	case cell.Duplicate:
		result = live
	default:
		return
	}
	m.transfer(result, p.Add(0, 1), left)
}

func (m *Machine) runProcessor(p grid.Pos, proc cell.Proc) {
	v := m.grid.Value(p)
	if proc == cell.Print {
		switch v.Kind {
		case cell.Integer, cell.Character:
			m.out.WriteString(v.Text())
		case cell.Halt:
			m.pendingHalt = true
		}
	}
	m.grid.SetValue(p, cell.EmptyValue())
}

// transfer pushes v to dest on behalf of the operand cells in srcs. The
// operands are sealed while the push runs so no cascade can deposit into
// them; they are emptied on success and restored on failure.
func (m *Machine) transfer(v cell.Value, dest grid.Pos, srcs ...grid.Pos) bool {
	var saved [2]cell.Value
	for i, s := range srcs {
		saved[i] = m.grid.Value(s)
		m.grid.SetValue(s, cell.Blocked())
	}

	ok := m.push(v, dest)
	for i, s := range srcs {
		if ok {
			m.grid.SetValue(s, cell.EmptyValue())
		} else {
			m.grid.SetValue(s, saved[i])
		}
	}
	return ok
}
