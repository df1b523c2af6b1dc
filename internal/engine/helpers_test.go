package engine

import (
	"bytes"
	"context"
	"testing"

	"github.com/specialistvlad/gridbelt/internal/cell"
	"github.com/specialistvlad/gridbelt/internal/grid"
	"github.com/stretchr/testify/require"
)

func at(row, col int) grid.Pos {
	return grid.Pos{Row: row, Col: col}
}

// newMachine builds a machine from program text and captures its output.
func newMachine(t *testing.T, src string, opts ...Option) (*Machine, *bytes.Buffer) {
	t.Helper()
	g, err := grid.Build(src)
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return New(g, out, opts...), out
}

func step(t *testing.T, m *Machine, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, m.Step(context.Background()))
	}
}

// values maps every position holding a real value to that value.
func values(g *grid.Grid) map[grid.Pos]cell.Value {
	out := make(map[grid.Pos]cell.Value)
	for i := 0; i < g.Len(); i++ {
		p := g.PosOf(i)
		if v := g.Value(p); v.IsReal() {
			out[p] = v
		}
	}
	return out
}
