package engine

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/specialistvlad/gridbelt/internal/cell"
	"github.com/specialistvlad/gridbelt/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPush_Cascade(t *testing.T) {
	for _, n := range []int{1, 5, 50} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			g := grid.New(1, n+1)
			for i := 0; i < n; i++ {
				g.SetValue(at(i, 0), cell.Int(int32(100+i)))
			}
			m := New(g, &bytes.Buffer{})

			require.NoError(t, m.Step(context.Background()))

			assert.True(t, g.Value(at(0, 0)).IsEmpty())
			for i := 0; i < n; i++ {
				assert.Equal(t, cell.Int(int32(100+i)), g.Value(at(i+1, 0)), "value from row %d", i)
			}
			assert.Equal(t, n, g.LiveValues())
		})
	}
}

func TestPush_BlockedRunStalls(t *testing.T) {
	g, err := grid.Build("1\n2\n3\n_")
	require.NoError(t, err)
	m := New(g, &bytes.Buffer{})

	require.NoError(t, m.Step(context.Background()))
	assert.Equal(t, cell.Int(1), g.Value(at(0, 0)))
	assert.Equal(t, cell.Int(2), g.Value(at(1, 0)))
	assert.Equal(t, cell.Int(3), g.Value(at(2, 0)))
}

func TestPush_MutualCycleStalls(t *testing.T) {
	g := grid.New(2, 1)
	g.Put(at(0, 0), cell.NewConveyor(cell.Right))
	g.Put(at(0, 1), cell.NewConveyor(cell.Left))
	g.SetValue(at(0, 0), cell.Int(1))
	g.SetValue(at(0, 1), cell.Int(2))
	m := New(g, &bytes.Buffer{})

	require.NoError(t, m.Step(context.Background()))
	assert.Equal(t, cell.Int(1), g.Value(at(0, 0)))
	assert.Equal(t, cell.Int(2), g.Value(at(0, 1)))
}

func TestPush_RingWithGapRotates(t *testing.T) {
	g := grid.New(2, 2)
	g.Put(at(0, 0), cell.NewConveyor(cell.Right))
	g.Put(at(0, 1), cell.NewConveyor(cell.Down))
	g.Put(at(1, 1), cell.NewConveyor(cell.Left))
	g.Put(at(1, 0), cell.NewConveyor(cell.Up))
	g.SetValue(at(0, 0), cell.Int(1))
	g.SetValue(at(0, 1), cell.Int(2))
	g.SetValue(at(1, 1), cell.Int(3))
	m := New(g, &bytes.Buffer{})

	require.NoError(t, m.Step(context.Background()))
	assert.Equal(t, map[grid.Pos]cell.Value{
		at(0, 1): cell.Int(1),
		at(1, 1): cell.Int(2),
		at(1, 0): cell.Int(3),
	}, values(g))
}

func TestPush_DoubleStepJumpsOverCell(t *testing.T) {
	g := grid.New(1, 3)
	g.Put(at(0, 0), cell.NewConveyor(cell.DoubleDown))
	g.SetValue(at(0, 0), cell.Int(4))
	g.SetValue(at(1, 0), cell.Int(5))
	m := New(g, &bytes.Buffer{})

	require.NoError(t, m.Step(context.Background()))
	// The 4 lands past the 5, which then finds its target taken and stalls.
	assert.Equal(t, map[grid.Pos]cell.Value{
		at(1, 0): cell.Int(5),
		at(2, 0): cell.Int(4),
	}, values(g))
}

// TestPush_SealedOperandRejectsCascade routes an operator's result push
// through a loop of loaded conveyors that ends at its own left operand.
func TestPush_SealedOperandRejectsCascade(t *testing.T) {
	testCases := []struct {
		name    string
		leftDir cell.Direction
		want    map[grid.Pos]cell.Value
	}{
		{
			name:    "operand cannot move",
			leftDir: cell.Right,
			want: map[grid.Pos]cell.Value{
				at(0, 0): cell.Int(3),
				at(0, 2): cell.Int(4),
				at(1, 0): cell.Int(9),
				at(1, 1): cell.Int(8),
			},
		},
		{
			// The operand is restored and only falls off the grid when its
			// own conveyor runs later in the tick.
			name:    "operand leaves in pass two",
			leftDir: cell.Up,
			want: map[grid.Pos]cell.Value{
				at(0, 2): cell.Int(4),
				at(1, 0): cell.Int(9),
				at(1, 1): cell.Int(8),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := grid.New(3, 2)
			g.Put(at(0, 0), cell.NewConveyor(tc.leftDir))
			g.Put(at(0, 1), cell.NewOperator(cell.Add))
			g.Put(at(0, 2), cell.NewConveyor(cell.Left))
			g.Put(at(1, 0), cell.NewConveyor(cell.Up))
			g.Put(at(1, 1), cell.NewConveyor(cell.Left))
			g.Put(at(1, 2), cell.NewWall())
			g.SetValue(at(0, 0), cell.Int(3))
			g.SetValue(at(0, 2), cell.Int(4))
			g.SetValue(at(1, 0), cell.Int(9))
			g.SetValue(at(1, 1), cell.Int(8))
			m := New(g, &bytes.Buffer{})

			require.NoError(t, m.Step(context.Background()))
			assert.Equal(t, tc.want, values(g))
		})
	}
}

var conveyorKinds = []cell.Direction{
	cell.Up, cell.Down, cell.Left, cell.Right,
	cell.DoubleUp, cell.DoubleDown, cell.DoubleLeft, cell.DoubleRight,
}

// TestTick_ConservationAndSingleHop runs random conveyor and wall grids and
// checks that every value either stays put, advances exactly one step of its
// own conveyor, or leaves the grid when that step points outside it.
func TestTick_ConservationAndSingleHop(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 200; iter++ {
		w, h := 1+rng.Intn(8), 1+rng.Intn(8)
		g := grid.New(w, h)
		next := int32(1)
		for i := 0; i < g.Len(); i++ {
			p := g.PosOf(i)
			if rng.Intn(6) == 0 {
				g.Put(p, cell.NewWall())
				continue
			}
			g.Put(p, cell.NewConveyor(conveyorKinds[rng.Intn(len(conveyorKinds))]))
			if rng.Intn(2) == 0 {
				g.SetValue(p, cell.Int(next))
				next++
			}
		}

		before := values(g)
		structure := g.Clone()
		m := New(g, &bytes.Buffer{})
		require.NoError(t, m.Step(context.Background()))
		after := values(g)

		where := make(map[int32]grid.Pos, len(after))
		for p, v := range after {
			where[v.N] = p
		}

		fell := 0
		for from, v := range before {
			target := from.Add(structure.At(from).Direction.Offset())
			to, kept := where[v.N]
			if !kept {
				require.False(t, g.InBounds(target), "iteration %d: value %d at %v vanished inside the grid", iter, v.N, from)
				fell++
				continue
			}
			require.True(t, to == from || to == target,
				"iteration %d: value %d moved from %v to %v, expected %v or in place", iter, v.N, from, to, target)
		}
		require.Equal(t, len(before)-fell, len(after), "iteration %d: value count not conserved", iter)
	}
}
