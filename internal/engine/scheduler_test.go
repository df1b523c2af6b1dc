package engine

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/specialistvlad/gridbelt/internal/cell"
	"github.com/specialistvlad/gridbelt/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_ArithmeticAndPrint(t *testing.T) {
	m, out := newMachine(t, "3+4\n @ ")

	step(t, m, 1)
	assert.Empty(t, out.String(), "nothing is printed in the tick the result is produced")
	assert.Equal(t, cell.Int(7), m.grid.Value(at(1, 1)))
	assert.True(t, m.grid.Value(at(0, 0)).IsEmpty())
	assert.True(t, m.grid.Value(at(0, 2)).IsEmpty())

	step(t, m, 1)
	assert.Equal(t, "7", out.String())
	assert.True(t, m.grid.Value(at(1, 1)).IsEmpty())
	assert.False(t, m.Halted())
}

func TestScenario_FallOffNeverHalts(t *testing.T) {
	m, out := newMachine(t, "5;", WithMaxTicks(25))

	res, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Halted)
	assert.EqualValues(t, 25, res.Ticks)
	assert.Empty(t, out.String())
	assert.Zero(t, m.grid.LiveValues(), "both values leave the grid in the first tick")
}

func TestRun_Halts(t *testing.T) {
	m, out := newMachine(t, "Hi;\n@@@")

	res, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Halted)
	assert.EqualValues(t, 2, res.Ticks)
	assert.Equal(t, "Hi", out.String())
	assert.Equal(t, Halted, m.State())

	assert.ErrorIs(t, m.Step(context.Background()), ErrHalted)
}

func TestRun_HaltCompletesTick(t *testing.T) {
	// The halt is consumed at (1,0) before the 5 is printed at (1,1); the
	// rest of the tick still runs.
	m, out := newMachine(t, ";5\n@@")

	res, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Halted)
	assert.Equal(t, "5", out.String())
}

func TestRun_Cancelled(t *testing.T) {
	m, _ := newMachine(t, "5;")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := m.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Ticks)
}

func TestRun_DivisionByZeroIsFatal(t *testing.T) {
	for _, src := range []string{"4/0\n   ", "4%0\n   "} {
		m, _ := newMachine(t, src)

		res, err := m.Run(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDivisionByZero)

		var fault *FaultError
		require.ErrorAs(t, err, &fault)
		assert.Equal(t, at(0, 1), fault.Pos)
		assert.EqualValues(t, 1, fault.Tick)
		assert.False(t, res.Halted)

		assert.Equal(t, cell.Int(4), m.grid.Value(at(0, 0)), "operands are untouched")
		assert.Equal(t, cell.Int(0), m.grid.Value(at(0, 2)))

		assert.ErrorIs(t, m.Step(context.Background()), ErrDivisionByZero, "a faulted machine stays faulted")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestStep_OutputErrorIsFatal(t *testing.T) {
	g, err := grid.Build("7\n@")
	require.NoError(t, err)
	m := New(g, failingWriter{})

	require.NoError(t, m.Step(context.Background()))
	err = m.Step(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestStep_PassOrder(t *testing.T) {
	// The operator's result reaches the printer in pass 1 and is not printed
	// until the next tick, while the 9 reaches its printer in pass 2.
	m, out := newMachine(t, "1+1\n @9\n  @")

	step(t, m, 1)
	assert.Empty(t, out.String())
	assert.Equal(t, cell.Int(2), m.grid.Value(at(1, 1)))
	assert.Equal(t, cell.Int(9), m.grid.Value(at(2, 2)))

	step(t, m, 1)
	assert.Equal(t, "29", out.String(), "printers emit in row-major order")
}

func TestObserverAndTrace(t *testing.T) {
	var seen []Progress
	trace := &bytes.Buffer{}
	m, _ := newMachine(t, "1;\n@@",
		WithObserver(func(p Progress) { seen = append(seen, p) }),
		WithTrace(trace),
	)

	_, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Progress{{Tick: 1}, {Tick: 2, Halted: true}}, seen)
	assert.Equal(t, "tick 1\n  \n1;\ntick 2\n  \n@@\n", trace.String())

	var sb strings.Builder
	require.NoError(t, m.Render(&sb))
	assert.Equal(t, "  \n@@\n", sb.String())
}
