package engine

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/specialistvlad/gridbelt/internal/grid"
)

// State is the lifecycle state of a Machine.
type State uint8

const (
	Running State = iota
	Halted
)

func (s State) String() string {
	if s == Halted {
		return "halted"
	}
	return "running"
}

// Progress is reported to the observer after every tick.
type Progress struct {
	Tick   uint64
	Halted bool
}

// Result summarises a finished Run.
type Result struct {
	Ticks  uint64
	Halted bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for tick-level diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

// WithMaxTicks stops Run after n ticks. Zero means no limit.
func WithMaxTicks(n uint64) Option {
	return func(m *Machine) { m.maxTicks = n }
}

// WithTrace renders the grid to w after every tick.
func WithTrace(w io.Writer) Option {
	return func(m *Machine) { m.trace = w }
}

// WithObserver registers fn to be called after every tick.
func WithObserver(fn func(Progress)) Option {
	return func(m *Machine) { m.observer = fn }
}

// Machine executes a grid. It takes ownership of the grid passed to New;
// callers must not touch it afterwards.
type Machine struct {
	grid  *grid.Grid
	snap  *grid.Snapshot
	acted []bool
	out   *bufio.Writer

	logger   *slog.Logger
	trace    io.Writer
	observer func(Progress)
	maxTicks uint64

	tick        uint64
	state       State
	pendingHalt bool
	fault       error
}

// New returns a Machine that writes Print output to out.
func New(g *grid.Grid, out io.Writer, opts ...Option) *Machine {
	m := &Machine{
		grid:   g,
		acted:  make([]bool, g.Len()),
		out:    bufio.NewWriter(out),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current lifecycle state.
func (m *Machine) State() State { return m.state }

// Halted reports whether a Print processor has consumed a Halt value.
func (m *Machine) Halted() bool { return m.state == Halted }

// Render writes the current grid in program notation.
func (m *Machine) Render(w io.Writer) error {
	return m.grid.Render(w)
}

func (m *Machine) result() Result {
	return Result{Ticks: m.tick, Halted: m.state == Halted}
}
