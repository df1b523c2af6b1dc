package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/gridbelt/internal/cell"
)

// Run steps the machine until it halts, ctx is cancelled, a cell faults or
// the tick budget is spent. Cancellation is only observed between ticks.
func (m *Machine) Run(ctx context.Context) (Result, error) {
	m.logger.Debug("Machine run started.", "width", m.grid.Width(), "height", m.grid.Height(), "max_ticks", m.maxTicks)

	for m.state == Running {
		if err := ctx.Err(); err != nil {
			return m.result(), fmt.Errorf("run cancelled after %d ticks: %w", m.tick, err)
		}
		if m.maxTicks > 0 && m.tick >= m.maxTicks {
			m.logger.Warn("Tick budget exhausted before halt.", "ticks", m.tick)
			return m.result(), nil
		}
		if err := m.Step(ctx); err != nil {
			return m.result(), err
		}
	}

	m.logger.Info("Program has halted.", "ticks", m.tick)
	return m.result(), nil
}

// Step runs a single tick.
func (m *Machine) Step(ctx context.Context) error {
	if m.fault != nil {
		return m.fault
	}
	if m.state == Halted {
		return ErrHalted
	}

	m.snap = m.grid.Snapshot(m.snap)
	clear(m.acted)
	m.tick++

	// Operators and processors go first so that results produced this tick
	// are already in place when the conveyors move.
	for i := 0; i < len(m.acted) && m.fault == nil; i++ {
		if m.acted[i] {
			continue
		}
		switch m.grid.At(m.grid.PosOf(i)).Kind {
		case cell.Operator, cell.Processor:
			m.activate(m.grid.PosOf(i))
		}
	}
	for i := 0; i < len(m.acted) && m.fault == nil; i++ {
		if !m.acted[i] {
			m.activate(m.grid.PosOf(i))
		}
	}

	if err := m.out.Flush(); err != nil && m.fault == nil {
		m.fault = fmt.Errorf("writing output at tick %d: %w", m.tick, err)
	}
	if m.fault != nil {
		m.logger.Error("Run aborted by fault.", "tick", m.tick, "error", m.fault)
		return m.fault
	}

	if m.pendingHalt {
		m.state = Halted
	}
	m.afterTick(ctx)
	return nil
}

func (m *Machine) afterTick(ctx context.Context) {
	if m.logger.Enabled(ctx, slog.LevelDebug) {
		m.logger.Debug("Tick complete.", "tick", m.tick, "live_values", m.grid.LiveValues(), "state", m.state)
	}
	if m.trace != nil {
		fmt.Fprintf(m.trace, "tick %d\n", m.tick)
		if err := m.grid.Render(m.trace); err != nil {
			m.logger.Warn("Failed to render trace.", "tick", m.tick, "error", err)
		}
	}
	if m.observer != nil {
		m.observer(Progress{Tick: m.tick, Halted: m.state == Halted})
	}
}
