// Package engine runs a gridbelt program one tick at a time.
//
// # Tick
//
// Every tick the Machine copies the value layer into a snapshot, then walks
// the grid twice in row-major order. The first pass activates operators and
// processors, the second activates everything that has not acted yet. A cell
// acts at most once per tick; the acted mask records this and is reset at
// the start of the next tick.
//
// # Push
//
// Moving a value into a cell goes through push. If the destination is
// occupied and has not acted, push activates it first so it can hand its own
// value onward, which lets a whole run of loaded conveyors advance in the
// same tick. A destination that still holds a value afterwards blocks the
// move and the source keeps its value until the next tick.
//
// # Faults
//
// Division or modulus by zero aborts the run with a *FaultError. Values that
// leave the grid vanish without error.
package engine
