package engine

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/gridbelt/internal/cell"
	"github.com/specialistvlad/gridbelt/internal/grid"
)

var (
	// ErrDivisionByZero is the fault raised by Div and Mod with a zero right operand.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrHalted is returned by Step once the machine has halted.
	ErrHalted = errors.New("machine has halted")
)

// FaultError is a fatal run error raised by a cell.
type FaultError struct {
	Tick uint64
	Pos  grid.Pos
	Op   cell.Op
	Err  error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("fault at tick %d in %s operator at row %d, column %d: %v",
		e.Tick, e.Op, e.Pos.Row, e.Pos.Col, e.Err)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}
