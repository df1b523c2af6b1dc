package grid

import (
	"errors"
	"fmt"
)

// ErrEmptyProgram is returned when the program text yields no cells.
var ErrEmptyProgram = errors.New("program is empty")

// StructureError reports program text that cannot be turned into a grid.
type StructureError struct {
	Lines int
	Err   error
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("invalid program structure (%d lines): %v", e.Lines, e.Err)
}

func (e *StructureError) Unwrap() error {
	return e.Err
}
