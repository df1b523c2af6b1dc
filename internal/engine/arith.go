package engine

import (
	"fmt"

	"github.com/specialistvlad/gridbelt/internal/cell"
)

// evaluate applies a binary operator. Arithmetic wraps at 32 bits.
func evaluate(op cell.Op, a, b int32) (int32, error) {
	switch op {
	case cell.Add:
		return a + b, nil
	case cell.Sub:
		return a - b, nil
	case cell.Mul:
		return a * b, nil
	case cell.Div:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	case cell.Mod:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a % b, nil
	case cell.And:
		return a & b, nil
	case cell.Or:
		return a | b, nil
	case cell.Equals:
		return truth(a == b), nil
	case cell.LessThan:
		return truth(a < b), nil
	case cell.GreaterThan:
		return truth(a > b), nil
	}
	return 0, fmt.Errorf("operator %s is not binary", op)
}

func truth(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
