package cell

import "fmt"

// Kind is the structural type of a cell. It never changes after the grid is
// built.
type Kind uint8

const (
	Wall Kind = iota
	Conveyor
	LogicalConveyor
	Operator
	Processor
)

func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Conveyor:
		return "conveyor"
	case LogicalConveyor:
		return "logical-conveyor"
	case Operator:
		return "operator"
	case Processor:
		return "processor"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// HoldsValues reports whether cells of this kind own a value slot.
func (k Kind) HoldsValues() bool {
	return k == Conveyor || k == Processor
}

// Direction is the heading of a Conveyor.
type Direction uint8

const (
	Down Direction = iota
	Up
	Left
	Right
	DoubleDown
	DoubleUp
	DoubleLeft
	DoubleRight
)

// Offset returns the row and column delta a conveyor moves its payload by.
func (d Direction) Offset() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case DoubleUp:
		return -2, 0
	case DoubleDown:
		return 2, 0
	case DoubleLeft:
		return 0, -2
	case DoubleRight:
		return 0, 2
	}
	panic(fmt.Sprintf("cell: unknown direction %d", d))
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case DoubleUp:
		return "double-up"
	case DoubleDown:
		return "double-down"
	case DoubleLeft:
		return "double-left"
	case DoubleRight:
		return "double-right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Op is the arithmetic or logical function of an Operator cell.
type Op uint8

const (
	Add Op = iota
	Sub
	Mul
	Div
	Mod
	And
	Or
	Equals
	LessThan
	GreaterThan
	Invert
	Duplicate
)

// Unary reports whether the operator takes a single operand from its left
// neighbour and emits to its right.
func (o Op) Unary() bool {
	return o == Invert || o == Duplicate
}

func (o Op) String() string {
	switch o {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case Div:
		return "div"
	case Mod:
		return "mod"
	case And:
		return "and"
	case Or:
		return "or"
	case Equals:
		return "equals"
	case LessThan:
		return "less-than"
	case GreaterThan:
		return "greater-than"
	case Invert:
		return "invert"
	case Duplicate:
		return "duplicate"
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Proc is the effect of a Processor cell.
type Proc uint8

const (
	Print Proc = iota
	Delete
)

func (p Proc) String() string {
	switch p {
	case Print:
		return "print"
	case Delete:
		return "delete"
	}
	return fmt.Sprintf("Proc(%d)", uint8(p))
}

// Structure is the immutable half of a cell. Only the field matching Kind is
// meaningful.
type Structure struct {
	Kind      Kind
	Direction Direction
	Op        Op
	Proc      Proc
}

// Cell pairs a structure with its value slot.
type Cell struct {
	Structure
	Value Value
}

// NewConveyor returns an empty conveyor heading in d.
func NewConveyor(d Direction) Cell {
	return Cell{Structure: Structure{Kind: Conveyor, Direction: d}}
}

// NewLiteral returns a Down conveyor preloaded with v.
func NewLiteral(v Value) Cell {
	c := NewConveyor(Down)
	c.Value = v
	return c
}

// NewOperator returns an operator cell.
func NewOperator(o Op) Cell {
	return Cell{Structure: Structure{Kind: Operator, Op: o}, Value: Blocked()}
}

// NewProcessor returns an empty processor cell.
func NewProcessor(p Proc) Cell {
	return Cell{Structure: Structure{Kind: Processor, Proc: p}}
}

// NewLogicalConveyor returns a logical conveyor cell.
func NewLogicalConveyor() Cell {
	return Cell{Structure: Structure{Kind: LogicalConveyor}, Value: Blocked()}
}

// NewWall returns a wall cell.
func NewWall() Cell {
	return Cell{Structure: Structure{Kind: Wall}, Value: Blocked()}
}

func (c Cell) String() string {
	switch c.Kind {
	case Conveyor:
		return fmt.Sprintf("conveyor(%s)=%s", c.Direction, c.Value)
	case Operator:
		return fmt.Sprintf("operator(%s)", c.Op)
	case Processor:
		return fmt.Sprintf("processor(%s)=%s", c.Proc, c.Value)
	}
	return c.Kind.String()
}
