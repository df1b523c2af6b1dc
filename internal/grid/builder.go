package grid

import (
	"strings"

	"github.com/specialistvlad/gridbelt/internal/cell"
)

// Build parses program text into a grid. Every recognized character becomes
// one cell and everything else is skipped without taking a column. Rows
// shorter than the widest row are padded with Down conveyors.
func Build(text string) (*Grid, error) {
	lines := splitLines(text)

	rows := make([][]cell.Cell, 0, len(lines))
	width := 0
	for _, line := range lines {
		row := make([]cell.Cell, 0, len(line))
		for _, r := range line {
			c, ok := FromGlyph(r)
			if !ok {
				continue
			}
			row = append(row, c)
		}
		width = max(width, len(row))
		rows = append(rows, row)
	}

	if len(rows) == 0 || width == 0 {
		return nil, &StructureError{Lines: len(lines), Err: ErrEmptyProgram}
	}

	g := New(width, len(rows))
	for y, row := range rows {
		for x, c := range row {
			g.Put(Pos{Row: y, Col: x}, c)
		}
	}
	return g, nil
}

// splitLines breaks text into rows. A trailing newline does not open a new
// row and a carriage return before the newline is dropped.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// FromGlyph returns the cell a program character stands for.
func FromGlyph(r rune) (cell.Cell, bool) {
	switch {
	case r >= '0' && r <= '9':
		return cell.NewLiteral(cell.Int(r - '0')), true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return cell.NewLiteral(cell.Char(r)), true
	}

	switch r {
	case '"':
		return cell.NewLiteral(cell.Char(' ')), true
	case '\\':
		return cell.NewLiteral(cell.Char('\n')), true
	case ';':
		return cell.NewLiteral(cell.HaltValue()), true
	case '+':
		return cell.NewOperator(cell.Add), true
	case '-':
		return cell.NewOperator(cell.Sub), true
	case '*':
		return cell.NewOperator(cell.Mul), true
	case '/':
		return cell.NewOperator(cell.Div), true
	case '%':
		return cell.NewOperator(cell.Mod), true
	case '&':
		return cell.NewOperator(cell.And), true
	case '|':
		return cell.NewOperator(cell.Or), true
	case '=':
		return cell.NewOperator(cell.Equals), true
	case '<':
		return cell.NewOperator(cell.LessThan), true
	case '>':
		return cell.NewOperator(cell.GreaterThan), true
	case '!':
		return cell.NewOperator(cell.Invert), true
	case ':':
		return cell.NewOperator(cell.Duplicate), true
	case ' ':
		return cell.NewConveyor(cell.Down), true
	case ',':
		return cell.NewConveyor(cell.DoubleDown), true
	case '^':
		return cell.NewConveyor(cell.Up), true
	case '\'':
		return cell.NewConveyor(cell.DoubleUp), true
	case '}':
		return cell.NewConveyor(cell.Right), true
	case ']':
		return cell.NewConveyor(cell.DoubleRight), true
	case '{':
		return cell.NewConveyor(cell.Left), true
	case '[':
		return cell.NewConveyor(cell.DoubleLeft), true
	case '?':
		return cell.NewLogicalConveyor(), true
	case '@':
		return cell.NewProcessor(cell.Print), true
	case '#':
		return cell.NewProcessor(cell.Delete), true
	case '_':
		return cell.NewWall(), true
	}
	return cell.Cell{}, false
}
