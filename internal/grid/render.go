package grid

import (
	"bufio"
	"io"

	"github.com/specialistvlad/gridbelt/internal/cell"
)

// Render writes one line per row. A cell holding a value shows that value,
// otherwise it shows the glyph of its structure.
func (g *Grid) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			bw.WriteRune(glyph(g.At(Pos{Row: y, Col: x})))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func glyph(c cell.Cell) rune {
	switch v := c.Value; v.Kind {
	case cell.Integer:
		if v.N >= 0 && v.N < 10 {
			return '0' + v.N
		}
		return 'n'
	case cell.Character:
		switch v.N {
		case '\n':
			return '\\'
		case ' ':
			return '"'
		}
		return rune(v.N)
	case cell.Halt:
		return ';'
	}

	switch c.Kind {
	case cell.Conveyor:
		switch c.Direction {
		case cell.Up:
			return '^'
		case cell.Down:
			return ' '
		case cell.Left:
			return '{'
		case cell.Right:
			return '}'
		case cell.DoubleUp:
			return '\''
		case cell.DoubleDown:
			return ','
		case cell.DoubleLeft:
			return '['
		case cell.DoubleRight:
			return ']'
		}
	case cell.LogicalConveyor:
		return '?'
	case cell.Operator:
		return opGlyphs[c.Op]
	case cell.Processor:
		if c.Proc == cell.Print {
			return '@'
		}
		return '#'
	case cell.Wall:
		return '_'
	}
	return '_'
}

var opGlyphs = map[cell.Op]rune{
	cell.Add:         '+',
	cell.Sub:         '-',
	cell.Mul:         '*',
	cell.Div:         '/',
	cell.Mod:         '%',
	cell.And:         '&',
	cell.Or:          '|',
	cell.Equals:      '=',
	cell.LessThan:    '<',
	cell.GreaterThan: '>',
	cell.Invert:      '!',
	cell.Duplicate:   ':',
}
