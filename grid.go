package xlgrid

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// CellKind is the type of a cell value.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellBool
	CellNumber
	CellText
)

// String returns the kind name.
func (k CellKind) String() string {
	switch k {
	case CellBool:
		return "bool"
	case CellNumber:
		return "number"
	case CellText:
		return "text"
	default:
		return "empty"
	}
}

// CellValue is a typed cell. The zero value is an empty cell.
type CellValue struct {
	Kind   CellKind
	Bool   bool
	Number float64
	Text   string
}

// BoolCell returns a Boolean cell value.
func BoolCell(v bool) CellValue { return CellValue{Kind: CellBool, Bool: v} }

// NumberCell returns a Number cell value.
func NumberCell(v float64) CellValue { return CellValue{Kind: CellNumber, Number: v} }

// TextCell returns a Text cell value.
func TextCell(v string) CellValue { return CellValue{Kind: CellText, Text: v} }

// String renders the value the way text sinks print it. Empty cells render
// as "".
func (v CellValue) String() string {
	switch v.Kind {
	case CellBool:
		return strconv.FormatBool(v.Bool)
	case CellNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case CellText:
		return v.Text
	default:
		return ""
	}
}

// Any returns the value as bool, float64, string, or nil.
func (v CellValue) Any() any {
	switch v.Kind {
	case CellBool:
		return v.Bool
	case CellNumber:
		return v.Number
	case CellText:
		return v.Text
	default:
		return nil
	}
}

// MarshalJSON encodes the value as a JSON scalar; empty cells are null.
func (v CellValue) MarshalJSON() ([]byte, error) { return json.Marshal(v.Any()) }

// MarshalYAML encodes the value as a YAML scalar; empty cells are null.
func (v CellValue) MarshalYAML() (any, error) { return v.Any(), nil }

// Cell is one written coordinate.
type Cell struct {
	Row   int
	Col   int
	Value CellValue
}

// Grid is an in-memory sink that records cells in write order. Finish
// writes nothing; read the result with [Grid.Cells] or [Grid.Rows].
type Grid struct {
	cells []Cell
	index map[[2]int]int
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{index: make(map[[2]int]int)}
}

// WriteBool records a Boolean cell.
func (g *Grid) WriteBool(row, col int, v bool) error { return g.put(row, col, BoolCell(v)) }

// WriteNumber records a Number cell.
func (g *Grid) WriteNumber(row, col int, v float64) error { return g.put(row, col, NumberCell(v)) }

// WriteString records a Text cell.
func (g *Grid) WriteString(row, col int, v string) error { return g.put(row, col, TextCell(v)) }

// Finish is a no-op for the in-memory grid.
func (g *Grid) Finish(io.Writer) error { return nil }

func (g *Grid) put(row, col int, v CellValue) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, row, col)
	}
	key := [2]int{row, col}
	if _, ok := g.index[key]; ok {
		return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, row, col)
	}
	g.index[key] = len(g.cells)
	g.cells = append(g.cells, Cell{Row: row, Col: col, Value: v})
	return nil
}

// Cells returns the recorded cells in write order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Cell returns the value at (row, col) and whether it was written.
func (g *Grid) Cell(row, col int) (CellValue, bool) {
	i, ok := g.index[[2]int{row, col}]
	if !ok {
		return CellValue{}, false
	}
	return g.cells[i].Value, true
}

// Rows returns the grid as rows up to the last row holding a cell. Each row
// ends at its last written column; gaps are empty cells and rows without
// cells are empty slices.
func (g *Grid) Rows() [][]CellValue {
	n := 0
	for _, c := range g.cells {
		n = max(n, c.Row+1)
	}
	rows := make([][]CellValue, n)
	for _, c := range g.cells {
		row := rows[c.Row]
		if c.Col >= len(row) {
			row = append(row, make([]CellValue, c.Col+1-len(row))...)
		}
		row[c.Col] = c.Value
		rows[c.Row] = row
	}
	for i, row := range rows {
		if row == nil {
			rows[i] = []CellValue{}
		}
	}
	return rows
}

// textSink buffers cells in a Grid and renders them on Finish.
type textSink struct {
	*Grid
	render func(io.Writer, [][]CellValue) error
}

func newTextSink(render func(io.Writer, [][]CellValue) error) *textSink {
	return &textSink{Grid: NewGrid(), render: render}
}

func (s *textSink) Finish(w io.Writer) error {
	return s.render(w, s.Rows())
}

// rowStrings renders every cell with [CellValue.String].
func rowStrings(rows [][]CellValue) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = v.String()
		}
	}
	return out
}
