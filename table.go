package xlgrid

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee                          string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩",
	},
}

// writeTable renders the grid as a text table. Number cells are
// right-aligned, everything else left-aligned.
func writeTable(w io.Writer, rows [][]CellValue, border BorderStyle) error {
	cells := rowStrings(rows)
	numCols := colCount(cells)
	if numCols == 0 {
		return nil
	}
	widths := computeWidths(numCols, cells)
	aligns := cellAligns(rows)
	if border == BorderNone {
		return renderPlainTable(w, cells, aligns, widths)
	}
	bc, ok := borderSets[border]
	if !ok {
		bc = borderSets[BorderRounded]
	}
	return renderBorderedTable(w, cells, aligns, widths, bc)
}

func colCount(rows [][]string) int {
	n := 0
	for _, row := range rows {
		n = max(n, len(row))
	}
	return n
}

func computeWidths(numCols int, rows [][]string) []int {
	widths := make([]int, numCols)
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func cellAligns(rows [][]CellValue) [][]alignment {
	out := make([][]alignment, len(rows))
	for i, row := range rows {
		out[i] = make([]alignment, len(row))
		for j, v := range row {
			if v.Kind == CellNumber {
				out[i][j] = alignRight
			}
		}
	}
	return out
}

func alignAt(aligns []alignment, i int) alignment {
	if i < len(aligns) {
		return aligns[i]
	}
	return alignLeft
}

// --- Plain table (BorderNone) ---

func renderPlainTable(w io.Writer, rows [][]string, aligns [][]alignment, widths []int) error {
	for i, row := range rows {
		parts := make([]string, len(widths))
		for j, width := range widths {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			parts[j] = alignCell(cell, width, alignAt(aligns[i], j))
		}
		line := strings.TrimRight(strings.Join(parts, "  "), " ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// --- Bordered table ---

func renderBorderedTable(w io.Writer, rows [][]string, aligns [][]alignment, widths []int, bc borderChars) error {
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	for i, row := range rows {
		if err := drawBorderedRow(w, row, aligns[i], widths, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, aligns []alignment, widths []int, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(alignCell(cell, width, alignAt(aligns, i)))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func alignCell(s string, width int, align alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	if align == alignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}
