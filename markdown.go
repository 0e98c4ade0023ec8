package xlgrid

import (
	"fmt"
	"io"
	"strings"
)

// writeMarkdown renders a GitHub-flavored Markdown table. The first grid row
// is the header. A column whose body cells are all numbers is right-aligned.
func writeMarkdown(w io.Writer, rows [][]CellValue) error {
	if len(rows) == 0 {
		return nil
	}
	cells := rowStrings(rows)
	for _, row := range cells {
		for i, cell := range row {
			row[i] = strings.ReplaceAll(cell, "|", `\|`)
		}
	}
	numCols := colCount(cells)

	// Minimum width 3 leaves room for alignment markers.
	widths := computeWidths(numCols, cells)
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}
	aligns := columnAligns(rows[1:], numCols)

	if err := writeMarkdownRow(w, cells[0], widths, aligns); err != nil {
		return err
	}

	sep := make([]string, numCols)
	for i, width := range widths {
		if aligns[i] == alignRight {
			sep[i] = strings.Repeat("-", width-1) + ":"
		} else {
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range cells[1:] {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

// columnAligns right-aligns columns that hold at least one number and no
// other kind of non-empty cell.
func columnAligns(rows [][]CellValue, numCols int) []alignment {
	aligns := make([]alignment, numCols)
	for col := range numCols {
		numbers := 0
		others := 0
		for _, row := range rows {
			if col >= len(row) {
				continue
			}
			switch row[col].Kind {
			case CellNumber:
				numbers++
			case CellEmpty:
			default:
				others++
			}
		}
		if numbers > 0 && others == 0 {
			aligns[col] = alignRight
		}
	}
	return aligns
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
