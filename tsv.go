package xlgrid

import (
	"fmt"
	"io"
	"strings"
)

// writeTSV joins cells with tabs. Tabs and newlines inside text cells are
// replaced by spaces so that every grid row stays on one line.
func writeTSV(w io.Writer, rows [][]CellValue) error {
	clean := strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")
	for _, row := range rowStrings(rows) {
		for i, cell := range row {
			row[i] = clean.Replace(cell)
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
