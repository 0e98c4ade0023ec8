package xlgrid

import (
	"fmt"
	"io"
	"strings"
)

func writePlain(w io.Writer, rows [][]CellValue) error {
	for _, row := range rowStrings(rows) {
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return nil
}
