package xlgrid

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, rows [][]CellValue, delim rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim
	for _, row := range rowStrings(rows) {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
