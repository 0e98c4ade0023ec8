package xlgrid

import (
	"io"
	"strings"
)

// writeList prints every non-empty cell on its own line in row-major order.
func writeList(w io.Writer, rows [][]CellValue) error {
	var all []string
	for _, row := range rows {
		for _, v := range row {
			if v.Kind != CellEmpty {
				all = append(all, v.String())
			}
		}
	}
	if len(all) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(all, "\n")+"\n")
	return err
}
