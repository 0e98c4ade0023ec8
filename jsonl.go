package xlgrid

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, rows [][]CellValue) error {
	enc := json.NewEncoder(w)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
