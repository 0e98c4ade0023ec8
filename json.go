package xlgrid

import (
	"encoding/json"
	"io"
)

// writeJSON encodes the grid as one array of row arrays. Empty cells are
// null.
func writeJSON(w io.Writer, rows [][]CellValue) error {
	return json.NewEncoder(w).Encode(rows)
}
