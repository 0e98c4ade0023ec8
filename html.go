package xlgrid

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, rows [][]CellValue) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, v := range row {
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", cellStyle(v), html.EscapeString(v.String())); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func cellStyle(v CellValue) string {
	if v.Kind == CellNumber {
		return ` style="text-align: right"`
	}
	return ""
}
