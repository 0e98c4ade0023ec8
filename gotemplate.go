package xlgrid

import (
	"fmt"
	"io"
	"text/template"
)

func goTemplateRenderer(tmplStr string) (func(io.Writer, [][]CellValue) error, error) {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return func(w io.Writer, rows [][]CellValue) error {
		for _, row := range rows {
			data := make([]any, len(row))
			for i, v := range row {
				data[i] = v.Any()
			}
			if err := tmpl.Execute(w, data); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		return nil
	}, nil
}
