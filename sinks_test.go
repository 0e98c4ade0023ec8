package xlgrid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/xlgrid"
)

func render(t *testing.T, f xlgrid.Format, v any, opts ...xlgrid.SinkOption) string {
	t.Helper()
	sink, err := xlgrid.NewSink(f, opts...)
	require.NoError(t, err)
	out, err := xlgrid.Marshal(sink, v)
	require.NoError(t, err)
	return string(out)
}

// ============================================================
// Tests
// ============================================================

func TestRenderTextFormats(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format xlgrid.Format
		opts   []xlgrid.SinkOption
		want   string
	}{
		"csv": {
			format: xlgrid.CSV,
			want:   "Alice,30,true\nBob,25,false\n",
		},
		"csv semicolon": {
			format: xlgrid.CSV,
			opts:   []xlgrid.SinkOption{xlgrid.WithDelimiter(';')},
			want:   "Alice;30;true\nBob;25;false\n",
		},
		"tsv": {
			format: xlgrid.TSV,
			want:   "Alice\t30\ttrue\nBob\t25\tfalse\n",
		},
		"json": {
			format: xlgrid.JSON,
			want:   `[["Alice",30,true],["Bob",25,false]]` + "\n",
		},
		"jsonl": {
			format: xlgrid.JSONL,
			want:   `["Alice",30,true]` + "\n" + `["Bob",25,false]` + "\n",
		},
		"plain": {
			format: xlgrid.Plain,
			want:   "Alice 30 true\nBob 25 false\n",
		},
		"list": {
			format: xlgrid.List,
			want:   "Alice\n30\ntrue\nBob\n25\nfalse\n",
		},
		"table": {
			format: xlgrid.Table,
			want: "╭───────┬────┬───────╮\n" +
				"│ Alice │ 30 │ true  │\n" +
				"│ Bob   │ 25 │ false │\n" +
				"╰───────┴────┴───────╯\n",
		},
		"table ascii": {
			format: xlgrid.Table,
			opts:   []xlgrid.SinkOption{xlgrid.WithBorder(xlgrid.BorderASCII)},
			want: "+-------+----+-------+\n" +
				"| Alice | 30 | true  |\n" +
				"| Bob   | 25 | false |\n" +
				"+-------+----+-------+\n",
		},
		"table no border": {
			format: xlgrid.Table,
			opts:   []xlgrid.SinkOption{xlgrid.WithBorder(xlgrid.BorderNone)},
			want:   "Alice  30  true\nBob    25  false\n",
		},
		"markdown": {
			format: xlgrid.Markdown,
			want: "| Alice |  30 | true  |\n" +
				"| ----- | --: | ----- |\n" +
				"| Bob   |  25 | false |\n",
		},
		"go template": {
			format: xlgrid.GoTemplate(`{{index . 0}} is {{index . 1}}`),
			want:   "Alice is 30\nBob is 25\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, render(t, tt.format, people, tt.opts...))
		})
	}
}

func TestRenderYAML(t *testing.T) {
	t.Parallel()
	out := render(t, xlgrid.YAML, people)
	var got [][]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, [][]any{{"Alice", 30, true}, {"Bob", 25, false}}, got)
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()
	out := render(t, xlgrid.HTML, [][]any{{"<b>", 1.5}})
	assert.Equal(t, "<table>\n"+
		"  <tbody>\n"+
		"    <tr>\n"+
		"      <td>&lt;b&gt;</td>\n"+
		"      <td style=\"text-align: right\">1.5</td>\n"+
		"    </tr>\n"+
		"  </tbody>\n"+
		"</table>\n", out)
}

func TestRenderTableAlignsNumbersRight(t *testing.T) {
	t.Parallel()
	out := render(t, xlgrid.Table, [][]any{{"x", 5}, {"yy", 100}}, xlgrid.WithBorder(xlgrid.BorderNone))
	assert.Equal(t, "x     5\nyy  100\n", out)
}

func TestRenderTableWideRunes(t *testing.T) {
	t.Parallel()
	out := render(t, xlgrid.Table, [][]string{{"日本"}, {"abc"}})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "│ 日本 │", lines[1])
	assert.Equal(t, "│ abc  │", lines[2])
}

func TestRenderMarkdownEscapesPipes(t *testing.T) {
	t.Parallel()
	out := render(t, xlgrid.Markdown, [][]string{{"a|b"}, {"c"}})
	assert.Equal(t, "| a\\|b |\n| ---- |\n| c    |\n", out)
}

func TestRenderGapRows(t *testing.T) {
	t.Parallel()
	// Rows without cells come from WithEmptyRows and custom marshalers.
	tests := map[string]struct {
		format xlgrid.Format
		want   string
	}{
		"csv":  {format: xlgrid.CSV, want: "1\n\n2\n"},
		"json": {format: xlgrid.JSON, want: "[[1],[],[2]]\n"},
		"list": {format: xlgrid.List, want: "1\n2\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			sink, err := xlgrid.NewSink(tt.format)
			require.NoError(t, err)
			v := [][]int{{1}, {}, {2}}
			out, err := xlgrid.Marshal(sink, v, xlgrid.WithEmptyRows())
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestRenderEmptyGrid(t *testing.T) {
	t.Parallel()
	for _, f := range []xlgrid.Format{xlgrid.CSV, xlgrid.Table, xlgrid.Markdown, xlgrid.Plain, xlgrid.List} {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			assert.Empty(t, render(t, f, []int{}))
		})
	}
}

func TestNewSinkInvalidTemplate(t *testing.T) {
	t.Parallel()
	_, err := xlgrid.NewSink(xlgrid.GoTemplate("{{.Missing"))
	assert.ErrorIs(t, err, xlgrid.ErrInvalidTemplate)
}

func TestGridRejectsDuplicateCell(t *testing.T) {
	t.Parallel()
	g := xlgrid.NewGrid()
	require.NoError(t, g.WriteNumber(0, 0, 1))
	err := g.WriteString(0, 0, "again")
	assert.ErrorIs(t, err, xlgrid.ErrCellOccupied)

	v, ok := g.Cell(0, 0)
	require.True(t, ok)
	assert.Equal(t, xlgrid.NumberCell(1), v)
	_, ok = g.Cell(5, 5)
	assert.False(t, ok)
}

func TestGridRejectsNegativeCoordinates(t *testing.T) {
	t.Parallel()
	g := xlgrid.NewGrid()
	assert.ErrorIs(t, g.WriteBool(-1, 0, true), xlgrid.ErrInvalidCoordinate)
	assert.ErrorIs(t, g.WriteString(0, -1, "x"), xlgrid.ErrInvalidCoordinate)
	assert.Empty(t, g.Cells())
}

func TestGridRows(t *testing.T) {
	t.Parallel()
	g := xlgrid.NewGrid()
	require.NoError(t, g.WriteString(0, 0, "a"))
	require.NoError(t, g.WriteString(2, 1, "b"))
	assert.Equal(t, [][]xlgrid.CellValue{
		{xlgrid.TextCell("a")},
		{},
		{{}, xlgrid.TextCell("b")},
	}, g.Rows())
}

func TestCellValue(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cell     xlgrid.CellValue
		wantStr  string
		wantAny  any
		wantKind string
	}{
		"bool":     {cell: xlgrid.BoolCell(true), wantStr: "true", wantAny: true, wantKind: "bool"},
		"integer":  {cell: xlgrid.NumberCell(30), wantStr: "30", wantAny: 30.0, wantKind: "number"},
		"fraction": {cell: xlgrid.NumberCell(0.125), wantStr: "0.125", wantAny: 0.125, wantKind: "number"},
		"large":    {cell: xlgrid.NumberCell(1e21), wantStr: "1000000000000000000000", wantAny: 1e21, wantKind: "number"},
		"text":     {cell: xlgrid.TextCell("x"), wantStr: "x", wantAny: "x", wantKind: "text"},
		"empty":    {cell: xlgrid.CellValue{}, wantStr: "", wantAny: nil, wantKind: "empty"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantStr, tt.cell.String())
			assert.Equal(t, tt.wantAny, tt.cell.Any())
			assert.Equal(t, tt.wantKind, tt.cell.Kind.String())
		})
	}
}
