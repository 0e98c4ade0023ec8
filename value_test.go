package xlgrid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/xlgrid"
)

func decodeOne(t *testing.T, src string) xlgrid.Value {
	t.Helper()
	docs, err := xlgrid.DecodeYAML(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	return docs[0]
}

// ============================================================
// Tests
// ============================================================

func TestValueAccessors(t *testing.T) {
	t.Parallel()
	w := xlgrid.TaggedWrapper("Circle", xlgrid.Float(2))
	assert.Equal(t, xlgrid.KindTaggedWrapper, w.Kind())
	assert.Equal(t, "Circle", w.Tag())
	assert.Equal(t, xlgrid.Float(2), w.Inner())

	assert.Equal(t, xlgrid.KindAbsent, xlgrid.Value{}.Kind())
	assert.Equal(t, xlgrid.Value{}, xlgrid.Text("x").Inner())

	s := xlgrid.Seq(xlgrid.Int(1), xlgrid.Int(2))
	assert.Len(t, s.Elems(), 2)

	k := xlgrid.Keyed(xlgrid.Field("a", xlgrid.Bool(true)))
	require.Len(t, k.Pairs(), 1)
	assert.Equal(t, xlgrid.Text("a"), k.Pairs()[0].Key)
}

func TestKindString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		kind xlgrid.Kind
		want string
	}{
		"absent":         {kind: xlgrid.KindAbsent, want: "absent"},
		"tagged wrapper": {kind: xlgrid.KindTaggedWrapper, want: "tagged-wrapper"},
		"keyed":          {kind: xlgrid.KindKeyed, want: "keyed"},
		"unknown":        {kind: xlgrid.Kind(99), want: "kind(99)"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestValueLayout(t *testing.T) {
	t.Parallel()
	records := xlgrid.Seq(
		xlgrid.Keyed(
			xlgrid.Field("name", xlgrid.Text("Ada")),
			xlgrid.Field("nick", xlgrid.Absent()),
			xlgrid.Field("age", xlgrid.Present(xlgrid.Uint(36))),
			xlgrid.Field("unit", xlgrid.NamedUnit("Marker")),
		),
		xlgrid.Keyed(
			xlgrid.Field("name", xlgrid.Text("Linus")),
			xlgrid.Field("nick", xlgrid.Present(xlgrid.Text("torvalds"))),
			xlgrid.Field("age", xlgrid.Int(54)),
			xlgrid.Field("unit", xlgrid.Unit()),
		),
	)
	cells, cur := encodeCells(t, records)
	assert.Equal(t, []xlgrid.Cell{
		at(0, 0, xlgrid.TextCell("Ada")),
		at(0, 1, xlgrid.NumberCell(36)),
		at(1, 0, xlgrid.TextCell("Linus")),
		at(1, 1, xlgrid.TextCell("torvalds")),
		at(1, 2, xlgrid.NumberCell(54)),
	}, cells)
	assert.Equal(t, xlgrid.Cursor{Row: 2}, cur)
}

func TestDecodeYAMLScalars(t *testing.T) {
	t.Parallel()
	got := decodeOne(t, `
name: Ada
age: 36
score: 1.5
ok: true
none: ~
big: 18446744073709551615
quoted: "42"
`)
	assert.Equal(t, xlgrid.Keyed(
		xlgrid.Field("name", xlgrid.Text("Ada")),
		xlgrid.Field("age", xlgrid.Int(36)),
		xlgrid.Field("score", xlgrid.Float(1.5)),
		xlgrid.Field("ok", xlgrid.Bool(true)),
		xlgrid.Field("none", xlgrid.Absent()),
		xlgrid.Field("big", xlgrid.Uint(18446744073709551615)),
		xlgrid.Field("quoted", xlgrid.Text("42")),
	), got)
}

func TestDecodeYAMLTags(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		src  string
		want xlgrid.Value
	}{
		"bare tag": {
			src:  "!Red",
			want: xlgrid.TaggedUnit("Red"),
		},
		"tag on null": {
			src:  "!Red ~",
			want: xlgrid.TaggedUnit("Red"),
		},
		"tag on scalar": {
			src:  `!Name "x"`,
			want: xlgrid.TaggedWrapper("Name", xlgrid.Text("x")),
		},
		"tag on number": {
			src:  "!Meters 5",
			want: xlgrid.TaggedWrapper("Meters", xlgrid.Int(5)),
		},
		"tag on mapping": {
			src:  "!Circle {r: 2}",
			want: xlgrid.TaggedWrapper("Circle", xlgrid.Keyed(xlgrid.Field("r", xlgrid.Int(2)))),
		},
		"tag on sequence": {
			src:  "!Point [1, 2]",
			want: xlgrid.TaggedWrapper("Point", xlgrid.Seq(xlgrid.Int(1), xlgrid.Int(2))),
		},
		"standard tag": {
			src:  "!!str 12",
			want: xlgrid.Text("12"),
		},
		"binary": {
			src:  "!!binary aGk=",
			want: xlgrid.Blob([]byte("hi")),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, decodeOne(t, tt.src))
		})
	}
}

func TestDecodeYAMLJSON(t *testing.T) {
	t.Parallel()
	got := decodeOne(t, `[{"a": 1}, {"a": 2}]`)
	assert.Equal(t, xlgrid.Seq(
		xlgrid.Keyed(xlgrid.Field("a", xlgrid.Int(1))),
		xlgrid.Keyed(xlgrid.Field("a", xlgrid.Int(2))),
	), got)

	cells, cur := encodeCells(t, got)
	assert.Equal(t, []xlgrid.Cell{
		at(0, 0, xlgrid.NumberCell(1)),
		at(1, 0, xlgrid.NumberCell(2)),
	}, cells)
	assert.Equal(t, xlgrid.Cursor{Row: 2}, cur)
}

func TestDecodeYAMLNonTextKeys(t *testing.T) {
	t.Parallel()
	got := decodeOne(t, "1: one\ntrue: yes\n")
	assert.Equal(t, xlgrid.Keyed(
		xlgrid.Pair{Key: xlgrid.Int(1), Value: xlgrid.Text("one")},
		xlgrid.Pair{Key: xlgrid.Bool(true), Value: xlgrid.Text("yes")},
	), got)
}

func TestDecodeYAMLAlias(t *testing.T) {
	t.Parallel()
	got := decodeOne(t, "base: &b 7\ncopy: *b\n")
	assert.Equal(t, xlgrid.Keyed(
		xlgrid.Field("base", xlgrid.Int(7)),
		xlgrid.Field("copy", xlgrid.Int(7)),
	), got)
}

func TestDecodeYAMLMultipleDocuments(t *testing.T) {
	t.Parallel()
	docs, err := xlgrid.DecodeYAML(strings.NewReader("a: 1\n---\na: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, []xlgrid.Value{
		xlgrid.Keyed(xlgrid.Field("a", xlgrid.Int(1))),
		xlgrid.Keyed(xlgrid.Field("a", xlgrid.Int(2))),
	}, docs)
}

func TestDecodeYAMLEmpty(t *testing.T) {
	t.Parallel()
	docs, err := xlgrid.DecodeYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDecodeYAMLSyntaxError(t *testing.T) {
	t.Parallel()
	_, err := xlgrid.DecodeYAML(strings.NewReader("a: [1, 2\n"))
	assert.Error(t, err)
}

func TestDecodedVariantsLayout(t *testing.T) {
	t.Parallel()
	got := decodeOne(t, `
- name: Ada
  role: !Admin
- name: Linus
  role: !Guest {days: 3}
`)
	cells, _ := encodeCells(t, got)
	assert.Equal(t, []xlgrid.Cell{
		at(0, 0, xlgrid.TextCell("Ada")),
		at(0, 1, xlgrid.TextCell("Admin")),
		at(1, 0, xlgrid.TextCell("Linus")),
		at(1, 1, xlgrid.TextCell("Guest")),
		at(1, 2, xlgrid.NumberCell(3)),
	}, cells)
}
