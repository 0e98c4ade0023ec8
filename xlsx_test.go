package xlgrid_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bjaus/xlgrid"
)

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

// ============================================================
// Tests
// ============================================================

func TestXLSXRoundTrip(t *testing.T) {
	t.Parallel()
	sink, err := xlgrid.NewXLSXSink(xlgrid.WithSheet("People"))
	require.NoError(t, err)
	assert.Equal(t, "People", sink.Sheet())

	out, err := xlgrid.Marshal(sink, people)
	require.NoError(t, err)

	f := openWorkbook(t, out)
	assert.Equal(t, []string{"People"}, f.GetSheetList())
	rows, err := f.GetRows("People")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Alice", "30", "TRUE"},
		{"Bob", "25", "FALSE"},
	}, rows)
}

func TestXLSXFractionalNumber(t *testing.T) {
	t.Parallel()
	out, err := xlgrid.MarshalFormat(xlgrid.XLSX, []float64{0.125, -3})
	require.NoError(t, err)

	f := openWorkbook(t, out)
	for ref, want := range map[string]string{"A1": "0.125", "B1": "-3"} {
		got, err := f.GetCellValue(xlgrid.DefaultSheet, ref)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestXLSXGapsStayEmpty(t *testing.T) {
	t.Parallel()
	sink, err := xlgrid.NewXLSXSink()
	require.NoError(t, err)
	out, err := xlgrid.Marshal(sink, [][]int{{1}, {}, {2}}, xlgrid.WithEmptyRows())
	require.NoError(t, err)

	f := openWorkbook(t, out)
	a2, err := f.GetCellValue(xlgrid.DefaultSheet, "A2")
	require.NoError(t, err)
	assert.Empty(t, a2)
	a3, err := f.GetCellValue(xlgrid.DefaultSheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "2", a3)
}

func TestXLSXInvalidSheetName(t *testing.T) {
	t.Parallel()
	_, err := xlgrid.NewXLSXSink(xlgrid.WithSheet("bad/name"))
	assert.Error(t, err)
}

func TestXLSXCloseIsIdempotent(t *testing.T) {
	t.Parallel()
	sink, err := xlgrid.NewXLSXSink()
	require.NoError(t, err)
	assert.NoError(t, sink.Close())
	assert.NoError(t, sink.Close())
}
