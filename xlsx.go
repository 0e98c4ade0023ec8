package xlgrid

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXSink writes cells into the single worksheet of an Office Open XML
// workbook. Rows and columns are zero-based; (0,0) is cell A1.
type XLSXSink struct {
	file   *excelize.File
	sheet  string
	closed bool
}

// NewXLSXSink returns a workbook sink. Only [WithSheet] applies.
func NewXLSXSink(opts ...SinkOption) (*XLSXSink, error) {
	return newXLSXSink(newSinkConfig(opts))
}

func newXLSXSink(cfg sinkConfig) (*XLSXSink, error) {
	f := excelize.NewFile()
	if cfg.sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, cfg.sheet); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return &XLSXSink{file: f, sheet: cfg.sheet}, nil
}

// Sheet returns the worksheet name.
func (s *XLSXSink) Sheet() string { return s.sheet }

// WriteBool sets a boolean cell.
func (s *XLSXSink) WriteBool(row, col int, v bool) error {
	ref, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	return s.file.SetCellBool(s.sheet, ref, v)
}

// WriteNumber sets a numeric cell.
func (s *XLSXSink) WriteNumber(row, col int, v float64) error {
	ref, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	return s.file.SetCellFloat(s.sheet, ref, v, -1, 64)
}

// WriteString sets a shared-string cell.
func (s *XLSXSink) WriteString(row, col int, v string) error {
	ref, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	return s.file.SetCellStr(s.sheet, ref, v)
}

// Finish packages the workbook into w and releases it.
func (s *XLSXSink) Finish(w io.Writer) error {
	defer s.Close()
	return s.file.Write(w)
}

// Close releases the workbook without writing it. It is safe to call more
// than once.
func (s *XLSXSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.file.Close()
}
