package xlgrid

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnsupportedShape  = errors.New("unsupported value shape")
	ErrSinkWrite         = errors.New("sink write failed")
	ErrSinkFinalize      = errors.New("sink finalize failed")
	ErrCustom            = errors.New("custom error")
	ErrCellOccupied      = errors.New("cell already written")
	ErrInvalidCoordinate = errors.New("invalid cell coordinate")
	ErrFinished          = errors.New("encoder already finished")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Errorf returns an error wrapping [ErrCustom]. Marshalers use it to abort
// traversal with their own message.
func Errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCustom, fmt.Sprintf(format, args...))
}

// Format names a sink.
type Format string

const (
	XLSX     Format = "xlsx"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Table    Format = "table"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	Plain    Format = "plain"
	List     Format = "list"
)

const goTemplatePrefix = "go-template="

var formats = []Format{XLSX, CSV, TSV, Table, Markdown, HTML, JSON, JSONL, YAML, Plain, List}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each grid row using a Go
// text/template. The template receives the row as a []any of bool, float64,
// string, or nil (empty cell).
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Sink accepts typed cell writes and materializes the finished document.
// Each coordinate is written at most once per traversal.
type Sink interface {
	WriteBool(row, col int, v bool) error
	WriteNumber(row, col int, v float64) error
	WriteString(row, col int, v string) error
	// Finish drains the accumulated document into w. The sink must not be
	// written to afterwards.
	Finish(w io.Writer) error
}

// NewSink returns a fresh sink for format f.
func NewSink(f Format, opts ...SinkOption) (Sink, error) {
	cfg := newSinkConfig(opts)
	switch f {
	case XLSX:
		return newXLSXSink(cfg)
	case CSV:
		return newTextSink(func(w io.Writer, rows [][]CellValue) error {
			return writeCSV(w, rows, cfg.delimiter)
		}), nil
	case TSV:
		return newTextSink(writeTSV), nil
	case Table:
		return newTextSink(func(w io.Writer, rows [][]CellValue) error {
			return writeTable(w, rows, cfg.border)
		}), nil
	case Markdown:
		return newTextSink(writeMarkdown), nil
	case HTML:
		return newTextSink(writeHTML), nil
	case JSON:
		return newTextSink(writeJSON), nil
	case JSONL:
		return newTextSink(writeJSONL), nil
	case YAML:
		return newTextSink(writeYAML), nil
	case Plain:
		return newTextSink(writePlain), nil
	case List:
		return newTextSink(writeList), nil
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			render, err := goTemplateRenderer(tmpl)
			if err != nil {
				return nil, err
			}
			return newTextSink(render), nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Write encodes v into sink and drains the finished document into w.
// On failure the sink is released and w may hold a partial document that
// the caller should discard.
func Write(w io.Writer, sink Sink, v any, opts ...Option) (err error) {
	enc := NewEncoder(sink, opts...)
	defer func() {
		if err != nil {
			enc.discard()
		}
	}()
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Finish(w)
}

// Marshal encodes v into sink and returns the finished document.
func Marshal(sink Sink, v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, sink, v, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFormat is [Write] with a fresh default sink for format f.
func WriteFormat(w io.Writer, f Format, v any, opts ...Option) error {
	sink, err := NewSink(f)
	if err != nil {
		return err
	}
	return Write(w, sink, v, opts...)
}

// MarshalFormat is [Marshal] with a fresh default sink for format f.
func MarshalFormat(f Format, v any, opts ...Option) ([]byte, error) {
	sink, err := NewSink(f)
	if err != nil {
		return nil, err
	}
	return Marshal(sink, v, opts...)
}
