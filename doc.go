// Package xlgrid lays out structured Go values as a grid of typed cells and
// hands the cells to a spreadsheet-like sink.
//
// The central entry points are [Write] and [Marshal]. They take any value,
// walk it depth-first with a single (row, col) cursor starting at (0,0), and
// finish the sink into a document:
//
//	sink, _ := xlgrid.NewXLSXSink()
//	err := xlgrid.Write(f, sink, records)
//
// # Layout
//
// Every scalar becomes one cell at the cursor and moves the cursor one
// column right. When a composite (slice, array, struct, map) ends, the
// cursor moves to column 0 of the next row. A flat struct therefore fills
// one row, and a slice of flat structs fills one row per element:
//
//	type Item struct {
//		Active bool
//		Count  int
//		Label  string
//	}
//	// []Item{{true, 3, "x"}, {false, 4, "y"}} →
//	//   (0,0)=true  (0,1)=3  (0,2)="x"
//	//   (1,0)=false (1,1)=4  (1,2)="y"
//
// Nested composites do not open sub-grids; each one closes its own row when
// it ends. A composite that writes no cells still takes its own row, so N
// records always fill N rows. When a nested close has already moved the
// cursor to a fresh row, the enclosing close does not add another one
// unless the encoder is built with [WithEmptyRows].
//
// Shape rules:
//
//   - bool → Boolean cell
//   - all integer and float kinds → Number cell (float64)
//   - string and [encoding.TextMarshaler] → Text cell
//   - nil pointers and interfaces → nothing; non-nil pointers are transparent
//   - struct{} and named structs without exported fields → nothing
//   - [Variant] → tag as Text cell, then the payload on the same row
//   - struct fields in declaration order; map values in sorted key order
//     (keys are written only with [WithMapKeys])
//   - []byte → [ErrUnsupportedShape]
//
// Struct tags: `xlgrid:"-"` skips a field and `xlgrid:",char"` writes an
// integer field as a one-character Text cell. Untagged embedded structs are
// flattened into the enclosing record.
//
// # Custom layouts
//
// Types implementing [Marshaler] drive the [Encoder] shape methods
// themselves. [Value] is a ready-made Marshaler for data assembled at run
// time, and [DecodeYAML] builds Values from YAML or JSON documents.
//
// # Sinks
//
// A [Sink] receives cell writes and materializes the document on Finish.
// [NewSink] builds one per [Format]: XLSX workbooks through excelize, and
// CSV, TSV, Table, Markdown, HTML, JSON, JSONL, YAML, Plain, List, and
// [GoTemplate] renderings buffered in a [Grid]. [Grid] on its own is an
// in-memory sink for inspecting cells.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedShape] — a value has no cell representation
//   - [ErrSinkWrite] — the sink rejected a cell write
//   - [ErrSinkFinalize] — the sink failed to materialize
//   - [ErrCustom] — a Marshaler message built with [Errorf], a failing
//     MarshalText, or a [ParseText] failure
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrCellOccupied], [ErrInvalidCoordinate] — a [Grid] write to a used
//     or negative coordinate
//
// Traversal stops at the first error. Cells already written are not rolled
// back; discard the destination.
package xlgrid
