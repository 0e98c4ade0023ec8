package xlgrid

import (
	"cmp"
	"encoding"
	"fmt"
	"io"
	"reflect"
	"slices"

	"golang.org/x/text/unicode/norm"
)

// Cursor is an encoder's write position. Row only grows; Col returns to 0
// whenever a composite value closes.
type Cursor struct {
	Row int
	Col int
}

// String returns the cursor as "(row,col)".
func (c Cursor) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Marshaler is implemented by types that lay out their own cells through
// the encoder's shape methods.
type Marshaler interface {
	MarshalCells(e *Encoder) error
}

// Variant is implemented by enum-like types. A nil payload is a unit case
// and writes only the tag; otherwise the tag cell is followed by the
// payload's cells on the same row.
type Variant interface {
	CellVariant() (tag string, payload any)
}

var (
	marshalerType     = reflect.TypeFor[Marshaler]()
	variantType       = reflect.TypeFor[Variant]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

func implementsAny(t reflect.Type) bool {
	return t.Implements(marshalerType) || t.Implements(variantType) || t.Implements(textMarshalerType)
}

// Encoder walks values depth-first and writes one cell per scalar into its
// sink. An Encoder holds the only cursor for its sink and is not safe for
// concurrent use.
type Encoder struct {
	sink   Sink
	cursor Cursor
	opts   options
	done   bool
}

// NewEncoder returns an encoder positioned at (0,0) that owns sink until
// [Encoder.Finish].
func NewEncoder(sink Sink, opts ...Option) *Encoder {
	return &Encoder{sink: sink, opts: newOptions(opts)}
}

// Cursor returns the current write position.
func (e *Encoder) Cursor() Cursor { return e.cursor }

// Encode writes v at the cursor. It may be called several times before
// Finish; each top-level composite closes its own row.
func (e *Encoder) Encode(v any) error {
	if e.done {
		return ErrFinished
	}
	return e.encode(reflect.ValueOf(v))
}

// Finish materializes the sink into w. The encoder is unusable afterwards.
func (e *Encoder) Finish(w io.Writer) error {
	if e.done {
		return ErrFinished
	}
	e.done = true
	if err := e.sink.Finish(w); err != nil {
		return fmt.Errorf("%w: %w", ErrSinkFinalize, err)
	}
	e.opts.logger.Debug("sink finished", "rows", e.cursor.Row)
	return nil
}

func (e *Encoder) discard() {
	e.done = true
	if c, ok := e.sink.(io.Closer); ok {
		_ = c.Close()
	}
}

// --- Shape methods ---

// Bool writes a Boolean cell.
func (e *Encoder) Bool(v bool) error {
	if err := e.sink.WriteBool(e.cursor.Row, e.cursor.Col, v); err != nil {
		return e.writeErr(err)
	}
	e.cursor.Col++
	return nil
}

// Int writes a Number cell.
func (e *Encoder) Int(v int64) error { return e.number(float64(v)) }

// Uint writes a Number cell.
func (e *Encoder) Uint(v uint64) error { return e.number(float64(v)) }

// Float writes a Number cell.
func (e *Encoder) Float(v float64) error { return e.number(v) }

func (e *Encoder) number(v float64) error {
	if err := e.sink.WriteNumber(e.cursor.Row, e.cursor.Col, v); err != nil {
		return e.writeErr(err)
	}
	e.cursor.Col++
	return nil
}

// Char writes a one-character Text cell.
func (e *Encoder) Char(r rune) error { return e.Text(string(r)) }

// Text writes a Text cell.
func (e *Encoder) Text(s string) error {
	if e.opts.nfc {
		s = norm.NFC.String(s)
	}
	if err := e.sink.WriteString(e.cursor.Row, e.cursor.Col, s); err != nil {
		return e.writeErr(err)
	}
	e.cursor.Col++
	return nil
}

// Bytes always fails with [ErrUnsupportedShape]: byte blobs have no cell
// representation.
func (e *Encoder) Bytes([]byte) error {
	return fmt.Errorf("%w: byte blob at %s", ErrUnsupportedShape, e.cursor)
}

// None is an absent optional. It writes nothing.
func (e *Encoder) None() error { return e.Unit() }

// Some encodes a present optional exactly like its inner value.
func (e *Encoder) Some(v any) error { return e.Encode(v) }

// Unit writes nothing.
func (e *Encoder) Unit() error { return nil }

// UnitStruct writes nothing; the name is dropped.
func (e *Encoder) UnitStruct(string) error { return e.Unit() }

// Newtype encodes v in place of its named wrapper.
func (e *Encoder) Newtype(_ string, v any) error { return e.Encode(v) }

// UnitVariant writes the tag as a Text cell.
func (e *Encoder) UnitVariant(tag string) error { return e.Text(tag) }

// NewtypeVariant writes the tag as a Text cell followed by v's cells.
func (e *Encoder) NewtypeVariant(tag string, v any) error {
	if err := e.Text(tag); err != nil {
		return err
	}
	return e.Encode(v)
}

// Composite runs fn, which encodes the members of a sequence, record, or
// map, and then closes the row. A composite that wrote nothing still takes
// its own row; a close right after a nested composite already moved to a
// fresh row does not advance again.
func (e *Encoder) Composite(fn func() error) error {
	start := e.cursor.Row
	if err := fn(); err != nil {
		return err
	}
	e.endRow(start)
	return nil
}

// Entry encodes one map entry inside a Composite. The key is written only
// when the encoder was built with [WithMapKeys].
func (e *Encoder) Entry(key, value any) error {
	if e.opts.mapKeys {
		if err := e.Encode(key); err != nil {
			return err
		}
	}
	return e.Encode(value)
}

func (e *Encoder) endRow(start int) {
	if e.cursor.Col == 0 && e.cursor.Row > start && !e.opts.emptyRows {
		return
	}
	e.opts.logger.Debug("row closed", "row", e.cursor.Row, "cols", e.cursor.Col)
	e.cursor.Row++
	e.cursor.Col = 0
}

func (e *Encoder) writeErr(err error) error {
	return fmt.Errorf("%w at %s: %w", ErrSinkWrite, e.cursor, err)
}

// --- Reflection dispatch ---

func (e *Encoder) encode(rv reflect.Value) error {
	if !rv.IsValid() {
		return e.None()
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return e.None()
		}
	}
	if ok, err := e.encodeInterfaces(rv); ok {
		return err
	}
	switch rv.Kind() {
	case reflect.Bool:
		return e.Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return e.Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return e.Uint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return e.Float(rv.Float())
	case reflect.String:
		return e.Text(rv.String())
	case reflect.Pointer, reflect.Interface:
		return e.encode(rv.Elem())
	case reflect.Slice:
		if isByteSlice(rv.Type()) {
			return e.Bytes(rv.Bytes())
		}
		return e.encodeSeq(rv)
	case reflect.Array:
		return e.encodeSeq(rv)
	case reflect.Map:
		return e.encodeMap(rv)
	case reflect.Struct:
		return e.encodeStruct(rv)
	default:
		return fmt.Errorf("%w: %s at %s", ErrUnsupportedShape, rv.Type(), e.cursor)
	}
}

func (e *Encoder) encodeInterfaces(rv reflect.Value) (bool, error) {
	if !rv.CanInterface() {
		return false, nil
	}
	if rv.Kind() != reflect.Pointer && rv.CanAddr() && !implementsAny(rv.Type()) && implementsAny(reflect.PointerTo(rv.Type())) {
		rv = rv.Addr()
	}
	switch v := rv.Interface().(type) {
	case Marshaler:
		return true, v.MarshalCells(e)
	case Variant:
		tag, payload := v.CellVariant()
		if payload == nil {
			return true, e.UnitVariant(tag)
		}
		return true, e.NewtypeVariant(tag, payload)
	case encoding.TextMarshaler:
		b, err := v.MarshalText()
		if err != nil {
			return true, fmt.Errorf("%w: %T at %s: %w", ErrCustom, v, e.cursor, err)
		}
		return true, e.Text(string(b))
	}
	return false, nil
}

func isByteSlice(t reflect.Type) bool {
	elem := t.Elem()
	return elem.Kind() == reflect.Uint8 && !implementsAny(elem) && !implementsAny(reflect.PointerTo(elem))
}

func (e *Encoder) encodeSeq(rv reflect.Value) error {
	return e.Composite(func() error {
		for i := range rv.Len() {
			if err := e.encode(rv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (e *Encoder) encodeMap(rv reflect.Value) error {
	keys := rv.MapKeys()
	slices.SortFunc(keys, compareKeys)
	return e.Composite(func() error {
		for _, k := range keys {
			if e.opts.mapKeys {
				if err := e.encode(k); err != nil {
					return err
				}
			}
			if err := e.encode(rv.MapIndex(k)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (e *Encoder) encodeStruct(rv reflect.Value) error {
	t := rv.Type()
	fields := cachedFields(t)
	if len(fields) == 0 {
		if t.Name() == "" {
			return e.Unit()
		}
		return e.UnitStruct(t.Name())
	}
	return e.Composite(func() error {
		for _, f := range fields {
			fv, ok := fieldByIndex(rv, f.index)
			if !ok {
				continue
			}
			if err := e.encodeField(fv, f); err != nil {
				return err
			}
		}
		return nil
	})
}

func (e *Encoder) encodeField(fv reflect.Value, f field) error {
	if f.char {
		switch fv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return e.Char(rune(fv.Int()))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return e.Char(rune(fv.Uint()))
		}
	}
	return e.encode(fv)
}

// compareKeys orders map keys so that traversal is deterministic.
func compareKeys(a, b reflect.Value) int {
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.String:
			return cmp.Compare(a.String(), b.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(a.Uint(), b.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(a.Float(), b.Float())
		case reflect.Bool:
			return cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool()))
		}
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
