package xlgrid

import "fmt"

// Kind identifies the shape of a [Value].
type Kind uint8

const (
	KindAbsent Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindChar
	KindText
	KindBlob
	KindPresent
	KindUnit
	KindNamedUnit
	KindNamedWrapper
	KindTaggedUnit
	KindTaggedWrapper
	KindSeq
	KindKeyed
)

var kindNames = [...]string{
	KindAbsent:        "absent",
	KindBool:          "bool",
	KindInt:           "int",
	KindUint:          "uint",
	KindFloat:         "float",
	KindChar:          "char",
	KindText:          "text",
	KindBlob:          "blob",
	KindPresent:       "present",
	KindUnit:          "unit",
	KindNamedUnit:     "named-unit",
	KindNamedWrapper:  "named-wrapper",
	KindTaggedUnit:    "tagged-unit",
	KindTaggedWrapper: "tagged-wrapper",
	KindSeq:           "seq",
	KindKeyed:         "keyed",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Value is a structured value built without Go types, for callers that
// assemble data dynamically. The zero Value is absent.
type Value struct {
	kind Kind

	boolVal  bool
	intVal   int64
	uintVal  uint64
	floatVal float64
	charVal  rune
	strVal   string // text, name, or tag
	blobVal  []byte

	inner *Value
	elems []Value
	pairs []Pair
}

// Pair is one entry of a keyed value.
type Pair struct {
	Key   Value
	Value Value
}

// --- Constructors ---

func Bool(v bool) Value { return Value{kind: KindBool, boolVal: v} }
func Int(v int64) Value { return Value{kind: KindInt, intVal: v} }
func Uint(v uint64) Value { return Value{kind: KindUint, uintVal: v} }
func Float(v float64) Value { return Value{kind: KindFloat, floatVal: v} }
func Char(v rune) Value { return Value{kind: KindChar, charVal: v} }
func Text(v string) Value { return Value{kind: KindText, strVal: v} }
func Blob(v []byte) Value { return Value{kind: KindBlob, blobVal: v} }
func Absent() Value { return Value{kind: KindAbsent} }
func Present(v Value) Value { return Value{kind: KindPresent, inner: &v} }
func Unit() Value { return Value{kind: KindUnit} }
func NamedUnit(n string) Value { return Value{kind: KindNamedUnit, strVal: n} }

// NamedWrapper wraps v under a type name that is dropped on output.
func NamedWrapper(name string, v Value) Value {
	return Value{kind: KindNamedWrapper, strVal: name, inner: &v}
}

// TaggedUnit is a variant without payload.
func TaggedUnit(tag string) Value { return Value{kind: KindTaggedUnit, strVal: tag} }

// TaggedWrapper is a variant carrying v.
func TaggedWrapper(tag string, v Value) Value {
	return Value{kind: KindTaggedWrapper, strVal: tag, inner: &v}
}

// Seq is an ordered sequence.
func Seq(elems ...Value) Value { return Value{kind: KindSeq, elems: elems} }

// Keyed is an ordered mapping; pair order is preserved on output.
func Keyed(pairs ...Pair) Value { return Value{kind: KindKeyed, pairs: pairs} }

// Field returns a pair keyed by a text name, for building records.
func Field(name string, v Value) Pair { return Pair{Key: Text(name), Value: v} }

// --- Accessors ---

// Kind returns the shape of v.
func (v Value) Kind() Kind { return v.kind }

// Tag returns the name of a named unit or wrapper, or the tag of a variant.
func (v Value) Tag() string { return v.strVal }

// Inner returns the wrapped value of Present, NamedWrapper, and
// TaggedWrapper values, and an absent Value otherwise.
func (v Value) Inner() Value {
	if v.inner == nil {
		return Value{}
	}
	return *v.inner
}

// Elems returns the elements of a sequence.
func (v Value) Elems() []Value { return v.elems }

// Pairs returns the entries of a keyed value.
func (v Value) Pairs() []Pair { return v.pairs }

// MarshalCells implements [Marshaler].
func (v Value) MarshalCells(e *Encoder) error {
	switch v.kind {
	case KindAbsent:
		return e.None()
	case KindBool:
		return e.Bool(v.boolVal)
	case KindInt:
		return e.Int(v.intVal)
	case KindUint:
		return e.Uint(v.uintVal)
	case KindFloat:
		return e.Float(v.floatVal)
	case KindChar:
		return e.Char(v.charVal)
	case KindText:
		return e.Text(v.strVal)
	case KindBlob:
		return e.Bytes(v.blobVal)
	case KindPresent:
		return e.Some(v.Inner())
	case KindUnit:
		return e.Unit()
	case KindNamedUnit:
		return e.UnitStruct(v.strVal)
	case KindNamedWrapper:
		return e.Newtype(v.strVal, v.Inner())
	case KindTaggedUnit:
		return e.UnitVariant(v.strVal)
	case KindTaggedWrapper:
		return e.NewtypeVariant(v.strVal, v.Inner())
	case KindSeq:
		return e.Composite(func() error {
			for _, elem := range v.elems {
				if err := e.Encode(elem); err != nil {
					return err
				}
			}
			return nil
		})
	case KindKeyed:
		return e.Composite(func() error {
			for _, p := range v.pairs {
				if err := e.Entry(p.Key, p.Value); err != nil {
					return err
				}
			}
			return nil
		})
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedShape, v.kind)
	}
}
