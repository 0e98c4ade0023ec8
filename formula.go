package xlgrid

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formula stores a field as a Text cell holding its textual form, e.g. a
// spreadsheet formula kept as a typed value in Go. It round-trips through
// MarshalText/UnmarshalText, so JSON and YAML decoders accept it too.
type Formula[T any] struct {
	Value T
}

// MarshalText renders the value with [FormatText].
func (f Formula[T]) MarshalText() ([]byte, error) {
	s, err := FormatText(f.Value)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText parses the value with [ParseText].
func (f *Formula[T]) UnmarshalText(b []byte) error {
	v, err := ParseText[T](string(b))
	if err != nil {
		return err
	}
	f.Value = v
	return nil
}

// String returns the textual form, or "" when it cannot be rendered.
func (f Formula[T]) String() string {
	s, _ := FormatText(f.Value)
	return s
}

// FormatText returns the textual representation of v: its
// encoding.TextMarshaler output, its String method, or fmt.Sprint.
func FormatText(v any) (string, error) {
	switch t := v.(type) {
	case encoding.TextMarshaler:
		b, err := t.MarshalText()
		if err != nil {
			return "", fmt.Errorf("%w: format %T: %w", ErrCustom, v, err)
		}
		return string(b), nil
	case fmt.Stringer:
		return t.String(), nil
	default:
		return fmt.Sprint(v), nil
	}
}

// ParseText converts s to a T. It uses T's UnmarshalText when *T
// implements encoding.TextUnmarshaler, copies s into string kinds, and
// decodes anything else as a YAML scalar. Failures wrap [ErrCustom].
func ParseText[T any](s string) (T, error) {
	var v T
	if u, ok := any(&v).(encoding.TextUnmarshaler); ok {
		if err := u.UnmarshalText([]byte(s)); err != nil {
			return v, fmt.Errorf("%w: parse %q as %T: %w", ErrCustom, s, v, err)
		}
		return v, nil
	}
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() == reflect.String {
		rv.SetString(s)
		return v, nil
	}
	if strings.TrimSpace(s) == "" {
		return v, fmt.Errorf("%w: parse empty text as %T", ErrCustom, v)
	}
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return v, fmt.Errorf("%w: parse %q as %T: %w", ErrCustom, s, v, err)
	}
	return v, nil
}
