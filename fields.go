package xlgrid

import (
	"reflect"
	"slices"
	"strings"
	"sync"
)

// field is one encodable struct field, possibly promoted from an embedded
// struct.
type field struct {
	index []int
	char  bool
}

var fieldCache sync.Map // map[reflect.Type][]field

func cachedFields(t reflect.Type) []field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]field)
	}
	f, _ := fieldCache.LoadOrStore(t, typeFields(t, nil, map[reflect.Type]bool{t: true}))
	return f.([]field)
}

// typeFields lists the fields of t in declaration order. Untagged embedded
// structs are flattened in place, the way encoding/json promotes them.
func typeFields(t reflect.Type, index []int, visited map[reflect.Type]bool) []field {
	var out []field
	for i := range t.NumField() {
		sf := t.Field(i)
		tag := sf.Tag.Get("xlgrid")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		idx := append(slices.Clone(index), i)

		if sf.Anonymous && name == "" {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct && !implementsAny(ft) && !implementsAny(reflect.PointerTo(ft)) {
				if visited[ft] {
					continue
				}
				visited[ft] = true
				out = append(out, typeFields(ft, idx, visited)...)
				delete(visited, ft)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		out = append(out, field{index: idx, char: hasOption(opts, "char")})
	}
	return out
}

func hasOption(opts, name string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == name {
			return true
		}
	}
	return false
}

// fieldByIndex walks index from v. It reports false when an embedded
// pointer on the path is nil.
func fieldByIndex(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}
