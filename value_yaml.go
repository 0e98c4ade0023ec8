package xlgrid

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads every YAML document in r and returns one Value per
// document. JSON input is accepted since it is valid YAML. Mapping order is
// preserved. A local tag turns a node into a variant: "!Red ~" is a tagged
// unit and "!Circle {r: 1}" a tagged wrapper around the mapping.
func DecodeYAML(r io.Reader) ([]Value, error) {
	dec := yaml.NewDecoder(r)
	var out []Value
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		v, err := nodeValue(&doc)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

func nodeValue(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Absent(), nil
		}
		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	}

	if tag, ok := localTag(n); ok {
		if n.Kind == yaml.ScalarNode && (n.Value == "" || n.Value == "~") && n.Style == 0 {
			return TaggedUnit(tag), nil
		}
		untagged := *n
		untagged.Tag = ""
		inner, err := nodeValue(&untagged)
		if err != nil {
			return Value{}, err
		}
		return TaggedWrapper(tag, inner), nil
	}

	switch n.Kind {
	case yaml.SequenceNode:
		elems := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeValue(c)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
		}
		return Seq(elems...), nil
	case yaml.MappingNode:
		pairs := make([]Pair, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, err := nodeValue(n.Content[i])
			if err != nil {
				return Value{}, err
			}
			v, err := nodeValue(n.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			pairs = append(pairs, Pair{Key: k, Value: v})
		}
		return Keyed(pairs...), nil
	case yaml.ScalarNode:
		return scalarValue(n)
	default:
		return Value{}, fmt.Errorf("line %d: unexpected yaml node kind %d", n.Line, n.Kind)
	}
}

// localTag reports a "!Name" tag. Standard "!!" tags are not local.
func localTag(n *yaml.Node) (string, bool) {
	if !strings.HasPrefix(n.Tag, "!") || strings.HasPrefix(n.Tag, "!!") || len(n.Tag) < 2 {
		return "", false
	}
	return n.Tag[1:], true
}

func scalarValue(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Absent(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return Int(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return Uint(u), nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case "!!binary":
		var s string
		if err := n.Decode(&s); err != nil {
			return Value{}, err
		}
		return Blob([]byte(s)), nil
	default:
		return Text(n.Value), nil
	}
}
