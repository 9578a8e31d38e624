package encode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/tony-format/fragment/ir"
)

// ToAny converts node to a value the YAML encoder writes in the node's own
// order: objects become yaml.MapSlice and arrays []any. Tags are dropped.
func ToAny(node *ir.Node) (any, error) {
	return toAny(node, false)
}

func toAny(node *ir.Node, tags bool) (any, error) {
	node = node.Unwrap()
	if node == nil {
		return nil, nil
	}
	v, err := untagged(node, tags)
	if err != nil {
		return nil, err
	}
	if tags && node.Tag != "" {
		return tagged{tag: node.Tag, v: v}, nil
	}
	return v, nil
}

func untagged(node *ir.Node, tags bool) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64, nil
		case node.Float64 != nil:
			return *node.Float64, nil
		}
		if f, err := strconv.ParseFloat(node.Number, 64); err == nil {
			return f, nil
		}
		return node.Number, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			a, err := toAny(v, tags)
			if err != nil {
				return nil, err
			}
			res[i] = a
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			v, err := toAny(node.Values[i], tags)
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: keyAny(f), Value: v}
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, node.Type)
	}
}

func keyAny(f *ir.Node) any {
	switch f.Type {
	case ir.NullType:
		return "<<"
	case ir.NumberType:
		return numberText(f)
	default:
		return f.String
	}
}

// tagged writes a YAML local tag in front of its value, in flow style so
// the tag applies to the whole value.
type tagged struct {
	tag string
	v   any
}

func (t tagged) MarshalYAML() ([]byte, error) {
	d, err := yaml.MarshalWithOptions(t.v, yaml.Flow(true))
	if err != nil {
		return nil, err
	}
	return []byte(t.tag + " " + strings.TrimSpace(string(d))), nil
}
