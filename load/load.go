package load

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/signadot/tony-format/fragment/ir"
)

// Load parses YAML (or JSON) documents into ir nodes, one per document.
// Mapping keys keep the order in which they are written and local tags
// such as !element are kept on the nodes.
func Load(d []byte) ([]*ir.Node, error) {
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	res := make([]*ir.Node, 0, len(f.Docs))
	for _, doc := range f.Docs {
		l := &loader{anchors: map[string]*ir.Node{}}
		n, err := l.node(doc.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoad, err)
		}
		res = append(res, n)
	}
	return res, nil
}

// LoadOne is Load for input holding a single document.
func LoadOne(d []byte) (*ir.Node, error) {
	docs, err := Load(d)
	if err != nil {
		return nil, err
	}
	switch len(docs) {
	case 0:
		return ir.Null(), nil
	case 1:
		return docs[0], nil
	default:
		return nil, fmt.Errorf("%w: expected 1 document, got %d", ErrLoad, len(docs))
	}
}

type loader struct {
	anchors map[string]*ir.Node
}

func (l *loader) node(n ast.Node) (*ir.Node, error) {
	if n == nil {
		return ir.Null(), nil
	}
	switch x := n.(type) {
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.BoolNode:
		return ir.FromBool(x.Value), nil
	case *ast.IntegerNode:
		return intNode(x)
	case *ast.FloatNode:
		return ir.FromFloat(x.Value), nil
	case *ast.InfinityNode:
		return ir.FromFloat(x.Value), nil
	case *ast.NanNode:
		return ir.FromFloat(math.NaN()), nil
	case *ast.StringNode:
		return ir.FromString(x.Value), nil
	case *ast.LiteralNode:
		return ir.FromString(x.Value.Value), nil
	case *ast.SequenceNode:
		vals := make([]*ir.Node, len(x.Values))
		for i, v := range x.Values {
			vn, err := l.node(v)
			if err != nil {
				return nil, err
			}
			vals[i] = vn
		}
		return ir.FromSlice(vals), nil
	case *ast.MappingNode:
		return l.mapping(x.Values)
	case *ast.MappingValueNode:
		return l.mapping([]*ast.MappingValueNode{x})
	case *ast.TagNode:
		return l.tagged(x)
	case *ast.AnchorNode:
		v, err := l.node(x.Value)
		if err != nil {
			return nil, err
		}
		l.anchors[x.Name.String()] = v
		return v, nil
	case *ast.AliasNode:
		name := x.Value.String()
		v, ok := l.anchors[name]
		if !ok {
			return nil, fmt.Errorf("unknown alias %q", name)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %s at %s", ErrUnsupported, n.Type(), pos(n))
	}
}

func (l *loader) tagged(x *ast.TagNode) (*ir.Node, error) {
	v, err := l.node(x.Value)
	if err != nil {
		return nil, err
	}
	tag := x.Start.Value
	if strings.HasPrefix(tag, "!!") {
		// core schema tags only restate the type
		return v, nil
	}
	if v.Tag == "" {
		v.Tag = tag
		return v, nil
	}
	hd, args, _ := ir.TagArgs(tag)
	v.Tag = ir.TagCompose(hd, args, v.Tag)
	return v, nil
}

func (l *loader) mapping(mvs []*ast.MappingValueNode) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, 0, len(mvs))
	for _, mv := range mvs {
		key, err := l.key(mv.Key)
		if err != nil {
			return nil, err
		}
		val, err := l.node(mv.Value)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
	return ir.FromKeyVals(kvs), nil
}

// key converts a mapping key. Scalar keys become string fields spelled as
// written, so 1: x and "1": x are the same field. The merge key << becomes
// a null field.
func (l *loader) key(k ast.Node) (*ir.Node, error) {
	switch x := k.(type) {
	case *ast.MergeKeyNode:
		return nil, nil
	case *ast.StringNode:
		return ir.FromString(x.Value), nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.NullNode:
		return ir.FromString(x.GetToken().Value), nil
	default:
		return nil, fmt.Errorf("%w: %s mapping key at %s", ErrUnsupported, k.Type(), pos(k))
	}
}

func intNode(x *ast.IntegerNode) (*ir.Node, error) {
	switch v := x.Value.(type) {
	case int64:
		return ir.FromInt(v), nil
	case int:
		return ir.FromInt(int64(v)), nil
	case uint64:
		if v <= math.MaxInt64 {
			return ir.FromInt(int64(v)), nil
		}
		return &ir.Node{Type: ir.NumberType, Number: strconv.FormatUint(v, 10)}, nil
	default:
		return nil, fmt.Errorf("%w: integer %v (%T)", ErrUnsupported, v, v)
	}
}

func pos(n ast.Node) string {
	tk := n.GetToken()
	if tk == nil || tk.Position == nil {
		return "?"
	}
	return fmt.Sprintf("%d:%d", tk.Position.Line, tk.Position.Column)
}
