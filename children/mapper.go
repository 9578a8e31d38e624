package children

import (
	"fmt"
	"log/slog"

	"github.com/signadot/tony-format/fragment/debug"
	"github.com/signadot/tony-format/fragment/ir"
	"github.com/signadot/tony-format/fragment/ir/kpath"
)

// MapFunc transforms a leaf before it is accumulated. Returning nil drops
// the leaf; returning an array maps that array in place of the leaf.
type MapFunc func(*ir.Node) *ir.Node

// Identity is the MapFunc which returns its argument.
func Identity(n *ir.Node) *ir.Node {
	return n
}

// Mapper walks child trees, producing one Entry per leaf.
type Mapper struct {
	log   *slog.Logger
	trace bool
}

// NewMapper returns a Mapper reporting to log. A nil log means
// slog.Default() at the time of each call.
func NewMapper(log *slog.Logger) *Mapper {
	return &Mapper{log: log, trace: debug.Traverse()}
}

// Trace turns per-leaf debug logging on or off. It defaults to the
// FRAG_DEBUG_TRAVERSE environment setting.
func (m *Mapper) Trace(v bool) *Mapper {
	m.trace = v
	return m
}

func (m *Mapper) logger() *slog.Logger {
	if m.log != nil {
		return m.log
	}
	return slog.Default()
}

// MapIntoWithKeyPrefix appends the leaves of child to acc, keyed by prefix
// followed by the path of each leaf within child.
//
// Arrays contribute [i] segments, objects contribute field segments (or
// {n} for int keys). Scalars, nulls and elements are leaves. Comment nodes
// are skipped over. A leaf whose key is already in acc is dropped with a
// warning.
func (m *Mapper) MapIntoWithKeyPrefix(acc *Acc, child *ir.Node, prefix *kpath.KPath, fn MapFunc) error {
	if fn == nil {
		fn = Identity
	}
	return m.walk(acc, child, prefix, fn, map[*ir.Node]struct{}{})
}

func (m *Mapper) walk(acc *Acc, node *ir.Node, path *kpath.KPath, fn MapFunc, onPath map[*ir.Node]struct{}) error {
	if node == nil {
		node = ir.Null()
	}
	if node.Type == ir.CommentType {
		if len(node.Values) == 0 {
			return nil
		}
		return m.walk(acc, node.Values[0], path, fn, onPath)
	}
	if node.Type.IsLeaf() || ir.IsElement(node) {
		return m.leaf(acc, node, path, fn, onPath)
	}
	if _, cyc := onPath[node]; cyc {
		return fmt.Errorf("%w at %q", ErrCycle, path.String())
	}
	onPath[node] = struct{}{}
	defer delete(onPath, node)

	switch node.Type {
	case ir.ArrayType:
		for i, v := range node.Values {
			if err := m.walk(acc, v, path.Append(kpath.Index(i)), fn, onPath); err != nil {
				return err
			}
		}
	case ir.ObjectType:
		for i, f := range node.Fields {
			seg, err := FieldSegment(f)
			if err != nil {
				m.logger().Warn("skipping child", "path", path.String(), "error", err)
				continue
			}
			if err := m.walk(acc, node.Values[i], path.Append(seg), fn, onPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Mapper) leaf(acc *Acc, node *ir.Node, path *kpath.KPath, fn MapFunc, onPath map[*ir.Node]struct{}) error {
	mapped := fn(node)
	if mapped == nil {
		return nil
	}
	if mapped.Type == ir.ArrayType {
		return m.walk(acc, mapped, path, Identity, onPath)
	}
	e := Entry{Path: path, Key: path.String(), Value: mapped}
	if !acc.Add(e) {
		m.logger().Warn("encountered two children with the same key; only the first is kept",
			"key", e.Key)
		return nil
	}
	if m.trace {
		m.logger().Debug("leaf", "key", e.Key, "type", mapped.Type)
	}
	return nil
}

// FieldSegment returns the path segment for the object key f: a field for
// string keys and a sparse index for int keys. Merge (null) keys and other
// key types have no segment.
func FieldSegment(f *ir.Node) (*kpath.KPath, error) {
	switch f.Type {
	case ir.StringType:
		return kpath.Field(f.String), nil
	case ir.NumberType:
		if f.Int64 == nil || *f.Int64 < 0 || *f.Int64 > 1<<31-1 {
			return nil, fmt.Errorf("%w: int key out of range", ErrInvalidKey)
		}
		return kpath.SparseIndex(int(*f.Int64)), nil
	case ir.NullType:
		return nil, fmt.Errorf("%w: merge keys are not valid children", ErrInvalidKey)
	default:
		return nil, fmt.Errorf("%w: %s key", ErrInvalidKey, f.Type)
	}
}
