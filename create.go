package fragment

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/signadot/tony-format/fragment/children"
	"github.com/signadot/tony-format/fragment/debug"
	"github.com/signadot/tony-format/fragment/ir"
)

var numericKey = regexp.MustCompile(`^\d+$`)

// Builder creates fragments from keyed child mappings.
type Builder struct {
	log      *slog.Logger
	dev      bool
	latch    *Latch
	traverse Traverser
}

func New(opts ...CreateOption) *Builder {
	b := &Builder{
		dev:   debug.Dev(),
		latch: &numericKeyLatch,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = slog.Default()
	}
	if b.traverse == nil {
		b.traverse = children.NewMapper(b.log)
	}
	return b
}

// Create builds a fragment with a Builder configured by opts.
func Create(node *ir.Node, opts ...CreateOption) (*Result, error) {
	return New(opts...).Create(node)
}

// MustCreate is like Create but panics on error.
func MustCreate(node *ir.Node, opts ...CreateOption) *Result {
	res, err := Create(node, opts...)
	if err != nil {
		panic(err)
	}
	return res
}

// Create flattens the object node into a Fragment. Each field of node, in
// order, contributes the leaves of its value keyed under the field name.
//
// If node is not an object, or is an element, a warning is logged and node
// is returned unchanged in the Result's Passthrough. A platform node is an
// error.
func (b *Builder) Create(node *ir.Node) (*Result, error) {
	obj := node.Unwrap()
	if obj == nil || obj.Type != ir.ObjectType {
		b.log.Warn("fragment create only accepts a single object", "got", describe(obj))
		return passthrough(node), nil
	}
	if ir.IsElement(obj) {
		b.log.Warn("fragment create does not accept an element without a wrapper object",
			"element", ir.ElementType(obj))
		return passthrough(node), nil
	}
	if ir.IsPlatformNode(obj) {
		return nil, fmt.Errorf("%w: platform nodes are not valid children of a fragment", ErrInvalidChild)
	}

	acc := children.NewAcc(len(obj.Fields))
	for i, field := range obj.Fields {
		seg, err := children.FieldSegment(field)
		if err != nil {
			b.log.Warn("skipping fragment child", "index", i, "error", err)
			continue
		}
		if name := keyName(field); b.dev && numericKey.MatchString(name) && b.latch.Fire() {
			b.log.Warn("fragment children should have non-numeric keys so ordering is preserved",
				"key", name)
		}
		if err := b.traverse.MapIntoWithKeyPrefix(acc, obj.Values[i], seg, children.Identity); err != nil {
			return nil, fmt.Errorf("fragment child %s: %w", seg, err)
		}
	}
	return built(Fragment(acc.Entries())), nil
}

func keyName(f *ir.Node) string {
	if f.Type == ir.NumberType && f.Int64 != nil {
		return strconv.FormatInt(*f.Int64, 10)
	}
	return f.String
}

func describe(n *ir.Node) string {
	if n == nil {
		return "nil"
	}
	return n.Type.String()
}
