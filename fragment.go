package fragment

import (
	"github.com/signadot/tony-format/fragment/children"
	"github.com/signadot/tony-format/fragment/ir"
)

// Fragment is a flat, ordered sequence of keyed leaves.
type Fragment []children.Entry

func (f Fragment) Len() int {
	return len(f)
}

// Keys returns the composite keys of f in order.
func (f Fragment) Keys() []string {
	res := make([]string, len(f))
	for i := range f {
		res[i] = f[i].Key
	}
	return res
}

// Values returns the leaf values of f in order.
func (f Fragment) Values() []*ir.Node {
	res := make([]*ir.Node, len(f))
	for i := range f {
		res[i] = f[i].Value
	}
	return res
}

// Get returns the value stored under key.
func (f Fragment) Get(key string) (*ir.Node, bool) {
	for i := range f {
		if f[i].Key == key {
			return f[i].Value, true
		}
	}
	return nil, false
}

// ToNode returns f as an object whose fields are the composite keys, in
// order. Values are cloned; f is left untouched.
func (f Fragment) ToNode() *ir.Node {
	kvs := make([]ir.KeyVal, len(f))
	for i := range f {
		kvs[i] = ir.KeyVal{
			Key: ir.FromString(f[i].Key),
			Val: f[i].Value.Clone(),
		}
	}
	return ir.FromKeyVals(kvs)
}
