package children

import (
	"github.com/signadot/tony-format/fragment/ir"
)

var defaultMapper = NewMapper(nil)

// Map returns the entries of node with fn applied to each leaf.
func Map(node *ir.Node, fn MapFunc) ([]Entry, error) {
	acc := NewAcc(0)
	if err := defaultMapper.MapIntoWithKeyPrefix(acc, node, nil, fn); err != nil {
		return nil, err
	}
	return acc.Entries(), nil
}

// ToSlice returns the entries of node.
func ToSlice(node *ir.Node) ([]Entry, error) {
	return Map(node, Identity)
}

// ForEach calls fn on each entry of node in order, stopping at the first
// error.
func ForEach(node *ir.Node, fn func(Entry) error) error {
	entries, err := ToSlice(node)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of entries of node.
func Count(node *ir.Node) (int, error) {
	entries, err := ToSlice(node)
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}
