package children

import (
	"github.com/signadot/tony-format/fragment/ir"
	"github.com/signadot/tony-format/fragment/ir/kpath"
)

// Entry is a leaf child together with its composite key.
type Entry struct {
	Path  *kpath.KPath
	Key   string
	Value *ir.Node
}

// Depth is the number of segments in the entry's path.
func (e Entry) Depth() int {
	return e.Path.Len()
}

// Acc accumulates entries in the order they are added, keeping the first
// entry for any given key.
type Acc struct {
	entries []Entry
	seen    map[string]struct{}
}

func NewAcc(capacity int) *Acc {
	return &Acc{
		entries: make([]Entry, 0, capacity),
		seen:    make(map[string]struct{}, capacity),
	}
}

// Add appends e unless an entry with the same key is already present, in
// which case it reports false.
func (a *Acc) Add(e Entry) bool {
	if _, dup := a.seen[e.Key]; dup {
		return false
	}
	a.seen[e.Key] = struct{}{}
	a.entries = append(a.entries, e)
	return true
}

func (a *Acc) Entries() []Entry {
	return a.entries
}

func (a *Acc) Len() int {
	return len(a.entries)
}
