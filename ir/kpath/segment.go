package kpath

import (
	"fmt"

	"github.com/signadot/tony-format/fragment/token"
)

type EntryKind int

const (
	FieldEntry EntryKind = iota
	ArrayEntry
	SparseArrayEntry
)

func (k EntryKind) String() string {
	switch k {
	case FieldEntry:
		return "field"
	case ArrayEntry:
		return "index"
	case SparseArrayEntry:
		return "sparse"
	default:
		return fmt.Sprintf("EntryKind(%d)", int(k))
	}
}

// Field returns a single segment path selecting object field name.
func Field(name string) *KPath {
	return &KPath{Field: &name}
}

// Index returns a single segment path selecting dense array position i.
func Index(i int) *KPath {
	return &KPath{Index: &i}
}

// SparseIndex returns a single segment path selecting int map key i.
func SparseIndex(i int) *KPath {
	return &KPath{SparseIndex: &i}
}

// EntryKind reports the kind of the first segment of p.
func (p *KPath) EntryKind() EntryKind {
	switch {
	case p.Index != nil:
		return ArrayEntry
	case p.SparseIndex != nil:
		return SparseArrayEntry
	default:
		return FieldEntry
	}
}

func (p *KPath) copySegment() *KPath {
	if p == nil {
		return nil
	}
	res := &KPath{}
	if p.Field != nil {
		tmp := *p.Field
		res.Field = &tmp
		return res
	}
	if p.Index != nil {
		tmp := *p.Index
		res.Index = &tmp
		return res
	}
	if p.SparseIndex != nil {
		tmp := *p.SparseIndex
		res.SparseIndex = &tmp
	}
	return res
}

func segmentsEqual(a, b *KPath) bool {
	return compareSegment(a, b) == 0
}

// compareSegment orders segments Field < Index < SparseIndex, then by value.
func compareSegment(a, b *KPath) int {
	ka, kb := a.EntryKind(), b.EntryKind()
	if ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}
	switch ka {
	case FieldEntry:
		fa, fb := "", ""
		if a.Field != nil {
			fa = *a.Field
		}
		if b.Field != nil {
			fb = *b.Field
		}
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	case ArrayEntry:
		return compareInt(*a.Index, *b.Index)
	default:
		return compareInt(*a.SparseIndex, *b.SparseIndex)
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// SegmentString returns the canonical string representation of this single segment.
// Unlike String(), this only returns the current segment, not the entire path.
// Examples:
//   - KPath{Field: &"a"} → "a"
//   - KPath{Field: &"field name"} → "'field name'" (quoted if needed)
//   - KPath{Index: &0} → "[0]"
//   - KPath{SparseIndex: &42} → "{42}"
func (p *KPath) SegmentString() string {
	if p == nil {
		return ""
	}
	if p.Field != nil {
		field := *p.Field
		if token.KPathQuoteField(field) {
			return token.Quote(field, true)
		}
		return field
	}
	if p.Index != nil {
		return fmt.Sprintf("[%d]", *p.Index)
	}
	if p.SparseIndex != nil {
		return fmt.Sprintf("{%d}", *p.SparseIndex)
	}
	return ""
}
