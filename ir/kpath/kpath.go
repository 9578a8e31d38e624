package kpath

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/tony-format/fragment/token"
)

// KPath represents a kinded path.
// Kinded paths encode node kinds in the path syntax itself:
//   - "a.b" → Object accessed via ".b" (a is ObjectType)
//   - "a[0]" → Dense Array accessed via "[0]" (a is ArrayType)
//   - "a{0}" → Int keyed map accessed via "{0}"
//
// Exactly one of Field, Index and SparseIndex is set on each segment.
type KPath struct {
	Field       *string // Object field name (e.g., "a", "b")
	Index       *int    // Dense array index (e.g., 0, 1)
	SparseIndex *int    // Int map key (e.g., 0, 42) - for {n} syntax
	Next        *KPath  // Next segment in path (nil for leaf)
}

// String returns the kinded path string representation of this KPath.
// Example:
//
//	KPath{Field: &"a", Next: &KPath{Field: &"b", ...}} → "a.b"
//	KPath{Field: &"a", Next: &KPath{Index: &0, ...}} → "a[0]"
//	KPath{Field: &"a", Next: &KPath{SparseIndex: &42, ...}} → "a{42}"
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x.Field != nil && buf.Len() > 0 {
			buf.WriteByte('.')
		}
		buf.WriteString(x.SegmentString())
	}
	return buf.String()
}

// Len returns the number of segments in p.
func (p *KPath) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Segments returns copies of each segment of p, first to last.
func (p *KPath) Segments() []*KPath {
	res := make([]*KPath, 0, p.Len())
	for x := p; x != nil; x = x.Next {
		res = append(res, x.copySegment())
	}
	return res
}

// Clone returns a deep copy of p.
func (p *KPath) Clone() *KPath {
	if p == nil {
		return nil
	}
	res := p.copySegment()
	res.Next = p.Next.Clone()
	return res
}

// Append returns a new path consisting of p followed by q. Neither p nor q
// is modified.
func (p *KPath) Append(q *KPath) *KPath {
	if p == nil {
		return q.Clone()
	}
	res := p.Clone()
	last := res
	for last.Next != nil {
		last = last.Next
	}
	last.Next = q.Clone()
	return res
}

// LastSegment returns a copy of the last segment of p.
func (p *KPath) LastSegment() *KPath {
	if p == nil {
		return nil
	}
	x := p
	for x.Next != nil {
		x = x.Next
	}
	return x.copySegment()
}

// Parent returns the parent path (all segments except the last).
// Returns nil if this is already the root segment or if there's only one segment.
func (p *KPath) Parent() *KPath {
	if p == nil || p.Next == nil {
		return nil
	}
	res := p.copySegment()
	res.Next = p.Next.Parent()
	return res
}

// IsChildOf returns true if this path is strictly below parent.
func (p *KPath) IsChildOf(parent *KPath) bool {
	if parent == nil {
		return p != nil
	}
	pp := p
	for x := parent; x != nil; x = x.Next {
		if pp == nil || !segmentsEqual(pp, x) {
			return false
		}
		pp = pp.Next
	}
	return pp != nil
}

// Compare compares two paths lexicographically.
// Returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p *KPath) Compare(other *KPath) int {
	pa, pb := p, other
	for pa != nil && pb != nil {
		if c := compareSegment(pa, pb); c != 0 {
			return c
		}
		pa = pa.Next
		pb = pb.Next
	}
	switch {
	case pa == nil && pb == nil:
		return 0
	case pa == nil:
		return -1
	}
	return 1
}

// Parse parses a kinded path string into a KPath structure.
//
// Kinded path syntax:
//   - "a.b" → Object accessed via ".b"
//   - "a[0]" → Dense Array accessed via "[0]"
//   - "a{0}" → Int keyed map accessed via "{0}"
//   - "'a b'.c" → quoted field
//
// "" is the root path and parses to nil.
//
// Returns an error if the path syntax is invalid.
func Parse(kpath string) (*KPath, error) {
	if kpath == "" {
		return nil, nil
	}
	root := &KPath{}
	if err := parseKFrag(kpath, root, true); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrSyntax, kpath, err)
	}
	return root, nil
}

// parseKFrag parses frag into parent, continuing with a fresh segment for
// whatever remains.
func parseKFrag(frag string, parent *KPath, first bool) error {
	var rest string
	switch frag[0] {
	case '[', '{':
		closer := byte(']')
		if frag[0] == '{' {
			closer = '}'
		}
		i := strings.IndexByte(frag, closer)
		if i == -1 {
			return fmt.Errorf("expected %q <index> %q", frag[0], closer)
		}
		index, err := parseKIndex(frag[1:i])
		if err != nil {
			return err
		}
		if frag[0] == '[' {
			parent.Index = &index
		} else {
			parent.SparseIndex = &index
		}
		rest = frag[i+1:]
	case '.':
		if first {
			return fmt.Errorf("leading '.'")
		}
		frag = frag[1:]
		fallthrough
	default:
		field, r, err := parseKField(frag)
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	}
	if rest == "" {
		return nil
	}
	if rest[0] != '.' && rest[0] != '[' && rest[0] != '{' {
		return fmt.Errorf("unexpected %q after segment", rest[0])
	}
	next := &KPath{}
	if err := parseKFrag(rest, next, false); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseKIndex(is string) (int, error) {
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", is, err)
	}
	return int(u64), nil
}

// parseKField parses an object field name from a fragment.
// It stops at '.', '[', or '{' characters.
// Supports quoted strings (single or double quotes with escape sequences).
func parseKField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] == '\'' || frag[0] == '"' {
		n, err := token.QuotedLen([]byte(frag))
		if err != nil {
			return "", "", fmt.Errorf("invalid quoted field: %w", err)
		}
		field, err = token.Unquote(frag[:n])
		if err != nil {
			return "", "", fmt.Errorf("invalid quoted field: %w", err)
		}
		return field, frag[n:], nil
	}
	i := strings.IndexAny(frag, ".[{")
	if i == -1 {
		return frag, "", nil
	}
	if i == 0 {
		return "", "", fmt.Errorf("empty field")
	}
	return frag[:i], frag[i:], nil
}

func (kp *KPath) MarshalText() ([]byte, error) {
	return []byte(kp.String()), nil
}

func (kp *KPath) UnmarshalText(d []byte) error {
	pp, err := Parse(string(d))
	if err != nil {
		return err
	}
	if pp == nil {
		*kp = KPath{}
		return nil
	}
	*kp = *pp
	return nil
}
