package fragment

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"

	"github.com/signadot/tony-format/fragment/children"
	"github.com/signadot/tony-format/fragment/ir"
	"github.com/signadot/tony-format/fragment/ir/kpath"
)

func obj(kvs ...any) *ir.Node {
	res := make([]ir.KeyVal, 0, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		res = append(res, ir.KeyVal{Key: ir.FromString(kvs[i].(string)), Val: kvs[i+1].(*ir.Node)})
	}
	return ir.FromKeyVals(res)
}

func ints(f Fragment) []int64 {
	res := make([]int64, len(f))
	for i, v := range f.Values() {
		res[i] = *v.Int64
	}
	return res
}

func TestCreatePassthrough(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
	}{
		{"nil", nil},
		{"null", ir.Null()},
		{"string", ir.FromString("x")},
		{"number", ir.FromInt(1)},
		{"bool", ir.FromBool(true)},
		{"array", ir.FromSlice([]*ir.Node{ir.FromInt(1)})},
		{"element", ir.NewElement("div", nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, log := newRecorder()
			res, err := Create(tt.node, WithLogger(log), WithLatch(&Latch{}))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Built() {
				t.Fatalf("expected passthrough")
			}
			if res.Passthrough != tt.node {
				t.Errorf("passthrough is not the input")
			}
			if res.Node() != tt.node {
				t.Errorf("Node() is not the input")
			}
			if n := len(rec.warnings()); n != 1 {
				t.Errorf("got %d warnings, want 1: %v", n, rec.warnings())
			}
		})
	}
}

func TestCreatePlatformNode(t *testing.T) {
	dom := obj(ir.NodeTypeField, ir.FromInt(ir.ElementNodeType), "tagName", ir.FromString("DIV"))
	rec, log := newRecorder()
	res, err := Create(dom, WithLogger(log))
	if !errors.Is(err, ErrInvalidChild) {
		t.Fatalf("expected ErrInvalidChild, got %v", err)
	}
	if res != nil {
		t.Errorf("expected no result, got %+v", res)
	}
	if n := len(rec.warnings()); n != 0 {
		t.Errorf("got %d warnings, want 0", n)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("MustCreate did not panic")
		}
	}()
	MustCreate(dom, WithLogger(log))
}

func TestCreateKeepsInsertionOrder(t *testing.T) {
	tests := []struct {
		name   string
		node   *ir.Node
		keys   []string
		values []int64
	}{
		{
			name:   "abc",
			node:   obj("a", ir.FromInt(1), "b", ir.FromInt(2), "c", ir.FromInt(3)),
			keys:   []string{"a", "b", "c"},
			values: []int64{1, 2, 3},
		},
		{
			name:   "not lexical",
			node:   obj("c", ir.FromInt(3), "a", ir.FromInt(1), "b", ir.FromInt(2)),
			keys:   []string{"c", "a", "b"},
			values: []int64{3, 1, 2},
		},
		{
			name:   "array child",
			node:   obj("a", ir.FromSlice([]*ir.Node{ir.FromInt(10), ir.FromInt(20)})),
			keys:   []string{"a[0]", "a[1]"},
			values: []int64{10, 20},
		},
		{
			name: "nested depth first per key",
			node: obj(
				"z", obj("y", ir.FromInt(1), "x", ir.FromSlice([]*ir.Node{ir.FromInt(2)})),
				"a", ir.FromInt(3),
			),
			keys:   []string{"z.y", "z.x[0]", "a"},
			values: []int64{1, 2, 3},
		},
		{
			name:   "empty",
			node:   obj(),
			keys:   []string{},
			values: []int64{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, log := newRecorder()
			res, err := Create(tt.node, WithLogger(log))
			if err != nil {
				t.Fatal(err)
			}
			if !res.Built() {
				t.Fatal("expected a fragment")
			}
			if diff := cmp.Diff(tt.keys, res.Fragment.Keys()); diff != "" {
				t.Errorf("keys (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.values, ints(res.Fragment)); diff != "" {
				t.Errorf("values (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCreateElementChildren(t *testing.T) {
	left, right := ir.NewElement("td", nil), ir.NewElement("td", nil)
	_, log := newRecorder()
	res, err := Create(obj("left", left, "right", right), WithLogger(log))
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := res.Fragment.Get("left"); got != left {
		t.Errorf("left is not the original element")
	}
	if got, _ := res.Fragment.Get("right"); got != right {
		t.Errorf("right is not the original element")
	}
	if _, ok := res.Fragment.Get("middle"); ok {
		t.Errorf("unexpected middle")
	}
}

func TestCreateCommentedMapping(t *testing.T) {
	m := obj("a", ir.FromInt(1))
	c := &ir.Node{Type: ir.CommentType, Values: []*ir.Node{m}}
	_, log := newRecorder()
	res, err := Create(c, WithLogger(log))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a"}, res.Fragment.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestCreateIntKeyedMapping(t *testing.T) {
	node := ir.FromIntKeysMap(map[uint32]*ir.Node{2: ir.FromInt(20), 1: ir.FromInt(10)})
	rec, log := newRecorder()
	res, err := Create(node, WithLogger(log), WithDevMode(true), WithLatch(&Latch{}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"{1}", "{2}"}, res.Fragment.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if n := rec.count("non-numeric"); n != 1 {
		t.Errorf("got %d numeric key warnings, want 1", n)
	}
}

func TestNumericKeyWarningOnce(t *testing.T) {
	ResetNumericWarning()
	t.Cleanup(ResetNumericWarning)

	rec, log := newRecorder()
	opts := []CreateOption{WithLogger(log), WithDevMode(true)}
	for _, node := range []*ir.Node{
		obj("1", ir.FromString("x")),
		obj("2", ir.FromString("y"), "3", ir.FromString("z")),
	} {
		res, err := Create(node, opts...)
		if err != nil {
			t.Fatal(err)
		}
		if !res.Built() {
			t.Fatal("expected a fragment")
		}
	}
	if n := rec.count("non-numeric"); n != 1 {
		t.Errorf("got %d numeric key warnings, want 1", n)
	}
	if !numericKeyLatch.Fired() {
		t.Errorf("process latch not fired")
	}
}

func TestNumericKeyWarningNeedsDevMode(t *testing.T) {
	rec, log := newRecorder()
	latch := &Latch{}
	_, err := Create(obj("1", ir.FromString("x")), WithLogger(log), WithDevMode(false), WithLatch(latch))
	if err != nil {
		t.Fatal(err)
	}
	if n := len(rec.warnings()); n != 0 {
		t.Errorf("got %d warnings, want 0", n)
	}
	if latch.Fired() {
		t.Errorf("latch fired outside dev mode")
	}
}

func TestNumericKeyWarningConcurrent(t *testing.T) {
	rec, log := newRecorder()
	b := New(WithLogger(log), WithDevMode(true), WithLatch(&Latch{}))
	var g errgroup.Group
	for i := range 64 {
		g.Go(func() error {
			_, err := b.Create(obj(strconv.Itoa(i), ir.FromInt(int64(i))))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if n := rec.count("non-numeric"); n != 1 {
		t.Errorf("got %d numeric key warnings, want 1", n)
	}
}

func TestCreateIsRepeatable(t *testing.T) {
	node := obj(
		"a", ir.FromSlice([]*ir.Node{ir.FromInt(1), obj("b", ir.FromString("x"))}),
		"1", ir.NewElement("p", nil),
		"c", ir.Null(),
	)
	_, log := newRecorder()
	b := New(WithLogger(log), WithDevMode(true), WithLatch(&Latch{}))
	first, err := b.Create(node)
	if err != nil {
		t.Fatal(err)
	}
	second, err := b.Create(node)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first.Fragment.Keys(), second.Fragment.Keys()); diff != "" {
		t.Errorf("keys differ (-first +second):\n%s", diff)
	}
	if !ir.Equal(first.Fragment.ToNode(), second.Fragment.ToNode()) {
		t.Errorf("values differ")
	}
}

func randomTree(r *rand.Rand, depth int) (*ir.Node, int) {
	if depth == 0 || r.IntN(3) == 0 {
		if r.IntN(2) == 0 {
			return ir.FromInt(r.Int64()), 1
		}
		return ir.NewElement("e", nil), 1
	}
	n := r.IntN(4)
	kvs := make([]ir.KeyVal, n)
	kids := make([]*ir.Node, n)
	total := 0
	for i := range n {
		k, c := randomTree(r, depth-1)
		kids[i] = k
		kvs[i] = ir.KeyVal{Key: ir.FromString("k" + strconv.Itoa(i)), Val: k}
		total += c
	}
	if r.IntN(2) == 0 {
		return ir.FromSlice(kids), total
	}
	return ir.FromKeyVals(kvs), total
}

func TestCreatePreservesLeafCount(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	_, log := newRecorder()
	for i := 0; i < 100; i++ {
		n := 1 + r.IntN(5)
		kvs := make([]ir.KeyVal, n)
		want := 0
		for j := range n {
			child, c := randomTree(r, 4)
			kvs[j] = ir.KeyVal{Key: ir.FromString("top" + strconv.Itoa(j)), Val: child}
			want += c
		}
		res, err := Create(ir.FromKeyVals(kvs), WithLogger(log))
		if err != nil {
			t.Fatal(err)
		}
		if res.Fragment.Len() != want {
			t.Fatalf("case %d: got %d entries, want %d", i, res.Fragment.Len(), want)
		}
	}
}

type call struct {
	prefix string
	child  *ir.Node
}

type fakeTraverser struct {
	calls []call
	err   error
}

func (f *fakeTraverser) MapIntoWithKeyPrefix(acc *children.Acc, child *ir.Node, prefix *kpath.KPath, fn children.MapFunc) error {
	f.calls = append(f.calls, call{prefix: prefix.String(), child: child})
	if f.err != nil {
		return f.err
	}
	if fn(child) != child {
		return errors.New("transform is not the identity")
	}
	acc.Add(children.Entry{Path: prefix, Key: prefix.String(), Value: child})
	return nil
}

func TestCreateDelegatesPerKey(t *testing.T) {
	a, b := ir.FromInt(1), ir.FromSlice(nil)
	ft := &fakeTraverser{}
	_, log := newRecorder()
	res, err := Create(obj("b", b, "a", a), WithLogger(log), WithTraverser(ft))
	if err != nil {
		t.Fatal(err)
	}
	if len(ft.calls) != 2 {
		t.Fatalf("got %d calls, want 2", len(ft.calls))
	}
	if ft.calls[0].prefix != "b" || ft.calls[0].child != b {
		t.Errorf("first call %+v", ft.calls[0])
	}
	if ft.calls[1].prefix != "a" || ft.calls[1].child != a {
		t.Errorf("second call %+v", ft.calls[1])
	}
	if diff := cmp.Diff([]string{"b", "a"}, res.Fragment.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestCreateTraversalError(t *testing.T) {
	boom := errors.New("boom")
	_, log := newRecorder()
	res, err := Create(obj("a", ir.FromInt(1)), WithLogger(log), WithTraverser(&fakeTraverser{err: boom}))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if res != nil {
		t.Errorf("expected no result")
	}

	loop := ir.FromSlice([]*ir.Node{ir.FromInt(1)})
	loop.Values = append(loop.Values, loop)
	_, err = Create(obj("loop", loop), WithLogger(log))
	if !errors.Is(err, children.ErrCycle) {
		t.Fatalf("err = %v, want ErrCycle", err)
	}
}

func TestCreateSkipsMergeKeys(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: nil, Val: obj("x", ir.FromInt(1))},
		{Key: ir.FromString("y"), Val: ir.FromInt(2)},
	})
	rec, log := newRecorder()
	res, err := Create(node, WithLogger(log))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"y"}, res.Fragment.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if n := rec.count("skipping"); n != 1 {
		t.Errorf("got %d skip warnings, want 1", n)
	}
}
