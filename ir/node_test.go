package ir

import (
	"testing"
)

func fieldNames(n *Node) []string {
	res := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		res[i] = f.ParentField
	}
	return res
}

func TestFromKeyValsKeepsOrder(t *testing.T) {
	n := FromKeyVals([]KeyVal{
		{Key: FromString("c"), Val: FromInt(3)},
		{Key: FromString("a"), Val: FromInt(1)},
		{Key: FromString("b"), Val: FromInt(2)},
	})
	got := fieldNames(n)
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fields %v, want %v", got, want)
		}
	}
	for i, v := range n.Values {
		if v.Parent != n || v.ParentIndex != i || v.ParentField != want[i] {
			t.Errorf("bad parent links on value %d", i)
		}
	}
}

func TestFromMapSorts(t *testing.T) {
	n := FromMap(map[string]*Node{
		"b": FromInt(2),
		"a": FromInt(1),
	})
	if got := fieldNames(n); got[0] != "a" || got[1] != "b" {
		t.Errorf("fields %v", got)
	}
	if v := Get(n, "b"); v == nil || *v.Int64 != 2 {
		t.Errorf("Get(b) = %v", v)
	}
	if Get(n, "z") != nil {
		t.Errorf("Get(z) should be nil")
	}
}

func TestFromIntKeysMap(t *testing.T) {
	n := FromIntKeysMap(map[uint32]*Node{
		7: FromString("seven"),
		2: FromString("two"),
	})
	if n.Fields[0].Type != NumberType || *n.Fields[0].Int64 != 2 {
		t.Errorf("first key %v", n.Fields[0])
	}
	if n.Values[1].ParentField != "7" {
		t.Errorf("ParentField = %q", n.Values[1].ParentField)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromSlice([]*Node{FromInt(1), FromString("x")})},
		{Key: FromString("e"), Val: NewElement("div", nil)},
	})
	c := orig.Clone()
	if !Equal(orig, c) {
		t.Fatalf("clone differs")
	}
	*c.Values[0].Values[0].Int64 = 99
	c.Values[0].Values[1].String = "y"
	if *orig.Values[0].Values[0].Int64 != 1 || orig.Values[0].Values[1].String != "x" {
		t.Errorf("clone aliases original")
	}
	if c.Values[0].Parent != c {
		t.Errorf("clone child parent not rewired")
	}
}

func TestUnwrap(t *testing.T) {
	v := FromInt(1)
	c := &Node{Type: CommentType, Values: []*Node{v}}
	if c.Unwrap() != v {
		t.Errorf("Unwrap did not skip comment")
	}
	var nilNode *Node
	if nilNode.Unwrap() != nil {
		t.Errorf("Unwrap(nil) != nil")
	}
}

func TestConstructorsNilIsNull(t *testing.T) {
	obj := FromKeyVals([]KeyVal{{Key: FromString("a"), Val: nil}})
	if v := obj.Values[0]; v == nil || v.Type != NullType || v.Parent != obj {
		t.Errorf("object value: got %+v, want a null child of obj", v)
	}
	arr := FromSlice([]*Node{FromInt(1), nil})
	if v := arr.Values[1]; v == nil || v.Type != NullType || v.ParentIndex != 1 {
		t.Errorf("array value: got %+v, want a null at index 1", v)
	}
}
