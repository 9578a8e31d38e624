package ir

import "testing"

func TestIsElement(t *testing.T) {
	el := NewElement("span", FromMap(map[string]*Node{"class": FromString("x")}))
	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{"element", el, true},
		{"commented element", &Node{Type: CommentType, Values: []*Node{el}}, true},
		{"plain object", FromMap(map[string]*Node{"type": FromString("span")}), false},
		{"string", FromString("!element"), false},
		{"nil", nil, false},
		{"composed tag", FromString("x").WithTag("!key(a).element"), true},
	}
	for _, tt := range tests {
		if got := IsElement(tt.node); got != tt.want {
			t.Errorf("%s: IsElement = %v, want %v", tt.name, got, tt.want)
		}
	}
	if got := ElementType(el); got != "span" {
		t.Errorf("ElementType = %q", got)
	}
	if got := ElementType(FromInt(1)); got != "" {
		t.Errorf("ElementType(non element) = %q", got)
	}
}

func TestIsPlatformNode(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{"int marker", FromMap(map[string]*Node{NodeTypeField: FromInt(1)}), true},
		{"float marker", FromMap(map[string]*Node{NodeTypeField: FromFloat(1)}), true},
		{"text node", FromMap(map[string]*Node{NodeTypeField: FromInt(3)}), false},
		{"string marker", FromMap(map[string]*Node{NodeTypeField: FromString("1")}), false},
		{"no marker", FromMap(map[string]*Node{"a": FromInt(1)}), false},
		{"array", FromSlice([]*Node{FromInt(1)}), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		if got := IsPlatformNode(tt.node); got != tt.want {
			t.Errorf("%s: IsPlatformNode = %v, want %v", tt.name, got, tt.want)
		}
	}
}
