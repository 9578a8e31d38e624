package ir

// ElementTag marks an opaque renderable node. Traversal never looks inside
// an element: it is a single child no matter its shape.
const ElementTag = "!element"

const (
	// NodeTypeField and ElementNodeType form the marker of a raw platform
	// tree node, the DOM's nodeType === ELEMENT_NODE.
	NodeTypeField   = "nodeType"
	ElementNodeType = 1
)

// NewElement returns an element of type typ. props, when not nil, must be an
// object; its fields follow the type field. An optional key may be given as
// the "key" prop.
func NewElement(typ string, props *Node) *Node {
	kvs := []KeyVal{{Key: FromString("type"), Val: FromString(typ)}}
	if props != nil {
		kvs = append(kvs, KeyVal{Key: FromString("props"), Val: props})
	}
	return FromKeyVals(kvs).WithTag(TagCompose(ElementTag, nil, ""))
}

// IsElement reports whether n is an opaque renderable node.
func IsElement(n *Node) bool {
	n = n.Unwrap()
	if n == nil {
		return false
	}
	return TagHas(n.Tag, ElementTag)
}

// ElementType returns the type of element n, or "" if n has none.
func ElementType(n *Node) string {
	if !IsElement(n) {
		return ""
	}
	t := Get(n.Unwrap(), "type")
	if t == nil || t.Type != StringType {
		return ""
	}
	return t.String
}

// IsPlatformNode reports whether n carries the raw platform node marker.
func IsPlatformNode(n *Node) bool {
	n = n.Unwrap()
	if n == nil || n.Type != ObjectType {
		return false
	}
	nt := Get(n, NodeTypeField)
	if nt == nil || nt.Type != NumberType {
		return false
	}
	switch {
	case nt.Int64 != nil:
		return *nt.Int64 == ElementNodeType
	case nt.Float64 != nil:
		return *nt.Float64 == ElementNodeType
	}
	return nt.Number == "1"
}
