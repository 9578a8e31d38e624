package ir

import (
	"errors"
	"fmt"
)

// Type is the kind of value held by a Node.
type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
	CommentType
)

var ErrUnknownType = errors.New("unknown node type")

var typeNames = [...]string{
	NullType:    "Null",
	NumberType:  "Number",
	StringType:  "String",
	BoolType:    "Bool",
	ObjectType:  "Object",
	ArrayType:   "Array",
	CommentType: "Comment",
}

// String names t the way query predicates and diagnostics see it, e.g.
// "Number". Out of range values print as Type(n).
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(typeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return []byte(typeNames[t]), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for i, name := range typeNames {
		if name == string(d) {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownType, d)
}

// Types lists every node type in declaration order.
func Types() []Type {
	res := make([]Type, len(typeNames))
	for i := range res {
		res[i] = Type(i)
	}
	return res
}

// IsLeaf reports whether a node of type t is a leaf of a child tree: it
// holds no children of its own.
func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType, CommentType:
		return false
	default:
		return true
	}
}
