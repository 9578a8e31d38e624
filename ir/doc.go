// Package ir provides the ordered tree used to describe children.
//
// # Node Structure
//
// A Node represents a single child value. Nodes can be:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (key-value pairs), array (ordered list)
//   - Metadata: tags, comments
//
// The IR works as a recursive tagged union structure, where values are placed
// in fields depending on the node type.
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there will always be the same number of fields as values. The order of
// Fields is the order in which the keys were written and is never changed
// by this package, except by FromMap which sorts its Go map keys.
//
// Fields are always either:
//   - String typed - normal object keys
//   - Int typed (fitting in uint32) - for int-keyed maps (sparse arrays)
//   - Null typed - a merge key, which may occur multiple times
//
// # Elements and platform nodes
//
// A node tagged !element is an opaque renderable node: a leaf whatever its
// shape. An object carrying the field nodeType: 1 is a raw platform tree
// node, which is never a valid child. See IsElement and IsPlatformNode.
//
// # Comments
//
// A CommentType node with one value is a head comment attached to that
// value. Comments are transparent to traversal; Unwrap skips them.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone nodes
// for each goroutine.
package ir
