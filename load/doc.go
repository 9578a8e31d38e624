// Package load reads YAML and JSON documents into ir nodes.
//
// Documents are parsed with github.com/goccy/go-yaml's AST rather than
// decoded into Go maps, so the written order of mapping keys is kept.
// That order is the order in which fragment children are enumerated.
//
//	nodes, err := load.Load([]byte("b: 1\na: 2\n"))
//	// nodes[0].Fields are b then a
//
// Local tags are kept on the resulting node; a mapping tagged !element is
// treated as an opaque renderable node.  Anchors and aliases are resolved
// to shared nodes.
package load
