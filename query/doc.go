// Package query filters fragment entries with github.com/expr-lang/expr
// predicates such as
//
//	depth > 1 && kind == "index"
//	element && elementType == "li"
//	type == "Number" && value >= 10
//	under(key, "items")
//
// See Compile for the variables a predicate can use.
package query
