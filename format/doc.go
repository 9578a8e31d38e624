// Package format names the document formats read and written by the
// fragment tools.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	if f.IsJSON() { ... }
//
// Input documents are YAML or JSON. Fragments are written as YAML, JSON or
// a line oriented text listing.
package format
