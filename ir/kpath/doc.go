// Package kpath provides kinded paths, the composite keys of fragment entries.
//
// Kinded paths encode both navigation and structure type in the syntax:
//   - .field - Object field access
//   - [index] - Dense array index
//   - {index} - Int keyed (sparse) map entry
//
// Because each kind has its own syntax and field names that could be read
// as another kind are quoted, two different paths never render to the same
// string. The field "0" renders as "0" (quoted) while the index renders as
// [0].
//
// # Usage
//
//	// Parse a kinded path
//	kp, err := kpath.Parse("users[0].name")
//
//	// Access path components
//	seg := kp.LastSegment()
//	kind := seg.EntryKind() // FieldEntry, ArrayEntry, or SparseArrayEntry
//
//	// Build
//	child := kp.Append(kpath.Field("email"))
//
//	// Compare paths
//	cmp := kp1.Compare(kp2) // -1, 0, or 1
package kpath
