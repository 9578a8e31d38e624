// Package fragment turns a keyed mapping of children into a fragment: one
// flat, ordered sequence of leaves, each carrying the key path it was found
// under.
//
// A reconciler which can only diff flat lists of identified nodes cannot
// follow nested keyed groups. Create lets a caller express "these keyed
// children belong together" while handing the reconciler a plain list:
//
//	res, err := fragment.Create(ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("header"), Val: header},
//	    {Key: ir.FromString("items"), Val: ir.FromSlice(items)},
//	}))
//	// res.Fragment.Keys() → header, items[0], items[1], ...
//
// Fields are visited in the order they appear in the mapping and each
// field's value is flattened depth first by package children, so the
// fragment preserves both the top level order and the order within each
// child.
//
// # Misuse
//
// Passing something other than an object, or an element which should have
// been wrapped in an object, logs a warning and returns the argument as
// [Result.Passthrough] so the surrounding work can carry on. Passing a raw
// platform node (an object with nodeType: 1) is a programming error and
// returns [ErrInvalidChild].
//
// # Numeric keys
//
// In development mode (FRAG_DEV=1 or [WithDevMode]) the first all-digit top
// level key seen by the process logs a warning, once: hosts which order
// integer-like keys first would not keep the written order.
package fragment
