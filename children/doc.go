// Package children flattens child trees into keyed leaf entries.
//
// A child tree is an ir.Node. Arrays and objects are containers; scalars,
// nulls and elements (nodes tagged !element) are leaves. Every leaf becomes
// an Entry whose key is the kinded path from the root of the walk, with an
// optional caller supplied prefix:
//
//	{a: [10, 20], b: {c: x}}  →  a[0]=10, a[1]=20, b.c=x
//
// Entries come out depth first, in the order of the arrays and of the
// object fields. Keys are unique within an accumulator: the first leaf to
// claim a key keeps it, later ones are dropped with a warning. Kinded paths
// make this only possible for objects which repeat a field name.
//
// [Mapper.MapIntoWithKeyPrefix] is the primitive; [Map], [ToSlice],
// [ForEach] and [Count] are conveniences rooted at the empty path.
package children
