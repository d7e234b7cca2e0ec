package compare

import "github.com/google/go-cmp/cmp"

// deepOptions consults Values at every pair of corresponding nodes before
// go-cmp's structural recursion. A conclusive verdict settles the whole
// subtree; Inconclusive pairs fall through to key-set equality for maps,
// length and positional equality for slices, and == for scalars.
var deepOptions = cmp.Options{
	cmp.FilterValues(
		func(a, b any) bool { return Values(a, b) != Inconclusive },
		cmp.Comparer(func(a, b any) bool { return Values(a, b) == Equal }),
	),
}

// Deep reports whether a and b are structurally equal. Capability-bearing
// values (Valuer, Equaler) are compared through Values at every recursion
// step, so opaque composites such as cursors are compared by handle rather
// than by content.
//
// Composite values are expected to be maps, slices, comparable scalars, or
// types that opt into a capability. Struct values with unexported fields must
// implement Equaler to be comparable.
func Deep(a, b any) bool {
	return cmp.Equal(a, b, deepOptions)
}
