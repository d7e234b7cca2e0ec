// Package compare provides the equality machinery behind re-render decisions.
//
// The package has two layers. Values is a three-valued comparator for a single
// pair of values: it checks reference identity, then the optional Valuer and
// Equaler capabilities, and reports Inconclusive when no capability applies.
// Deep is full structural equality over nested maps, slices, and scalars, with
// Values consulted at every node so capability-bearing values are compared by
// their own notion of equality instead of by exhaustive structural walk.
//
// # Capabilities
//
// A value opts into capability-based comparison by implementing one or both of
// the interfaces:
//
//	type Price struct {
//	    Cents int64
//	}
//
//	func (p Price) Value() any { return p.Cents }
//
//	type Cursor struct {
//	    ID  string
//	    buf []byte
//	}
//
//	func (c Cursor) Equal(other any) bool {
//	    o, ok := other.(Cursor)
//	    return ok && c.ID == o.ID
//	}
//
// Values treats Value as a narrowing fast path: equal coerced values settle the
// comparison, unequal ones fall through to the structural layer. Equal is a
// full verdict: when both sides implement it, its answer is final, and when
// only one side implements it the pair is reported unequal.
package compare
