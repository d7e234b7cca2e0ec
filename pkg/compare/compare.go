package compare

import "reflect"

// Result is the outcome of a single Values comparison.
type Result int

const (
	// Inconclusive indicates neither value opted into a capability; the
	// caller should fall back to generic structural comparison.
	Inconclusive Result = iota
	// Equal indicates the values compared equal.
	Equal
	// Unequal indicates the values compared unequal.
	Unequal
)

func (r Result) String() string {
	switch r {
	case Equal:
		return "equal"
	case Unequal:
		return "unequal"
	default:
		return "inconclusive"
	}
}

// Valuer is the value-of capability: a value that coerces itself to a
// primitive for scalar comparison.
type Valuer interface {
	Value() any
}

// Equaler is the equals capability: a value that compares itself against
// another instance of a compatible type.
type Equaler interface {
	Equal(other any) bool
}

// Values compares a single pair of values, in strict order:
//
//  1. Identical values (same reference, or primitively equal under identity
//     semantics) are Equal.
//  2. If both implement Valuer and the coerced primitives are equal, the pair
//     is Equal. Unequal coerced primitives are not a verdict; the structural
//     fallback decides.
//  3. If both implement Equaler, a.Equal(b) decides.
//  4. If exactly one implements Equaler, the pair is Unequal.
//  5. Otherwise the comparison is Inconclusive.
func Values(a, b any) Result {
	if identical(a, b) {
		return Equal
	}
	if av, ok := a.(Valuer); ok {
		if bv, ok := b.(Valuer); ok {
			if primitiveEqual(av.Value(), bv.Value()) {
				return Equal
			}
		}
	}
	ae, aok := a.(Equaler)
	_, bok := b.(Equaler)
	switch {
	case aok && bok:
		if ae.Equal(b) {
			return Equal
		}
		return Unequal
	case aok != bok:
		return Unequal
	}
	return Inconclusive
}

// identical reports whether a and b are the same reference, or comparable
// scalars of the same dynamic type that compare equal under ==.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra := reflect.ValueOf(a)
	rb := reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		// Same backing array and length, i.e. the same slice view.
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	default:
		if ra.Type().Comparable() {
			return a == b
		}
		return false
	}
}

// primitiveEqual compares two coerced primitives without panicking on
// uncomparable dynamic types.
func primitiveEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}
