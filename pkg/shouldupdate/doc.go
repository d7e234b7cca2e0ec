// Package shouldupdate decides whether a component needs to re-render.
//
// A Predicate compares a component's current props and state against the
// proposed next snapshots and reports whether anything changed enough to
// warrant a rebuild. The decision tree short-circuits: reference-identical
// snapshots skip all comparison, a state change wins before props are even
// looked at, and the reserved "children" key is excluded from the props
// comparison entirely.
//
// The zero-configuration predicate is available as Default:
//
//	if shouldupdate.Default.ShouldUpdate(component, nextProps, nextState) {
//	    // rebuild
//	}
//
// Both equality predicates can be replaced at construction time:
//
//	p := shouldupdate.New(&shouldupdate.Options{
//	    IsEqualProps: func(current, next map[string]any) bool {
//	        return current["rev"] == next["rev"]
//	    },
//	})
//
// Overrides replace the defaults; they do not wrap them.
//
// # Debugging
//
// Each predicate carries an optional diagnostic tap. Once installed via
// Debug, every decision branch reports which way it went, tagged with the
// component's identity:
//
//	p.Debug("TodoList", nil) // trace components whose tag matches, to stderr
//
// The host component lifecycle is an external collaborator: it supplies the
// Component handle, calls the predicate with two snapshots, and applies the
// boolean result. The predicate never mutates its inputs and retains no
// per-call state.
package shouldupdate
