package shouldupdate

import (
	"reflect"
	"sync"

	"github.com/go-drift/shouldupdate/pkg/compare"
)

// Props is the external input mapping driving a component's render.
type Props = map[string]any

// State is the internal mutable mapping owned by a component instance.
type State = map[string]any

// Component is the handle through which the predicate reads the calling
// component's live snapshot and identity metadata.
type Component interface {
	// CurrentProps returns the component's current props mapping.
	CurrentProps() Props
	// CurrentState returns the component's current state mapping.
	CurrentState() State
	// DisplayName returns the component's human-readable name, or "" if the
	// component has none.
	DisplayName() string
	// Key returns the component's list key, or nil if the component has none.
	Key() any
}

// Handle is a ready-made Component implementation. Embed it or use it
// directly when the host framework has no richer component identity:
//
//	h := &shouldupdate.Handle{
//	    Name:  "Counter",
//	    Props: shouldupdate.Props{"label": "clicks"},
//	    State: shouldupdate.State{"count": 0},
//	}
type Handle struct {
	Props   Props
	State   State
	Name    string
	ListKey any
}

func (h *Handle) CurrentProps() Props { return h.Props }

func (h *Handle) CurrentState() State { return h.State }

func (h *Handle) DisplayName() string { return h.Name }

func (h *Handle) Key() any { return h.ListKey }

// Options configures a Predicate. Nil fields use the built-in defaults.
// An override replaces the default predicate; it does not wrap it.
type Options struct {
	// IsEqualState reports whether two state snapshots are equal.
	IsEqualState func(current, next map[string]any) bool
	// IsEqualProps reports whether two props snapshots are equal. It is
	// invoked on copies with the reserved children key already removed.
	IsEqualProps func(current, next map[string]any) bool
}

// Predicate decides whether a component should re-render. Construct one with
// New, or use Default. A Predicate is safe for concurrent use: it retains no
// per-call state, and the debug tap is configuration, written only by Debug.
type Predicate struct {
	isEqualState func(current, next map[string]any) bool
	isEqualProps func(current, next map[string]any) bool

	mu    sync.RWMutex
	debug DebugFunc
}

// New creates a Predicate. Pass nil for all defaults.
func New(opts *Options) *Predicate {
	p := &Predicate{
		isEqualState: isEqual,
		isEqualProps: isEqual,
	}
	if opts != nil {
		if opts.IsEqualState != nil {
			p.isEqualState = opts.IsEqualState
		}
		if opts.IsEqualProps != nil {
			p.isEqualProps = opts.IsEqualProps
		}
	}
	return p
}

// Default is a ready-to-use predicate constructed with no overrides.
var Default = New(nil)

// ShouldUpdate reports whether the component needs to re-render given the
// proposed next props and state. The decision short-circuits in order:
// reference-identical input, state change, props change (with the reserved
// children key excluded). Each branch reports to the debug tap if one is
// installed.
func (p *Predicate) ShouldUpdate(c Component, nextProps Props, nextState State) bool {
	if sameMap(c.CurrentProps(), nextProps) && sameMap(c.CurrentState(), nextState) {
		p.trace(c, "shouldUpdate => false (equal input)")
		return false
	}
	if !p.isEqualState(c.CurrentState(), nextState) {
		p.trace(c, "shouldUpdate => true (state has changed)")
		return true
	}
	currentProps := omitChildren(c.CurrentProps())
	if !p.isEqualProps(currentProps, omitChildren(nextProps)) {
		p.trace(c, "shouldUpdate => true (props have changed)")
		return true
	}
	p.trace(c, "shouldUpdate => false")
	return false
}

// IsEqualState invokes the effective state-equality predicate.
func (p *Predicate) IsEqualState(current, next State) bool {
	return p.isEqualState(current, next)
}

// IsEqualProps invokes the effective props-equality predicate.
func (p *Predicate) IsEqualProps(current, next Props) bool {
	return p.isEqualProps(current, next)
}

// isEqual is the default snapshot predicate: a conclusive capability verdict
// wins, anything else falls back to deep structural equality.
func isEqual(current, next map[string]any) bool {
	switch compare.Values(current, next) {
	case compare.Equal:
		return true
	case compare.Unequal:
		return false
	}
	return compare.Deep(current, next)
}

// sameMap reports whether a and b are the same map instance.
func sameMap(a, b map[string]any) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
