package shouldupdate

import (
	"fmt"
	"os"
	"regexp"
)

// DebugFunc receives a decision-branch message together with the component
// the decision was made for.
type DebugFunc func(c Component, message string)

// Debug installs a diagnostic tap on the predicate and returns the installed
// function. Once installed, every decision branch taken by ShouldUpdate
// reports a fixed message; the tap derives a tag from the component's
// identity (see Tag), tests it against pattern, and on a match emits
// "<tag>: <message>" to sink.
//
// An empty pattern matches every tag; pattern is otherwise a regular
// expression. A nil sink writes to stderr. There is no uninstall: installing
// again replaces the previous tap.
func (p *Predicate) Debug(pattern string, sink func(message string)) (DebugFunc, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to compile debug pattern %q: %w", pattern, err)
	}
	if sink == nil {
		sink = stderrSink
	}
	fn := func(c Component, message string) {
		tag := Tag(c)
		if !re.MatchString(tag) {
			return
		}
		sink(tag + ": " + message)
	}
	p.mu.Lock()
	p.debug = fn
	p.mu.Unlock()
	return fn, nil
}

// Tag derives the debug tag from a component's identity metadata: the display
// name, followed by " key=<key>" when a list key is present. A component with
// neither is tagged "Unknown".
func Tag(c Component) string {
	name := c.DisplayName()
	key := c.Key()
	if name == "" && key == nil {
		return "Unknown"
	}
	tag := name
	if key != nil {
		if tag != "" {
			tag += " "
		}
		tag += fmt.Sprintf("key=%v", key)
	}
	return tag
}

func stderrSink(message string) {
	fmt.Fprintf(os.Stderr, "[shouldupdate] %s\n", message)
}

// trace reports a decision branch to the installed tap, if any.
func (p *Predicate) trace(c Component, message string) {
	p.mu.RLock()
	fn := p.debug
	p.mu.RUnlock()
	if fn != nil {
		fn(c, message)
	}
}
