/*
Package env implements Quetite's lexical environment: a chain of scope
frames from the innermost block outward to the global frame (spec.md
section 3, "Environment"). A frame holds name -> value.Value bindings;
Lookup walks outward, Define writes to the innermost frame, and Assign
writes to the nearest frame that already defines the name or reports
failure so the evaluator can raise NameErr.

Grounded on scope.Scope's Variables/Parent/LookUp/Bind/Assign shape,
but — deliberately — without scope.Scope.Copy(): the teacher snapshots
variable bindings by value when a function is returned, which breaks
live closure capture (spec.md's mutable-counter scenario needs a
function to keep observing the *same* frame, not a point-in-time copy
of it). Environments here are always captured and shared by pointer.
*/
package env

import "github.com/qewer33/quetite/value"

// Env is one frame in the lexical scope chain.
type Env struct {
	vars   map[string]value.Value
	parent *Env
}

// New creates a fresh frame parented to parent (nil for the global frame).
func New(parent *Env) *Env {
	return &Env{vars: make(map[string]value.Value), parent: parent}
}

// Lookup searches this frame and, failing that, each enclosing frame
// in turn, for name.
func (e *Env) Lookup(name string) (value.Value, bool) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds name to v in this frame only, shadowing any outer
// binding of the same name (spec.md: "definition writes to the
// innermost frame").
func (e *Env) Define(name string, v value.Value) {
	e.vars[name] = v
}

// Assign updates name in the nearest frame (this one or an ancestor)
// that already defines it, and reports whether such a frame was found.
// A failed Assign is how the evaluator detects an undeclared-name
// assignment and raises NameErr.
func (e *Env) Assign(name string, v value.Value) bool {
	for f := e; f != nil; f = f.parent {
		if _, ok := f.vars[name]; ok {
			f.vars[name] = v
			return true
		}
	}
	return false
}

// Names returns the names bound directly in this frame, in no
// particular order — used by the REPL's /scope command to list
// top-level bindings.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	return names
}

// Parent returns the enclosing frame, or nil at the global frame.
func (e *Env) Parent() *Env { return e.parent }

// Global walks to the root frame of the chain — the frame native
// registrations and `use` merges install into.
func (e *Env) Global() *Env {
	f := e
	for f.parent != nil {
		f = f.parent
	}
	return f
}
