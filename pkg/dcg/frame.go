package dcg

import "github.com/yesoreyeram/dcgo/pkg/store"
import "github.com/yesoreyeram/dcgo/pkg/symbol"

// frame records the currently-executing producer's location and the
// edges it has accumulated so far during this execution.
type frame struct {
	loc   symbol.Location
	succs []store.Succ
}

// pushFrame pushes a new frame for loc, enforcing that loc does not
// already appear on the stack (invariant: no location may appear on the
// frame stack more than once simultaneously — a self-dependent producer
// is a broken invariant, not an infinite loop).
func (e *Engine) pushFrame(loc symbol.Location) error {
	if len(e.stack) >= e.cfg.MaxFrameDepth {
		return &BrokenInvariantError{Reason: "frame stack exceeded configured max depth (possible unbounded recursion)"}
	}
	for _, f := range e.stack {
		if f.loc.Equal(loc) {
			return &BrokenInvariantError{Reason: "location re-entered the frame stack while already executing: " + loc.String()}
		}
	}
	e.stack = append(e.stack, &frame{loc: loc})
	return nil
}

// popFrame pops the top frame, asserting it belongs to loc, and returns
// the edges it accumulated.
func (e *Engine) popFrame(loc symbol.Location) ([]store.Succ, error) {
	if len(e.stack) == 0 {
		return nil, &BrokenInvariantError{Reason: "popFrame called on an empty stack"}
	}
	top := e.stack[len(e.stack)-1]
	if !top.loc.Equal(loc) {
		return nil, &BrokenInvariantError{Reason: "frame stack mismatch: expected " + loc.String() + ", found " + top.loc.String()}
	}
	e.stack = e.stack[:len(e.stack)-1]
	return top.succs, nil
}

// appendSucc appends an edge to the currently-executing frame, if any. A
// force or allocation performed outside any producer (stack empty)
// records no edge — there is no predecessor to attribute it to.
func (e *Engine) appendSucc(s store.Succ) {
	if len(e.stack) == 0 {
		return
	}
	top := e.stack[len(e.stack)-1]
	top.succs = append(top.succs, s)
}

// currentPath returns the path the engine is presently allocating under.
func (e *Engine) currentPath() symbol.Path { return e.path }

// Ns pushes name onto the current path for the duration of body and
// restores it afterward, including on abnormal exit (body panicking).
func (e *Engine) Ns(name symbol.Name, body func() error) error {
	saved := e.path
	e.path = e.path.Push(name)
	defer func() { e.path = saved }()
	return body()
}

// Structural temporarily forces the engine to use structural identity for
// every cell/thunk allocation performed by body, regardless of what the
// caller requests, for the duration of body.
func (e *Engine) Structural(body func() error) error {
	e.structuralDepth++
	defer func() { e.structuralDepth-- }()
	return body()
}

// forcedStructural reports whether the engine is currently forcing
// structural identity, either via the IgnoreNominalUseStructural flag or
// via an active Structural(body) scope.
func (e *Engine) forcedStructural() bool {
	return e.cfg.IgnoreNominalUseStructural || e.structuralDepth > 0
}
