package dcg

import (
	"github.com/yesoreyeram/dcgo/pkg/store"
	"github.com/yesoreyeram/dcgo/pkg/symbol"
)

// Set replaces the value held by the mutable location identified by h. It
// is an error to call Set while any producer is currently executing
// (len(e.stack) != 0) — mutation is only legal from outside Force, never
// from within a producer's own body.
func (e *Engine) Set(h Handle, value store.Value) error {
	node, ok := e.st.Get(h.loc)
	if !ok {
		return &DanglingLocationError{Loc: h.loc}
	}
	if node.Kind != store.KindMut {
		return store.ErrKindMismatch(h.loc.String(), store.KindMut, node.Kind)
	}
	return e.afterOp(e.performSet(h.loc, node, value))
}

// performSet applies value to an existing mutable node, dirtying its
// observers on an actual change. Shared by Set and by Cell's
// already-allocated path, since re-declaring a cell with the same name is
// indistinguishable from setting it.
func (e *Engine) performSet(loc symbol.Location, node *store.Node, value store.Value) error {
	if len(e.stack) != 0 {
		return &MutationDuringEvaluationError{Loc: loc, Depth: len(e.stack)}
	}
	if node.Val != nil && node.Val.Equal(value) {
		return nil
	}
	node.Val = value
	e.dirtyObserve(loc)
	return nil
}
