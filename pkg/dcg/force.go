package dcg

import (
	"context"
	"time"

	"github.com/yesoreyeram/dcgo/pkg/store"
	"github.com/yesoreyeram/dcgo/pkg/symbol"
)

// Force resolves h to its current value, evaluating or re-verifying as
// needed. Called both as the top-level entry point into the graph and
// from within a producer's own body — in the latter case it records an
// Observe edge on the currently-executing frame, which is how the graph
// learns what a producer depends on.
func (e *Engine) Force(h Handle) (store.Value, error) {
	if h.eager {
		return h.value.Clone(), nil
	}

	node, ok := e.st.Get(h.loc)
	if !ok {
		return nil, &DanglingLocationError{Loc: h.loc}
	}

	start := time.Now()
	e.notifyForceStart(h.loc, node.Kind)

	before := node.Result
	value, err := e.forceNode(h.loc, node)
	changed := err == nil && node.Kind == store.KindComp && !valuesEqual(before, node.Result)
	err = e.afterOp(err)

	e.notifyForceEnd(h.loc, node.Kind, start, changed, err)
	if e.telemetry != nil {
		e.telemetry.RecordForce(context.Background(), h.loc.String(), time.Since(start), err == nil)
	}
	return value, err
}

// forceNode does the actual resolution work for loc/node, without the
// top-level event/telemetry wrapping Force adds — the shared core used
// both by Force itself and by witness re-verification's forcePeek.
func (e *Engine) forceNode(loc symbol.Location, node *store.Node) (store.Value, error) {
	switch node.Kind {
	case store.KindPure:
		e.appendSucc(store.Succ{Target: loc, Effect: store.Observe, Witness: store.Witness{Kind: store.ProducerDependency, Value: node.Val}})
		return node.Val.Clone(), nil

	case store.KindMut:
		e.appendSucc(store.Succ{Target: loc, Effect: store.Observe, Witness: store.Witness{Kind: store.ProducerDependency, Value: node.Val}})
		return node.Val.Clone(), nil

	case store.KindComp:
		var result store.Value
		var err error
		switch {
		case !node.HasResult:
			result, err = e.produce(loc, node)
		case isDirty(node):
			result, _, err = e.changePropagate(loc, node)
		default:
			result = node.Result
		}
		if err != nil {
			return nil, err
		}
		e.appendSucc(store.Succ{Target: loc, Effect: store.Observe, Witness: store.Witness{Kind: store.ProducerDependency, Value: result}})
		return result.Clone(), nil

	default:
		return nil, &BrokenInvariantError{Reason: "unknown node kind at " + loc.String()}
	}
}

// isDirty reports whether any of a Comp node's recorded successor edges
// is marked dirty — the signal that its cached result may be stale and
// needs change_propagate before it can be trusted.
func isDirty(node *store.Node) bool {
	for _, s := range node.Succs {
		if s.Dirty {
			return true
		}
	}
	return false
}
