package dcg

import (
	"time"

	"github.com/yesoreyeram/dcgo/pkg/store"
	"github.com/yesoreyeram/dcgo/pkg/symbol"
)

// produce runs node's producer for the first time, or re-runs it
// unconditionally, installing whatever edges the run accumulates and
// recording the result. A panicking producer leaves node with no cached
// result and no successors, so the next force re-attempts from scratch;
// produce itself never panics.
func (e *Engine) produce(loc symbol.Location, node *store.Node) (store.Value, error) {
	start := time.Now()
	e.notifyProduceStart(loc, node.Kind)

	if err := e.pushFrame(loc); err != nil {
		e.notifyProduceEnd(loc, node.Kind, start, err)
		return nil, err
	}

	oldSuccs := node.Succs
	result, recovered := e.runProducer(node)

	newSuccs, popErr := e.popFrame(loc)
	if popErr != nil {
		e.notifyProduceEnd(loc, node.Kind, start, popErr)
		return nil, popErr
	}

	e.revokeSuccs(loc, oldSuccs)

	if recovered != nil {
		node.Result = nil
		node.HasResult = false
		node.Succs = nil
		err := &ProducerPanicError{Loc: loc, Recovered: recovered}
		e.notifyProduceEnd(loc, node.Kind, start, err)
		return nil, err
	}

	node.Succs = newSuccs
	node.Result = result
	node.HasResult = true
	e.installSuccs(loc, newSuccs)
	e.counters.Evaluations++

	e.notifyProduceEnd(loc, node.Kind, start, nil)
	return result, nil
}

// runProducer invokes node's producer function, recovering a panic
// instead of letting it unwind through the engine's own frame bookkeeping.
func (e *Engine) runProducer(node *store.Node) (result store.Value, recovered interface{}) {
	defer func() {
		if r := recover(); r != nil {
			recovered = r
		}
	}()
	result = node.Producer.Fn(node.Producer.Arg)
	return result, nil
}

// revokeSuccs removes the PredEdge each of from's previously-recorded
// succs installed at its target, undoing installSuccs. Called before
// installing a fresh set of succs (or none, on producer failure), so a
// location that is no longer depended upon stops being tracked as a
// predecessor.
func (e *Engine) revokeSuccs(from symbol.Location, succs []store.Succ) {
	for _, s := range succs {
		target, ok := e.st.Get(s.Target)
		if !ok {
			continue
		}
		kept := target.Preds[:0]
		for _, p := range target.Preds {
			if p.Effect == s.Effect && p.From.Equal(from) {
				continue
			}
			kept = append(kept, p)
		}
		target.Preds = kept
	}
}

// installSuccs records, at each succ's target, a PredEdge pointing back
// at from — the reverse-direction bookkeeping Succ/PredEdge symmetry
// requires.
func (e *Engine) installSuccs(from symbol.Location, succs []store.Succ) {
	for _, s := range succs {
		target, ok := e.st.Get(s.Target)
		if !ok {
			continue
		}
		target.Preds = append(target.Preds, store.PredEdge{Effect: s.Effect, From: from})
	}
}
