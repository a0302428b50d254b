package dcg

import (
	"time"

	"github.com/yesoreyeram/dcgo/pkg/store"
	"github.com/yesoreyeram/dcgo/pkg/symbol"
)

// changePropagate re-verifies a dirty Comp node's witnesses rather than
// unconditionally re-running its producer: if every dirty edge's witness
// still holds, the cached result is still valid and only the dirty bits
// are cleared. A single failed witness forces a full re-produce.
func (e *Engine) changePropagate(loc symbol.Location, node *store.Node) (store.Value, bool, error) {
	start := time.Now()
	e.notifyChangePropagateStart(loc)
	e.counters.ChangePropagateInvocations++

	changed, err := e.verifyWitnesses(node)
	if err != nil {
		e.notifyChangePropagateEnd(loc, start, false, err)
		return nil, false, err
	}

	if !changed {
		for i := range node.Succs {
			node.Succs[i].Dirty = false
		}
		e.notifyChangePropagateEnd(loc, start, false, nil)
		return node.Result, false, nil
	}

	prev := node.Result
	result, err := e.produce(loc, node)
	changed = err == nil && !valuesEqual(prev, result)
	e.notifyChangePropagateEnd(loc, start, changed, err)
	if err != nil {
		return nil, false, err
	}
	return result, changed, nil
}

// verifyWitnesses reports whether node actually needs re-producing: true
// the moment a dirty succ's witness fails to hold. A witness that cannot
// be evaluated (its target vanished) is conservatively treated as failed.
func (e *Engine) verifyWitnesses(node *store.Node) (bool, error) {
	for i := range node.Succs {
		s := &node.Succs[i]
		if !s.Dirty {
			continue
		}
		holds, err := e.witnessHolds(s)
		if err != nil {
			return false, err
		}
		if !holds {
			return true, nil
		}
	}
	return false, nil
}

// witnessHolds re-checks a single edge's dependency witness.
func (e *Engine) witnessHolds(s *store.Succ) (bool, error) {
	switch s.Witness.Kind {
	case store.NoDependency:
		return true, nil

	case store.AllocDependency:
		target, ok := e.st.Get(s.Target)
		if !ok {
			return false, nil
		}
		return valuesEqual(s.Witness.Value, target.Val), nil

	case store.ProducerDependency:
		target, ok := e.st.Get(s.Target)
		if !ok {
			return false, nil
		}
		current, err := e.forcePeek(s.Target, target)
		if err != nil {
			return false, err
		}
		return valuesEqual(s.Witness.Value, current), nil

	default:
		return false, &BrokenInvariantError{Reason: "unknown witness kind"}
	}
}

// forcePeek resolves loc's current value the way Force would, but under a
// throwaway frame whose accumulated edges are discarded: witness
// re-verification must not attribute new Observe edges to whatever real
// frame happens to be executing. The scratch frame carries the zero
// location, so re-producing loc itself does not collide with it on the
// stack.
func (e *Engine) forcePeek(loc symbol.Location, node *store.Node) (store.Value, error) {
	e.stack = append(e.stack, &frame{})
	defer func() { e.stack = e.stack[:len(e.stack)-1] }()
	return e.forceNode(loc, node)
}

func valuesEqual(a, b store.Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
