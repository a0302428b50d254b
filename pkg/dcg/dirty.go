package dcg

import (
	"github.com/yesoreyeram/dcgo/pkg/store"
	"github.com/yesoreyeram/dcgo/pkg/symbol"
)

// dirtyObserve marks stale every Observe edge pointing at loc, then
// continues the sweep transitively: a newly-dirtied predecessor's own
// cached result may now be stale, so its Observe-predecessors are dirtied
// in turn. Called after a Set actually changes a mutable cell's value.
func (e *Engine) dirtyObserve(loc symbol.Location) {
	e.propagateDirty(loc, true)
}

// dirtyAlloc marks stale every edge — Observe or Allocate — pointing at
// loc, then continues the sweep exactly as dirtyObserve does. Called
// after a Nominal thunk's argument is replaced in place: loc's identity
// as an allocation target changed, so everything that either forced it
// or reused it as a sub-thunk may now see a different result.
func (e *Engine) dirtyAlloc(loc symbol.Location) {
	e.propagateDirty(loc, false)
}

// propagateDirty runs an explicit worklist over predecessor edges rooted
// at loc. rootObserveOnly selects which edge kinds are accepted at loc
// itself; every location reached afterward is accepted via Observe edges
// only, since anything further up the graph can only have forced a node,
// never allocated it.
func (e *Engine) propagateDirty(loc symbol.Location, rootObserveOnly bool) {
	type item struct {
		loc         symbol.Location
		observeOnly bool
	}

	queue := []item{{loc: loc, observeOnly: rootObserveOnly}}
	visited := make(map[symbol.Key]bool)

	// Marks are counted and reported by the operation that started the
	// sweep (dirty_observe or dirty_alloc), not by each edge's kind.
	op := store.Observe
	if !rootObserveOnly {
		op = store.Allocate
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		key := cur.loc.MapKey()
		if visited[key] {
			continue
		}
		visited[key] = true

		node, ok := e.st.Get(cur.loc)
		if !ok {
			continue
		}

		for _, p := range node.Preds {
			if cur.observeOnly && p.Effect != store.Observe {
				continue
			}
			predNode, ok := e.st.Get(p.From)
			if !ok || predNode.Kind != store.KindComp {
				continue
			}
			if !e.markSuccDirty(predNode, cur.loc, p.Effect) {
				continue
			}
			if op == store.Observe {
				e.counters.DirtyObserveMarks++
			} else {
				e.counters.DirtyAllocMarks++
			}
			e.notifyDirty(op, p.From)
			queue = append(queue, item{loc: p.From, observeOnly: true})
		}
	}
}

// markSuccDirty finds the Succ in predNode.Succs matching target and
// effect and sets its Dirty bit, reporting whether it flipped from clean
// to dirty (false if it was already dirty, or no matching edge exists —
// both cases mean there is nothing new to count or propagate from here).
func (e *Engine) markSuccDirty(predNode *store.Node, target symbol.Location, effect store.EffectKind) bool {
	for i := range predNode.Succs {
		s := &predNode.Succs[i]
		if s.Effect == effect && s.Target.Equal(target) {
			if s.Dirty {
				return false
			}
			s.Dirty = true
			return true
		}
	}
	return false
}
