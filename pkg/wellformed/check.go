package wellformed

import (
	"github.com/yesoreyeram/dcgo/pkg/store"
	"github.com/yesoreyeram/dcgo/pkg/symbol"
)

// Check walks every node in st and verifies:
//
//  1. No Succ dangles: every Comp node's Succs[i].Target names a location
//     present in st.
//  2. No PredEdge dangles: every Mut/Comp node's Preds[i].From names a
//     location present in st.
//  3. Succ/PredEdge symmetry: for every Comp node u with
//     Succ{Target: v, Effect: e}, v's Preds contains PredEdge{Effect: e,
//     From: u}, and conversely every PredEdge has a matching Succ.
//
// It returns the first violation found, wrapped in a *ViolationError, or
// nil if the store is well-formed.
func Check(st *store.Store) error {
	var violation error

	st.Range(func(loc symbol.Location, node *store.Node) bool {
		if node.Kind == store.KindComp {
			for _, s := range node.Succs {
				target, ok := st.Get(s.Target)
				if !ok {
					violation = &ViolationError{Reason: "dangling succ target " + s.Target.String() + " from " + loc.String()}
					return false
				}
				if !hasMatchingPred(target, s.Effect, loc) {
					violation = &ViolationError{Reason: "succ from " + loc.String() + " to " + s.Target.String() + " has no matching pred edge"}
					return false
				}
			}
		}

		for _, p := range node.Preds {
			from, ok := st.Get(p.From)
			if !ok {
				violation = &ViolationError{Reason: "dangling pred from " + p.From.String() + " referenced by " + loc.String()}
				return false
			}
			if !hasMatchingSucc(from, p.Effect, loc) {
				violation = &ViolationError{Reason: "pred at " + loc.String() + " from " + p.From.String() + " has no matching succ edge"}
				return false
			}
		}

		return true
	})

	return violation
}

func hasMatchingPred(node *store.Node, effect store.EffectKind, from symbol.Location) bool {
	for _, p := range node.Preds {
		if p.Effect == effect && p.From.Equal(from) {
			return true
		}
	}
	return false
}

func hasMatchingSucc(node *store.Node, effect store.EffectKind, target symbol.Location) bool {
	if node.Kind != store.KindComp {
		return false
	}
	for _, s := range node.Succs {
		if s.Effect == effect && s.Target.Equal(target) {
			return true
		}
	}
	return false
}
