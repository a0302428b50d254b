package store

import "github.com/yesoreyeram/dcgo/pkg/symbol"

// EffectKind is the kind of effect one node's execution had on another:
// Observe (it forced the other node's value) or Allocate (it allocated, or
// reused, the other node at a location).
type EffectKind int

const (
	Observe EffectKind = iota
	Allocate
)

// String renders a debug name for an effect kind.
func (e EffectKind) String() string {
	if e == Allocate {
		return "allocate"
	}
	return "observe"
}

// WitnessKind discriminates the three dependency witness variants.
type WitnessKind int

const (
	// NoDependency witnesses are always satisfied; used for structural
	// allocations whose value is wholly determined by identity.
	NoDependency WitnessKind = iota
	// AllocDependency is satisfied iff the successor cell's current
	// value equals the recorded value; the engine compares the two
	// values rather than treating every re-allocation as a change.
	AllocDependency
	// ProducerDependency is satisfied iff re-demanding the successor
	// still yields the recorded result.
	ProducerDependency
)

// Witness carries whatever change propagation needs to decide whether an
// edge's dependency still holds.
type Witness struct {
	Kind  WitnessKind
	Value Value // AllocDependency: the allocation argument. ProducerDependency: the prior result.
}

// Succ records one edge a producer's last execution traversed: the
// target location, the effect kind, a dirty bit, and the dependency
// witness deciding whether the edge still holds.
type Succ struct {
	Target  symbol.Location
	Effect  EffectKind
	Dirty   bool
	Witness Witness
}

// PredEdge is the reverse-direction bookkeeping a target keeps for each
// Succ that points at it: the effect kind and the predecessor's location.
// Invariant: for every Succ{Target: v, Effect: e} recorded by u, v.Preds
// contains PredEdge{Effect: e, From: u}, and vice versa.
type PredEdge struct {
	Effect EffectKind
	From   symbol.Location
}
