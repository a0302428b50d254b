package dcg

import (
	"fmt"

	"github.com/yesoreyeram/dcgo/pkg/store"
	"github.com/yesoreyeram/dcgo/pkg/symbol"
)

// DanglingLocationError reports a lookup by a location that was never
// inserted into the store. It is an internal invariant violation and is
// treated as fatal.
type DanglingLocationError struct {
	Loc symbol.Location
}

func (e *DanglingLocationError) Error() string {
	return fmt.Sprintf("dcg: dangling location: %s", e.Loc)
}

// NominalCollisionError reports two different program points resolving to
// the same nominal location. It carries both program points so a client
// can tell which two call sites disagree.
type NominalCollisionError struct {
	Loc       symbol.Location
	Existing  store.ProgramPoint
	Attempted store.ProgramPoint
}

func (e *NominalCollisionError) Error() string {
	return fmt.Sprintf("dcg: nominal collision at %s: existing program point %s, attempted %s",
		e.Loc, e.Existing, e.Attempted)
}

// MutationDuringEvaluationError reports a call to Set while the frame
// stack is non-empty (a producer is currently executing).
type MutationDuringEvaluationError struct {
	Loc   symbol.Location
	Depth int
}

func (e *MutationDuringEvaluationError) Error() string {
	return fmt.Sprintf("dcg: set called on %s during evaluation (frame depth %d)", e.Loc, e.Depth)
}

// BrokenInvariantError reports a well-formedness check failure or a
// structural invariant the engine detected itself violating (e.g. a
// location reappearing on the frame stack, or the frame-depth guard
// tripping). Fatal: the graph built so far cannot be trusted.
type BrokenInvariantError struct {
	Reason string
}

func (e *BrokenInvariantError) Error() string {
	return fmt.Sprintf("dcg: broken invariant: %s", e.Reason)
}

// StoreCapacityError reports that an allocation was refused because the
// store already holds config.Config's MaxStoreSize locations.
type StoreCapacityError struct {
	Limit int
}

func (e *StoreCapacityError) Error() string {
	return fmt.Sprintf("dcg: store capacity exceeded (max_store_size=%d)", e.Limit)
}

// ProducerPanicError reports that a producer's function panicked during
// produce. The affected computational node is left with no cached result
// and no successors, so the next force re-attempts from scratch.
type ProducerPanicError struct {
	Loc     symbol.Location
	Recovered interface{}
}

func (e *ProducerPanicError) Error() string {
	return fmt.Sprintf("dcg: producer at %s panicked: %v", e.Loc, e.Recovered)
}
