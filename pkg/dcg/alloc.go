package dcg

import (
	"github.com/yesoreyeram/dcgo/pkg/store"
	"github.com/yesoreyeram/dcgo/pkg/symbol"
)

// Cell allocates or re-declares a mutable location named by name, holding
// value. If a MutNode already exists there, this delegates to Set — a
// call from inside a currently-executing producer raises
// MutationDuringEvaluationError exactly as Set would.
//
// Under the IgnoreNominalUseStructural flag (or an active Structural
// scope), the location's identity is derived from value's content hash
// instead of name, so that two cells allocated with different names but
// equal values hash-cons to the same location.
func (e *Engine) Cell(name symbol.Name, value store.Value) (Handle, error) {
	path := e.path
	var id symbol.Identity
	if e.forcedStructural() {
		id = symbol.Structural(value.Hash())
	} else {
		path = e.path.Push(name)
		id = symbol.Nominal(name)
	}
	loc := symbol.NewLocation(path, id)

	if existing, ok := e.st.Get(loc); ok {
		if existing.Kind == store.KindComp {
			return e.replaceCompWithMut(loc, existing, value)
		}
		if existing.Kind != store.KindMut {
			return Handle{}, store.ErrKindMismatch(loc.String(), store.KindMut, existing.Kind)
		}
		if err := e.performSet(loc, existing, value); err != nil {
			return Handle{}, err
		}
		return Handle{loc: loc}, e.afterOp(nil)
	}

	if err := e.checkCapacity(); err != nil {
		return Handle{}, err
	}

	node := store.NewMut(value)
	e.st.Insert(loc, node)
	e.appendSucc(store.Succ{
		Target: loc,
		Effect: store.Allocate,
		Witness: store.Witness{
			Kind:  store.AllocDependency,
			Value: value,
		},
	})
	return Handle{loc: loc}, e.afterOp(nil)
}

// ThunkEager immediately evaluates fn(arg) and returns the result as an
// unlocated handle. No graph node is created, no location is consumed,
// and no edge is recorded — the result is a plain host value from this
// point on, with none of the memoization or recomputation machinery
// Structural/Nominal thunks get. Use this for computations the caller
// knows will never need to be re-run incrementally.
func (e *Engine) ThunkEager(fn func(store.Value) store.Value, arg store.Value) Handle {
	return Handle{eager: true, value: fn(arg)}
}

// ThunkStructural allocates (or reuses) a computational node identified
// by the hash of point and arg under the current path: two calls with the
// same program point and an equal argument made under the same path
// resolve to the same location.
//
// An Allocate edge, witnessed NoDependency, is recorded whether the node
// is freshly inserted or an existing one is reused — both cases represent
// this frame depending on the location continuing to exist, and omitting
// the edge on reuse would silently break that location's predecessor
// bookkeeping.
func (e *Engine) ThunkStructural(point store.ProgramPoint, fn func(store.Value) store.Value, arg store.Value) (Handle, error) {
	contentHash := symbol.StructuralOf(point.Hash(), arg.Hash()).Hash()
	loc := e.structuralLocation(contentHash)

	if existing, ok := e.st.Get(loc); ok {
		if existing.Kind != store.KindComp {
			return Handle{}, store.ErrKindMismatch(loc.String(), store.KindComp, existing.Kind)
		}
		if !store.SameProducer(existing.Producer, store.Producer{Point: point}) {
			return Handle{}, &BrokenInvariantError{Reason: "structural hash collision at " + loc.String() + " between distinct program points"}
		}
		e.appendSucc(store.Succ{Target: loc, Effect: store.Allocate, Witness: store.Witness{Kind: store.NoDependency}})
		return Handle{loc: loc}, e.afterOp(nil)
	}

	if err := e.checkCapacity(); err != nil {
		return Handle{}, err
	}

	producer := store.Producer{Point: point, Arg: arg, Fn: fn}
	e.st.Insert(loc, store.NewComp(producer))
	e.appendSucc(store.Succ{Target: loc, Effect: store.Allocate, Witness: store.Witness{Kind: store.NoDependency}})
	return Handle{loc: loc}, e.afterOp(nil)
}

// ThunkNominal allocates (or re-targets) a computational node at the
// location named by name. If a node already exists there with a
// compatible program point, its argument is replaced in place; if the
// replacement argument differs from the recorded one, the location and
// its dependents are dirtied via dirty_alloc. A name reused with an
// incompatible program point is a NominalCollisionError.
//
// If the existing node at that location is a MutNode (the name was
// previously cell'd), it is replaced with a CompNode driven by point/fn/
// arg; everything that depended on the cell is dirtied, since the
// location now produces a value rather than holding one directly.
//
// Under the IgnoreNominalUseStructural flag (or an active Structural
// scope), this degrades to ThunkStructural using point and arg instead of
// name, so collisions cannot occur.
func (e *Engine) ThunkNominal(name symbol.Name, point store.ProgramPoint, fn func(store.Value) store.Value, arg store.Value) (Handle, error) {
	if e.forcedStructural() {
		return e.ThunkStructural(point, fn, arg)
	}

	loc := e.locationFor(name)

	if existing, ok := e.st.Get(loc); ok {
		if existing.Kind == store.KindMut {
			return e.replaceMutWithComp(loc, existing, point, fn, arg)
		}
		if existing.Kind != store.KindComp {
			return Handle{}, store.ErrKindMismatch(loc.String(), store.KindComp, existing.Kind)
		}
		if !store.SameProducer(existing.Producer, store.Producer{Point: point}) {
			return Handle{}, &NominalCollisionError{Loc: loc, Existing: existing.Producer.Point, Attempted: point}
		}
		if existing.Producer.Arg == nil || !existing.Producer.Arg.Equal(arg) {
			existing.Producer.Arg = arg
			existing.Producer.Fn = fn
			existing.Result = nil
			existing.HasResult = false
			e.dirtyAlloc(loc)
		}
		e.appendSucc(store.Succ{Target: loc, Effect: store.Allocate, Witness: store.Witness{Kind: store.NoDependency}})
		return Handle{loc: loc}, e.afterOp(nil)
	}

	if err := e.checkCapacity(); err != nil {
		return Handle{}, err
	}

	producer := store.Producer{Point: point, Arg: arg, Fn: fn}
	e.st.Insert(loc, store.NewComp(producer))
	e.appendSucc(store.Succ{Target: loc, Effect: store.Allocate, Witness: store.Witness{Kind: store.NoDependency}})
	return Handle{loc: loc}, e.afterOp(nil)
}

// replaceCompWithMut turns an existing CompNode at loc into a MutNode
// holding value: a thunk's name and a cell's name are drawn from the same
// nominal namespace, so a caller is free to re-declare a computation as a
// cell at the same location. The computation's outgoing edges are
// revoked, its allocation predecessors are dirtied, and a fresh MutNode
// replaces it, carrying forward the predecessors that depended on the
// location itself.
func (e *Engine) replaceCompWithMut(loc symbol.Location, existing *store.Node, value store.Value) (Handle, error) {
	e.dirtyAlloc(loc)
	e.revokeSuccs(loc, existing.Succs)
	node := store.NewMut(value)
	node.Preds = existing.Preds
	e.st.Insert(loc, node)
	e.appendSucc(store.Succ{
		Target: loc,
		Effect: store.Allocate,
		Witness: store.Witness{Kind: store.AllocDependency, Value: value},
	})
	return Handle{loc: loc}, e.afterOp(nil)
}

// replaceMutWithComp turns an existing MutNode at loc into a CompNode
// driven by point/fn/arg. A cell's name and a thunk's name are drawn from
// the same nominal namespace, so a caller is free to re-declare a cell as
// a computation at the same location; everything that previously observed
// or allocated the cell is dirtied, since the location now produces a
// value instead of holding one directly.
func (e *Engine) replaceMutWithComp(loc symbol.Location, existing *store.Node, point store.ProgramPoint, fn func(store.Value) store.Value, arg store.Value) (Handle, error) {
	replaced := store.NewComp(store.Producer{Point: point, Arg: arg, Fn: fn})
	replaced.Preds = existing.Preds
	e.st.Insert(loc, replaced)
	e.dirtyAlloc(loc)
	e.appendSucc(store.Succ{Target: loc, Effect: store.Allocate, Witness: store.Witness{Kind: store.NoDependency}})
	return Handle{loc: loc}, e.afterOp(nil)
}
