// Package dcg implements a demand-driven, incrementally-recomputing
// computation graph: cells hold externally-mutable values, thunks hold
// producer functions over other locations, and Force resolves either to
// its current value, evaluating or re-verifying exactly as much of the
// graph as changed since the last time it was asked.
//
// An Engine is not safe for concurrent use. Its data model — a frame
// stack tracking the currently-executing producer's accumulated edges,
// and a single unlocked node store — assumes a single goroutine drives
// every Cell/Set/Force/Thunk* call, including the calls a producer makes
// back into the engine from within its own body.
//
// The allocation modes (Cell for mutable values, ThunkNominal for named
// re-runnable computations, ThunkStructural for hash-consed ones, and
// ThunkEager, which evaluates at once and allocates nothing) are
// described in full on their own doc comments;
// dirty.go and changeprop.go implement the propagation discipline that
// makes repeated Force calls cheap after a small change.
package dcg
