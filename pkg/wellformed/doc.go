// Package wellformed checks the structural invariants of a node store
// and renders it to a JSON-serializable dump for diagnostics.
//
// # Overview
//
// Check verifies that the Succ/PredEdge bookkeeping the engine maintains
// stays symmetric (see store.PredEdge's invariant) and that no edge
// dangles — every Succ.Target and PredEdge.From names a location actually
// present in the store. Dump renders every location's node kind and
// outgoing edges to a value safe to encoding/json.Marshal.
//
// Both operate on *store.Store directly rather than on an engine, so that
// pkg/dcg can call into this package (from the CheckWellFormed flag and
// the WriteDCG diagnostic sink) without an import cycle.
//
// # Basic Usage
//
//	if err := wellformed.Check(e.Store()); err != nil {
//	    // the graph violated an invariant the engine itself is supposed
//	    // to maintain; this always indicates an engine bug, not bad input
//	}
//
//	entries := wellformed.Dump(e.Store())
//	json.NewEncoder(w).Encode(entries)
package wellformed
