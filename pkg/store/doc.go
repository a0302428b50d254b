// Package store provides the heterogeneous node store of the Demanded
// Computation Graph: the mapping from Location to node (pure value, mutable
// cell, or suspended/evaluated computation), plus the edge bookkeeping
// (Succ/PredEdge) produce and dirty propagation rely on.
//
// # Overview
//
// Every location maps to exactly one Node. A Node is a tagged variant over
// three kinds — Pure, Mut, Comp — rather than three Go types, because
// different call sites (force, produce, dirtying) all need to look a
// location up without first knowing its kind. Payload values are stored
// behind the Value interface (equality, hashing, cloning — never raw Go
// identity) so the store never needs reflection to compare or persist
// them.
//
// Nodes are never deleted; their Preds and Succs lists only shrink as
// edges are revoked. This keeps the store a simple append-mostly table —
// an arena — so edges can name other entries by Location without forming
// memory-ownership cycles.
package store
