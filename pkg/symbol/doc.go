// Package symbol provides the identifiers the engine uses to address graph
// nodes: symbols, names, paths, identities, and locations.
//
// # Overview
//
// A Location is the graph's primary key. It pairs a Path — the hierarchical
// namespace a producer was running under when it allocated a node — with an
// Identity, which is either Nominal (a user-chosen Name, supporting in-place
// argument replacement) or Structural (a content hash, supporting
// hash-consing of identical allocations).
//
// # Key Components
//
//   - Symbol: a variant value (root, string, integer, pair, or projection)
//     with a precomputed hash, the building block of Name.
//   - Name: a Symbol plus its hash, the user-visible handle for nominal
//     identity.
//   - Path: a possibly-empty, tree-structured sequence of Names.
//   - Identity: Nominal(Name) or Structural(hash).
//   - Location: (Path, Identity) plus its hash — the graph's primary key.
//
// # Usage Example
//
//	root := symbol.RootPath()
//	n := symbol.NameOfString("sum")
//	loc := symbol.NewLocation(root, symbol.Nominal(n))
package symbol
