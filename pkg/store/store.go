package store

import "github.com/yesoreyeram/dcgo/pkg/symbol"

// entry pairs a location with its node for hash-collision chains.
type entry struct {
	loc  symbol.Location
	node *Node
}

// Store is the mapping from Location to Node. Locations are not
// Go-comparable in the structural sense required here (two independently
// built but structurally-equal locations may box different pointers
// internally), so the store indexes by Location.MapKey() and resolves
// collisions with Location.Equal, exactly as spec'd for hash-consing.
//
// Store assumes the single-threaded, strictly-nested scheduling model of
// the engine (see spec §5): it holds no lock. A diagnostic reader (the
// optional HTTP dump surface) must only call Range between client
// operations on the owning goroutine, never concurrently with one.
type Store struct {
	buckets map[symbol.Key][]entry
	size    int
}

// New creates an empty node store.
func New() *Store {
	return &Store{buckets: make(map[symbol.Key][]entry)}
}

// Get returns the node at loc and true, or nil and false if no node has
// been inserted there.
func (s *Store) Get(loc symbol.Location) (*Node, bool) {
	for _, e := range s.buckets[loc.MapKey()] {
		if e.loc.Equal(loc) {
			return e.node, true
		}
	}
	return nil, false
}

// Insert installs node at loc, overwriting whatever was there before (the
// caller is responsible for revoking and dirtying any prior node's edges
// first — Store itself performs no bookkeeping beyond the mapping).
func (s *Store) Insert(loc symbol.Location, node *Node) {
	key := loc.MapKey()
	bucket := s.buckets[key]
	for i, e := range bucket {
		if e.loc.Equal(loc) {
			bucket[i].node = node
			return
		}
	}
	s.buckets[key] = append(bucket, entry{loc: loc, node: node})
	s.size++
}

// Len returns the number of distinct locations currently stored.
func (s *Store) Len() int { return s.size }

// Range calls fn for every (location, node) pair in the store. Buckets are
// visited in Go map iteration order, which is not stable; within a bucket,
// entries come in insertion order. Range stops early if fn returns false. fn must not
// insert into the store while ranging.
func (s *Store) Range(fn func(loc symbol.Location, node *Node) bool) {
	for _, bucket := range s.buckets {
		for _, e := range bucket {
			if !fn(e.loc, e.node) {
				return
			}
		}
	}
}
