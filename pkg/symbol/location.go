package symbol

// Location is the pair (path, identity) together with its hash — the
// graph's primary key. Two locations are equal iff both components are
// equal.
//
// Under nominal identity, a location is globally unique per user intent;
// clashes are the client's responsibility (the engine reports them as
// NominalCollision rather than silently merging). Under structural
// identity, equal content at the same path resolves to the same location
// (hash-consing).
type Location struct {
	path Path
	id   Identity
	hash uint64
}

// NewLocation builds a location from a path and an identity.
func NewLocation(path Path, id Identity) Location {
	return Location{path: path, id: id, hash: mix(path.Hash(), id.Hash())}
}

// Path returns the location's path.
func (l Location) Path() Path { return l.path }

// Identity returns the location's identity.
func (l Location) Identity() Identity { return l.id }

// Hash returns the location's precomputed 64-bit hash, suitable as a map
// key alongside Equal for collision resolution.
func (l Location) Hash() uint64 { return l.hash }

// Equal reports whether two locations have equal path and identity.
func (l Location) Equal(o Location) bool {
	return l.hash == o.hash && l.path.Equal(o.path) && l.id.Equal(o.id)
}

// String renders a debug representation of the location.
func (l Location) String() string { return l.path.String() + l.id.String() }

// Key returns a value suitable for use as a Go map key. Because Location
// itself holds pointer-chained Path/Symbol internals that are not
// comparable with ==, the store indexes by Key and resolves hash
// collisions with Equal.
type Key uint64

// MapKey returns l's map key.
func (l Location) MapKey() Key { return Key(l.hash) }
