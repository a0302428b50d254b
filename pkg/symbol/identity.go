package symbol

import "hash/fnv"

// identityKind discriminates the two Identity variants.
type identityKind int

const (
	identityNominal identityKind = iota
	identityStructural
)

// Identity is either Structural(h), keyed by a 64-bit content hash, or
// Nominal(name), keyed by a user-provided name.
type Identity struct {
	kind identityKind
	name Name
	hash uint64
}

// Nominal builds a nominal identity from a name.
func Nominal(n Name) Identity {
	return Identity{kind: identityNominal, name: n, hash: mix(n.Hash(), uint64(identityNominal))}
}

// Structural builds a structural identity from a precomputed content hash.
func Structural(contentHash uint64) Identity {
	return Identity{kind: identityStructural, hash: mix(contentHash, uint64(identityStructural))}
}

// StructuralOf hashes an arbitrary sequence of hashable components (e.g. a
// program point's hash and an argument's hash) into a Structural identity.
func StructuralOf(components ...uint64) Identity {
	h := fnv.New64a()
	for _, c := range components {
		writeUint64(h, c)
	}
	return Structural(h.Sum64())
}

// IsNominal reports whether id is a Nominal identity.
func (id Identity) IsNominal() bool { return id.kind == identityNominal }

// IsStructural reports whether id is a Structural identity.
func (id Identity) IsStructural() bool { return id.kind == identityStructural }

// Name returns the nominal name and true if id is Nominal, or the zero
// Name and false otherwise.
func (id Identity) Name() (Name, bool) {
	if id.kind != identityNominal {
		return Name{}, false
	}
	return id.name, true
}

// Hash returns id's precomputed 64-bit hash.
func (id Identity) Hash() uint64 { return id.hash }

// Equal reports whether two identities are the same variant with equal
// payload.
func (id Identity) Equal(o Identity) bool {
	if id.kind != o.kind || id.hash != o.hash {
		return false
	}
	if id.kind == identityNominal {
		return id.name.Equal(o.name)
	}
	return true
}

// String renders a debug representation of the identity.
func (id Identity) String() string {
	if id.kind == identityNominal {
		return "nominal(" + id.name.String() + ")"
	}
	return "structural(#" + uitoa(id.hash) + ")"
}

func uitoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
