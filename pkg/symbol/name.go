package symbol

// Name is a Symbol together with its hash, the user-visible handle for
// nominal identities. Names are produced by NameOfString, NameOfInteger,
// NamePair, and NameFork, and compared with Equal — never by identity.
type Name struct {
	sym Symbol
}

// NameOfString builds a Name from a string.
func NameOfString(s string) Name { return Name{sym: OfString(s)} }

// NameOfInteger builds a Name from a non-negative integer.
func NameOfInteger(n uint64) Name { return Name{sym: OfInteger(n)} }

// NamePair builds a Name from an ordered pair of names.
func NamePair(a, b Name) Name { return Name{sym: Pair(a.sym, b.sym)} }

// NameFork derives two disjoint child names from n using fixed salts.
func NameFork(n Name) (left, right Name) {
	l, r := Fork(n.sym)
	return Name{sym: l}, Name{sym: r}
}

// Hash returns the name's precomputed 64-bit hash.
func (n Name) Hash() uint64 { return n.sym.Hash() }

// Equal reports whether two names carry equal symbols.
func (n Name) Equal(o Name) bool { return n.sym.Equal(o.sym) }

// Symbol exposes the underlying symbol, for callers building further
// composite names (e.g. pairing a Name with a freshly-forked one).
func (n Name) Symbol() Symbol { return n.sym }

// String renders a debug representation of the name.
func (n Name) String() string { return n.sym.String() }
