package symbol

import "hash/fnv"

// Path is a possibly-empty sequence of names, represented as either empty
// or (parent path, last name). Paths form a tree rooted at the empty path.
type Path struct {
	parent *Path
	last   Name
	hash   uint64
	depth  int
}

// RootPath returns the empty path, the root of the path tree.
func RootPath() Path {
	return Path{hash: hashSeed(kindRoot)}
}

// IsRoot reports whether p is the empty path.
func (p Path) IsRoot() bool { return p.parent == nil }

// Push returns a new path extending p with name n.
func (p Path) Push(n Name) Path {
	h := fnv.New64a()
	writeUint64(h, p.hash)
	writeUint64(h, n.Hash())
	parent := p
	return Path{parent: &parent, last: n, hash: h.Sum64(), depth: p.depth + 1}
}

// Parent returns p's parent path and true, or the zero Path and false if p
// is already the root.
func (p Path) Parent() (Path, bool) {
	if p.parent == nil {
		return Path{}, false
	}
	return *p.parent, true
}

// Last returns the final name of p and true, or the zero Name and false if
// p is the root.
func (p Path) Last() (Name, bool) {
	if p.parent == nil {
		return Name{}, false
	}
	return p.last, true
}

// Hash returns p's precomputed 64-bit hash.
func (p Path) Hash() uint64 { return p.hash }

// Depth returns the number of names on the path from the root to p.
func (p Path) Depth() int { return p.depth }

// Equal reports whether two paths name the same sequence of names.
func (p Path) Equal(o Path) bool {
	if p.hash != o.hash || p.depth != o.depth {
		return false
	}
	if p.parent == nil || o.parent == nil {
		return p.parent == nil && o.parent == nil
	}
	return p.last.Equal(o.last) && p.parent.Equal(*o.parent)
}

// String renders a debug representation of the path, root-to-leaf.
func (p Path) String() string {
	if p.parent == nil {
		return "/"
	}
	return p.parent.String() + p.last.String() + "/"
}
