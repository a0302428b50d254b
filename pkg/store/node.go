package store

// Value is anything the engine can store in a cell, produce from a
// computation, or hand back from force. The engine never uses Go identity
// (==, pointer comparison) in place of Equal — this is what lets structural
// identity hash-cons and lets change propagation decide "did this actually
// change" rather than "is this the same object".
type Value interface {
	// Equal reports whether two values are interchangeable for the
	// purposes of dirtying and change propagation.
	Equal(Value) bool
	// Clone returns an independent copy, so that force() can return a
	// value the caller may freely mutate without corrupting the store.
	Clone() Value
	// Hash returns a 64-bit hash consistent with Equal (equal values
	// hash equally), used to derive Structural identities.
	Hash() uint64
}

// ProgramPoint is an opaque client-supplied token identifying a producer
// up to equality. The engine interprets it only through Equal, Hash, and
// String; two producers at the same location are compatible iff their
// program points compare equal.
type ProgramPoint interface {
	Equal(ProgramPoint) bool
	Hash() uint64
	String() string
}

// Producer bundles a re-runnable computation with its argument and the
// program point identifying it. The engine compares two producers by
// comparing program points and then arguments, never by comparing the
// underlying function value.
type Producer struct {
	Point ProgramPoint
	Arg   Value
	Fn    func(arg Value) Value
}

// SameProducer reports whether two producers are compatible: equal
// program points. It does not compare arguments — callers that need to
// detect an argument change (thunk's Nominal mode) compare Arg separately.
func SameProducer(a, b Producer) bool {
	if a.Point == nil || b.Point == nil {
		return a.Point == nil && b.Point == nil
	}
	return a.Point.Equal(b.Point)
}

// NodeKind discriminates the three node variants a Location can resolve
// to.
type NodeKind int

const (
	KindPure NodeKind = iota
	KindMut
	KindComp
)

// String renders a debug name for a node kind.
func (k NodeKind) String() string {
	switch k {
	case KindPure:
		return "pure"
	case KindMut:
		return "mut"
	case KindComp:
		return "comp"
	default:
		return "unknown"
	}
}

// Node is the heterogeneous payload stored at a Location. Only the fields
// relevant to Kind are meaningful; operations that need the typed payload
// assert Kind first rather than relying on zero values.
//
//   - Pure:  Val is set, Preds/Succs/Producer are unused (no predecessors
//     are tracked for immutable, hash-consed values).
//   - Mut:   Val and Preds are set.
//   - Comp:  Producer, Result (valid iff HasResult), Succs and Preds are
//     set.
type Node struct {
	Kind NodeKind

	Val Value // Pure, Mut

	Preds []PredEdge // Mut, Comp

	Producer  Producer // Comp
	Result    Value    // Comp; valid iff HasResult
	HasResult bool     // Comp
	Succs     []Succ   // Comp
}

// NewPure builds a Pure node.
func NewPure(v Value) *Node {
	return &Node{Kind: KindPure, Val: v}
}

// NewMut builds a Mut node with no predecessors.
func NewMut(v Value) *Node {
	return &Node{Kind: KindMut, Val: v}
}

// NewComp builds an unevaluated Comp node.
func NewComp(p Producer) *Node {
	return &Node{Kind: KindComp, Producer: p}
}
