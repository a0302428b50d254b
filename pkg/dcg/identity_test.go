package dcg

import (
	"testing"

	"github.com/yesoreyeram/dcgo/pkg/store"
)

// Structural idempotence: two ThunkStructural calls with the same program
// point and an equal argument resolve to the same location, and the
// second call does not create a duplicate node.
func TestStructuralIdempotence(t *testing.T) {
	e := New()
	before := e.Store().Len()

	h1, err := e.ThunkStructural(testPoint("square"), func(v store.Value) store.Value {
		n := int(v.(intVal))
		return intVal(n * n)
	}, intVal(4))
	if err != nil {
		t.Fatalf("first thunk: %v", err)
	}
	afterFirst := e.Store().Len()
	if afterFirst != before+1 {
		t.Fatalf("store size after first thunk = %d, want %d", afterFirst, before+1)
	}

	h2, err := e.ThunkStructural(testPoint("square"), func(v store.Value) store.Value {
		n := int(v.(intVal))
		return intVal(n * n)
	}, intVal(4))
	if err != nil {
		t.Fatalf("second thunk: %v", err)
	}
	if e.Store().Len() != afterFirst {
		t.Fatalf("store size after second thunk = %d, want unchanged at %d", e.Store().Len(), afterFirst)
	}
	if !h1.loc.Equal(h2.loc) {
		t.Fatalf("h1 and h2 resolved to different locations")
	}

	if got := mustForce(t, e, h1); got != 16 {
		t.Fatalf("force = %d, want 16", got)
	}
}

// A different argument under the same program point allocates a distinct
// structural location.
func TestStructuralDistinctArgument(t *testing.T) {
	e := New()
	identity := func(v store.Value) store.Value { return v }

	h1, err := e.ThunkStructural(testPoint("id"), identity, intVal(1))
	if err != nil {
		t.Fatalf("first thunk: %v", err)
	}
	h2, err := e.ThunkStructural(testPoint("id"), identity, intVal(2))
	if err != nil {
		t.Fatalf("second thunk: %v", err)
	}
	if h1.loc.Equal(h2.loc) {
		t.Fatalf("expected distinct handles for distinct arguments, got the same one")
	}
}

// Nominal replacement: thunk(Nominal(n), f, x) followed by
// thunk(Nominal(n), f, y) with y != x replaces the stored argument,
// dirties allocation predecessors, and the next force yields f(y).
func TestNominalReplacement(t *testing.T) {
	e := New()
	double := func(v store.Value) store.Value { return intVal(int(v.(intVal)) * 2) }

	h, err := e.ThunkNominal(n("d"), testPoint("double"), double, intVal(3))
	if err != nil {
		t.Fatalf("first thunk: %v", err)
	}
	if got := mustForce(t, e, h); got != 6 {
		t.Fatalf("force after first thunk = %d, want 6", got)
	}

	before := e.Counts().DirtyAllocMarks
	h2, err := e.ThunkNominal(n("d"), testPoint("double"), double, intVal(5))
	if err != nil {
		t.Fatalf("second thunk: %v", err)
	}
	if !h.loc.Equal(h2.loc) {
		t.Fatalf("replacement thunk resolved to a different location")
	}
	if e.Counts().DirtyAllocMarks < before {
		t.Fatalf("DirtyAllocMarks decreased across replacement")
	}

	if got := mustForce(t, e, h); got != 10 {
		t.Fatalf("force after replacement = %d, want 10", got)
	}
}

// A cell re-declared as a thunk at the same name is permitted: the
// location converts from a MutNode to a CompNode and everything that
// depended on the cell is dirtied.
func TestReplaceCellWithThunkAtSameName(t *testing.T) {
	e := New()
	c := mustCell(t, e, "shared", 1)
	if got := mustForce(t, e, c); got != 1 {
		t.Fatalf("initial force = %d, want 1", got)
	}

	h, err := e.ThunkNominal(n("shared"), testPoint("replace"), func(store.Value) store.Value {
		return intVal(42)
	}, intVal(0))
	if err != nil {
		t.Fatalf("replace with thunk: %v", err)
	}
	if h.loc.MapKey() != c.loc.MapKey() {
		t.Fatalf("replacement thunk did not reuse the cell's location")
	}

	if got := mustForce(t, e, h); got != 42 {
		t.Fatalf("force after replacement = %d, want 42", got)
	}
}

// The mirror case: Cell called on a name currently holding a CompNode
// replaces it with a fresh MutNode at the same location, dirtying
// whatever depended on the computation.
func TestReplaceThunkWithCellAtSameName(t *testing.T) {
	e := New()
	h, err := e.ThunkNominal(n("shared"), testPoint("source"), func(store.Value) store.Value {
		return intVal(7)
	}, intVal(0))
	if err != nil {
		t.Fatalf("thunk: %v", err)
	}
	if got := mustForce(t, e, h); got != 7 {
		t.Fatalf("initial force = %d, want 7", got)
	}

	downstream, err := e.ThunkNominal(n("downstream"), testPoint("downstream"), func(store.Value) store.Value {
		return intVal(mustForce(t, e, h) * 2)
	}, intVal(0))
	if err != nil {
		t.Fatalf("downstream thunk: %v", err)
	}
	if got := mustForce(t, e, downstream); got != 14 {
		t.Fatalf("downstream initial force = %d, want 14", got)
	}

	c, err := e.Cell(n("shared"), intVal(100))
	if err != nil {
		t.Fatalf("replace with cell: %v", err)
	}
	if c.loc.MapKey() != h.loc.MapKey() {
		t.Fatalf("replacement cell did not reuse the thunk's location")
	}

	if got := mustForce(t, e, c); got != 100 {
		t.Fatalf("force after replacement = %d, want 100", got)
	}
	if got := mustForce(t, e, downstream); got != 200 {
		t.Fatalf("downstream force after replacement = %d, want 200 (should recompute from the new cell value)", got)
	}
}
