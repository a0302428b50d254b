package dcg

import (
	"testing"

	"github.com/yesoreyeram/dcgo/pkg/store"
)

// Scenario 1: cell round-trip.
func TestCellRoundTrip(t *testing.T) {
	e := New()
	c := mustCell(t, e, "a", 1)

	if got := mustForce(t, e, c); got != 1 {
		t.Fatalf("initial force = %d, want 1", got)
	}
	if err := e.Set(c, intVal(2)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := mustForce(t, e, c); got != 2 {
		t.Fatalf("force after set = %d, want 2", got)
	}
}

// Scenario 2: memoized add.
func TestMemoizedAdd(t *testing.T) {
	e := New()
	a := mustCell(t, e, "a", 1)
	b := mustCell(t, e, "b", 2)

	sum, err := e.ThunkNominal(n("sum"), testPoint("sum"), func(store.Value) store.Value {
		return intVal(mustForce(t, e, a) + mustForce(t, e, b))
	}, intVal(0))
	if err != nil {
		t.Fatalf("thunk: %v", err)
	}

	before := e.Counts().Evaluations
	if got := mustForce(t, e, sum); got != 3 {
		t.Fatalf("first force = %d, want 3", got)
	}
	if got := e.Counts().Evaluations - before; got != 1 {
		t.Fatalf("evaluations after first force = %d, want 1", got)
	}

	before = e.Counts().Evaluations
	if got := mustForce(t, e, sum); got != 3 {
		t.Fatalf("second force = %d, want 3", got)
	}
	if got := e.Counts().Evaluations - before; got != 0 {
		t.Fatalf("evaluations after repeated force = %d, want 0 (memoized)", got)
	}

	if err := e.Set(b, intVal(5)); err != nil {
		t.Fatalf("set b: %v", err)
	}
	before = e.Counts().Evaluations
	if got := mustForce(t, e, sum); got != 6 {
		t.Fatalf("force after mutation = %d, want 6", got)
	}
	if got := e.Counts().Evaluations - before; got != 1 {
		t.Fatalf("evaluations after mutation = %d, want 1", got)
	}
}

// Scenario 3: a Set that writes the value a cell already holds is
// absorbed — nothing is dirtied, so the next force never re-produces.
func TestChangeAbsorbed(t *testing.T) {
	e := New()
	a := mustCell(t, e, "a", 1)
	b := mustCell(t, e, "b", 2)
	sum, err := e.ThunkNominal(n("sum"), testPoint("sum"), func(store.Value) store.Value {
		return intVal(mustForce(t, e, a) + mustForce(t, e, b))
	}, intVal(0))
	if err != nil {
		t.Fatalf("thunk: %v", err)
	}
	if got := mustForce(t, e, sum); got != 3 {
		t.Fatalf("initial force = %d, want 3", got)
	}

	if err := e.Set(b, intVal(2)); err != nil {
		t.Fatalf("set b: %v", err)
	}
	before := e.Counts().Evaluations
	if got := mustForce(t, e, sum); got != 3 {
		t.Fatalf("force after no-op set = %d, want 3", got)
	}
	if got := e.Counts().Evaluations - before; got != 0 {
		t.Fatalf("evaluations after no-op set = %d, want 0", got)
	}
}

// Scenario 4: a producer whose result doesn't actually change after
// re-running still runs once (its own witness was dirtied), but its own
// consumers see their ProducerDependency witness hold and are not forced
// to re-run in turn.
func TestNoRecomputationPropagationWhenResultUnchanged(t *testing.T) {
	e := New()
	x := mustCell(t, e, "x", 0)
	u, err := e.ThunkNominal(n("u"), testPoint("u"), func(store.Value) store.Value {
		if mustForce(t, e, x) == 0 {
			return intVal(7)
		}
		return intVal(7)
	}, intVal(0))
	if err != nil {
		t.Fatalf("thunk u: %v", err)
	}

	outerRuns := 0
	outer, err := e.ThunkNominal(n("outer"), testPoint("outer"), func(store.Value) store.Value {
		outerRuns++
		return intVal(mustForce(t, e, u))
	}, intVal(0))
	if err != nil {
		t.Fatalf("thunk outer: %v", err)
	}

	if got := mustForce(t, e, outer); got != 7 {
		t.Fatalf("initial force = %d, want 7", got)
	}
	if outerRuns != 1 {
		t.Fatalf("outerRuns after initial force = %d, want 1", outerRuns)
	}

	if err := e.Set(x, intVal(1)); err != nil {
		t.Fatalf("set x: %v", err)
	}

	before := e.Counts().Evaluations
	if got := mustForce(t, e, u); got != 7 {
		t.Fatalf("force u after mutation = %d, want 7", got)
	}
	if got := e.Counts().Evaluations - before; got != 1 {
		t.Fatalf("u evaluations after mutation = %d, want exactly 1", got)
	}

	if got := mustForce(t, e, outer); got != 7 {
		t.Fatalf("force outer after mutation = %d, want 7", got)
	}
	if outerRuns != 1 {
		t.Fatalf("outerRuns after u's value stayed the same = %d, want still 1", outerRuns)
	}
}

// Scenario 5: two thunk(Nominal("n"), ...) calls at the same path with
// distinct program points collide.
func TestNominalCollision(t *testing.T) {
	e := New()
	_, err := e.ThunkNominal(n("shared"), testPoint("pp1"), func(v store.Value) store.Value { return v }, intVal(1))
	if err != nil {
		t.Fatalf("first thunk: %v", err)
	}
	_, err = e.ThunkNominal(n("shared"), testPoint("pp2"), func(v store.Value) store.Value { return v }, intVal(1))
	var collision *NominalCollisionError
	if err == nil {
		t.Fatalf("second thunk: expected NominalCollisionError, got nil")
	}
	if !asNominalCollision(err, &collision) {
		t.Fatalf("second thunk: expected NominalCollisionError, got %T: %v", err, err)
	}
}

func asNominalCollision(err error, out **NominalCollisionError) bool {
	if ce, ok := err.(*NominalCollisionError); ok {
		*out = ce
		return true
	}
	return false
}

// Scenario 6: calling Set from inside a producer raises
// MutationDuringEvaluationError.
func TestMutationDuringEvaluation(t *testing.T) {
	e := New()
	c := mustCell(t, e, "c", 1)

	var setErr error
	bad, err := e.ThunkNominal(n("bad"), testPoint("bad"), func(v store.Value) store.Value {
		setErr = e.Set(c, intVal(99))
		return v
	}, intVal(0))
	if err != nil {
		t.Fatalf("thunk: %v", err)
	}

	if _, err := e.Force(bad); err != nil {
		t.Fatalf("force: unexpected error %v (the nested Set's error is reported via setErr, not propagated through the producer's return value)", err)
	}
	var mutErr *MutationDuringEvaluationError
	if !asMutationError(setErr, &mutErr) {
		t.Fatalf("expected MutationDuringEvaluationError from nested set, got %T: %v", setErr, setErr)
	}
}

func asMutationError(err error, out **MutationDuringEvaluationError) bool {
	if me, ok := err.(*MutationDuringEvaluationError); ok {
		*out = me
		return true
	}
	return false
}
