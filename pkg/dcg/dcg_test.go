package dcg

import (
	"github.com/yesoreyeram/dcgo/pkg/store"
	"github.com/yesoreyeram/dcgo/pkg/symbol"
)

// intVal is the minimal store.Value used throughout pkg/dcg's tests: a
// plain int wrapped up to satisfy Equal/Clone/Hash.
type intVal int

func (v intVal) Equal(o store.Value) bool {
	other, ok := o.(intVal)
	return ok && other == v
}
func (v intVal) Clone() store.Value { return v }
func (v intVal) Hash() uint64       { return uint64(v) }

// testPoint is a store.ProgramPoint identified purely by a name, used to
// distinguish producer call sites in tests the way distinct call sites in
// real code would.
type testPoint string

func (p testPoint) Equal(o store.ProgramPoint) bool {
	other, ok := o.(testPoint)
	return ok && other == p
}
func (p testPoint) Hash() uint64 {
	var h uint64 = 1469598103934665603
	for _, c := range string(p) {
		h ^= uint64(c)
		h *= 1099511628211
	}
	return h
}
func (p testPoint) String() string { return string(p) }

func n(s string) symbol.Name { return symbol.NameOfString(s) }

func mustCell(t testingT, e *Engine, name string, v int) Handle {
	h, err := e.Cell(n(name), intVal(v))
	if err != nil {
		t.Fatalf("cell %q: %v", name, err)
	}
	return h
}

func mustForce(t testingT, e *Engine, h Handle) int {
	v, err := e.Force(h)
	if err != nil {
		t.Fatalf("force: %v", err)
	}
	iv, ok := v.(intVal)
	if !ok {
		t.Fatalf("force returned %T, want intVal", v)
	}
	return int(iv)
}

// testingT is the subset of *testing.T these helpers need, so they can be
// shared across this package's _test.go files without importing testing
// into non-test code.
type testingT interface {
	Fatalf(format string, args ...interface{})
}
