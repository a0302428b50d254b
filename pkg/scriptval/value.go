// Package scriptval provides a small textual value representation and a
// fixed registry of named producer functions, used by cmd/dcgctl to drive
// a dcg.Engine from a line-oriented script without requiring a scripting
// host of its own.
package scriptval

import (
	"fmt"
	"hash/fnv"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yesoreyeram/dcgo/pkg/store"
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// Scalar is the store.Value every script operation produces and consumes:
// a numeric value when the literal parses as one, a string otherwise.
type Scalar struct {
	text   string
	number float64
	isNum  bool
}

// ParseScalar builds a Scalar from a script literal, recognizing
// floating-point numbers and falling back to a plain string.
func ParseScalar(literal string) Scalar {
	if n, err := strconv.ParseFloat(literal, 64); err == nil {
		return Scalar{text: literal, number: n, isNum: true}
	}
	return Scalar{text: literal}
}

// NumberScalar builds a Scalar directly from a float64.
func NumberScalar(n float64) Scalar {
	return Scalar{text: strconv.FormatFloat(n, 'g', -1, 64), number: n, isNum: true}
}

// StringScalar builds a Scalar directly from a string.
func StringScalar(s string) Scalar {
	return Scalar{text: s}
}

// IsNumber reports whether the scalar parsed as a number.
func (s Scalar) IsNumber() bool { return s.isNum }

// Number returns the scalar's numeric value, or 0 if it is not a number.
func (s Scalar) Number() float64 { return s.number }

// Text returns the scalar's textual form.
func (s Scalar) Text() string { return s.text }

// Equal implements store.Value.
func (s Scalar) Equal(o store.Value) bool {
	other, ok := o.(Scalar)
	if !ok {
		return false
	}
	if s.isNum && other.isNum {
		return s.number == other.number
	}
	return s.text == other.text
}

// Clone implements store.Value. Scalar is immutable, so Clone returns s
// itself.
func (s Scalar) Clone() store.Value { return s }

// Hash implements store.Value.
func (s Scalar) Hash() uint64 {
	h := fnv.New64a()
	if s.isNum {
		h.Write([]byte("n:"))
		h.Write([]byte(strconv.FormatFloat(s.number, 'g', -1, 64)))
	} else {
		h.Write([]byte("s:"))
		h.Write([]byte(s.text))
	}
	return h.Sum64()
}

// String renders the scalar for CLI output.
func (s Scalar) String() string { return s.text }

// FunctionPoint is the store.ProgramPoint identifying a named script
// function: two allocations with the same function name are compatible
// program points.
type FunctionPoint struct {
	Name string
}

// Equal implements store.ProgramPoint.
func (p FunctionPoint) Equal(o store.ProgramPoint) bool {
	other, ok := o.(FunctionPoint)
	return ok && other.Name == p.Name
}

// Hash implements store.ProgramPoint.
func (p FunctionPoint) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(p.Name))
	return h.Sum64()
}

// String implements store.ProgramPoint.
func (p FunctionPoint) String() string { return p.Name }

// Func looks up one of the fixed built-in script functions by name.
func Func(name string) (func(store.Value) store.Value, error) {
	fn, ok := functions[name]
	if !ok {
		return nil, fmt.Errorf("scriptval: unknown function %q", name)
	}
	return fn, nil
}

var functions = map[string]func(store.Value) store.Value{
	"identity": func(v store.Value) store.Value { return v },
	"upper": func(v store.Value) store.Value {
		return StringScalar(upperCaser.String(asScalar(v).Text()))
	},
	"lower": func(v store.Value) store.Value {
		return StringScalar(lowerCaser.String(asScalar(v).Text()))
	},
	"double": func(v store.Value) store.Value {
		return NumberScalar(asScalar(v).Number() * 2)
	},
	"square": func(v store.Value) store.Value {
		n := asScalar(v).Number()
		return NumberScalar(n * n)
	},
	"increment": func(v store.Value) store.Value {
		return NumberScalar(asScalar(v).Number() + 1)
	},
}

func asScalar(v store.Value) Scalar {
	if s, ok := v.(Scalar); ok {
		return s
	}
	return Scalar{}
}
