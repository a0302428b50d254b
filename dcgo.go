// Package dcgo is the root-level facade over the incremental computation
// engine in pkg/dcg: a thin set of type aliases and constructor
// forwards, so a caller wanting only the client surface can import
// github.com/yesoreyeram/dcgo instead of pkg/dcg, pkg/store, and
// pkg/symbol separately.
//
// # Example usage
//
//	eng := dcgo.New()
//	a, _ := eng.Cell(dcgo.NameOfString("a"), myValue(3))
//	sum, _ := eng.ThunkNominal(dcgo.NameOfString("sum"), addPoint, add, myValue(3))
//	result, err := eng.Force(sum)
package dcgo

import (
	"github.com/yesoreyeram/dcgo/pkg/config"
	"github.com/yesoreyeram/dcgo/pkg/dcg"
	"github.com/yesoreyeram/dcgo/pkg/store"
	"github.com/yesoreyeram/dcgo/pkg/symbol"
)

// Engine is the incremental computation engine. See pkg/dcg for the full
// method set (Cell, ThunkEager, ThunkStructural, ThunkNominal, Set,
// Force, Ns, Structural, Counts, WithCounts).
type Engine = dcg.Engine

// Handle is an opaque reference to a location in the engine's store.
type Handle = dcg.Handle

// Option configures an Engine at construction time.
type Option = dcg.Option

// Value is anything the engine can store, produce, or return from Force.
type Value = store.Value

// ProgramPoint identifies a producer up to equality.
type ProgramPoint = store.ProgramPoint

// Name is the user-visible handle for a nominal identity.
type Name = symbol.Name

// New constructs an Engine ready to accept Cell/Thunk allocations.
func New(opts ...Option) *Engine { return dcg.New(opts...) }

// WithConfig attaches cfg to the engine.
func WithConfig(cfg *config.Config) Option { return dcg.WithConfig(cfg) }

// NameOfString builds a Name from a string.
func NameOfString(s string) Name { return symbol.NameOfString(s) }

// NameOfInteger builds a Name from a non-negative integer.
func NameOfInteger(n uint64) Name { return symbol.NameOfInteger(n) }
