package store

import "fmt"

// ErrDanglingLocation creates an error for a lookup by a location that was
// never inserted into the store. This is an internal invariant violation:
// every location the engine hands out as a handle must already exist.
func ErrDanglingLocation(locStr string) error {
	return fmt.Errorf("store: dangling location: %s", locStr)
}

// ErrKindMismatch creates an error for a caller asking a node for a
// payload kind (Pure/Mut vs Comp) it does not hold.
func ErrKindMismatch(locStr string, want, have NodeKind) error {
	return fmt.Errorf("store: location %s: expected node kind %s, found %s", locStr, want, have)
}
