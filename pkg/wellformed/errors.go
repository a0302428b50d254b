package wellformed

import "fmt"

// ViolationError reports a structural invariant violation found by Check.
// Finding one always indicates a defect in the engine itself — the store
// it was given does not match the bookkeeping the engine is supposed to
// maintain — never a problem with client input.
type ViolationError struct {
	Reason string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("wellformed: %s", e.Reason)
}
