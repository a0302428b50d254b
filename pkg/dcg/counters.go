package dcg

// Counters accumulates the bookkeeping totals a client can use to reason
// about incremental-computation overhead: how much work a force actually
// did, versus how much it reused.
type Counters struct {
	// Evaluations counts every producer run that returns normally,
	// whether triggered by a first force, a change_propagate
	// re-verification that found a real change, or an unconditional
	// re-run. A producer run that panics is not counted.
	Evaluations int64

	// ChangePropagateInvocations counts every change_propagate call,
	// including ones that found nothing had changed.
	ChangePropagateInvocations int64

	// DirtyObserveMarks counts every edge dirty_observe marked dirty.
	DirtyObserveMarks int64

	// DirtyAllocMarks counts every edge dirty_alloc marked dirty.
	DirtyAllocMarks int64
}

// Counts returns a snapshot of the engine's lifetime counters.
func (e *Engine) Counts() Counters { return e.counters }

// WithCounts runs body and returns the Counters accumulated strictly
// during body's execution (the difference between the engine's totals
// before and after), alongside whatever error body returned.
func (e *Engine) WithCounts(body func() error) (Counters, error) {
	before := e.counters
	err := body()
	after := e.counters
	return Counters{
		Evaluations:                after.Evaluations - before.Evaluations,
		ChangePropagateInvocations: after.ChangePropagateInvocations - before.ChangePropagateInvocations,
		DirtyObserveMarks:          after.DirtyObserveMarks - before.DirtyObserveMarks,
		DirtyAllocMarks:            after.DirtyAllocMarks - before.DirtyAllocMarks,
	}, err
}
