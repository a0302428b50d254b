package dcg

import "github.com/yesoreyeram/dcgo/pkg/wellformed"

// checkCapacity rejects a fresh allocation once the store already holds
// config.Config's MaxStoreSize locations. A limit of 0 means unbounded.
func (e *Engine) checkCapacity() error {
	if e.cfg.MaxStoreSize > 0 && e.st.Len() >= e.cfg.MaxStoreSize {
		return &StoreCapacityError{Limit: e.cfg.MaxStoreSize}
	}
	return nil
}

// afterOp is called at the end of every top-level client operation. When
// err is already set it is returned unchanged — a well-formedness check
// never masks the operation's own failure. Otherwise, under
// CheckWellFormed it walks the store and turns the first violation found
// into the operation's error; under WriteDCG it best-effort serializes a
// dump to the configured sink.
func (e *Engine) afterOp(err error) error {
	if err != nil {
		return err
	}
	if e.cfg.CheckWellFormed {
		if werr := wellformed.Check(e.st); werr != nil {
			return werr
		}
	}
	if e.cfg.WriteDCG && e.cfg.DiagnosticSinkPath != "" {
		e.writeDiagnosticDump()
	}
	return nil
}

// writeDiagnosticDump serializes the current store to the configured
// sink path. Failures are logged, not propagated — the diagnostic sink
// is a side channel, not part of the operation's success contract.
func (e *Engine) writeDiagnosticDump() {
	if err := wellformed.WriteFile(e.cfg.DiagnosticSinkPath, e.st); err != nil {
		e.logger.WithError(err).Warn("failed to write dcg diagnostic sink")
	}
}
