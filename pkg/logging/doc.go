// Package logging provides structured logging capabilities for the
// incremental computation engine.
//
// # Overview
//
// The logging package implements a structured logging system with support
// for multiple output formats, log levels, and contextual fields tied to
// engine operations (force, change_propagate, dirty_observe, dirty_alloc).
//
// # Features
//
//   - Structured logging: JSON and text formats
//   - Log levels: DEBUG, INFO, WARN, ERROR
//   - Context propagation: instance ID, location, operation
//   - Flexible output: write to any io.Writer
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  "info",
//	    Pretty: false,
//	    Output: os.Stdout,
//	})
//
//	logger.WithLocation(loc.String()).
//	    WithOperation("force").
//	    Debug("re-evaluating dirty computational node")
//
// # Context Integration
//
//	ctx = logger.WithContext(ctx)
//	logging.FromContext(ctx).Info("change propagation started")
//
// # Output Formats
//
// JSON Format (production):
//
//	{"time":"2026-07-31T10:30:00Z","level":"INFO","msg":"force started","location":"root/counter"}
//
// Text Format (development, Pretty: true):
//
//	time=2026-07-31T10:30:00Z level=INFO msg="force started" location=root/counter
package logging
