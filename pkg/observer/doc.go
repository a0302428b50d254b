// Package observer provides an event-driven observer pattern for the
// incremental computation engine.
//
// # Overview
//
// The observer package enables monitoring, logging, and reacting to force,
// produce, dirty, and change-propagation events without coupling to the
// engine implementation.
//
// # Features
//
//   - Event-driven: react to force/produce/dirty/change-propagate events
//   - Multiple observers: register multiple observers simultaneously
//   - Asynchronous delivery: observers never block evaluation
//   - Panic isolation: a panicking observer cannot affect evaluation or
//     other observers
//
// # Observer Interface
//
//	type Observer interface {
//	    OnEvent(ctx context.Context, event Event)
//	}
//
// # Event Types
//
//   - force_start / force_end: brackets a top-level Force call
//   - produce_start / produce_success / produce_failure: brackets a
//     computational node's producer execution
//   - dirty_observe / dirty_alloc: emitted once per edge marked dirty
//   - change_propagate_start / change_propagate_end: brackets witness
//     re-verification for a dirty node, end reports whether its result
//     actually changed
//
// # Basic Usage
//
//	mgr := observer.NewManager()
//	mgr.Register(observer.NewConsoleObserver())
//
//	e := dcg.New(dcg.WithObserverManager(mgr))
//
// # Built-in Observers
//
// NoOpObserver discards all events. ConsoleObserver logs events through a
// Logger (DefaultLogger by default, writing to stdout/stderr).
//
// # Thread Safety
//
// Manager.Notify dispatches to each observer on its own goroutine;
// Observer implementations must be safe for concurrent use.
package observer
