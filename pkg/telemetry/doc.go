// Package telemetry provides OpenTelemetry integration for distributed
// tracing and metrics over the incremental computation engine. It enables
// observability for force/produce/change_propagate/dirty activity with
// support for:
//   - Distributed tracing: a span per Force call and per producer
//     execution
//   - Metrics: Prometheus-exported counters and histograms
//
// # Metrics
//
//   - dcg.evaluations.total: producer evaluations, tagged by location and
//     success
//   - dcg.force.duration: Force call duration in milliseconds
//   - dcg.changeprop.invocations.total: change_propagate invocations,
//     tagged by whether the node's result changed
//   - dcg.dirty.edges.total: edges marked dirty, tagged by dirty_observe
//     vs dirty_alloc
//
// # Basic Usage
//
//	provider, err := telemetry.NewProvider(ctx, telemetry.DefaultConfig())
//	if err != nil {
//	    // handle error
//	}
//	defer provider.Shutdown(ctx)
//
//	e := dcg.New(dcg.WithTelemetry(provider))
//
// # Observer Integration
//
// TelemetryObserver adapts engine events from the observer package into
// spans and metric recordings:
//
//	mgr.Register(telemetry.NewTelemetryObserver(provider))
package telemetry
