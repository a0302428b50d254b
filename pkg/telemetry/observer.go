package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yesoreyeram/dcgo/pkg/observer"
)

// TelemetryObserver implements observer.Observer and records telemetry
// data for engine evaluation events.
type TelemetryObserver struct {
	provider *Provider

	// mu guards the maps below; the observer manager delivers events on
	// separate goroutines.
	mu sync.Mutex

	// Track active spans, keyed by location, for force and produce.
	forceSpans   map[string]trace.Span
	produceSpans map[string]trace.Span

	// Track start times, keyed by location.
	forceStartTimes map[string]time.Time
}

// NewTelemetryObserver creates a new telemetry observer
func NewTelemetryObserver(provider *Provider) *TelemetryObserver {
	return &TelemetryObserver{
		provider:        provider,
		forceSpans:      make(map[string]trace.Span),
		produceSpans:    make(map[string]trace.Span),
		forceStartTimes: make(map[string]time.Time),
	}
}

// OnEvent handles engine events and records telemetry data
func (o *TelemetryObserver) OnEvent(ctx context.Context, event observer.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	switch event.Type {
	case observer.EventForceStart:
		o.handleForceStart(ctx, event)
	case observer.EventForceEnd:
		o.handleForceEnd(ctx, event)
	case observer.EventProduceStart:
		o.handleProduceStart(ctx, event)
	case observer.EventProduceSuccess:
		o.handleProduceEnd(ctx, event, true)
	case observer.EventProduceFailure:
		o.handleProduceEnd(ctx, event, false)
	case observer.EventChangePropagateEnd:
		o.provider.RecordChangePropagate(ctx, event.Location, event.Changed)
	case observer.EventDirtyObserve:
		o.provider.RecordDirtyEdge(ctx, "observe")
	case observer.EventDirtyAlloc:
		o.provider.RecordDirtyEdge(ctx, "alloc")
	}
}

func (o *TelemetryObserver) handleForceStart(ctx context.Context, event observer.Event) {
	_, span := o.provider.Tracer().Start(ctx, "dcg.force",
		trace.WithAttributes(
			attribute.String("dcg.instance_id", event.InstanceID),
			attribute.String("dcg.location", event.Location),
		),
	)

	o.forceSpans[event.Location] = span
	o.forceStartTimes[event.Location] = event.Timestamp
}

func (o *TelemetryObserver) handleForceEnd(ctx context.Context, event observer.Event) {
	var duration time.Duration
	if startTime, ok := o.forceStartTimes[event.Location]; ok {
		duration = time.Since(startTime)
		delete(o.forceStartTimes, event.Location)
	}

	success := event.Error == nil
	o.provider.RecordForce(ctx, event.Location, duration, success)

	if span, ok := o.forceSpans[event.Location]; ok {
		if event.Error != nil {
			span.RecordError(event.Error)
			span.SetStatus(codes.Error, event.Error.Error())
		} else {
			span.SetStatus(codes.Ok, "force completed")
		}
		span.End()
		delete(o.forceSpans, event.Location)
	}
}

func (o *TelemetryObserver) handleProduceStart(ctx context.Context, event observer.Event) {
	_, span := o.provider.Tracer().Start(ctx, "dcg.produce",
		trace.WithAttributes(
			attribute.String("dcg.instance_id", event.InstanceID),
			attribute.String("dcg.location", event.Location),
			attribute.String("dcg.node_kind", event.NodeKind),
		),
	)

	o.produceSpans[event.Location] = span
}

func (o *TelemetryObserver) handleProduceEnd(ctx context.Context, event observer.Event, success bool) {
	o.provider.RecordEvaluation(ctx, event.Location, success)

	if span, ok := o.produceSpans[event.Location]; ok {
		if event.Error != nil {
			span.RecordError(event.Error)
			span.SetStatus(codes.Error, event.Error.Error())
		} else {
			span.SetStatus(codes.Ok, "producer completed")
		}
		span.End()
		delete(o.produceSpans, event.Location)
	}
}
