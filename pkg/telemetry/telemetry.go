package telemetry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Service name for telemetry
	serviceName = "dcgo-engine"

	// Metric names
	metricEvaluations           = "dcg.evaluations.total"
	metricForceDuration         = "dcg.force.duration"
	metricChangePropInvocations = "dcg.changeprop.invocations.total"
	metricDirtyEdges            = "dcg.dirty.edges.total"
)

// Provider manages OpenTelemetry setup and provides access to tracers and
// meters for the incremental computation engine.
type Provider struct {
	meterProvider  *sdkmetric.MeterProvider
	tracerProvider trace.TracerProvider
	meter          metric.Meter
	tracer         trace.Tracer

	// Metrics instruments
	evaluations           metric.Int64Counter
	forceDuration         metric.Float64Histogram
	changePropInvocations metric.Int64Counter
	dirtyEdges            metric.Int64Counter

	mu sync.RWMutex
}

// Config holds telemetry configuration
type Config struct {
	// ServiceName is the name of the service for telemetry
	ServiceName string

	// ServiceVersion is the version of the service
	ServiceVersion string

	// Environment (e.g., "production", "staging", "development")
	Environment string

	// EnableTracing enables distributed tracing
	EnableTracing bool

	// EnableMetrics enables metrics collection
	EnableMetrics bool
}

// DefaultConfig returns default telemetry configuration
func DefaultConfig() Config {
	return Config{
		ServiceName:    serviceName,
		ServiceVersion: "0.1.0",
		Environment:    "development",
		EnableTracing:  true,
		EnableMetrics:  true,
	}
}

// NewProvider creates a new telemetry provider with Prometheus metrics exporter.
// It initializes OpenTelemetry with the given configuration and returns a provider
// that can be used to create tracers and record metrics.
func NewProvider(ctx context.Context, config Config) (*Provider, error) {
	provider := &Provider{}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			attribute.String("environment", config.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if config.EnableMetrics {
		if err := provider.initMetrics(res); err != nil {
			return nil, fmt.Errorf("failed to initialize metrics: %w", err)
		}
	}

	if config.EnableTracing {
		provider.initTracing()
	}

	return provider, nil
}

// initMetrics initializes the metrics provider with Prometheus exporter
func (p *Provider) initMetrics(res *resource.Resource) error {
	exporter, err := prometheus.New()
	if err != nil {
		return fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)

	otel.SetMeterProvider(p.meterProvider)

	p.meter = p.meterProvider.Meter(serviceName)

	if err := p.createMetricInstruments(); err != nil {
		return fmt.Errorf("failed to create metric instruments: %w", err)
	}

	return nil
}

// initTracing initializes the tracing provider
func (p *Provider) initTracing() {
	// For now, use the global tracer provider. Production deployments can
	// swap in an OTLP exporter by calling otel.SetTracerProvider before
	// constructing the engine.
	p.tracerProvider = otel.GetTracerProvider()
	p.tracer = p.tracerProvider.Tracer(serviceName)
}

// createMetricInstruments creates all metric instruments
func (p *Provider) createMetricInstruments() error {
	var err error

	p.evaluations, err = p.meter.Int64Counter(
		metricEvaluations,
		metric.WithDescription("Total number of producer evaluations (force/change_propagate re-runs)"),
	)
	if err != nil {
		return err
	}

	p.forceDuration, err = p.meter.Float64Histogram(
		metricForceDuration,
		metric.WithDescription("Force call duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	p.changePropInvocations, err = p.meter.Int64Counter(
		metricChangePropInvocations,
		metric.WithDescription("Total number of change_propagate invocations"),
	)
	if err != nil {
		return err
	}

	p.dirtyEdges, err = p.meter.Int64Counter(
		metricDirtyEdges,
		metric.WithDescription("Total number of edges marked dirty by dirty_observe/dirty_alloc"),
	)
	if err != nil {
		return err
	}

	return nil
}

// Tracer returns the tracer for creating spans
func (p *Provider) Tracer() trace.Tracer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tracer
}

// Meter returns the meter for recording metrics
func (p *Provider) Meter() metric.Meter {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.meter
}

// RecordEvaluation records a single producer evaluation.
func (p *Provider) RecordEvaluation(ctx context.Context, location string, success bool) {
	if p.meter == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("dcg.location", location),
		attribute.Bool("dcg.success", success),
	}
	p.evaluations.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordForce records the duration of a top-level Force call.
func (p *Provider) RecordForce(ctx context.Context, location string, duration time.Duration, success bool) {
	if p.meter == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("dcg.location", location),
		attribute.Bool("dcg.success", success),
	}
	p.forceDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordChangePropagate records a change_propagate invocation and whether
// it found the node's result had actually changed.
func (p *Provider) RecordChangePropagate(ctx context.Context, location string, changed bool) {
	if p.meter == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("dcg.location", location),
		attribute.Bool("dcg.changed", changed),
	}
	p.changePropInvocations.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordDirtyEdge records a single edge marked dirty, tagged with the
// operation that marked it ("observe" or "alloc").
func (p *Provider) RecordDirtyEdge(ctx context.Context, kind string) {
	if p.meter == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("dcg.dirty_kind", kind),
	}
	p.dirtyEdges.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// Shutdown gracefully shuts down the telemetry provider
func (p *Provider) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.meterProvider != nil {
		if err := p.meterProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown meter provider: %w", err)
		}
	}

	return nil
}
