package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type otelInstruments struct {
	ctx context.Context

	requests         metric.Int64Counter
	requestLatencyMs metric.Float64Histogram

	upstreamAttempts  metric.Int64Counter
	upstreamErrors    metric.Int64Counter
	upstreamLatencyMs metric.Float64Histogram
	retries           metric.Int64Counter
	backoffMs         metric.Float64Histogram
	schemaMismatches  metric.Int64Counter

	watchCycles    metric.Int64Counter
	watchFailures  metric.Int64Counter
	watchLatencyMs metric.Float64Histogram
}

// instrumentBuilder keeps the first creation error so construction reads linearly.
type instrumentBuilder struct {
	meter metric.Meter
	err   error
}

func (b *instrumentBuilder) counter(name, desc string) metric.Int64Counter {
	if b.err != nil {
		return nil
	}
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc))
	b.err = err
	return c
}

func (b *instrumentBuilder) histogram(name, desc string) metric.Float64Histogram {
	if b.err != nil {
		return nil
	}
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc))
	b.err = err
	return h
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	b := &instrumentBuilder{meter: provider.Meter(meterName)}
	inst := &otelInstruments{
		ctx: context.Background(),

		requests:         b.counter("http_requests_total", "Inbound HTTP requests."),
		requestLatencyMs: b.histogram("http_request_duration_ms", "Inbound HTTP request latency in milliseconds."),

		upstreamAttempts:  b.counter("upstream_attempts_total", "Calls made to the FantasyData service."),
		upstreamErrors:    b.counter("upstream_errors_total", "Failed calls to the FantasyData service."),
		upstreamLatencyMs: b.histogram("upstream_duration_ms", "FantasyData call latency in milliseconds."),
		retries:           b.counter("upstream_retries_total", "Retries scheduled after a failed call."),
		backoffMs:         b.histogram("upstream_backoff_ms", "Wait before each retry in milliseconds."),
		schemaMismatches:  b.counter("schema_mismatches_total", "Responses whose shape did not match the expected fields or count."),

		watchCycles:    b.counter("watch_cycles_total", "Background standings check cycles."),
		watchFailures:  b.counter("watch_failures_total", "Background check cycles with at least one failure."),
		watchLatencyMs: b.histogram("watch_cycle_duration_ms", "Background check cycle duration in milliseconds."),
	}
	if b.err != nil {
		return nil, b.err
	}
	return inst, nil
}

func resourceAttr(resource string) attribute.KeyValue {
	return attribute.String(AttrResource, resource)
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.recordCounter(o.requests, 1, attrs...)
	o.recordHistogram(o.requestLatencyMs, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordUpstreamAttempt(resource string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attr := resourceAttr(resource)
	o.recordCounter(o.upstreamAttempts, 1, attr)
	o.recordHistogram(o.upstreamLatencyMs, float64(duration.Milliseconds()), attr)
	if err != nil {
		o.recordCounter(o.upstreamErrors, 1, attr)
	}
}

func (o *otelInstruments) recordRetry(resource string, wait time.Duration) {
	if o == nil {
		return
	}
	attr := resourceAttr(resource)
	o.recordCounter(o.retries, 1, attr)
	if wait > 0 {
		o.recordHistogram(o.backoffMs, float64(wait.Milliseconds()), attr)
	}
}

func (o *otelInstruments) recordSchemaMismatch(resource string) {
	if o == nil {
		return
	}
	o.recordCounter(o.schemaMismatches, 1, resourceAttr(resource))
}

func (o *otelInstruments) recordWatchCycle(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.watchCycles, 1)
	o.recordHistogram(o.watchLatencyMs, float64(duration.Milliseconds()))
	if err != nil {
		o.recordCounter(o.watchFailures, 1)
	}
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
