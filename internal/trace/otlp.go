// Package trace exports spans for state transitions over OTLP/HTTP.
//
// Export is enabled only when an endpoint is configured; otherwise every span
// goes to a no-op provider.
package trace

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// instrumentationName is the tracer name reported with every span.
const instrumentationName = "eatnsplit/ui"

// Span names for the state transitions.
const (
	SpanAddFriend       = "friends.add"
	SpanToggleSelection = "selection.toggle"
	SpanToggleAddForm   = "addform.toggle"
	SpanApplySplit      = "split.apply"
)

// Attribute keys, namespaced under eatnsplit.*.
const (
	AttrFriendID   = attribute.Key("eatnsplit.friend.id")
	AttrFriendName = attribute.Key("eatnsplit.friend.name")
	AttrDelta      = attribute.Key("eatnsplit.split.delta")
	AttrBalance    = attribute.Key("eatnsplit.friend.balance")
	AttrSelected   = attribute.Key("eatnsplit.selection.active")
	AttrAddFormOn  = attribute.Key("eatnsplit.addform.visible")
)

// Tracer starts spans for the UI. The zero value is not usable; use Setup or New.
type Tracer struct {
	tracer   oteltrace.Tracer
	provider *sdktrace.TracerProvider // nil when export is disabled
}

// Setup creates a Tracer exporting to endpoint. With an empty endpoint the
// returned Tracer is a no-op.
func Setup(ctx context.Context, endpoint, serviceName string) (*Tracer, error) {
	if endpoint == "" {
		return New(noop.NewTracerProvider()), nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res := resource.NewSchemaless(attribute.String("service.name", serviceName))
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return &Tracer{
		tracer:   provider.Tracer(instrumentationName),
		provider: provider,
	}, nil
}

// New wraps an existing provider. Tests pass an SDK provider with a span recorder.
func New(tp oteltrace.TracerProvider) *Tracer {
	t := &Tracer{tracer: tp.Tracer(instrumentationName)}
	if sdk, ok := tp.(*sdktrace.TracerProvider); ok {
		t.provider = sdk
	}
	return t
}

// Start begins a span; the caller must End it.
func (t *Tracer) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, oteltrace.Span) {
	if t == nil {
		return ctx, oteltrace.SpanFromContext(ctx)
	}
	return t.tracer.Start(ctx, name, oteltrace.WithAttributes(attrs...))
}

// Shutdown flushes pending spans and closes the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
