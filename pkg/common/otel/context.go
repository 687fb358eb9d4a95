package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type ctxKey int

const tracerKey ctxKey = 1

// InjectTracing stores the tracer in the context so downstream helpers can
// start spans without threading the tracer through every call.
func InjectTracing(ctx context.Context, tracer trace.Tracer) context.Context {
	return context.WithValue(ctx, tracerKey, tracer)
}

// Tracer returns the tracer stored by InjectTracing, if any.
func Tracer(ctx context.Context) (trace.Tracer, bool) {
	tracer, ok := ctx.Value(tracerKey).(trace.Tracer)
	return tracer, ok
}

// GetTraceID returns the trace id from the current span context.
func GetTraceID(ctx context.Context) string {
	if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		return span.SpanContext().TraceID().String()
	}
	return "00000000000000000000000000000000"
}

// GetMeterProvider returns the globally registered meter provider.
func GetMeterProvider() metric.MeterProvider {
	return otel.GetMeterProvider()
}
