// Package mid provides the middleware the API handlers run under.
package mid

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ahrav/enumkit/pkg/common/otel"
	"github.com/ahrav/enumkit/pkg/web"
)

// Otel starts a span per request and stores the tracer in the context.
func Otel(tracer trace.Tracer) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			ctx = otel.InjectTracing(ctx, tracer)

			ctx, span := tracer.Start(ctx, "request",
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
				))
			defer span.End()

			return next(ctx, r)
		}

		return h
	}

	return m
}
