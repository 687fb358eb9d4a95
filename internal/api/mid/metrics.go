package mid

import (
	"context"
	"net/http"
	"time"

	"github.com/ahrav/enumkit/pkg/web"
)

// RequestRecorder records per-request counters and latency.
type RequestRecorder interface {
	IncRequestsTotal(ctx context.Context, method, path string, status int)
	ObserveRequestDuration(ctx context.Context, method, path string, duration time.Duration)
}

// Metrics records a counter and latency observation per request. Status is
// derived from the response encoder the handler returned.
func Metrics(rec RequestRecorder) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			now := time.Now()

			resp := next(ctx, r)

			if rec == nil {
				return resp
			}

			status := http.StatusOK
			if setter, ok := resp.(web.HTTPStatusSetter); ok {
				status = setter.HTTPStatus()
			}

			rec.IncRequestsTotal(ctx, r.Method, r.URL.Path, status)
			rec.ObserveRequestDuration(ctx, r.Method, r.URL.Path, time.Since(now))

			return resp
		}

		return h
	}

	return m
}
