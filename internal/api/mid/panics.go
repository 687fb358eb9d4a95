package mid

import (
	"context"
	"net/http"
	"runtime/debug"

	"github.com/ahrav/enumkit/internal/api/errs"
	"github.com/ahrav/enumkit/pkg/web"
)

// Panics recovers from handler panics and converts them into Internal
// errors so the goroutine serving the request survives.
func Panics(metrics PanicCounter) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) (resp web.Encoder) {
			defer func() {
				if rec := recover(); rec != nil {
					trace := debug.Stack()
					resp = errs.Newf(errs.Internal, "PANIC [%v] TRACE[%s]", rec, string(trace))

					if metrics != nil {
						metrics.IncPanics(ctx)
					}
				}
			}()

			return next(ctx, r)
		}

		return h
	}

	return m
}

// PanicCounter records recovered panics.
type PanicCounter interface {
	IncPanics(ctx context.Context)
}
