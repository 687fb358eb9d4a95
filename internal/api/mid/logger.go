package mid

import (
	"context"
	"net/http"
	"time"

	"github.com/ahrav/enumkit/pkg/common/logger"
	"github.com/ahrav/enumkit/pkg/web"
)

// Logger writes a start and stop line for every request.
func Logger(log *logger.Logger) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			now := time.Now()

			path := r.URL.Path
			if r.URL.RawQuery != "" {
				path = path + "?" + r.URL.RawQuery
			}

			log.Info(ctx, "request started", "method", r.Method, "path", path, "remoteaddr", r.RemoteAddr)

			resp := next(ctx, r)

			log.Info(ctx, "request completed", "method", r.Method, "path", path,
				"remoteaddr", r.RemoteAddr, "since", time.Since(now).String())

			return resp
		}

		return h
	}

	return m
}
