// Package web is a minimal web framework: an http.ServeMux wrapped with a
// middleware chain, context-first handlers, and encoder-driven responses.
package web

import (
	"context"
	"net/http"
	"path"

	"go.opentelemetry.io/otel/trace"
)

// Logger is the function handlers use to write framework-level log lines.
type Logger func(ctx context.Context, msg string, args ...any)

// HandlerFunc represents a function that handles a http request within this
// framework. Handlers return an Encoder; the framework owns the response
// write.
type HandlerFunc func(ctx context.Context, r *http.Request) Encoder

// App is the entrypoint into the application and what configures our context
// object for each of our http handlers.
type App struct {
	log     Logger
	tracer  trace.Tracer
	mux     *http.ServeMux
	mw      []MidFunc
	origins []string
}

// NewApp creates an App value that handles a set of routes for the
// application.
func NewApp(log Logger, tracer trace.Tracer, mw ...MidFunc) *App {
	return &App{
		log:    log,
		tracer: tracer,
		mux:    http.NewServeMux(),
		mw:     mw,
	}
}

// ServeHTTP implements the http.Handler interface.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// EnableCORS enables CORS preflight requests to work in the middleware. It
// prevents the MethodNotAllowedHandler from being called. This must be
// enabled for the CORS middleware to work.
func (a *App) EnableCORS(origins []string) {
	a.origins = origins

	handler := func(ctx context.Context, r *http.Request) Encoder {
		return nil
	}
	handler = wrapMiddleware([]MidFunc{a.corsHandler}, handler)

	a.handle("OPTIONS", "", "/", handler)
}

// HandlerFunc sets a handler function for a given HTTP method and path pair
// to the application server mux.
func (a *App) HandlerFunc(method string, group string, route string, handler HandlerFunc, mw ...MidFunc) {
	handler = wrapMiddleware(mw, handler)
	handler = wrapMiddleware(a.mw, handler)

	if a.origins != nil {
		handler = wrapMiddleware([]MidFunc{a.corsHandler}, handler)
	}

	a.handle(method, group, route, handler)
}

// HandlerFuncNoMid sets a handler function for a given HTTP method and path
// pair to the application server mux, bypassing the application middleware.
func (a *App) HandlerFuncNoMid(method string, group string, route string, handler HandlerFunc) {
	a.handle(method, group, route, handler)
}

func (a *App) handle(method string, group string, route string, handler HandlerFunc) {
	pattern := method + " " + joinPath(group, route)

	h := func(w http.ResponseWriter, r *http.Request) {
		ctx := setWriter(r.Context(), w)

		resp := handler(ctx, r)

		if err := Respond(ctx, w, resp); err != nil {
			a.log(ctx, "web-respond", "ERROR", err)
			return
		}
	}

	a.mux.HandleFunc(pattern, h)
}

// corsHandler applies the configured CORS headers ahead of the wrapped
// handler.
func (a *App) corsHandler(webHandler HandlerFunc) HandlerFunc {
	h := func(ctx context.Context, r *http.Request) Encoder {
		w, exists := getWriter(ctx)
		if exists {
			for _, origin := range a.origins {
				w.Header().Set("Access-Control-Allow-Origin", origin)
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")
			w.Header().Set("Access-Control-Max-Age", "86400")
		}

		return webHandler(ctx, r)
	}

	return h
}

func joinPath(group string, route string) string {
	if group == "" {
		return route
	}
	return path.Join("/", group, route)
}

// Param returns the web call parameters from the request.
func Param(r *http.Request, key string) string {
	return r.PathValue(key)
}
