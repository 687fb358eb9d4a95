package web

// MidFunc is a handler function designed to run code before and/or after
// another handler.
type MidFunc func(handler HandlerFunc) HandlerFunc

// wrapMiddleware creates a new handler by wrapping middleware around a final
// handler. The middlewares' HandlerFuncs will be executed by requests in the
// order they are provided.
func wrapMiddleware(mw []MidFunc, handler HandlerFunc) HandlerFunc {
	// Loop backwards so the first middleware in the slice is the outermost
	// wrapper, i.e. the first to run.
	for i := len(mw) - 1; i >= 0; i-- {
		if mw[i] != nil {
			handler = mw[i](handler)
		}
	}

	return handler
}
