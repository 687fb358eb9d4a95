package web

import (
	"context"
	"net/http"
)

type ctxKey int

const writerKey ctxKey = 1

func setWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, writerKey, w)
}

func getWriter(ctx context.Context) (http.ResponseWriter, bool) {
	w, ok := ctx.Value(writerKey).(http.ResponseWriter)
	return w, ok
}
