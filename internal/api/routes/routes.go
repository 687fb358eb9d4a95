// Package routes binds every route group the service exposes.
package routes

import (
	"github.com/ahrav/enumkit/internal/api/catalog"
	"github.com/ahrav/enumkit/internal/api/health"
	"github.com/ahrav/enumkit/internal/api/mux"
	"github.com/ahrav/enumkit/pkg/web"
)

// Routes constructs an add value which provides the implementation of
// RouteAdder for specifying what routes to bind to this instance.
func Routes() add {
	return add{}
}

type add struct{}

// Add implements the RouteAdder interface.
func (add) Add(app *web.App, cfg mux.Config) {
	health.Routes(app, health.Config{
		Build: cfg.Build,
		Log:   cfg.Log,
	})

	catalog.Routes(app, catalog.Config{
		Log:     cfg.Log,
		Catalog: cfg.Catalog,
	})
}
