// Package health binds the liveness and readiness endpoints.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/ahrav/enumkit/pkg/common/logger"
	"github.com/ahrav/enumkit/pkg/enum"
	"github.com/ahrav/enumkit/pkg/web"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Build string
	Log   *logger.Logger
}

// Routes binds all the health check endpoints. They bypass the application
// middleware so probes stay cheap and untraced.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	app.HandlerFuncNoMid(http.MethodGet, version, "/liveness", liveness(cfg))
	app.HandlerFuncNoMid(http.MethodGet, version, "/readiness", readiness(cfg))
}

// livenessResponse represents the response for the liveness check.
type livenessResponse struct {
	Status string `json:"status"`
	Build  string `json:"build"`
	Host   string `json:"host"`
}

// Encode implements the web.Encoder interface.
func (lr livenessResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(lr)
	if err != nil {
		return nil, "", err
	}
	return data, "application/json", nil
}

// readyResponse represents the response for the readiness check.
type readyResponse struct {
	Status string `json:"status"`
	Sets   int    `json:"sets"`
}

// Encode implements the web.Encoder interface.
func (rr readyResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(rr)
	if err != nil {
		return nil, "", err
	}
	return data, "application/json", nil
}

// HTTPStatus implements the web HTTPStatusSetter interface.
func (rr readyResponse) HTTPStatus() int {
	if rr.Sets == 0 {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func liveness(cfg Config) web.HandlerFunc {
	return func(ctx context.Context, r *http.Request) web.Encoder {
		host, err := os.Hostname()
		if err != nil {
			host = "unavailable"
		}

		return livenessResponse{
			Status: "up",
			Build:  cfg.Build,
			Host:   host,
		}
	}
}

// readiness reports ready once at least one enumeration set has registered;
// an empty directory means the refdata import is miswired.
func readiness(cfg Config) web.HandlerFunc {
	return func(ctx context.Context, r *http.Request) web.Encoder {
		sets := len(enum.Sets())

		status := "ready"
		if sets == 0 {
			status = "no sets registered"
			cfg.Log.Error(ctx, "readiness", "status", status)
		}

		return readyResponse{Status: status, Sets: sets}
	}
}
