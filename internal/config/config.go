// Package config defines the service configuration and the Loader seam the
// binaries read it through.
package config

import (
	"context"
	"time"

	"github.com/ahrav/enumkit/internal/infra/blob"
)

// Config represents the top-level service configuration.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	API     APIConfig     `yaml:"api"`
	Debug   DebugConfig   `yaml:"debug"`
	Otel    OtelConfig    `yaml:"otel"`
	Catalog CatalogConfig `yaml:"catalog"`
}

// ServiceConfig names the running service.
type ServiceConfig struct {
	Name string `yaml:"name"`
}

// APIConfig holds the HTTP listener settings.
type APIConfig struct {
	Host               string        `yaml:"host"`
	ReadTimeout        time.Duration `yaml:"read_timeout"`
	WriteTimeout       time.Duration `yaml:"write_timeout"`
	IdleTimeout        time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
}

// DebugConfig holds the debug listener settings.
type DebugConfig struct {
	Host string `yaml:"host"`
}

// OtelConfig holds the telemetry exporter settings.
type OtelConfig struct {
	Endpoint    string  `yaml:"endpoint"`
	Probability float64 `yaml:"probability"`
	Insecure    bool    `yaml:"insecure"`
}

// CatalogConfig points at the deployed catalog files and the export target.
type CatalogConfig struct {
	// Dir is an optional directory of deployed catalog files checked for
	// drift at startup.
	Dir string `yaml:"dir"`

	// Export is the blob backend the export surfaces write through.
	Export blob.Config `yaml:"export"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Service: ServiceConfig{Name: "enumkit-server"},
		API: APIConfig{
			Host:               "0.0.0.0:6000",
			ReadTimeout:        5 * time.Second,
			WriteTimeout:       10 * time.Second,
			IdleTimeout:        120 * time.Second,
			ShutdownTimeout:    20 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Debug: DebugConfig{Host: "0.0.0.0:6010"},
		Otel:  OtelConfig{Probability: 0.05, Insecure: true},
	}
}

// Loader loads configuration from some backing source.
type Loader interface {
	Load(ctx context.Context) (*Config, error)
}
