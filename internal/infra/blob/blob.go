// Package blob constructs the storage backend catalog exports are written
// through, keyed by driver name.
package blob

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahrav/enumkit/internal/infra/blob/core"
	"github.com/ahrav/enumkit/internal/infra/blob/fs"
	"github.com/ahrav/enumkit/internal/infra/blob/memory"
	"github.com/ahrav/enumkit/internal/infra/blob/s3"
)

// Config selects and parameterizes a blob store backend.
type Config struct {
	Driver core.Driver `yaml:"driver" json:"driver" validate:"omitempty,oneof=fs memory s3"`

	// Root is the base directory for the fs driver.
	Root string `yaml:"root" json:"root,omitempty"`

	// S3 settings; Bucket is required for the s3 driver.
	Bucket    string `yaml:"bucket" json:"bucket,omitempty"`
	Region    string `yaml:"region" json:"region,omitempty"`
	Endpoint  string `yaml:"endpoint" json:"endpoint,omitempty"`
	PathStyle bool   `yaml:"path_style" json:"pathStyle,omitempty"`
}

// ErrUnknownDriver indicates a Config naming a driver no backend implements.
var ErrUnknownDriver = errors.New("unknown blob driver")

// Open constructs the store the config names. An empty driver defaults to
// memory, which needs no external state.
func Open(ctx context.Context, cfg Config) (core.Store, error) {
	switch cfg.Driver {
	case core.DriverMemory, "":
		return memory.New(), nil

	case core.DriverFS:
		store, err := fs.New(cfg.Root)
		if err != nil {
			return nil, fmt.Errorf("opening fs blob store: %w", err)
		}
		return store, nil

	case core.DriverS3:
		store, err := s3.New(ctx, s3.Config{
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			Endpoint:  cfg.Endpoint,
			PathStyle: cfg.PathStyle,
		})
		if err != nil {
			return nil, fmt.Errorf("opening s3 blob store: %w", err)
		}
		return store, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
}
