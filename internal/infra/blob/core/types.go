// Package core defines the storage abstraction shared by the blob backends.
package core

import "context"

// Driver identifies a concrete blob storage backend implementation.
type Driver string

const (
	// DriverFS represents the local filesystem implementation.
	DriverFS Driver = "fs"
	// DriverS3 represents an S3 / MinIO compatible implementation.
	DriverS3 Driver = "s3"
	// DriverMemory represents an in-memory implementation used in tests and
	// as the zero-setup default.
	DriverMemory Driver = "memory"
)

// Store is the byte-oriented surface catalog exports are written through.
// Keys map to object keys (or file paths) directly.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	List(ctx context.Context, prefix string) ([]string, error)
	Delete(ctx context.Context, key string) error
	Driver() Driver
}
