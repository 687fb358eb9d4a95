// Package memory implements the blob store over a process-local map. It is
// the default backend for tests and zero-config runs.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ahrav/enumkit/internal/infra/blob/core"
)

// Store is an in-memory core.Store. The zero value is not usable; construct
// with New.
type Store struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{objects: make(map[string][]byte)}
}

// Driver implements the core.Store interface.
func (s *Store) Driver() core.Driver { return core.DriverMemory }

// Put stores data under key, replacing any previous object.
func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if key == "" {
		return fmt.Errorf("blob key required")
	}

	cp := make([]byte, len(data))
	copy(cp, data)

	s.mu.Lock()
	s.objects[key] = cp
	s.mu.Unlock()
	return nil
}

// Get returns a copy of the object stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	data, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("blob %q not found", key)
	}

	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

// List returns the keys under prefix in lexical order.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	s.mu.RUnlock()

	sort.Strings(keys)
	return keys, nil
}

// Delete removes the object stored under key, if present.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}
