package fileloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadOverridesDefaults verifies file values land over the defaults while
// unnamed fields keep them.
func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
service:
  name: enumkit-test
api:
  host: 127.0.0.1:7000
  read_timeout: 2s
catalog:
  dir: /etc/enumkit/catalogs
  export:
    driver: fs
    root: /var/lib/enumkit
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "enumkit-test", cfg.Service.Name)
	assert.Equal(t, "127.0.0.1:7000", cfg.API.Host)
	assert.Equal(t, 2*time.Second, cfg.API.ReadTimeout)
	assert.Equal(t, "/etc/enumkit/catalogs", cfg.Catalog.Dir)
	assert.Equal(t, "fs", string(cfg.Catalog.Export.Driver))

	// Defaults survive for fields the file does not name.
	assert.Equal(t, 10*time.Second, cfg.API.WriteTimeout)
	assert.Equal(t, "0.0.0.0:6010", cfg.Debug.Host)
}

// TestLoadMissingFile verifies a readable error for an absent path.
func TestLoadMissingFile(t *testing.T) {
	_, err := NewFileLoader("/no/such/config.yaml").Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

// TestLoadMalformedFile verifies a parse failure is reported as such.
func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("service: ["), 0o644))

	_, err := NewFileLoader(path).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}
