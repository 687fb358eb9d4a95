package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/enumkit/pkg/catalog"
)

func TestWriteFileReadFile(t *testing.T) {
	recs := sampleRecords()

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "severity.json")
		require.NoError(t, catalog.WriteFile(path, recs))

		got, err := catalog.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, recs, got)
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "severity.yaml")
		require.NoError(t, catalog.WriteFile(path, recs))

		got, err := catalog.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, recs, got)
	})

	t.Run("yml alias", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "severity.yml")
		require.NoError(t, catalog.WriteFile(path, recs))

		_, err := catalog.ReadFile(path)
		require.NoError(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		err := catalog.WriteFile(filepath.Join(t.TempDir(), "severity.toml"), recs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ".toml")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := catalog.ReadFile(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
	})
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, catalog.WriteFile(filepath.Join(dir, "severity.json"), sampleRecords()))
	require.NoError(t, catalog.WriteFile(filepath.Join(dir, "environment.yaml"), []catalog.Record{
		{Text: "Production", Value: 1, Index: 1, OID: "a3b2c1d0-1111-4222-8333-444455556666", Visible: true},
	}))
	// Non-catalog files and subdirectories are skipped.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("notes"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))

	got, err := catalog.LoadDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, sampleRecords(), got["severity"])
	assert.Equal(t, "Production", got["environment"][0].Text)
}

func TestLoadDir_DuplicateStem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, catalog.WriteFile(filepath.Join(dir, "severity.json"), sampleRecords()))
	require.NoError(t, catalog.WriteFile(filepath.Join(dir, "severity.yaml"), sampleRecords()))

	_, err := catalog.LoadDir(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "severity")
}

func TestLoadDir_MissingDir(t *testing.T) {
	_, err := catalog.LoadDir(context.Background(), filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestLoadDir_BadCatalogFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, catalog.WriteFile(filepath.Join(dir, "good.json"), sampleRecords()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{broken"), 0o644))

	_, err := catalog.LoadDir(context.Background(), dir)
	require.Error(t, err)
}
