package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a catalog file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// formatForPath maps a file extension to its Format.
func formatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported catalog extension %q", filepath.Ext(path))
	}
}

// WriteFile writes recs to path, choosing the encoding from the extension.
func WriteFile(path string, recs []Record) error {
	format, err := formatForPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		err = EncodeJSON(&buf, recs)
	case FormatYAML:
		err = EncodeYAML(&buf, recs)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}

// ReadFile reads the catalog at path, choosing the decoding from the
// extension.
func ReadFile(path string) ([]Record, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	if format == FormatJSON {
		return DecodeJSON(bytes.NewReader(data))
	}
	return DecodeYAML(bytes.NewReader(data))
}
