package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// EncodeJSON writes recs as a pretty-printed JSON array terminated by a
// newline, the layout catalog files are stored and reviewed in.
func EncodeJSON(w io.Writer, recs []Record) error {
	if recs == nil {
		recs = []Record{}
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}

// DecodeJSON reads a JSON array of records. Field names match
// case-insensitively and unknown fields are ignored.
func DecodeJSON(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	return recs, nil
}

// EncodeYAML writes recs as a YAML sequence.
func EncodeYAML(w io.Writer, recs []Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(recs); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush records: %w", err)
	}
	return nil
}

// DecodeYAML reads a YAML sequence of records. An empty document yields an
// empty catalog.
func DecodeYAML(r io.Reader) ([]Record, error) {
	var recs []Record
	if err := yaml.NewDecoder(r).Decode(&recs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	return recs, nil
}
