// Package store reads and writes the JSON files behind the interviewer's
// documents and session snapshots. All writes are human-readable (2-space
// indent) and atomic: content lands in a sibling temp file first and is
// renamed over the target, so no reader ever observes a half-written file.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// LoadOrDefault decodes the JSON document at path over v. The caller seeds v
// with the document defaults; keys present in the file overwrite them and
// keys absent from the file keep their default values. A missing file leaves
// v untouched and is not an error.
func LoadOrDefault(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Load decodes the JSON document at path into v. Unlike LoadOrDefault a
// missing file is an error.
func Load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Save serializes v as indented JSON and atomically replaces path, creating
// parent directories as needed. On failure the previous file content, if any,
// is still in place.
func Save(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
