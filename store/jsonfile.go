package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadJSON returns the decoded contents of path, or def when the file is
// missing, unreadable or not valid JSON. It never reports an error.
func LoadJSON[T any](path string, def T) T {
	v, err := readJSON[T](path)
	if err != nil {
		return def
	}
	return v
}

// SaveJSON overwrites path with the indented JSON encoding of v
func SaveJSON(path string, v any) error {
	_, err := writeJSON(path, v)
	return err
}

func readJSON[T any](path string) (T, error) {
	var v T
	data, err := os.ReadFile(path)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return v, nil
}

// writeJSON returns the bytes it wrote so callers can mirror them elsewhere
func writeJSON(path string, v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return data, nil
}
