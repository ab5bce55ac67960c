// Package storage owns the JSON file backing the job list. No other
// package touches the file directly.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONFile persists a single JSON document at a fixed path. Every save
// rewrites the whole document; writes go through a temp file and rename
// so a crash mid-write cannot leave a truncated document behind.
type JSONFile struct {
	path string
}

// NewJSONFile creates a store for the document at path.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the backing file path.
func (f *JSONFile) Path() string {
	return f.path
}

// Init ensures the parent directory exists and seeds the file with an
// empty array when it is absent.
func (f *JSONFile) Init() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if _, err := os.Stat(f.path); os.IsNotExist(err) {
		if err := f.write([]byte("[]\n")); err != nil {
			return fmt.Errorf("seed %s: %w", f.path, err)
		}
	}
	return nil
}

// Load decodes the document into v. A missing, unreadable or corrupt
// file leaves v untouched and returns false; storage reads are lossy by
// contract, the last good write wins.
func (f *JSONFile) Load(v any) bool {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false
	}
	return true
}

// Save encodes v and atomically replaces the document. A failed save
// leaves the previous content in place.
func (f *JSONFile) Save(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}
	if err := f.write(append(data, '\n')); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}

func (f *JSONFile) write(data []byte) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".jobs-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
