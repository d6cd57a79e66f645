package track

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists the product mapping as a single JSON document. Writes go
// through a temp file plus rename so a crash mid-write never leaves a
// truncated store behind.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore rooted at path. The file is created on the
// first SetAll; a missing file reads as an empty mapping.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// GetAll reads the full mapping from disk.
func (s *FileStore) GetAll() (map[string]ProductRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]ProductRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("track: read store file: %w", err)
	}
	if len(data) == 0 {
		return map[string]ProductRecord{}, nil
	}
	var records map[string]ProductRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("track: parse store file: %w", err)
	}
	if records == nil {
		records = map[string]ProductRecord{}
	}
	return records, nil
}

// SetAll replaces the mapping on disk atomically.
func (s *FileStore) SetAll(records map[string]ProductRecord) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("track: create store dir: %w", err)
	}
	encoded, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("track: encode store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(encoded, '\n'), 0o600); err != nil {
		return fmt.Errorf("track: write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("track: replace store file: %w", err)
	}
	return nil
}
