package store

import (
	"encoding/json"
	"errors"
	"os"
)

// CheckboxStore persists the per-SKU checkbox toggles of the UI. The whole
// mapping is loaded and rewritten on every update, so any durable key-value
// backend can stand in for the file store.
type CheckboxStore interface {
	Load() (map[string]bool, error)
	Save(state map[string]bool) error
}

// FileStore keeps the checkbox state as a single JSON document on disk,
// a flat {"SKU": bool} mapping.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the state document. A missing file is an empty mapping, not an
// error.
func (s *FileStore) Load() (map[string]bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, err
	}

	var state map[string]bool
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state == nil {
		state = map[string]bool{}
	}
	return state, nil
}

// Save rewrites the whole state document.
func (s *FileStore) Save(state map[string]bool) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
