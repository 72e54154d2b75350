package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Store is a single-file JSON document store. Values are kept as raw JSON
// and decoded on demand; Save rewrites the whole document.
type Store struct {
	path string
	doc  map[string]json.RawMessage
}

// Open loads the document at path. A missing file yields an empty store
// (the parent directory is created so a later Save succeeds); any other
// read or parse failure propagates.
func Open(path string) (*Store, error) {
	s := &Store{path: path, doc: make(map[string]json.RawMessage)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return nil, fmt.Errorf("creating store directory: %w", err)
			}
			return s, nil
		}
		return nil, fmt.Errorf("opening store %s: %w", path, err)
	}

	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("parsing store %s: %w", path, err)
	}
	return s, nil
}

// Get decodes the value stored under key into out. The boolean reports
// whether the key exists.
func (s *Store) Get(key string, out any) (bool, error) {
	raw, ok := s.doc[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("decoding store key %q: %w", key, err)
	}
	return true, nil
}

// Set stages a value under key. The change is not durable until Save.
func (s *Store) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding store key %q: %w", key, err)
	}
	s.doc[key] = raw
	return nil
}

// Delete removes a key from the document. Missing keys are a no-op.
func (s *Store) Delete(key string) {
	delete(s.doc, key)
}

// Keys returns the document keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.doc))
	for k := range s.doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save flushes the whole document to disk. The write goes through a
// temporary file and a rename so a crash cannot leave a half-written store.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing store: %w", err)
	}
	return nil
}
