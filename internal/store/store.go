// Package store is a small persistent key/value map shared by every running
// instance on the machine, in the spirit of browser local storage. Values
// are strings; callers encode structured values themselves.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/natefinch/atomic"
)

// Store is safe for concurrent use.
type Store struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

// Open loads the store at path. A missing file is an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: map[string]string{}}
	values, err := s.read()
	if err != nil {
		return nil, err
	}
	s.values = values
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// Get returns the cached value for key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Keys returns the cached keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set writes key. The file is re-read first so keys written by other
// instances survive.
func (s *Store) Set(key, value string) error {
	return s.update(func(values map[string]string) { values[key] = value })
}

func (s *Store) update(apply func(map[string]string)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return err
	}
	apply(values)
	if err := s.write(values); err != nil {
		return err
	}
	s.values = values
	return nil
}

// Reload re-reads the file and returns the keys whose values changed,
// including removed keys.
func (s *Store) Reload() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return nil, err
	}
	var changed []string
	for k, v := range values {
		if old, ok := s.values[k]; !ok || old != v {
			changed = append(changed, k)
		}
	}
	for k := range s.values {
		if _, ok := values[k]; !ok {
			changed = append(changed, k)
		}
	}
	sort.Strings(changed)
	s.values = values
	return changed, nil
}

func (s *Store) read() (map[string]string, error) {
	values := map[string]string{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil
		}
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return values, nil
}

func (s *Store) write(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	return atomic.WriteFile(s.path, bytes.NewReader(data))
}
