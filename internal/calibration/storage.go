// Package calibration persists and applies user-chosen zero-point offsets
// for heading ("this way is North") and pitch ("this tilt is the horizon").
package calibration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Storage is string-keyed durable storage for calibration values.
// The store treats it as best-effort: failures keep calibration working
// for the current session.
type Storage interface {
	// Get returns the value for key, with ok=false when absent.
	Get(key string) (value string, ok bool, err error)

	// Set durably writes the value for key.
	Set(key, value string) error
}

// FileStorage keeps key-value pairs in one YAML file on disk.
type FileStorage struct {
	path string
	mu   sync.Mutex
}

// NewFileStorage creates storage backed by the YAML file at path.
// The file is created on first Set.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: filepath.Clean(path)}
}

// Get implements Storage.
func (s *FileStorage) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return "", false, err
	}

	v, ok := values[key]
	return v, ok, nil
}

// Set implements Storage.
func (s *FileStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		// A garbled file should not brick calibration forever;
		// start over with a fresh map.
		values = map[string]string{}
	}
	values[key] = value

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode calibration file: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write calibration file: %w", err)
	}

	return nil
}

func (s *FileStorage) read() (map[string]string, error) {
	contents, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read calibration file: %w", err)
	}

	values := map[string]string{}
	if err := yaml.Unmarshal(contents, &values); err != nil {
		return nil, fmt.Errorf("decode calibration file: %w", err)
	}

	return values, nil
}

// MemoryStorage is an in-memory Storage for tests and transient sessions.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string

	// FailSets makes every Set return an error, for exercising the
	// best-effort persistence path.
	FailSets bool
}

// NewMemoryStorage creates empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: map[string]string{}}
}

// Get implements Storage.
func (s *MemoryStorage) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set implements Storage.
func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSets {
		return errors.New("storage unavailable")
	}
	s.values[key] = value
	return nil
}
