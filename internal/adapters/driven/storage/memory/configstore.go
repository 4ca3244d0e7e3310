package memory

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/burrowdb/internal/adapters/driven/config/convert"
	"github.com/custodia-labs/burrowdb/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps benchmark settings in process memory.
//
// Tests use it directly. When the config directory cannot be opened the
// binary falls back to it, and Save then reports that settings were not
// persisted instead of silently dropping them at exit.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
	cause  error
}

// NewConfigStore creates an empty in-memory config store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]any)}
}

// NewFallbackConfigStore creates a store standing in for a config file
// that could not be opened because of cause.
func NewFallbackConfigStore(cause error) *ConfigStore {
	s := NewConfigStore()
	s.cause = cause
	return s
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, _ := s.Get(key)
	str, _ := val.(string)
	return str
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	val, _ := s.Get(key)
	n, _ := convert.Int(val)
	return n
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	val, _ := s.Get(key)
	b, _ := val.(bool)
	return b
}

// GetIntSlice retrieves an integer slice configuration value.
func (s *ConfigStore) GetIntSlice(key string) []int {
	val, _ := s.Get(key)
	return convert.IntSlice(val)
}

// Set stores a configuration value for the life of the process.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Save is a no-op, except for a fallback store where it returns the
// reason the config file is unavailable.
func (s *ConfigStore) Save() error {
	if s.cause != nil {
		return fmt.Errorf("settings kept in memory only: %w", s.cause)
	}
	return nil
}

// Load is a no-op.
func (s *ConfigStore) Load() error {
	return nil
}

// Path returns ":memory:".
func (s *ConfigStore) Path() string {
	return ":memory:"
}
