package services

import (
	"fmt"

	"github.com/custodia-labs/burrowdb/internal/core/domain"
	"github.com/custodia-labs/burrowdb/internal/core/ports/driven"
	"github.com/custodia-labs/burrowdb/internal/core/ports/driving"
)

// Ensure KVService implements the interface.
var _ driving.KVService = (*KVService)(nil)

// KVService exposes a key-value store to the shell.
type KVService struct {
	store driven.KVStore
}

// NewKVService creates a new key-value service.
func NewKVService(store driven.KVStore) *KVService {
	return &KVService{store: store}
}

// Put stores value under key. Keys may not be empty.
func (s *KVService) Put(key, value string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if key == "" {
		return fmt.Errorf("empty key: %w", domain.ErrInvalidInput)
	}
	s.store.Put(key, value)
	return nil
}

// Get retrieves the value for key.
func (s *KVService) Get(key string) (string, error) {
	if s.store == nil {
		return "", domain.ErrNotImplemented
	}
	v, ok := s.store.Get(key)
	if !ok {
		return "", fmt.Errorf("key %q: %w", key, domain.ErrNotFound)
	}
	return v, nil
}

// List returns all keys in sorted order.
func (s *KVService) List() []string {
	if s.store == nil {
		return nil
	}
	return s.store.Keys()
}
