package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/burrowdb/internal/core/domain"
	"github.com/custodia-labs/burrowdb/internal/core/ports/driven"
	"github.com/custodia-labs/burrowdb/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keySizes        = "benchmark.sizes"
	keyQueries      = "benchmark.queries"
	keySeed         = "benchmark.seed"
	keyRetractStale = "benchmark.retract_stale"
)

// SettingsService manages the persisted benchmark defaults.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns stored settings, falling back to defaults per key.
func (s *SettingsService) Get() (*domain.BenchmarkSettings, error) {
	defaults := domain.DefaultBenchmarkSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.BenchmarkSettings{
		Sizes:        s.getSizes(defaults.Sizes),
		Queries:      s.getInt(keyQueries, defaults.Queries),
		Seed:         s.getSeed(defaults.Seed),
		RetractStale: s.getBool(keyRetractStale, defaults.RetractStale),
	}
	return settings, nil
}

// Save validates settings and writes every key.
func (s *SettingsService) Save(settings *domain.BenchmarkSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if settings == nil {
		return fmt.Errorf("nil settings: %w", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keySizes, append([]int(nil), settings.Sizes...)); err != nil {
		return fmt.Errorf("failed to save sizes: %w", err)
	}
	if err := s.configStore.Set(keyQueries, settings.Queries); err != nil {
		return fmt.Errorf("failed to save queries: %w", err)
	}
	// Stored as int64; the conversion back in getSeed restores the bits.
	if err := s.configStore.Set(keySeed, int64(settings.Seed)); err != nil {
		return fmt.Errorf("failed to save seed: %w", err)
	}
	if err := s.configStore.Set(keyRetractStale, settings.RetractStale); err != nil {
		return fmt.Errorf("failed to save retract_stale: %w", err)
	}
	return nil
}

// Watch re-reads settings after each external edit of the config.
func (s *SettingsService) Watch(ctx context.Context, onChange func(*domain.BenchmarkSettings)) error {
	w, ok := s.configStore.(driven.ConfigWatcher)
	if !ok {
		return domain.ErrNotImplemented
	}
	return w.Watch(ctx, func() {
		settings, err := s.Get()
		if err != nil {
			return
		}
		onChange(settings)
	})
}

func (s *SettingsService) getSizes(defaultVal []int) []int {
	sizes := s.configStore.GetIntSlice(keySizes)
	if len(sizes) == 0 {
		return defaultVal
	}
	return sizes
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getSeed(defaultVal uint64) uint64 {
	val, ok := s.configStore.Get(keySeed)
	if !ok {
		return defaultVal
	}
	switch v := val.(type) {
	case int64:
		return uint64(v)
	case int:
		return uint64(v)
	case uint64:
		return v
	default:
		return defaultVal
	}
}
