package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/burrowdb/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/burrowdb/internal/core/domain"
)

type failingConfigStore struct {
	*memory.ConfigStore
}

func (f failingConfigStore) Set(string, any) error {
	return errors.New("disk full")
}

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBenchmarkSettings(), *settings)
}

func TestSettingsService_Get_NilStoreReturnsDefaults(t *testing.T) {
	service := NewSettingsService(nil)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBenchmarkSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("benchmark.sizes", []int64{10, 20})
	_ = store.Set("benchmark.queries", int64(50))
	_ = store.Set("benchmark.seed", int64(7))
	_ = store.Set("benchmark.retract_stale", true)

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, settings.Sizes)
	assert.Equal(t, 50, settings.Queries)
	assert.Equal(t, uint64(7), settings.Seed)
	assert.True(t, settings.RetractStale)
}

func TestSettingsService_Get_PartialValuesKeepDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("benchmark.queries", 5)

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, 5, settings.Queries)
	assert.Equal(t, domain.DefaultSizes(), settings.Sizes)
	assert.Equal(t, uint64(domain.DefaultSeed), settings.Seed)
	assert.False(t, settings.RetractStale)
}

func TestSettingsService_Save_RoundTrip(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	want := &domain.BenchmarkSettings{
		Sizes:        []int{100, 200, 300},
		Queries:      25,
		Seed:         1 << 63,
		RetractStale: true,
	}

	require.NoError(t, service.Save(want))
	got, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsService_Save_RejectsInvalid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	err := service.Save(&domain.BenchmarkSettings{Sizes: []int{0}, Queries: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = service.Save(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, ok := store.Get("benchmark.sizes")
	assert.False(t, ok)
}

func TestSettingsService_Save_PropagatesStoreError(t *testing.T) {
	service := NewSettingsService(failingConfigStore{memory.NewConfigStore()})

	err := service.Save(&domain.BenchmarkSettings{Sizes: []int{1}, Queries: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestSettingsService_Save_NilStore(t *testing.T) {
	service := NewSettingsService(nil)

	err := service.Save(&domain.BenchmarkSettings{Sizes: []int{1}, Queries: 1})

	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

type fakeWatcher struct {
	*memory.ConfigStore
	edits []map[string]any
}

func (f *fakeWatcher) Watch(_ context.Context, onChange func()) error {
	for _, edit := range f.edits {
		for k, v := range edit {
			_ = f.ConfigStore.Set(k, v)
		}
		onChange()
	}
	return nil
}

func TestSettingsService_Watch(t *testing.T) {
	store := &fakeWatcher{
		ConfigStore: memory.NewConfigStore(),
		edits: []map[string]any{
			{"benchmark.queries": int64(11)},
			{"benchmark.sizes": []any{int64(5)}},
		},
	}
	service := NewSettingsService(store)

	var seen []domain.BenchmarkSettings
	err := service.Watch(context.Background(), func(s *domain.BenchmarkSettings) {
		seen = append(seen, *s)
	})

	require.NoError(t, err)
	require.Len(t, seen, 2)
	assert.Equal(t, 11, seen[0].Queries)
	assert.Equal(t, domain.DefaultSizes(), seen[0].Sizes)
	assert.Equal(t, []int{5}, seen[1].Sizes)
}

func TestSettingsService_Watch_Unsupported(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.Watch(context.Background(), func(*domain.BenchmarkSettings) {})

	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}
