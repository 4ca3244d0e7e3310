package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/burrowdb/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/burrowdb/internal/core/domain"
)

func TestKVService_PutGet(t *testing.T) {
	service := NewKVService(memory.NewKVStore())

	require.NoError(t, service.Put("name", "burrow db"))
	got, err := service.Get("name")

	require.NoError(t, err)
	assert.Equal(t, "burrow db", got)
}

func TestKVService_PutOverwrites(t *testing.T) {
	service := NewKVService(memory.NewKVStore())

	require.NoError(t, service.Put("k", "one"))
	require.NoError(t, service.Put("k", "two"))

	got, err := service.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "two", got)
	assert.Equal(t, []string{"k"}, service.List())
}

func TestKVService_Get_Missing(t *testing.T) {
	service := NewKVService(memory.NewKVStore())

	_, err := service.Get("missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestKVService_Put_EmptyKey(t *testing.T) {
	service := NewKVService(memory.NewKVStore())

	err := service.Put("", "v")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, service.List())
}

func TestKVService_List_Sorted(t *testing.T) {
	service := NewKVService(memory.NewKVStore())
	for _, k := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, service.Put(k, k))
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, service.List())
}

func TestKVService_NilStore(t *testing.T) {
	service := NewKVService(nil)

	assert.ErrorIs(t, service.Put("k", "v"), domain.ErrNotImplemented)
	_, err := service.Get("k")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.Nil(t, service.List())
}
