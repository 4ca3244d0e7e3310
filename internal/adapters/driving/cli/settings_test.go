package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/burrowdb/internal/core/domain"
)

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range settingsCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "show")
	assert.Contains(t, names, "set")
}

func TestSettingsShow_Defaults(t *testing.T) {
	defer setupTestServices()()

	out, err := execute(t, "", "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Benchmark]")
	assert.Contains(t, out, "Sizes: 1000,5000,10000")
	assert.Contains(t, out, "Queries: 1000")
	assert.Contains(t, out, "Seed: 42")
	assert.Contains(t, out, "Retract stale entries: false")
}

func TestSettingsSet_OnlyChangesGivenFlags(t *testing.T) {
	defer setupTestServices()()

	out, err := execute(t, "", "settings", "set", "--queries", "77", "--retract-stale")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings saved.")

	got, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, 77, got.Queries)
	assert.True(t, got.RetractStale)
	assert.Equal(t, domain.DefaultSizes(), got.Sizes)
	assert.Equal(t, uint64(domain.DefaultSeed), got.Seed)
}

func TestSettingsSet_RejectsInvalid(t *testing.T) {
	defer setupTestServices()()

	_, err := execute(t, "", "settings", "set", "--queries", "0")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsCmd_NoService(t *testing.T) {
	_, err := execute(t, "", "settings")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
