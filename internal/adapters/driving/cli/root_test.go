package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/burrowdb/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/burrowdb/internal/core/services"
	"github.com/custodia-labs/burrowdb/internal/logger"
)

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"bench", "analysis", "shell", "settings", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config-dir"))
}

func TestExecute_BootstrapReceivesConfigDir(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	kvService = nil

	var gotDir string
	bootstrap = func(dir string) (*Services, error) {
		gotDir = dir
		return &Services{KV: services.NewKVService(memory.NewKVStore())}, nil
	}

	out, err := execute(t, "PUT a 1\n", "--config-dir", "/tmp/burrow-test", "shell")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/burrow-test", gotDir)
	assert.Contains(t, out, "Stored: a = 1")
}

func TestExecute_BootstrapError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	bootstrap = func(string) (*Services, error) {
		return nil, errors.New("no home")
	}

	_, err := execute(t, "", "analysis")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no home")
}

func TestExecute_VerboseEnablesLogger(t *testing.T) {
	defer logger.SetVerbose(false)

	_, err := execute(t, "", "--verbose", "version")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestExecute_UsesBootstrap(t *testing.T) {
	defer setupTestServices()()
	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	called := false
	err := Execute(context.Background(), func(string) (*Services, error) {
		called = true
		return &Services{}, nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}
