package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/burrowdb/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/burrowdb/internal/core/domain"
	"github.com/custodia-labs/burrowdb/internal/core/ports/driven"
	"github.com/custodia-labs/burrowdb/internal/core/services"
)

// setupTestServices wires in-memory services and returns a cleanup func.
func setupTestServices() func() {
	benchmarkService = services.NewBenchmarkService(
		func(s domain.BenchmarkSettings) driven.DocumentEngine {
			return memory.NewDocumentStoreWithOptions(memory.DocumentStoreOptions{RetractStale: s.RetractStale})
		},
		func(s domain.BenchmarkSettings) driven.RelationalEngine {
			return memory.NewRelationalStoreWithOptions(memory.RelationalStoreOptions{RetractStale: s.RetractStale})
		},
	)
	settingsService = services.NewSettingsService(memory.NewConfigStore())
	kvService = services.NewKVService(memory.NewKVStore())

	return func() {
		benchmarkService = nil
		settingsService = nil
		kvService = nil
		bootstrap = nil
	}
}

// resetFlags restores every flag to its default so runs don't leak.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and stdin, returning output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	var in io.Reader = strings.NewReader(stdin)
	rootCmd.SetIn(in)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
