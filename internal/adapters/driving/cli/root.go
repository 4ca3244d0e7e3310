// Package cli provides the burrow command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/burrowdb/internal/core/ports/driving"
	"github.com/custodia-labs/burrowdb/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
)

// Services used by the commands. Set by the bootstrap or by tests.
var (
	benchmarkService driving.BenchmarkService
	settingsService  driving.SettingsService
	kvService        driving.KVService
)

// Services bundles the driving ports the commands call.
type Services struct {
	Benchmark driving.BenchmarkService
	Settings  driving.SettingsService
	KV        driving.KVService
}

// Bootstrap builds the services once global flags are parsed. configDir
// is the value of --config-dir, empty for the default location.
type Bootstrap func(configDir string) (*Services, error)

var bootstrap Bootstrap

var rootCmd = &cobra.Command{
	Use:   "burrow",
	Short: "Document vs relational storage benchmark",
	Long: `burrow runs a deterministic workload against an in-memory document
store and an in-memory relational store, then compares their timing,
estimated memory and query hit rate.

It also ships a small key-value shell.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if bootstrap == nil {
			return nil
		}
		svc, err := bootstrap(configDir)
		if err != nil {
			return fmt.Errorf("failed to initialise: %w", err)
		}
		benchmarkService = svc.Benchmark
		settingsService = svc.Settings
		kvService = svc.KV
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.burrow)")
}

// Execute runs the CLI. b is invoked before any command runs.
func Execute(ctx context.Context, b Bootstrap) error {
	bootstrap = b
	return rootCmd.ExecuteContext(ctx)
}
