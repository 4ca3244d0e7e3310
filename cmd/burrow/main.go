// Command burrow benchmarks an in-memory document store against an
// in-memory relational store and hosts a small key-value shell.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/custodia-labs/burrowdb/internal/adapters/driven/config/file"
	"github.com/custodia-labs/burrowdb/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/burrowdb/internal/adapters/driving/cli"
	"github.com/custodia-labs/burrowdb/internal/core/domain"
	"github.com/custodia-labs/burrowdb/internal/core/ports/driven"
	"github.com/custodia-labs/burrowdb/internal/core/services"
	"github.com/custodia-labs/burrowdb/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx, bootstrap); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires adapters into services.
func bootstrap(configDir string) (*cli.Services, error) {
	return &cli.Services{
		Benchmark: services.NewBenchmarkService(newDocumentEngine, newRelationalEngine),
		Settings:  services.NewSettingsService(openConfigStore(configDir)),
		KV:        services.NewKVService(memory.NewKVStore()),
	}, nil
}

// openConfigStore falls back to an in-memory store when the config
// directory cannot be used, so benchmarks still run with defaults and
// settings set reports that nothing was saved.
func openConfigStore(configDir string) driven.ConfigStore {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		return memory.NewFallbackConfigStore(err)
	}
	logger.Debug("config loaded from %s", store.Path())
	return store
}

func newDocumentEngine(s domain.BenchmarkSettings) driven.DocumentEngine {
	return memory.NewDocumentStoreWithOptions(memory.DocumentStoreOptions{RetractStale: s.RetractStale})
}

func newRelationalEngine(s domain.BenchmarkSettings) driven.RelationalEngine {
	return memory.NewRelationalStoreWithOptions(memory.RelationalStoreOptions{RetractStale: s.RetractStale})
}
