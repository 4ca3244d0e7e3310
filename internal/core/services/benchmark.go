package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/burrowdb/internal/core/domain"
	"github.com/custodia-labs/burrowdb/internal/core/ports/driven"
	"github.com/custodia-labs/burrowdb/internal/core/ports/driving"
	"github.com/custodia-labs/burrowdb/internal/logger"
)

// Ensure BenchmarkService implements the interface.
var _ driving.BenchmarkService = (*BenchmarkService)(nil)

// DocumentEngineFactory builds a fresh, empty document engine.
type DocumentEngineFactory func(settings domain.BenchmarkSettings) driven.DocumentEngine

// RelationalEngineFactory builds a fresh, empty relational engine.
type RelationalEngineFactory func(settings domain.BenchmarkSettings) driven.RelationalEngine

// BenchmarkService runs the workload against both engines at every
// configured scale and compares the results.
type BenchmarkService struct {
	newDocuments  DocumentEngineFactory
	newRelational RelationalEngineFactory
	driver        *WorkloadDriver
	newRunID      func() string
	now           func() time.Time
}

// NewBenchmarkService creates a benchmark service. Each scale gets new
// engines from the factories so runs never share state.
func NewBenchmarkService(newDocuments DocumentEngineFactory, newRelational RelationalEngineFactory) *BenchmarkService {
	return &BenchmarkService{
		newDocuments:  newDocuments,
		newRelational: newRelational,
		driver:        NewWorkloadDriver(),
		newRunID:      uuid.NewString,
		now:           time.Now,
	}
}

// Run executes both workloads for every size in settings.
func (s *BenchmarkService) Run(ctx context.Context, settings domain.BenchmarkSettings) (*domain.BenchmarkReport, error) {
	if s.newDocuments == nil || s.newRelational == nil {
		return nil, domain.ErrNotImplemented
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	report := &domain.BenchmarkReport{
		RunID:     s.newRunID(),
		StartedAt: s.now(),
		Settings:  settings,
		Scales:    make([]domain.ScaleResult, 0, len(settings.Sizes)),
	}

	logger.Section("Benchmark " + report.RunID)
	for _, size := range settings.Sizes {
		scale, err := s.runScale(ctx, settings, size)
		if err != nil {
			return nil, fmt.Errorf("scale %d: %w", size, err)
		}
		report.Scales = append(report.Scales, *scale)
	}
	return report, nil
}

func (s *BenchmarkService) runScale(
	ctx context.Context,
	settings domain.BenchmarkSettings,
	size int,
) (*domain.ScaleResult, error) {
	params := WorkloadParams{Records: size, Queries: settings.Queries, Seed: settings.Seed}
	logger.Info("running %d records, %d queries, seed %d", size, settings.Queries, settings.Seed)
	defer logger.Timer(fmt.Sprintf("scale %d", size))()

	doc, err := s.driver.RunDocument(ctx, s.newDocuments(settings), params)
	if err != nil {
		return nil, err
	}
	rel, err := s.driver.RunRelational(ctx, s.newRelational(settings), params)
	if err != nil {
		return nil, err
	}

	return &domain.ScaleResult{
		Records:    size,
		Queries:    settings.Queries,
		Document:   *doc,
		Relational: *rel,
		Comparison: domain.Compare(*doc, *rel),
	}, nil
}
