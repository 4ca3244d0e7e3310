package driving

import (
	"context"

	"github.com/custodia-labs/burrowdb/internal/core/domain"
)

// BenchmarkService runs the document vs relational comparison.
type BenchmarkService interface {
	// Run executes both workloads for every configured size.
	Run(ctx context.Context, settings domain.BenchmarkSettings) (*domain.BenchmarkReport, error)
}
