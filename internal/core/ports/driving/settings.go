package driving

import (
	"context"

	"github.com/custodia-labs/burrowdb/internal/core/domain"
)

// SettingsService manages persisted benchmark defaults.
type SettingsService interface {
	// Get returns the stored settings merged over the defaults.
	Get() (*domain.BenchmarkSettings, error)

	// Save validates and persists settings.
	Save(settings *domain.BenchmarkSettings) error

	// Watch calls onChange with fresh settings after each external edit
	// of the stored configuration, until ctx is cancelled. It returns
	// domain.ErrNotImplemented when the store cannot be watched.
	Watch(ctx context.Context, onChange func(*domain.BenchmarkSettings)) error
}
