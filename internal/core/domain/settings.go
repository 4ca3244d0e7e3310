package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Default benchmark parameters.
const (
	DefaultQueries = 1000
	DefaultSeed    = 42
)

// DefaultSizes are the dataset scales run when none are configured.
func DefaultSizes() []int {
	return []int{1000, 5000, 10000}
}

// BenchmarkSettings is the full external configuration surface of a run.
type BenchmarkSettings struct {
	// Sizes is the list of dataset scales (record counts) to run.
	Sizes []int

	// Queries is the number of queries issued per engine per scale.
	Queries int

	// Seed seeds the generator for both engines.
	Seed uint64

	// RetractStale removes index entries left behind when a record
	// with an existing ID is stored again.
	RetractStale bool
}

// DefaultBenchmarkSettings returns the stock three-scale configuration.
func DefaultBenchmarkSettings() BenchmarkSettings {
	return BenchmarkSettings{
		Sizes:   DefaultSizes(),
		Queries: DefaultQueries,
		Seed:    DefaultSeed,
	}
}

// Validate checks that every scale and the query count are positive.
func (s BenchmarkSettings) Validate() error {
	if len(s.Sizes) == 0 {
		return fmt.Errorf("at least one dataset size is required: %w", ErrInvalidInput)
	}
	for _, n := range s.Sizes {
		if n <= 0 {
			return fmt.Errorf("dataset size %d must be positive: %w", n, ErrInvalidInput)
		}
	}
	if s.Queries <= 0 {
		return fmt.Errorf("query count %d must be positive: %w", s.Queries, ErrInvalidInput)
	}
	return nil
}

// ParseSizes parses a comma separated list such as "1000,5000,10000".
func ParseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("parse size %q: %w", p, ErrInvalidInput)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes in %q: %w", s, ErrInvalidInput)
	}
	return sizes, nil
}

// FormatSizes is the inverse of ParseSizes.
func FormatSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, n := range sizes {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
