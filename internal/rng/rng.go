// Package rng provides the deterministic generator that feeds both
// storage engines. Two generators built from the same seed yield the
// same sequence on every platform, which is what makes the document
// and relational runs comparable.
package rng

import (
	"fmt"
	"math"

	"github.com/custodia-labs/burrowdb/internal/core/domain"
)

// Linear-congruential recurrence constants (Numerical Recipes).
const (
	multiplier = 1664525
	increment  = 1013904223
)

// Generator is a seeded LCG. It is not safe for concurrent use.
type Generator struct {
	state uint64
}

// New creates a generator whose first output derives from seed.
func New(seed uint64) *Generator {
	return &Generator{state: seed}
}

// Next advances the state and returns it. Arithmetic wraps mod 2^64.
func (g *Generator) Next() uint64 {
	g.state = g.state*multiplier + increment
	return g.state
}

// Range returns an integer in [min, max) by modulo reduction.
// It fails with domain.ErrInvalidRange, without advancing, when max <= min.
func (g *Generator) Range(min, max int) (int, error) {
	if max <= min {
		return 0, fmt.Errorf("range [%d, %d): %w", min, max, domain.ErrInvalidRange)
	}
	span := uint64(max - min)
	return min + int(g.Next()%span), nil
}

// Bool returns true with approximately probability p.
func (g *Generator) Bool(p float64) bool {
	return float64(g.Next())/float64(math.MaxUint64) < p
}
