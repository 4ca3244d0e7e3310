// Package domain defines the core entities of the burrow benchmark.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Value: The structured payload shared by both storage models
//   - Document: A self-describing record with tags and typed links
//   - Row: A relational row keyed by column name
//   - WorkloadResult, Comparison, BenchmarkReport: Measured outcomes
//   - BenchmarkSettings: Dataset scales, query count and seed
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
