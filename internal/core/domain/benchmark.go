package domain

import "time"

// EngineKind names a storage model under test.
type EngineKind string

// Storage models compared by the benchmark.
const (
	// EngineDocument is the document store with tag/link indexes.
	EngineDocument EngineKind = "document"

	// EngineRelational is the table store with per-column indexes.
	EngineRelational EngineKind = "relational"
)

// String returns the string representation.
func (k EngineKind) String() string {
	return string(k)
}

// Description returns a human-readable name for reports.
func (k EngineKind) Description() string {
	switch k {
	case EngineDocument:
		return "Document-Centric Storage"
	case EngineRelational:
		return "Traditional Relational"
	default:
		return "Unknown"
	}
}

// WorkloadResult is what one engine produced for one scale.
type WorkloadResult struct {
	// Engine identifies the storage model.
	Engine EngineKind

	// Records is the number of synthetic records generated.
	Records int

	// Queries is the number of queries issued.
	Queries int

	// InsertTime is the wall time of the generation phase.
	InsertTime time.Duration

	// QueryTime is the wall time of the query phase.
	QueryTime time.Duration

	// MemoryBytes is the formula-based memory estimate.
	MemoryBytes int

	// Found is the sum of result-set sizes over all queries.
	Found int
}

// TotalTime is generation plus query time.
func (r WorkloadResult) TotalTime() time.Duration {
	return r.InsertTime + r.QueryTime
}

// TotalMicros is TotalTime in whole microseconds.
func (r WorkloadResult) TotalMicros() int64 {
	return r.InsertTime.Microseconds() + r.QueryTime.Microseconds()
}

// MemoryKB is the memory estimate in whole kilobytes.
func (r WorkloadResult) MemoryKB() int {
	return r.MemoryBytes / 1024
}

// HitRate is the average number of records surfaced per query.
// It can exceed 1 because tag and link queries return sets.
func (r WorkloadResult) HitRate() float64 {
	if r.Queries == 0 {
		return 0
	}
	return float64(r.Found) / float64(r.Queries)
}

// Comparison expresses the document engine relative to the relational one.
type Comparison struct {
	// DocumentFaster is true when the document engine's total time is
	// strictly lower.
	DocumentFaster bool

	// TimeRatio is larger/smaller total time, always >= 1.
	TimeRatio float64

	// DocumentSmaller is true when the document engine's memory
	// estimate is strictly lower.
	DocumentSmaller bool

	// MemoryRatio is larger/smaller memory estimate, always >= 1.
	MemoryRatio float64
}

// Compare computes the comparison of doc against rel.
func Compare(doc, rel WorkloadResult) Comparison {
	dt, rt := doc.TotalMicros(), rel.TotalMicros()
	dm, rm := int64(doc.MemoryBytes), int64(rel.MemoryBytes)

	c := Comparison{
		DocumentFaster:  dt < rt,
		DocumentSmaller: dm < rm,
	}
	if c.DocumentFaster {
		c.TimeRatio = ratio(rt, dt)
	} else {
		c.TimeRatio = ratio(dt, rt)
	}
	if c.DocumentSmaller {
		c.MemoryRatio = ratio(rm, dm)
	} else {
		c.MemoryRatio = ratio(dm, rm)
	}
	return c
}

// ratio divides larger by smaller. A zero smaller side yields larger
// itself, or 1 when both are zero.
func ratio(larger, smaller int64) float64 {
	if smaller <= 0 {
		if larger <= 0 {
			return 1
		}
		return float64(larger)
	}
	return float64(larger) / float64(smaller)
}

// ScaleResult holds both engines' results for one dataset size.
type ScaleResult struct {
	// Records is the dataset size.
	Records int

	// Queries is the query count.
	Queries int

	// Document is the document engine's result.
	Document WorkloadResult

	// Relational is the relational engine's result.
	Relational WorkloadResult

	// Comparison relates the two.
	Comparison Comparison
}

// BenchmarkReport is the outcome of a full run across all scales.
type BenchmarkReport struct {
	// RunID identifies this run.
	RunID string

	// StartedAt is when the run began.
	StartedAt time.Time

	// Settings are the parameters the run used.
	Settings BenchmarkSettings

	// Scales holds one entry per configured size, in order.
	Scales []ScaleResult
}
