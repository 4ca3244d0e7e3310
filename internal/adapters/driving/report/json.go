package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/custodia-labs/burrowdb/internal/core/domain"
)

type jsonReport struct {
	RunID     string      `json:"run_id"`
	StartedAt time.Time   `json:"started_at"`
	Seed      uint64      `json:"seed"`
	Scales    []jsonScale `json:"scales"`
}

type jsonScale struct {
	Records    int            `json:"records"`
	Queries    int            `json:"queries"`
	Document   jsonResult     `json:"document"`
	Relational jsonResult     `json:"relational"`
	Comparison jsonComparison `json:"comparison"`
}

type jsonResult struct {
	Engine       string  `json:"engine"`
	InsertMicros int64   `json:"insert_us"`
	QueryMicros  int64   `json:"query_us"`
	TotalMicros  int64   `json:"total_us"`
	MemoryBytes  int     `json:"memory_bytes"`
	Found        int     `json:"found"`
	HitRate      float64 `json:"hit_rate"`
}

type jsonComparison struct {
	DocumentFaster  bool    `json:"document_faster"`
	TimeRatio       float64 `json:"time_ratio"`
	DocumentSmaller bool    `json:"document_smaller"`
	MemoryRatio     float64 `json:"memory_ratio"`
}

// RenderJSON writes report as indented JSON.
func RenderJSON(w io.Writer, report *domain.BenchmarkReport) error {
	out := jsonReport{
		RunID:     report.RunID,
		StartedAt: report.StartedAt,
		Seed:      report.Settings.Seed,
		Scales:    make([]jsonScale, 0, len(report.Scales)),
	}
	for _, s := range report.Scales {
		out.Scales = append(out.Scales, jsonScale{
			Records:    s.Records,
			Queries:    s.Queries,
			Document:   toJSONResult(s.Document),
			Relational: toJSONResult(s.Relational),
			Comparison: jsonComparison(s.Comparison),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSONResult(r domain.WorkloadResult) jsonResult {
	return jsonResult{
		Engine:       r.Engine.String(),
		InsertMicros: r.InsertTime.Microseconds(),
		QueryMicros:  r.QueryTime.Microseconds(),
		TotalMicros:  r.TotalMicros(),
		MemoryBytes:  r.MemoryBytes,
		Found:        r.Found,
		HitRate:      r.HitRate(),
	}
}
