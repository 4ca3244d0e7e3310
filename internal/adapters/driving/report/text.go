package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/burrowdb/internal/core/domain"
)

const ruleWidth = 60

// TextRenderer writes human-readable reports.
type TextRenderer struct {
	w      io.Writer
	styles *Styles
}

// NewTextRenderer creates a text renderer writing to w.
func NewTextRenderer(w io.Writer, theme *Theme) *TextRenderer {
	return &TextRenderer{w: w, styles: NewStyles(w, theme)}
}

// Render writes every scale followed by the trade-off analysis.
func (r *TextRenderer) Render(report *domain.BenchmarkReport) error {
	p := &printer{w: r.w}
	p.line(r.styles.Title.Render("Document-Centric vs Traditional Storage Simulation"))
	p.line(r.styles.Label.Render(strings.Repeat("=", ruleWidth)))
	p.line(r.styles.Label.Render(fmt.Sprintf("run %s, seed %d", report.RunID, report.Settings.Seed)))

	for _, scale := range report.Scales {
		r.renderScale(p, scale)
	}
	if p.err != nil {
		return p.err
	}
	return r.RenderAnalysis(domain.TradeoffAnalysis())
}

func (r *TextRenderer) renderScale(p *printer, scale domain.ScaleResult) {
	p.line("")
	p.line(r.styles.Heading.Render(fmt.Sprintf("Testing with %d documents, %d queries:", scale.Records, scale.Queries)))
	p.line(r.styles.Label.Render(strings.Repeat("-", 50)))

	for n, res := range []domain.WorkloadResult{scale.Document, scale.Relational} {
		if n > 0 {
			p.line("")
		}
		p.line(r.styles.Engine.Render(res.Engine.Description() + ":"))
		p.line(fmt.Sprintf("  Total Time: %d µs", res.TotalMicros()))
		p.line(fmt.Sprintf("  Memory Usage: %d bytes (~%d KB)", res.MemoryBytes, res.MemoryKB()))
		p.line(fmt.Sprintf("  Query Hit Rate: %.2f", res.HitRate()))
	}

	c := scale.Comparison
	p.line("")
	p.line(r.styles.Heading.Render("Performance Comparison:"))
	if c.DocumentFaster {
		p.line("  " + r.styles.Better.Render(fmt.Sprintf("Document-centric is %.1fx FASTER", c.TimeRatio)))
	} else {
		p.line("  " + r.styles.Worse.Render(fmt.Sprintf("Document-centric is %.1fx slower", c.TimeRatio)))
	}
	if c.DocumentSmaller {
		p.line("  " + r.styles.Better.Render(fmt.Sprintf("Document-centric uses %.1fx LESS memory", c.MemoryRatio)))
	} else {
		p.line("  " + r.styles.Worse.Render(fmt.Sprintf("Document-centric uses %.1fx more memory", c.MemoryRatio)))
	}
}

// RenderAnalysis writes the trade-off summary sections.
func (r *TextRenderer) RenderAnalysis(sections []domain.AnalysisSection) error {
	p := &printer{w: r.w}
	p.line("")
	p.line(r.styles.Label.Render(strings.Repeat("=", ruleWidth)))
	p.line(r.styles.Title.Render("ANALYSIS SUMMARY"))
	p.line(r.styles.Label.Render(strings.Repeat("=", ruleWidth)))
	for _, s := range sections {
		p.line("")
		p.line(r.styles.Heading.Render(s.Title + ":"))
		for _, item := range s.Items {
			p.line("  • " + item)
		}
	}
	return p.err
}

// printer keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}
