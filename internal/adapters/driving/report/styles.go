package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette of the text report.
type Theme struct {
	// Primary colours headings.
	Primary lipgloss.Color

	// Secondary colours engine names.
	Secondary lipgloss.Color

	// Muted is for separators and labels.
	Muted lipgloss.Color

	// Better marks a favourable comparison for the document engine.
	Better lipgloss.Color

	// Worse marks an unfavourable comparison.
	Worse lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Muted:     lipgloss.Color("#6C7086"), // Medium gray
		Better:    lipgloss.Color("#A6E3A1"), // Green
		Worse:     lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles holds the lipgloss styles bound to one output writer. Colour
// is dropped automatically when the writer is not a terminal.
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Engine  lipgloss.Style
	Label   lipgloss.Style
	Better  lipgloss.Style
	Worse   lipgloss.Style
}

// NewStyles creates styles for w from theme. A nil theme uses DefaultTheme.
func NewStyles(w io.Writer, theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	r := lipgloss.NewRenderer(w)

	return &Styles{
		Title:   r.NewStyle().Bold(true).Foreground(theme.Primary),
		Heading: r.NewStyle().Bold(true).Foreground(theme.Secondary),
		Engine:  r.NewStyle().Foreground(theme.Secondary),
		Label:   r.NewStyle().Foreground(theme.Muted),
		Better:  r.NewStyle().Bold(true).Foreground(theme.Better),
		Worse:   r.NewStyle().Foreground(theme.Worse),
	}
}
