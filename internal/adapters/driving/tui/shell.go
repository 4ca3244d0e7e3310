// Package tui provides a full-screen front end for the key-value shell.
package tui

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/burrowdb/internal/adapters/driving/repl"
	"github.com/custodia-labs/burrowdb/internal/adapters/driving/report"
	"github.com/custodia-labs/burrowdb/internal/core/ports/driving"
)

const (
	prompt          = "burrow> "
	defaultMaxLines = 20
)

// Model is the bubbletea model of the shell. Each submitted line runs
// through a repl.Interpreter; its output is appended to the scrollback.
type Model struct {
	interp   *repl.Interpreter
	out      *bytes.Buffer
	input    textinput.Model
	lines    []string
	maxLines int
	quitting bool

	title lipgloss.Style
	echo  lipgloss.Style
	help  lipgloss.Style
}

// NewModel creates a shell model backed by kv.
func NewModel(kv driving.KVService) *Model {
	out := new(bytes.Buffer)
	theme := report.DefaultTheme()

	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "PUT name Alice"
	ti.CharLimit = 1024
	ti.Focus()

	return &Model{
		interp:   repl.New(kv, out),
		out:      out,
		input:    ti,
		maxLines: defaultMaxLines,
		title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		echo:     lipgloss.NewStyle().Foreground(theme.Secondary),
		help:     lipgloss.NewStyle().Foreground(theme.Muted),
	}
}

// Init starts the cursor blinking.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and window resizes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - len(prompt) - 1
		if msg.Height > 4 {
			m.maxLines = msg.Height - 4
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.append(m.echo.Render(prompt + line))

	more := m.interp.Execute(line)
	for _, l := range strings.Split(strings.TrimRight(m.out.String(), "\n"), "\n") {
		if l != "" {
			m.append(l)
		}
	}
	m.out.Reset()

	if !more {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) append(line string) {
	m.lines = append(m.lines, line)
	if over := len(m.lines) - m.maxLines; over > 0 {
		m.lines = m.lines[over:]
	}
}

// View renders the scrollback and the input line.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.title.Render("BurrowDB shell"))
	b.WriteString("\n\n")
	for _, l := range m.lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	if m.quitting {
		return b.String()
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.help.Render("enter: run  esc: quit  HELP: commands"))
	return b.String()
}

// Run starts the shell program on in and out until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, kv driving.KVService, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(NewModel(kv),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	return err
}
