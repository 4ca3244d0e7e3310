package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/burrowdb/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/burrowdb/internal/core/services"
)

func newTestModel() *Model {
	return NewModel(services.NewKVService(memory.NewKVStore()))
}

func submit(t *testing.T, m *Model, line string) tea.Cmd {
	t.Helper()
	m.input.SetValue(line)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestModel_Init(t *testing.T) {
	assert.NotNil(t, newTestModel().Init())
}

func TestModel_SubmitRunsCommand(t *testing.T) {
	m := newTestModel()

	assert.Nil(t, submit(t, m, "PUT name Alice"))
	assert.Nil(t, submit(t, m, "GET name"))

	view := m.View()
	assert.Contains(t, view, "burrow> PUT name Alice")
	assert.Contains(t, view, "Stored: name = Alice")
	assert.Contains(t, view, "name: Alice")
	assert.Empty(t, m.input.Value())
}

func TestModel_ExitQuits(t *testing.T) {
	m := newTestModel()

	cmd := submit(t, m, "EXIT")

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Contains(t, m.View(), "Goodbye from BurrowDB!")
	assert.NotContains(t, m.View(), "esc: quit")
}

func TestModel_EscQuits(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModel_ScrollbackIsBounded(t *testing.T) {
	m := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})

	for i := 0; i < 10; i++ {
		submit(t, m, "LIST")
	}

	assert.Len(t, m.lines, 4)
	assert.Equal(t, 80-len(prompt)-1, m.input.Width)
}

func TestModel_TypingUpdatesInput(t *testing.T) {
	m := newTestModel()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("LI")})

	assert.Equal(t, "LI", m.input.Value())
}
