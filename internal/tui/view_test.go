package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewShowsHeaderSidebarAndTarget(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	view := ansi.Strip(m.View())
	lines := strings.Split(view, "\n")

	story, ok := m.Current()
	require.True(t, ok)
	assert.Contains(t, lines[0], "antui storybook")
	assert.Contains(t, lines[0], story.ID())
	assert.Contains(t, lines[0], "53x22 xs")
	assert.Contains(t, view, "› "+story.Name)
	assert.Contains(t, view, "target")
	assert.NotContains(t, view, "enter toggles me")
}

func TestViewFitsTerminal(t *testing.T) {
	t.Parallel()

	m, _ := update(t, newTestModel(t), tea.WindowSizeMsg{Width: 120, Height: 30})
	view := m.View()
	assert.LessOrEqual(t, lipgloss.Width(view), 120)
	assert.Equal(t, 30, lipgloss.Height(view))
}

func TestViewDrawsOpenPopover(t *testing.T) {
	t.Parallel()

	m, _ := update(t, newTestModel(t), tea.WindowSizeMsg{Width: 160, Height: 30})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "enter toggles me")
	assert.Contains(t, view, "▼")
	assert.Contains(t, view, "popover open")
}

func TestHeaderReportsFlip(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	for range 20 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	header := ansi.Strip(strings.Split(m.View(), "\n")[0])
	assert.Contains(t, header, "target top → bottom")
}

func TestNarrowViewHidesSidebar(t *testing.T) {
	t.Parallel()

	m, _ := update(t, newTestModel(t), tea.WindowSizeMsg{Width: 50, Height: 20})
	view := ansi.Strip(m.View())
	assert.NotContains(t, view, "› ")
}
