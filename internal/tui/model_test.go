package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/antui/internal/storybook"
	"github.com/alexisbeaulieu97/antui/pkg/grid"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(storybook.Default(), nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelSelectsFirstStory(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	story, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, storybook.Default().List()[0].ID(), story.ID())
	assert.Equal(t, 0, m.Cursor())

	assert.Equal(t, defaultWidth-SidebarWidth-1, m.Context().Width)
	assert.Equal(t, grid.XS, m.Breakpoint())
}

func TestNewModelCentresAnchor(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	pw, ph := m.paneSize()
	anchor := m.Anchor()
	assert.InDelta(t, float64((pw-storybook.AnchorWidth)/2), anchor.X, 1e-9)
	assert.InDelta(t, float64((ph-storybook.AnchorHeight)/2), anchor.Y, 1e-9)
}

func TestEmptyRegistry(t *testing.T) {
	t.Parallel()

	m := NewModel(storybook.NewRegistry(), nil)
	_, ok := m.Current()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No stories registered")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.Cursor())
}
