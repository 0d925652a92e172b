package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/antui/pkg/overlay"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case overlay.TimerMsg:
		popoverCmd := m.popover.Update(msg)
		tooltipCmd := m.tooltip.Update(msg)
		return m, tea.Batch(popoverCmd, tooltipCmd)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.selectStory(m.cursor + 1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.selectStory(m.cursor - 1)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveAnchor(0, -1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveAnchor(0, 1)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.moveAnchor(-1, 0)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.moveAnchor(1, 0)
		return m, nil

	case key.Matches(msg, m.keys.Placement):
		next := m.cyclePlacement()
		m.log.WithFields(map[string]any{"placement": next.String()}).Debug("target placement changed")
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m, m.popover.Handle(overlay.EventClick)

	case key.Matches(msg, m.keys.Hover):
		m.hovering = !m.hovering
		ev := overlay.EventPointerLeave
		if m.hovering {
			ev = overlay.EventPointerEnter
		}
		return m, m.tooltip.Handle(ev)

	case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}
