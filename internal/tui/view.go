package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/antui/internal/storybook"
	"github.com/alexisbeaulieu97/antui/internal/ui/components"
)

// View renders the current model state.
func (m Model) View() string {
	pane := m.renderPane()
	body := pane
	if m.showSidebar() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), pane)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.help.View(m.keys))
}

// renderHeader renders the title, the pane size and breakpoint, and the
// target state on one line.
func (m Model) renderHeader() string {
	pw, ph := m.paneSize()
	name := "no story"
	if story, ok := m.Current(); ok {
		name = story.ID()
	}

	result := m.targetResult()
	target := fmt.Sprintf("target %s", m.popover.Preferred())
	if result.Placement != m.popover.Preferred() || result.Clamped {
		resolved := result.Placement.String()
		if result.Clamped {
			resolved += " clamped"
		}
		target += " → " + warnStyle.Render(resolved)
	}
	target += fmt.Sprintf(" · popover %s · tooltip %s",
		m.popover.Machine().State(), m.tooltip.Machine().State())

	line := strings.Join([]string{
		titleStyle.Render("antui storybook"),
		itemStyle.Render(name),
		mutedStyle.Render(fmt.Sprintf("%dx%d %s", pw, ph, m.ctx.Breakpoint)),
		mutedStyle.Render(target),
	}, "  ")
	return ansi.Truncate(line, max(m.width, 1), "…")
}

// renderSidebar lists stories by group, scrolled to keep the cursor visible.
func (m Model) renderSidebar() string {
	_, ph := m.paneSize()

	var lines []string
	cursorLine := 0
	group := ""
	for i, story := range m.stories {
		if story.Group != group {
			group = story.Group
			lines = append(lines, sectionStyle.Render(strings.ToUpper(group)))
		}
		label := ansi.Truncate(story.Name, SidebarWidth-2, "…")
		if i == m.cursor {
			cursorLine = len(lines)
			lines = append(lines, selectedStyle.Render("› "+label))
		} else {
			lines = append(lines, itemStyle.Render("  "+label))
		}
	}

	start := 0
	if cursorLine >= ph {
		start = cursorLine - ph + 1
	}
	end := min(start+ph, len(lines))
	visible := lines[start:end]

	return sidebarStyle.Width(SidebarWidth).Height(ph).MaxHeight(ph).Render(strings.Join(visible, "\n"))
}

// renderPane draws the story, the target anchor over it and any open target.
func (m Model) renderPane() string {
	pw, ph := m.paneSize()
	canvas := components.CanvasFrom(m.viewport.View(), pw, ph)
	canvas.Place(int(m.anchor.X), int(m.anchor.Y), storybook.AnchorBox(m.ctx.Theme, "target", int(m.anchor.Width)))

	out := canvas.String()
	out = m.tooltip.ComposeWithContext(m.ctx, out, m.anchor)
	out = m.popover.ComposeWithContext(m.ctx, out, m.anchor)
	return out
}
