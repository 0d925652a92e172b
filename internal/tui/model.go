// Package tui is the interactive story browser behind `antui demo`.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/antui/internal/logger"
	"github.com/alexisbeaulieu97/antui/internal/storybook"
	"github.com/alexisbeaulieu97/antui/internal/ui/components"
	"github.com/alexisbeaulieu97/antui/pkg/geom"
	"github.com/alexisbeaulieu97/antui/pkg/grid"
	"github.com/alexisbeaulieu97/antui/pkg/placement"
)

const (
	// SidebarWidth is the width of the story list, border excluded.
	SidebarWidth = 26
	minPaneWidth = 30

	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the bubbletea model of the story browser. The right pane shows the
// selected story; a target anchor drawn over it carries a click popover and a
// hover tooltip that follow the same placement.
type Model struct {
	stories []storybook.Story
	cursor  int

	width  int
	height int
	ctx    components.RenderContext

	viewport viewport.Model
	help     help.Model
	keys     keyMap

	popover  *components.Popover
	tooltip  *components.Tooltip
	anchor   geom.Rect
	hovering bool

	log *logger.Logger
}

// NewModel creates a browser over every story of reg, sized for an 80x24
// terminal until the first WindowSizeMsg arrives.
func NewModel(reg *storybook.Registry, log *logger.Logger) Model {
	vp := viewport.New(defaultWidth, defaultHeight)
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}

	m := Model{
		stories:  reg.List(),
		ctx:      components.DefaultContext(),
		viewport: vp,
		help:     help.New(),
		keys:     defaultKeyMap(),
		popover:  components.NewPopover("Target", "enter toggles me").WithPlacement(placement.Top),
		tooltip:  components.NewTooltip("hovered").WithPlacement(placement.Top),
		anchor:   geom.NewRect(0, 0, storybook.AnchorWidth, storybook.AnchorHeight),
		log:      log.Component("tui"),
	}
	m.resize(defaultWidth, defaultHeight)
	m.centreAnchor()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Current returns the selected story.
func (m Model) Current() (storybook.Story, bool) {
	if m.cursor < 0 || m.cursor >= len(m.stories) {
		return storybook.Story{}, false
	}
	return m.stories[m.cursor], true
}

// Cursor returns the index of the selected story.
func (m Model) Cursor() int { return m.cursor }

// Context returns the render context of the story pane.
func (m Model) Context() components.RenderContext { return m.ctx }

// Breakpoint returns the breakpoint of the story pane.
func (m Model) Breakpoint() grid.Breakpoint { return m.ctx.Breakpoint }

// Anchor returns the target anchor in pane coordinates.
func (m Model) Anchor() geom.Rect { return m.anchor }

// Popover returns the click target.
func (m Model) Popover() *components.Popover { return m.popover }

// Tooltip returns the hover target.
func (m Model) Tooltip() *components.Tooltip { return m.tooltip }

// Hovering reports whether the pointer is simulated over the anchor.
func (m Model) Hovering() bool { return m.hovering }

// showSidebar reports whether the terminal is wide enough for the story list.
func (m Model) showSidebar() bool {
	return m.width >= SidebarWidth+1+minPaneWidth
}

// paneSize returns the story pane size: everything but the sidebar, the
// header line and the help line.
func (m Model) paneSize() (int, int) {
	width := m.width
	if m.showSidebar() {
		width -= SidebarWidth + 1
	}
	return max(width, 1), max(m.height-2, 1)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	previous := m.ctx.Breakpoint

	pw, ph := m.paneSize()
	m.ctx = m.ctx.WithSize(pw, ph)
	m.viewport.Width, m.viewport.Height = pw, ph
	m.help.Width = width
	m.clampAnchor()
	m.refresh()

	if previous != m.ctx.Breakpoint {
		m.log.WithFields(map[string]any{"from": previous.String(), "to": m.ctx.Breakpoint.String(), "width": pw}).
			Debug("breakpoint changed")
	}
}

// refresh renders the selected story into the viewport.
func (m *Model) refresh() {
	story, ok := m.Current()
	if !ok {
		m.viewport.SetContent(mutedStyle.Render("No stories registered"))
		return
	}
	m.viewport.SetContent(story.Render(m.ctx))
}

func (m *Model) selectStory(index int) {
	if len(m.stories) == 0 {
		return
	}
	m.cursor = (index%len(m.stories) + len(m.stories)) % len(m.stories)
	m.refresh()
	m.viewport.GotoTop()
	m.log.WithFields(map[string]any{"story": m.stories[m.cursor].ID()}).Debug("story selected")
}

func (m *Model) centreAnchor() {
	pw, ph := m.paneSize()
	m.anchor.X = float64((pw - int(m.anchor.Width)) / 2)
	m.anchor.Y = float64((ph - int(m.anchor.Height)) / 2)
	m.clampAnchor()
}

func (m *Model) moveAnchor(dx, dy float64) {
	m.anchor.X += dx
	m.anchor.Y += dy
	m.clampAnchor()
}

// clampAnchor keeps the anchor inside the pane.
func (m *Model) clampAnchor() {
	pw, ph := m.paneSize()
	m.anchor.X = geom.Clamp(m.anchor.X, 0, max(float64(pw)-m.anchor.Width, 0))
	m.anchor.Y = geom.Clamp(m.anchor.Y, 0, max(float64(ph)-m.anchor.Height, 0))
}

// cyclePlacement moves both targets to the next of the twelve placements.
func (m *Model) cyclePlacement() placement.Placement {
	all := placement.All()
	next := all[0]
	for i, p := range all {
		if p == m.popover.Preferred() {
			next = all[(i+1)%len(all)]
			break
		}
	}
	m.popover.WithPlacement(next)
	m.tooltip.WithPlacement(next)
	return next
}

// targetResult resolves the popover against the pane whether or not it is
// visible, for the status line.
func (m Model) targetResult() placement.Result {
	return m.popover.Resolve(m.anchor, m.popover.ViewWithContext(m.ctx), m.ctx.Viewport)
}
