package components

import (
	"math"

	"github.com/alexisbeaulieu97/antui/pkg/geom"
	"github.com/alexisbeaulieu97/antui/pkg/overlay"
	"github.com/alexisbeaulieu97/antui/pkg/placement"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ArrowSize is the arrow size of floating components in cells.
const ArrowSize = 1

// Floating is the part shared by every overlay component: the trigger state
// machine and the placement request. Embed it to get Handle, Update and
// Visible.
type Floating struct {
	machine   *overlay.Machine
	preferred placement.Placement
	offset    float64
	arrow     bool
}

func newFloating(trigger overlay.Trigger, preferred placement.Placement, arrow bool) Floating {
	return Floating{
		machine:   overlay.New(overlay.DefaultConfig(trigger)),
		preferred: preferred,
		arrow:     arrow,
	}
}

// Machine exposes the trigger state machine, e.g. to make it controlled.
func (f *Floating) Machine() *overlay.Machine { return f.machine }

// Preferred returns the placement tried first.
func (f *Floating) Preferred() placement.Placement { return f.preferred }

// Handle feeds a pointer, focus or explicit event to the state machine.
func (f *Floating) Handle(ev overlay.Event) tea.Cmd {
	return f.machine.Handle(ev)
}

// Update routes overlay timers to the state machine.
func (f *Floating) Update(msg tea.Msg) tea.Cmd {
	return f.machine.Update(msg)
}

// Visible reports whether the floating content is drawn.
func (f *Floating) Visible() bool {
	return f.machine.Visible()
}

// Request builds the placement request for a viewport.
func (f *Floating) Request(viewport geom.Rect) placement.Request {
	return placement.Request{
		Preferred: f.preferred,
		Offset:    f.offset,
		Arrow:     f.arrow,
		ArrowSize: ArrowSize,
		Boundary:  viewport,
	}
}

// Resolve places a popup block next to anchor.
func (f *Floating) Resolve(anchor geom.Rect, popup string, viewport geom.Rect) placement.Result {
	return f.machine.Placement(anchor, measure(popup), f.Request(viewport))
}

func (f *Floating) setPlacement(p placement.Placement) {
	f.preferred = p
}

func (f *Floating) setOffset(offset float64) {
	f.offset = max(offset, 0)
}

func (f *Floating) setTrigger(trigger overlay.Trigger) {
	f.machine.Reconfigure(overlay.DefaultConfig(trigger))
}

// compose draws popup over background when the overlay is visible. The
// background is fitted to the viewport first.
func (f *Floating) compose(background string, anchor, viewport geom.Rect, popup string, arrowStyle lipgloss.Style) string {
	if !f.Visible() {
		return background
	}

	canvas := CanvasFrom(background, int(viewport.Width), int(viewport.Height))
	result := f.Resolve(anchor, popup, viewport)
	x, width := Snap(result.X-viewport.X, result.Width)
	y, height := Snap(result.Y-viewport.Y, result.Height)
	canvas.Place(x, y, popup)

	if f.arrow {
		ax, ay, glyph := arrowCell(result, viewport, x, y, width, height)
		canvas.Place(ax, ay, arrowStyle.Render(glyph))
	}
	return canvas.String()
}

func measure(block string) geom.Size {
	return geom.Size{Width: float64(lipgloss.Width(block)), Height: float64(lipgloss.Height(block))}
}

// arrowCell returns the cell just outside the edge of the snapped box at
// (x, y, width, height) that faces the anchor. Along that edge it sits at the
// arrow offset from the box centre, kept within the snapped edge.
func arrowCell(result placement.Result, viewport geom.Rect, x, y, width, height int) (int, int, string) {
	alongX := int(math.Floor(result.X - viewport.X + result.Width/2 + result.ArrowOffset))
	alongX = min(max(alongX, x), x+max(width-1, 0))
	alongY := int(math.Floor(result.Y - viewport.Y + result.Height/2 + result.ArrowOffset))
	alongY = min(max(alongY, y), y+max(height-1, 0))

	switch result.Placement.Side() {
	case placement.SideBottom:
		return alongX, y - 1, "▲"
	case placement.SideLeft:
		return x + width, alongY, "▶"
	case placement.SideRight:
		return x - 1, alongY, "◀"
	default:
		return alongX, y + height, "▼"
	}
}

// fitWidth makes style wrap content when the rendered block would be wider
// than limit. A non-positive limit leaves the style alone.
func fitWidth(style lipgloss.Style, content string, limit int) lipgloss.Style {
	if limit <= 0 || lipgloss.Width(content)+style.GetHorizontalFrameSize() <= limit {
		return style
	}
	return style.Width(max(limit-style.GetHorizontalBorderSize()-style.GetHorizontalMargins(), 1))
}
