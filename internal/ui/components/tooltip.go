package components

import (
	"github.com/alexisbeaulieu97/antui/pkg/geom"
	"github.com/alexisbeaulieu97/antui/pkg/overlay"
	"github.com/alexisbeaulieu97/antui/pkg/placement"
	"github.com/charmbracelet/lipgloss"
)

// Tooltip is a small dark bubble shown while the pointer rests on its anchor.
type Tooltip struct {
	Floating
	title string
	slots Slots
}

// NewTooltip creates a hover tooltip placed on top with an arrow.
func NewTooltip(title string) *Tooltip {
	return &Tooltip{
		Floating: newFloating(overlay.TriggerHover, placement.Top, true),
		title:    title,
	}
}

// WithPlacement sets the preferred placement.
func (t *Tooltip) WithPlacement(p placement.Placement) *Tooltip {
	t.setPlacement(p)
	return t
}

// WithSlots overrides slot styles.
func (t *Tooltip) WithSlots(slots Slots) *Tooltip {
	t.slots = slots
	return t
}

// Title returns the tooltip text.
func (t *Tooltip) Title() string { return t.title }

func (t *Tooltip) resolvedSlots(theme Theme) Slots {
	p := theme.Palette
	return Slots{
		SlotRoot:  lipgloss.NewStyle().Background(p.Inverse.Base).Foreground(p.Inverse.OnBase).Padding(0, 1),
		SlotArrow: lipgloss.NewStyle().Foreground(p.Inverse.Base),
	}.Merge(t.slots)
}

// View renders the bubble alone.
func (t *Tooltip) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the bubble alone, wrapped to the viewport width.
func (t *Tooltip) ViewWithContext(ctx RenderContext) string {
	style := t.resolvedSlots(ctx.Theme).Style(SlotRoot)
	return fitWidth(style, t.title, int(ctx.Viewport.Width)).Render(t.title)
}

// Compose draws the tooltip over background next to anchor.
func (t *Tooltip) Compose(background string, anchor, viewport geom.Rect) string {
	return t.ComposeWithContext(DefaultContext().withViewport(viewport), background, anchor)
}

// ComposeWithContext draws the tooltip using ctx.Viewport as the boundary.
func (t *Tooltip) ComposeWithContext(ctx RenderContext, background string, anchor geom.Rect) string {
	if !t.Visible() {
		return background
	}
	return t.compose(background, anchor, ctx.Viewport, t.ViewWithContext(ctx), t.resolvedSlots(ctx.Theme).Style(SlotArrow))
}
