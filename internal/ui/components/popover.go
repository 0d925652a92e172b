package components

import (
	"github.com/alexisbeaulieu97/antui/pkg/geom"
	"github.com/alexisbeaulieu97/antui/pkg/overlay"
	"github.com/alexisbeaulieu97/antui/pkg/placement"
	"github.com/charmbracelet/lipgloss"
)

// Popover is a bordered card with a title and a body attached to an anchor.
type Popover struct {
	Floating
	title string
	body  string
	slots Slots
}

// NewPopover creates a hover popover placed on top with an arrow.
func NewPopover(title, body string) *Popover {
	return &Popover{
		Floating: newFloating(overlay.TriggerHover, placement.Top, true),
		title:    title,
		body:     body,
	}
}

// WithTrigger switches the overlay to trigger. Controlled visibility and
// OnOpenChange callbacks carry over.
func (p *Popover) WithTrigger(trigger overlay.Trigger) *Popover {
	p.setTrigger(trigger)
	return p
}

// WithPlacement sets the preferred placement.
func (p *Popover) WithPlacement(pl placement.Placement) *Popover {
	p.setPlacement(pl)
	return p
}

// WithOffset sets the gap between anchor and arrow in cells.
func (p *Popover) WithOffset(offset float64) *Popover {
	p.setOffset(offset)
	return p
}

// WithArrow toggles the arrow.
func (p *Popover) WithArrow(arrow bool) *Popover {
	p.arrow = arrow
	return p
}

// WithSlots overrides slot styles.
func (p *Popover) WithSlots(slots Slots) *Popover {
	p.slots = slots
	return p
}

func (p *Popover) resolvedSlots(theme Theme) Slots {
	palette := theme.Palette
	return Slots{
		SlotRoot: lipgloss.NewStyle().
			Border(theme.Borders.Rounded).
			BorderForeground(palette.Border.Base).
			Padding(0, 1),
		SlotTitle: lipgloss.NewStyle().Bold(true).Foreground(palette.Text.Base),
		SlotBody:  lipgloss.NewStyle().Foreground(palette.Text.Base),
		SlotArrow: lipgloss.NewStyle().Foreground(palette.Border.Base),
	}.Merge(p.slots)
}

// View renders the card alone.
func (p *Popover) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card alone, wrapped to the viewport width.
func (p *Popover) ViewWithContext(ctx RenderContext) string {
	slots := p.resolvedSlots(ctx.Theme)

	var parts []string
	if p.title != "" {
		parts = append(parts, slots.Style(SlotTitle).Render(p.title))
	}
	if p.body != "" {
		parts = append(parts, slots.Style(SlotBody).Render(p.body))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return fitWidth(slots.Style(SlotRoot), content, int(ctx.Viewport.Width)).Render(content)
}

// Compose draws the popover over background next to anchor.
func (p *Popover) Compose(background string, anchor, viewport geom.Rect) string {
	return p.ComposeWithContext(DefaultContext().withViewport(viewport), background, anchor)
}

// ComposeWithContext draws the popover using ctx.Viewport as the boundary.
func (p *Popover) ComposeWithContext(ctx RenderContext, background string, anchor geom.Rect) string {
	if !p.Visible() {
		return background
	}
	return p.compose(background, anchor, ctx.Viewport, p.ViewWithContext(ctx), p.resolvedSlots(ctx.Theme).Style(SlotArrow))
}
