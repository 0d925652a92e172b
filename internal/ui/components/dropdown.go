package components

import (
	"strings"

	"github.com/alexisbeaulieu97/antui/pkg/geom"
	"github.com/alexisbeaulieu97/antui/pkg/overlay"
	"github.com/alexisbeaulieu97/antui/pkg/placement"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuItem is one entry of a dropdown menu.
type MenuItem struct {
	Key      string
	Label    string
	Disabled bool
}

// Dropdown shows a menu below its anchor.
type Dropdown struct {
	Floating
	items    []MenuItem
	active   int
	slots    Slots
	onSelect func(MenuItem)
}

// NewDropdown creates a hover dropdown placed bottom-left.
func NewDropdown(items ...MenuItem) *Dropdown {
	d := &Dropdown{
		Floating: newFloating(overlay.TriggerHover, placement.BottomLeft, false),
		items:    items,
	}
	d.active = d.step(-1, 1)
	return d
}

// WithTrigger switches the overlay to trigger.
func (d *Dropdown) WithTrigger(trigger overlay.Trigger) *Dropdown {
	d.setTrigger(trigger)
	return d
}

// WithPlacement sets the preferred placement.
func (d *Dropdown) WithPlacement(p placement.Placement) *Dropdown {
	d.setPlacement(p)
	return d
}

// WithSlots overrides slot styles.
func (d *Dropdown) WithSlots(slots Slots) *Dropdown {
	d.slots = slots
	return d
}

// OnSelect registers the callback invoked when an item is chosen.
func (d *Dropdown) OnSelect(fn func(MenuItem)) *Dropdown {
	d.onSelect = fn
	return d
}

// Items returns the menu items.
func (d *Dropdown) Items() []MenuItem { return d.items }

// Active returns the highlighted item index, or -1 when every item is disabled.
func (d *Dropdown) Active() int { return d.active }

// Next highlights the next enabled item, wrapping around.
func (d *Dropdown) Next() {
	d.active = d.step(d.active, 1)
}

// Prev highlights the previous enabled item, wrapping around.
func (d *Dropdown) Prev() {
	d.active = d.step(d.active, -1)
}

func (d *Dropdown) step(from, dir int) int {
	n := len(d.items)
	if n == 0 {
		return -1
	}
	i := from
	for range n {
		i = ((i+dir)%n + n) % n
		if !d.items[i].Disabled {
			return i
		}
	}
	return -1
}

// Choose fires OnSelect for the highlighted item and closes the menu.
func (d *Dropdown) Choose() tea.Cmd {
	if d.active < 0 {
		return nil
	}
	if d.onSelect != nil {
		d.onSelect(d.items[d.active])
	}
	return d.machine.Close()
}

// Update routes overlay timers and, while the menu is visible, keys.
func (d *Dropdown) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d.machine.Update(msg)
	}
	if !d.Visible() {
		return nil
	}
	switch key.String() {
	case "up", "k":
		d.Prev()
	case "down", "j", "tab":
		d.Next()
	case "enter":
		return d.Choose()
	case "esc":
		return d.machine.Close()
	}
	return nil
}

func (d *Dropdown) resolvedSlots(theme Theme) Slots {
	p := theme.Palette
	return Slots{
		SlotRoot:       lipgloss.NewStyle().Border(theme.Borders.Rounded).BorderForeground(p.Border.Base),
		SlotItem:       lipgloss.NewStyle().Foreground(p.Text.Base).Padding(0, 1),
		SlotActiveItem: lipgloss.NewStyle().Background(p.Primary.Muted).Foreground(p.Primary.Base).Padding(0, 1),
		SlotEmpty:      lipgloss.NewStyle().Foreground(p.Text.Muted).Padding(0, 1),
	}.Merge(d.slots)
}

// View renders the menu alone.
func (d *Dropdown) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the menu alone.
func (d *Dropdown) ViewWithContext(ctx RenderContext) string {
	slots := d.resolvedSlots(ctx.Theme)
	labels := make([]string, len(d.items))
	for i, item := range d.items {
		labels[i] = item.Label
	}
	return renderMenu(slots, labels, d.active, func(i int) bool { return d.items[i].Disabled }, "No items")
}

// Compose draws the menu over background below anchor.
func (d *Dropdown) Compose(background string, anchor, viewport geom.Rect) string {
	return d.ComposeWithContext(DefaultContext().withViewport(viewport), background, anchor)
}

// ComposeWithContext draws the menu using ctx.Viewport as the boundary.
func (d *Dropdown) ComposeWithContext(ctx RenderContext, background string, anchor geom.Rect) string {
	if !d.Visible() {
		return background
	}
	return d.compose(background, anchor, ctx.Viewport, d.ViewWithContext(ctx), lipgloss.NewStyle())
}

// renderMenu draws a bordered list with every row padded to the widest label.
func renderMenu(slots Slots, labels []string, active int, disabled func(int) bool, empty string) string {
	if len(labels) == 0 {
		return slots.Style(SlotRoot).Render(slots.Style(SlotEmpty).Render(empty))
	}

	width := 0
	for _, label := range labels {
		width = max(width, lipgloss.Width(label))
	}

	rows := make([]string, len(labels))
	for i, label := range labels {
		style := slots.Style(SlotItem)
		if i == active {
			style = slots.Style(SlotActiveItem)
		}
		if disabled(i) {
			style = style.Faint(true)
		}
		rows[i] = style.Render(label + strings.Repeat(" ", width-lipgloss.Width(label)))
	}
	return slots.Style(SlotRoot).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
