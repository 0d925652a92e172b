package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DividerOrientation places the divider title.
type DividerOrientation int

const (
	DividerCenter DividerOrientation = iota
	DividerLeft
	DividerRight
)

// Divider is a horizontal rule spanning the container width with an
// optional inline title.
type Divider struct {
	BaseComponent
	title       string
	orientation DividerOrientation
	dashed      bool
}

// NewDivider creates a plain divider.
func NewDivider() *Divider {
	d := &Divider{BaseComponent: NewBaseComponent()}
	d.SetAppliers(Foreground(PaletteBorder))
	return d
}

// TitledDivider creates a divider with a left-aligned title.
func TitledDivider(title string) *Divider {
	return NewDivider().WithTitle(title, DividerLeft)
}

// WithTitle sets the inline title and its position.
func (d *Divider) WithTitle(title string, orientation DividerOrientation) *Divider {
	d.title = title
	d.orientation = orientation
	return d
}

// WithDashed toggles a dashed rule.
func (d *Divider) WithDashed(dashed bool) *Divider {
	d.dashed = dashed
	return d
}

// View renders the divider at the default width.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider across ctx.Width.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := ctx.Width
	if width <= 0 {
		width = DefaultWidth
	}
	char := "─"
	if d.dashed {
		char = "╌"
	}
	rule := d.ComputeStyle(ctx.Theme)

	if d.title == "" {
		return rule.Render(strings.Repeat(char, width))
	}

	title := " " + d.title + " "
	rest := width - lipgloss.Width(title)
	if rest < 2 {
		return lipgloss.NewStyle().Bold(true).MaxWidth(width).Render(d.title)
	}

	var left int
	switch d.orientation {
	case DividerLeft:
		left = min(2, rest)
	case DividerRight:
		left = rest - min(2, rest)
	default:
		left = rest / 2
	}
	return rule.Render(strings.Repeat(char, left)) +
		TypographyStyle(ctx.Theme, TypographyVariantTitle).Render(title) +
		rule.Render(strings.Repeat(char, rest-left))
}
