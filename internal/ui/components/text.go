package components

import "github.com/charmbracelet/lipgloss"

// Text renders a run of styled text.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a text component with body typography.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with the default context.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyle(ctx.Theme).Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers replaces the theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// TitleText creates a heading.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

// StrongText creates bold text.
func StrongText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantStrong))
}

// SecondaryText creates de-emphasised text.
func SecondaryText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantSecondary))
}

// CodeText creates inline code.
func CodeText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantCode))
}

// StatusText colours text with a status slot such as PaletteSuccess.
func StatusText(content string, slot PaletteSlot) *Text {
	return NewText(content).WithAppliers(Foreground(slot))
}
