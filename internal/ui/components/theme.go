package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet is a semantic colour with the colours drawn on top of it.
//   - Base: the colour itself, used for fills and accents
//   - OnBase: text that stays legible on Base
//   - Muted: the light tint Ant uses for hover backgrounds and outlines
//
// All colours are adaptive, providing both light and dark mode variants.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by components. The seeds
// follow the Ant Design v5 defaults.
type Palette struct {
	Primary ColourSet
	Success ColourSet
	Warning ColourSet
	Error   ColourSet
	Info    ColourSet
	// Surface is the container background (tooltips use the inverse).
	Surface ColourSet
	// Inverse is the dark surface tooltips render on.
	Inverse ColourSet
	Text    ColourSet
	Border  ColourSet
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteError   PaletteSlot = func(p Palette) ColourSet { return p.Error }
	PaletteInfo    PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteInverse PaletteSlot = func(p Palette) ColourSet { return p.Inverse }
	PaletteText    PaletteSlot = func(p Palette) ColourSet { return p.Text }
	PaletteBorder  PaletteSlot = func(p Palette) ColourSet { return p.Border }
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores the spacing scale in terminal cells.
type SpacingConfig struct {
	Padding spacingTable
	Margin  spacingTable
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      3,
	}
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	if size < 0 || int(size) >= spacingSizeCount {
		return 0
	}
	return table[size]
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantStrong
	TypographyVariantSecondary
	TypographyVariantCode
	TypographyVariantDisabled
)

// TypographyScale contains the typography presets.
type TypographyScale struct {
	Body      lipgloss.Style
	Title     lipgloss.Style
	Strong    lipgloss.Style
	Secondary lipgloss.Style
	Code      lipgloss.Style
	Disabled  lipgloss.Style
}

// BorderVariant selects one of the theme borders.
type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantRounded
	BorderVariantThick
	BorderVariantHidden
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Hidden  lipgloss.Border
}

// ButtonVariant mirrors the Ant button types.
type ButtonVariant int

const (
	ButtonVariantDefault ButtonVariant = iota
	ButtonVariantPrimary
	ButtonVariantDashed
	ButtonVariantText
	ButtonVariantLink
	ButtonVariantDanger
)

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable styling theme. Create it once and pass it through
// RenderContext.
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Variants   *VariantRegistry
}

// Normalize fills the zero parts of a partially specified theme.
func (t Theme) Normalize() Theme {
	if t.Spacing.Padding == (spacingTable{}) {
		t.Spacing.Padding = defaultSpacingTable()
	}
	if t.Spacing.Margin == (spacingTable{}) {
		t.Spacing.Margin = defaultSpacingTable()
	}
	if t.Variants == nil {
		t.Variants = defaultVariants()
	}
	return t
}

// DefaultTheme returns the Ant Design flavoured terminal theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{Base: ac("#1677ff", "#1668dc"), OnBase: ac("#ffffff", "#ffffff"), Muted: ac("#e6f4ff", "#111a2c")},
		Success: ColourSet{Base: ac("#52c41a", "#49aa19"), OnBase: ac("#ffffff", "#ffffff"), Muted: ac("#f6ffed", "#162312")},
		Warning: ColourSet{Base: ac("#faad14", "#d89614"), OnBase: ac("#ffffff", "#ffffff"), Muted: ac("#fffbe6", "#2b2111")},
		Error:   ColourSet{Base: ac("#ff4d4f", "#dc4446"), OnBase: ac("#ffffff", "#ffffff"), Muted: ac("#fff2f0", "#2c1618")},
		Info:    ColourSet{Base: ac("#1677ff", "#1668dc"), OnBase: ac("#ffffff", "#ffffff"), Muted: ac("#e6f4ff", "#111a2c")},
		Surface: ColourSet{Base: ac("#ffffff", "#1f1f1f"), OnBase: ac("#1f1f1f", "#e6e6e6"), Muted: ac("#f5f5f5", "#262626")},
		Inverse: ColourSet{Base: ac("#262626", "#424242"), OnBase: ac("#ffffff", "#ffffff"), Muted: ac("#434343", "#595959")},
		Text:    ColourSet{Base: ac("#1f1f1f", "#e6e6e6"), OnBase: ac("#ffffff", "#141414"), Muted: ac("#8c8c8c", "#737373")},
		Border:  ColourSet{Base: ac("#d9d9d9", "#424242"), OnBase: ac("#1f1f1f", "#e6e6e6"), Muted: ac("#f0f0f0", "#303030")},
	}

	typography := TypographyScale{
		Body:      lipgloss.NewStyle().Foreground(palette.Text.Base),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(palette.Text.Base),
		Strong:    lipgloss.NewStyle().Bold(true),
		Secondary: lipgloss.NewStyle().Foreground(palette.Text.Muted),
		Code:      lipgloss.NewStyle().Foreground(palette.Error.Base).Background(palette.Surface.Muted),
		Disabled:  lipgloss.NewStyle().Faint(true).Foreground(palette.Text.Muted),
	}

	theme := Theme{
		Palette: palette,
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Hidden:  lipgloss.HiddenBorder(),
		},
		Spacing: SpacingConfig{
			Padding: defaultSpacingTable(),
			Margin:  defaultSpacingTable(),
		},
		Typography: typography,
	}
	theme.Variants = defaultVariants()
	return theme
}

func defaultVariants() *VariantRegistry {
	registry := NewVariantRegistry()
	registry.Register(ButtonVariantDefault, NewCompositeStrategy(
		Foreground(PaletteText), Border(BorderVariantRounded), BorderColour(PaletteBorder), PaddingX(SpacingSizeSmall),
	))
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(
		Background(PalettePrimary), Border(BorderVariantRounded), BorderColour(PalettePrimary), PaddingX(SpacingSizeSmall),
	))
	registry.Register(ButtonVariantDashed, NewCompositeStrategy(
		Foreground(PaletteText), Border(BorderVariantNormal), BorderColour(PaletteBorder), PaddingX(SpacingSizeSmall),
	))
	registry.Register(ButtonVariantText, NewCompositeStrategy(
		Foreground(PaletteText), PaddingX(SpacingSizeSmall),
	))
	registry.Register(ButtonVariantLink, NewCompositeStrategy(
		Foreground(PalettePrimary), PaddingX(SpacingSizeSmall),
	))
	registry.Register(ButtonVariantDanger, NewCompositeStrategy(
		Background(PaletteError), Border(BorderVariantRounded), BorderColour(PaletteError), PaddingX(SpacingSizeSmall),
	))
	return registry
}

// BorderForVariant returns the theme border for a variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantHidden:
		return theme.Borders.Hidden
	default:
		return theme.Borders.Normal
	}
}

// TypographyStyle returns the preset for a typography variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyVariantTitle:
		return theme.Typography.Title
	case TypographyVariantStrong:
		return theme.Typography.Strong
	case TypographyVariantSecondary:
		return theme.Typography.Secondary
	case TypographyVariantCode:
		return theme.Typography.Code
	case TypographyVariantDisabled:
		return theme.Typography.Disabled
	default:
		return theme.Typography.Body
	}
}

// Background applies a semantic background colour and the matching
// foreground for legibility.
//
// Example:
//
//	tip := NewText("hint").WithAppliers(Background(PaletteInverse))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// BorderColour colours every border edge with a palette slot.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(spacingLookup(theme.Spacing.Padding, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

// Typography applies typography styling.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
