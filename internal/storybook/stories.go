package storybook

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/antui/internal/ui/components"
	"github.com/alexisbeaulieu97/antui/pkg/geom"
	"github.com/alexisbeaulieu97/antui/pkg/grid"
	"github.com/alexisbeaulieu97/antui/pkg/overlay"
	"github.com/alexisbeaulieu97/antui/pkg/placement"
)

// StageHeight is the height of the area floating stories are drawn in.
const StageHeight = 13

// AnchorWidth and AnchorHeight size the anchor box of floating stories.
const (
	AnchorWidth  = 10
	AnchorHeight = 3
)

const (
	GroupGrid       = "grid"
	GroupPlacement  = "placement"
	GroupComponents = "components"
)

// Default returns a registry holding every built-in story.
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister(gridStories()...)
	r.MustRegister(placementStories()...)
	r.MustRegister(componentStories()...)
	return r
}

// swatch fills the width and height it is given with a coloured block so
// column extents are visible.
type swatch struct {
	label  string
	slot   components.PaletteSlot
	height int
}

func (s swatch) View() string {
	return s.ViewWithContext(components.DefaultContext())
}

func (s swatch) ViewWithContext(ctx components.RenderContext) string {
	colours := s.slot(ctx.Theme.Palette)
	style := lipgloss.NewStyle().
		Width(ctx.Width).
		Align(lipgloss.Center).
		Background(colours.Base).
		Foreground(colours.OnBase)
	if s.height > 1 {
		style = style.Height(s.height).AlignVertical(lipgloss.Center)
	}
	return style.Render(ansi.Truncate(s.label, ctx.Width, ""))
}

func swatchSlot(i int) components.PaletteSlot {
	if i%2 == 0 {
		return components.PalettePrimary
	}
	return components.PaletteInfo
}

func swatches(specs ...grid.ColumnSpec) []components.Col {
	cols := make([]components.Col, len(specs))
	for i, spec := range specs {
		cols[i] = components.NewCol(spec, swatch{label: fmt.Sprintf("col-%d", i+1), slot: swatchSlot(i)})
	}
	return cols
}

func rowStory(name, description string, spec grid.RowSpec, specs ...grid.ColumnSpec) Story {
	return Story{
		Name:        name,
		Group:       GroupGrid,
		Description: description,
		Render: func(ctx components.RenderContext) string {
			return components.NewRow(spec, swatches(specs...)...).ViewWithContext(ctx)
		},
	}
}

func repeat(spec grid.ColumnSpec, n int) []grid.ColumnSpec {
	specs := make([]grid.ColumnSpec, n)
	for i := range specs {
		specs[i] = spec
	}
	return specs
}

func gridStories() []Story {
	responsive := grid.Col(24).At(grid.MD, grid.Col(12)).At(grid.LG, grid.Col(6))

	stories := []Story{
		rowStory("basic", "Three columns of span 8.", grid.NewRow(), repeat(grid.Col(8), 3)...),
		rowStory("gutter", "Four columns of span 12 with a 2 cell gutter and a 1 line vertical gutter.",
			grid.NewRow().WithGutter(grid.Gaps(2, 1)), repeat(grid.Col(12), 4)...),
		rowStory("offset", "Span 8, then span 8 offset by 8.", grid.NewRow(),
			grid.Col(8), grid.Col(8).WithOffset(8)),
		rowStory("responsive", "Span 24 below md, 12 from md and 6 from lg.",
			grid.NewRow().WithGutter(grid.Gap(1)), repeat(responsive, 4)...),
		rowStory("order", "Four columns drawn in reverse through order.", grid.NewRow(),
			grid.Col(6).WithOrder(4), grid.Col(6).WithOrder(3), grid.Col(6).WithOrder(2), grid.Col(6).WithOrder(1)),
		rowStory("pull-push", "Span 18 pushed by 6 and span 6 pulled by 18.", grid.NewRow(),
			grid.Col(18).WithPush(6), grid.Col(6).WithPull(18)),
		rowStory("wrap", "Three columns of span 10 wrap onto a second line.", grid.NewRow(),
			repeat(grid.Col(10), 3)...),
		rowStory("nowrap", "Three columns of span 10 stay on one line and overflow.", grid.NewRow().WithWrap(false),
			repeat(grid.Col(10), 3)...),
		{
			Name:        "align-middle",
			Group:       GroupGrid,
			Description: "Columns of different heights centred on the line.",
			Render: func(ctx components.RenderContext) string {
				return components.NewRow(grid.NewRow().WithAlign(grid.AlignMiddle).WithGutter(grid.Gap(1)),
					components.NewCol(grid.Col(8), swatch{label: "1 line", slot: components.PalettePrimary}),
					components.NewCol(grid.Col(8), swatch{label: "3 lines", slot: components.PaletteInfo, height: 3}),
					components.NewCol(grid.Col(8), swatch{label: "2 lines", slot: components.PalettePrimary, height: 2}),
				).ViewWithContext(ctx)
			},
		},
		{
			Name:        "nested",
			Group:       GroupGrid,
			Description: "A row inside a span 16 column keeps the breakpoint of the screen.",
			Render: func(ctx components.RenderContext) string {
				inner := components.NewRow(grid.NewRow().WithGutter(grid.Gap(1)),
					components.NewCol(grid.Col(24).At(grid.MD, grid.Col(12)), swatch{label: "inner-1", slot: components.PaletteInfo}),
					components.NewCol(grid.Col(24).At(grid.MD, grid.Col(12)), swatch{label: "inner-2", slot: components.PaletteInfo}),
				)
				return components.NewRow(grid.NewRow().WithGutter(grid.Gap(1)),
					components.NewCol(grid.Col(16), inner),
					components.NewCol(grid.Col(8), swatch{label: "side", slot: components.PalettePrimary}),
				).ViewWithContext(ctx)
			},
		},
	}

	for j := grid.JustifyStart; j <= grid.JustifySpaceEvenly; j++ {
		stories = append(stories, rowStory("justify-"+j.String(),
			fmt.Sprintf("Three columns of span 4 justified %s.", j), grid.NewRow().WithJustify(j),
			repeat(grid.Col(4), 3)...))
	}
	return stories
}

// floater is a floating component that can be forced open and drawn.
type floater interface {
	Machine() *overlay.Machine
	ComposeWithContext(ctx components.RenderContext, background string, anchor geom.Rect) string
}

// centredAnchor returns the anchor box in the middle of the stage.
func centredAnchor(width int) geom.Rect {
	return geom.NewRect(float64((width-AnchorWidth)/2), float64((StageHeight-AnchorHeight)/2), AnchorWidth, AnchorHeight)
}

// AnchorBox draws the rounded box floating stories are anchored to.
func AnchorBox(theme components.Theme, label string, width int) string {
	return lipgloss.NewStyle().
		Border(theme.Borders.Rounded).
		BorderForeground(theme.Palette.Primary.Base).
		Width(max(width-2, 1)).
		Align(lipgloss.Center).
		Render(label)
}

// stage draws the anchor box on a blank stage and composes the open floater
// over it.
func stage(ctx components.RenderContext, anchor geom.Rect, label string, f floater) string {
	view := ctx.WithSize(ctx.Width, StageHeight)
	canvas := components.NewCanvas(ctx.Width, StageHeight)
	canvas.Place(int(anchor.X), int(anchor.Y), AnchorBox(ctx.Theme, label, int(anchor.Width)))
	f.Machine().Controlled(true)
	return f.ComposeWithContext(view, canvas.String(), anchor)
}

func placementStories() []Story {
	var stories []Story
	for _, p := range placement.All() {
		stories = append(stories, Story{
			Name:        p.String(),
			Group:       GroupPlacement,
			Description: fmt.Sprintf("A popover placed %s of a centred anchor.", p),
			Render: func(ctx components.RenderContext) string {
				return stage(ctx, centredAnchor(ctx.Width), "anchor",
					components.NewPopover("Title", "Content").WithPlacement(p))
			},
		})
	}

	return append(stories,
		Story{
			Name:        "flip",
			Group:       GroupPlacement,
			Description: "A top popover on an anchor at the top edge flips below it.",
			Render: func(ctx components.RenderContext) string {
				anchor := centredAnchor(ctx.Width)
				anchor.Y = 0
				return stage(ctx, anchor, "anchor",
					components.NewPopover("Flipped", "No room above").WithPlacement(placement.Top))
			},
		},
		Story{
			Name:        "clamp",
			Group:       GroupPlacement,
			Description: "A popover wider than both sides of the anchor is shifted into the stage.",
			Render: func(ctx components.RenderContext) string {
				return stage(ctx, centredAnchor(ctx.Width), "anchor",
					components.NewPopover("Clamped", wideBody(ctx.Width)).WithPlacement(placement.Left))
			},
		},
		Story{
			Name:        "clamp-edge",
			Group:       GroupPlacement,
			Description: "A wide popover under an anchor at the left edge; the arrow follows the anchor.",
			Render: func(ctx components.RenderContext) string {
				anchor := centredAnchor(ctx.Width)
				anchor.X = 1
				return stage(ctx, anchor, "anchor",
					components.NewPopover("Edge", wideBody(ctx.Width)).WithPlacement(placement.Bottom))
			},
		},
	)
}

// wideBody is a line about two thirds of width wide.
func wideBody(width int) string {
	n := max(width*2/3-4, 8)
	return strings.Repeat("~", n)
}

func componentStories() []Story {
	return []Story{
		{
			Name:        "tooltip",
			Group:       GroupComponents,
			Description: "An open tooltip above its anchor.",
			Render: func(ctx components.RenderContext) string {
				return stage(ctx, centredAnchor(ctx.Width), "hover", components.NewTooltip("Prompt text"))
			},
		},
		{
			Name:        "dropdown",
			Group:       GroupComponents,
			Description: "An open dropdown menu with a disabled item.",
			Render: func(ctx components.RenderContext) string {
				anchor := centredAnchor(ctx.Width)
				anchor.Y = 1
				return stage(ctx, anchor, "Actions", components.NewDropdown(
					components.MenuItem{Key: "edit", Label: "Edit"},
					components.MenuItem{Key: "copy", Label: "Duplicate"},
					components.MenuItem{Key: "delete", Label: "Delete", Disabled: true},
				))
			},
		},
		{
			Name:        "select",
			Group:       GroupComponents,
			Description: "An open select with a default value.",
			Render:      renderSelect,
		},
		{
			Name:        "buttons",
			Group:       GroupComponents,
			Description: "Every button variant.",
			Render: func(ctx components.RenderContext) string {
				buttons := []*components.Button{
					components.NewButton("Default"),
					components.PrimaryButton("Primary"),
					components.NewButton("Dashed").WithVariant(components.ButtonVariantDashed),
					components.NewButton("Text").WithVariant(components.ButtonVariantText),
					components.LinkButton("Link"),
					components.DangerButton("Danger"),
					components.PrimaryButton("Disabled").WithDisabled(true),
				}
				views := make([]string, 0, 2*len(buttons))
				for _, b := range buttons {
					views = append(views, b.ViewWithContext(ctx), " ")
				}
				return lipgloss.JoinHorizontal(lipgloss.Top, views...)
			},
		},
		{
			Name:        "typography",
			Group:       GroupComponents,
			Description: "Text variants and status colours.",
			Render: func(ctx components.RenderContext) string {
				lines := []string{
					components.TitleText("Ant Design").ViewWithContext(ctx),
					components.NewText("Body text").ViewWithContext(ctx),
					components.StrongText("Strong text").ViewWithContext(ctx),
					components.SecondaryText("Secondary text").ViewWithContext(ctx),
					components.CodeText("code()").ViewWithContext(ctx),
					components.StatusText("Success", components.PaletteSuccess).ViewWithContext(ctx) + " " +
						components.StatusText("Warning", components.PaletteWarning).ViewWithContext(ctx) + " " +
						components.StatusText("Error", components.PaletteError).ViewWithContext(ctx),
				}
				return lipgloss.JoinVertical(lipgloss.Left, lines...)
			},
		},
		{
			Name:        "divider",
			Group:       GroupComponents,
			Description: "Plain, titled and dashed dividers.",
			Render: func(ctx components.RenderContext) string {
				return lipgloss.JoinVertical(lipgloss.Left,
					components.NewDivider().ViewWithContext(ctx),
					components.TitledDivider("Left").ViewWithContext(ctx),
					components.NewDivider().WithTitle("Center", components.DividerCenter).ViewWithContext(ctx),
					components.NewDivider().WithTitle("Right", components.DividerRight).WithDashed(true).ViewWithContext(ctx),
				)
			},
		},
	}
}

func renderSelect(ctx components.RenderContext) string {
	sel := components.NewSelect(
		components.Option{Value: "jack", Label: "Jack"},
		components.Option{Value: "lucy", Label: "Lucy"},
		components.Option{Value: "tom", Label: "Tom", Disabled: true},
		components.Option{Value: "yiminghe", Label: "Yiminghe"},
	).WithDefaultValue("lucy")
	sel.Machine().Controlled(true)

	box := sel.ViewWithContext(ctx)
	anchor := geom.NewRect(2, 1, float64(lipgloss.Width(box)), float64(lipgloss.Height(box)))
	canvas := components.NewCanvas(ctx.Width, StageHeight)
	canvas.Place(int(anchor.X), int(anchor.Y), box)
	return sel.ComposeWithContext(ctx.WithSize(ctx.Width, StageHeight), canvas.String(), anchor)
}
