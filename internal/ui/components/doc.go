// Package components draws a small set of Ant Design components in the
// terminal on top of the grid and placement engines.
//
// # Theme
//
// Themes are immutable and passed explicitly through RenderContext:
//
//	ctx := components.NewContext(120, 40)
//	output := row.ViewWithContext(ctx)
//
// View() renders with DefaultContext, an 80x24 terminal with the Ant seed
// colours. Components take theme-aware StyleFunc appliers:
//
//	NewText("Saved").WithAppliers(Foreground(PaletteSuccess))
//
// # Layout
//
// Row and Col run the 24-column grid at the context width and the breakpoint
// of the viewport. Cell edges are snapped to whole cells with Snap and each
// child is drawn onto a Canvas:
//
//	row := NewRow(grid.NewRow().WithGutter(grid.Gap(2)),
//		NewCol(grid.Col(12), NewText("left")),
//		NewCol(grid.Col(12), NewText("right")),
//	)
//
// # Floating components
//
// Tooltip, Popover, Dropdown and Select embed Floating, which owns an
// overlay.Machine. Feed pointer events through Handle, route bubbletea
// messages through Update, and draw the open overlay over an already rendered
// screen with Compose:
//
//	tip := NewTooltip("Copy to clipboard")
//	tip.Handle(overlay.EventPointerEnter) // opens at once
//	cmd := tip.Handle(overlay.EventPointerLeave)
//	// ... the TimerMsg produced by cmd comes back through tip.Update
//	screen = tip.Compose(screen, anchor, viewport)
//
// Each composite component exposes its parts as Slots. A slot override
// replaces the default style for that part only.
package components
