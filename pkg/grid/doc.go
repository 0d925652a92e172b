// Package grid implements a responsive 24-column grid engine.
//
// # Model
//
// A row is described by a RowSpec (gutter, align, justify, wrap) and an
// ordered list of ColumnSpec values. A column spans 0 to 24 units; a span of
// 0 hides it. Offsets add empty units before a column, Order reorders
// columns visually within their line and Pull/Push shift a column without
// reordering anything.
//
// # Breakpoints
//
// Every responsive decision depends on the active Breakpoint, the largest
// tier whose threshold is <= the viewport width:
//
//	bp := grid.ResolveBreakpoint(1024) // grid.LG
//
// Column overrides cascade mobile first: an override at MD applies to MD and
// every larger tier until a larger tier overrides the same field.
//
//	col := grid.Col(24).At(grid.MD, grid.Col(12)).At(grid.XL, grid.Col(8))
//	col.Effective(grid.LG) // span 12
//
// # Layout
//
// LayoutRow and LayoutRowAt are pure: the same inputs always return the same
// cells, so callers recompute on every resize and compare against the
// previous result to decide whether to redraw.
//
//	cells, err := grid.LayoutRow(
//		grid.NewRow().WithGutter(grid.Gap(16)),
//		[]grid.ColumnSpec{grid.Col(8), grid.Col(8), grid.Col(8)},
//		1200,
//	)
//
// Malformed specs return an error matching errors.ErrInvalidSpec. Values are
// never clamped; fix the spec instead.
package grid
