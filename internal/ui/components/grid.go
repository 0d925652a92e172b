package components

import (
	"github.com/alexisbeaulieu97/antui/internal/ui"
	"github.com/alexisbeaulieu97/antui/pkg/grid"
	"github.com/charmbracelet/lipgloss"
)

// Col is one column of a Row: a grid spec plus the content drawn in it.
type Col struct {
	Spec  grid.ColumnSpec
	Child ui.Renderable
}

// NewCol creates a column.
func NewCol(spec grid.ColumnSpec, child ui.Renderable) Col {
	return Col{Spec: spec, Child: child}
}

// Row lays its columns out on the 24-column grid and draws them.
type Row struct {
	BaseComponent
	spec grid.RowSpec
	cols []Col
}

// NewRow creates a row with the given spec and columns.
func NewRow(spec grid.RowSpec, cols ...Col) *Row {
	return &Row{
		BaseComponent: NewBaseComponent(),
		spec:          spec,
		cols:          cols,
	}
}

// Spec returns the row spec.
func (r *Row) Spec() grid.RowSpec { return r.spec }

// Add appends columns.
func (r *Row) Add(cols ...Col) *Row {
	r.cols = append(r.cols, cols...)
	return r
}

// WithAppliers appends theme-based style modifiers applied to the whole row.
func (r *Row) WithAppliers(appliers ...StyleFunc) *Row {
	r.AddAppliers(appliers...)
	return r
}

// Cells computes the column geometry for a context without drawing.
func (r *Row) Cells(ctx RenderContext) ([]grid.Cell, error) {
	specs := make([]grid.ColumnSpec, len(r.cols))
	for i, col := range r.cols {
		specs[i] = col.Spec
	}
	return grid.LayoutRowAt(r.spec, specs, float64(ctx.Width), ctx.Breakpoint)
}

// View renders the row at the default width.
func (r *Row) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the row at ctx.Width. A layout error renders as a
// single error line instead of the row.
func (r *Row) ViewWithContext(ctx RenderContext) string {
	if ctx.Width <= 0 {
		return ""
	}
	cells, err := r.Cells(ctx)
	if err != nil {
		return lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Error.Base).Render(err.Error())
	}

	_, vertical := r.spec.Gutter.Resolve(ctx.Breakpoint)
	lineGap := int(vertical + 0.5)

	type block struct {
		x, width int
		content  string
	}
	var (
		lines   [][]block
		heights []int
	)
	for _, line := range grid.Lines(cells) {
		var blocks []block
		height := 0
		for _, cell := range line {
			if cell.Hidden {
				continue
			}
			x, width := Snap(cell.X, cell.Width)
			if width == 0 {
				continue
			}
			content := r.renderCell(cell, width, ctx)
			blocks = append(blocks, block{x: x, width: width, content: content})
			height = max(height, lipgloss.Height(content))
		}
		if len(blocks) == 0 {
			continue
		}
		lines = append(lines, blocks)
		heights = append(heights, height)
	}
	if len(lines) == 0 {
		return ""
	}

	total := lineGap * (len(lines) - 1)
	for _, h := range heights {
		total += h
	}
	canvas := NewCanvas(ctx.Width, total)

	y := 0
	for i, blocks := range lines {
		for _, b := range blocks {
			content := b.content
			if r.spec.Align == grid.AlignStretch {
				content = lipgloss.NewStyle().Height(heights[i]).Render(content)
			}
			canvas.Place(b.x, y+alignOffset(r.spec.Align, heights[i], lipgloss.Height(content)), content)
		}
		y += heights[i] + lineGap
	}

	return r.ComputeStyle(ctx.Theme).Render(canvas.String())
}

func (r *Row) renderCell(cell grid.Cell, width int, ctx RenderContext) string {
	content := render(r.cols[cell.Index].Child, ctx.WithWidth(width))
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(content)
}

func alignOffset(align grid.Align, lineHeight, height int) int {
	switch align {
	case grid.AlignMiddle:
		return (lineHeight - height) / 2
	case grid.AlignBottom:
		return lineHeight - height
	default:
		return 0
	}
}
