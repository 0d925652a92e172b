package config

import (
	"errors"
	"fmt"

	antuierrors "github.com/alexisbeaulieu97/antui/pkg/errors"
	"github.com/alexisbeaulieu97/antui/pkg/geom"
	"github.com/alexisbeaulieu97/antui/pkg/grid"
	"github.com/alexisbeaulieu97/antui/pkg/placement"
)

// NamedRow is a row converted to grid types.
type NamedRow struct {
	ID      string
	Spec    grid.RowSpec
	Columns []grid.ColumnSpec
	Labels  []string
}

// NamedPlacement is a placement scenario converted to resolver inputs. A nil
// Boundary in the document leaves Request.Boundary empty; Evaluate fills it
// from the viewport.
type NamedPlacement struct {
	ID          string
	Anchor      geom.Rect
	Content     geom.Size
	Request     placement.Request
	HasBoundary bool
}

// BreakpointTable returns the breakpoint table of the document: the table of
// its units with the document overrides applied.
func (d *Document) BreakpointTable() (grid.Breakpoints, error) {
	table := grid.DefaultBreakpoints()
	if d.Units == UnitsCells {
		table = grid.TerminalBreakpoints()
	}
	for name, threshold := range d.Breakpoints {
		bp, err := grid.ParseBreakpoint(name)
		if err != nil {
			return grid.Breakpoints{}, err
		}
		table[bp] = threshold
	}
	if err := table.Validate(); err != nil {
		return grid.Breakpoints{}, err
	}
	return table, nil
}

// ViewportHeight returns the document height or the default for its units.
func (d *Document) ViewportHeight() float64 {
	switch {
	case d.Height > 0:
		return d.Height
	case d.Units == UnitsCells:
		return DefaultCellHeight
	default:
		return DefaultPixelHeight
	}
}

// NamedRows converts every row to grid types.
func (d *Document) NamedRows() ([]NamedRow, error) {
	table, err := d.BreakpointTable()
	if err != nil {
		return nil, err
	}

	rows := make([]NamedRow, 0, len(d.Rows))
	for i, row := range d.Rows {
		named, err := convertRow(row, table)
		if err != nil {
			return nil, prefixed(fmt.Sprintf("rows[%d]", i), err)
		}
		rows = append(rows, named)
	}
	return rows, nil
}

func convertRow(row Row, table grid.Breakpoints) (NamedRow, error) {
	spec := grid.NewRow().WithBreakpoints(table)
	if row.Wrap != nil {
		spec = spec.WithWrap(*row.Wrap)
	}
	if row.Align != "" {
		align, err := grid.ParseAlign(row.Align)
		if err != nil {
			return NamedRow{}, err
		}
		spec = spec.WithAlign(align)
	}
	if row.Justify != "" {
		justify, err := grid.ParseJustify(row.Justify)
		if err != nil {
			return NamedRow{}, err
		}
		spec = spec.WithJustify(justify)
	}

	gutter := grid.Gutter{}
	if row.Gutter.Horizontal != nil {
		gutter.Horizontal = *row.Gutter.Horizontal
	}
	if row.Gutter.Vertical != nil {
		gutter.Vertical = *row.Gutter.Vertical
	}
	if len(row.Responsive) > 0 {
		gutter.Responsive = make(map[grid.Breakpoint]grid.GutterOverride, len(row.Responsive))
		for name, override := range row.Responsive {
			bp, err := grid.ParseBreakpoint(name)
			if err != nil {
				return NamedRow{}, err
			}
			gutter.Responsive[bp] = grid.GutterOverride{Horizontal: override.Horizontal, Vertical: override.Vertical}
		}
	}
	spec = spec.WithGutter(gutter)

	named := NamedRow{ID: row.ID, Spec: spec}
	for j, col := range row.Columns {
		converted, err := convertColumn(col)
		if err != nil {
			return NamedRow{}, prefixed(fmt.Sprintf("columns[%d]", j), err)
		}
		named.Columns = append(named.Columns, converted)
		label := col.Label
		if label == "" {
			label = fmt.Sprintf("%d", j)
		}
		named.Labels = append(named.Labels, label)
	}

	if err := spec.Validate(); err != nil {
		return NamedRow{}, err
	}
	if err := grid.Validate(named.Columns); err != nil {
		return NamedRow{}, err
	}
	return named, nil
}

func convertColumn(col Column) (grid.ColumnSpec, error) {
	spec := columnFields(col.ColumnFields)
	for name, override := range col.Responsive {
		bp, err := grid.ParseBreakpoint(name)
		if err != nil {
			return grid.ColumnSpec{}, err
		}
		spec = spec.At(bp, columnFields(override))
	}
	return spec, nil
}

func columnFields(f ColumnFields) grid.ColumnSpec {
	return grid.ColumnSpec{
		Span:   copyInt(f.Span),
		Offset: copyInt(f.Offset),
		Order:  copyInt(f.Order),
		Pull:   copyInt(f.Pull),
		Push:   copyInt(f.Push),
	}
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	return grid.Int(*v)
}

// NamedPlacements converts every placement scenario to resolver inputs.
func (d *Document) NamedPlacements() ([]NamedPlacement, error) {
	out := make([]NamedPlacement, 0, len(d.Placements))
	for i, p := range d.Placements {
		preferred, err := placement.Parse(p.Placement)
		if err != nil {
			return nil, prefixed(fmt.Sprintf("placements[%d]", i), err)
		}

		named := NamedPlacement{
			ID:      p.ID,
			Anchor:  geom.NewRect(p.Anchor.X, p.Anchor.Y, p.Anchor.Width, p.Anchor.Height),
			Content: geom.Size{Width: p.Content.Width, Height: p.Content.Height},
			Request: placement.Request{
				Preferred: preferred,
				Offset:    p.Offset,
				Arrow:     p.Arrow,
				ArrowSize: p.ArrowSize,
			},
		}
		if p.Boundary != nil {
			named.HasBoundary = true
			named.Request.Boundary = geom.NewRect(p.Boundary.X, p.Boundary.Y, p.Boundary.Width, p.Boundary.Height)
		}
		out = append(out, named)
	}
	return out, nil
}

// prefixed scopes an InvalidSpecError field to its place in the document.
func prefixed(prefix string, err error) error {
	var specErr *antuierrors.InvalidSpecError
	if errors.As(err, &specErr) {
		copied := *specErr
		if copied.Field == "" {
			copied.Field = prefix
		} else {
			copied.Field = prefix + "." + copied.Field
		}
		return &copied
	}
	return antuierrors.WrapInvalidSpec(prefix, "invalid", err)
}
