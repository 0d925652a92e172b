package grid

import (
	"fmt"
	"math"
	"sort"

	antuierrors "github.com/alexisbeaulieu97/antui/pkg/errors"
	"github.com/alexisbeaulieu97/antui/pkg/geom"
)

// Cell is the computed horizontal geometry of one column.
type Cell struct {
	Index  int     `json:"index"`
	Line   int     `json:"line"`
	X      float64 `json:"x"`
	Width  float64 `json:"width"`
	Hidden bool    `json:"hidden,omitempty"`
}

// Right returns the cell's right edge.
func (c Cell) Right() float64 {
	return c.X + c.Width
}

type item struct {
	index  int
	span   int
	offset int
	order  int
	shift  int
}

func (it item) hidden() bool {
	return it.span == 0
}

// LayoutRow lays out cols inside a container, using the container width to
// pick the active breakpoint from the row's threshold table.
func LayoutRow(row RowSpec, cols []ColumnSpec, containerWidth float64) ([]Cell, error) {
	return LayoutRowAt(row, cols, containerWidth, row.Breakpoints.Resolve(containerWidth))
}

// LayoutRowAt lays out cols for an explicit breakpoint, typically the one
// resolved from the viewport rather than the container. It returns one Cell
// per column in declaration order.
func LayoutRowAt(row RowSpec, cols []ColumnSpec, containerWidth float64, bp Breakpoint) ([]Cell, error) {
	if err := row.Validate(); err != nil {
		return nil, prefixField("row", err)
	}
	if math.IsNaN(containerWidth) || math.IsInf(containerWidth, 0) || containerWidth <= 0 {
		return nil, antuierrors.NewInvalidSpecError("containerWidth", containerWidth, "must be a positive finite number")
	}
	if !bp.Valid() {
		return nil, antuierrors.NewInvalidSpecError("breakpoint", int(bp), "unknown breakpoint")
	}
	if err := Validate(cols); err != nil {
		return nil, err
	}

	gutter, _ := row.Gutter.Resolve(bp)

	items := make([]item, len(cols))
	for i, col := range cols {
		eff := col.Effective(bp)
		if err := checkEffective(i, eff, bp); err != nil {
			return nil, err
		}
		items[i] = item{
			index:  i,
			span:   eff.SpanValue(),
			offset: eff.OffsetValue(),
			order:  eff.OrderValue(),
			shift:  eff.PushValue() - eff.PullValue(),
		}
	}

	lines := partition(items, row.Wrap, containerWidth, gutter)
	for _, line := range lines {
		if n := visibleCount(line); n > 1 && containerWidth-gutter*float64(n-1) <= 0 {
			return nil, antuierrors.NewInvalidSpecError("gutter", gutter, "gutters leave no room for columns")
		}
	}

	cells := make([]Cell, len(cols))
	for lineNo, line := range lines {
		placeLine(cells, line, lineNo, row.Justify, containerWidth, gutter)
	}
	return cells, nil
}

// partition splits items into visual lines in declaration order. A column
// never splits: when it does not fit in what is left of the line it moves
// whole to the next one.
func partition(items []item, wrap bool, width, gutter float64) [][]item {
	if !wrap {
		return [][]item{items}
	}

	var (
		lines   [][]item
		current []item
		units   int
	)
	for _, it := range items {
		if !it.hidden() && visibleCount(current) > 0 {
			overUnits := units+it.span+it.offset > Columns
			overWidth := lineExtent(append(current[:len(current):len(current)], it), width, gutter) > width+geom.Epsilon
			noRoom := width-gutter*float64(visibleCount(current)) <= 0
			if overUnits || overWidth || noRoom {
				lines = append(lines, current)
				current = nil
				units = 0
			}
		}
		current = append(current, it)
		if !it.hidden() {
			units += it.span + it.offset
		}
	}
	if len(current) > 0 || len(lines) == 0 {
		lines = append(lines, current)
	}
	return lines
}

func visibleCount(items []item) int {
	n := 0
	for _, it := range items {
		if !it.hidden() {
			n++
		}
	}
	return n
}

// lineExtent is the width a line occupies before justify is applied.
func lineExtent(items []item, width, gutter float64) float64 {
	n := visibleCount(items)
	if n == 0 {
		return 0
	}
	gutters := gutter * float64(n-1)
	avail := width - gutters
	extent := gutters
	for _, it := range items {
		if it.hidden() {
			continue
		}
		extent += float64(it.span)/Columns*avail + float64(it.offset)/Columns*width
	}
	return extent
}

func placeLine(cells []Cell, line []item, lineNo int, justify Justify, width, gutter float64) {
	n := visibleCount(line)
	avail := width
	if n > 1 {
		avail -= gutter * float64(n-1)
	}

	leftover := math.Max(0, width-lineExtent(line, width, gutter))
	lead, between := justifyGaps(justify, leftover, n)

	sorted := make([]item, len(line))
	copy(sorted, line)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].order < sorted[j].order
	})

	cursor := lead
	placed := 0
	for _, it := range sorted {
		if it.hidden() {
			cells[it.index] = Cell{Index: it.index, Line: lineNo, X: cursor, Hidden: true}
			continue
		}
		if placed > 0 {
			cursor += gutter + between
		}
		cursor += float64(it.offset) / Columns * width
		colWidth := float64(it.span) / Columns * avail
		x := cursor
		cursor += colWidth

		cells[it.index] = Cell{
			Index: it.index,
			Line:  lineNo,
			X:     x + float64(it.shift)/Columns*width,
			Width: colWidth,
		}
		placed++
	}
}

// justifyGaps returns the space before the first item and the extra space
// added between consecutive items.
func justifyGaps(justify Justify, leftover float64, n int) (lead, between float64) {
	if n == 0 || leftover <= 0 {
		return 0, 0
	}
	count := float64(n)
	switch justify {
	case JustifyEnd:
		return leftover, 0
	case JustifyCenter:
		return leftover / 2, 0
	case JustifySpaceBetween:
		if n == 1 {
			return 0, 0
		}
		return 0, leftover / (count - 1)
	case JustifySpaceAround:
		return leftover / (2 * count), leftover / count
	case JustifySpaceEvenly:
		gap := leftover / (count + 1)
		return gap, gap
	default:
		return 0, 0
	}
}

// Lines groups cells by line number, preserving declaration order.
func Lines(cells []Cell) [][]Cell {
	var lines [][]Cell
	for _, cell := range cells {
		for len(lines) <= cell.Line {
			lines = append(lines, nil)
		}
		lines[cell.Line] = append(lines[cell.Line], cell)
	}
	return lines
}

// String renders a cell for debugging and CLI tables.
func (c Cell) String() string {
	if c.Hidden {
		return fmt.Sprintf("#%d line=%d hidden", c.Index, c.Line)
	}
	return fmt.Sprintf("#%d line=%d x=%.2f width=%.2f", c.Index, c.Line, c.X, c.Width)
}
