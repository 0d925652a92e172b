package grid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	antuierrors "github.com/alexisbeaulieu97/antui/pkg/errors"
)

const delta = 1e-6

func TestLayoutRowThreeEqualColumnsWithGutter(t *testing.T) {
	t.Parallel()

	cells, err := LayoutRow(
		NewRow().WithGutter(Gap(16)),
		[]ColumnSpec{Col(8), Col(8), Col(8)},
		1200,
	)
	require.NoError(t, err)
	require.Len(t, cells, 3)

	width := (1200.0 - 32) / 3
	for i, cell := range cells {
		assert.InDelta(t, width, cell.Width, delta)
		assert.InDelta(t, float64(i)*(width+16), cell.X, delta)
		assert.Equal(t, 0, cell.Line)
	}
	assert.InDelta(t, 389.333333, cells[0].Width, 1e-3)
	assert.InDelta(t, 1200, cells[2].Right(), delta)
}

func TestLayoutRowOffset(t *testing.T) {
	t.Parallel()

	cells, err := LayoutRow(NewRow(), []ColumnSpec{Col(8).WithOffset(4), Col(8)}, 1200)
	require.NoError(t, err)

	assert.InDelta(t, 200, cells[0].X, delta)
	assert.InDelta(t, 400, cells[0].Width, delta)
	assert.InDelta(t, 600, cells[1].X, delta)
	assert.InDelta(t, 400, cells[1].Width, delta)
}

func TestLayoutRowOffsetWithGutter(t *testing.T) {
	t.Parallel()

	cells, err := LayoutRow(NewRow().WithGutter(Gap(16)), []ColumnSpec{Col(8).WithOffset(4), Col(8)}, 1200)
	require.NoError(t, err)

	width := (1200.0 - 16) / 3
	assert.InDelta(t, 200, cells[0].X, delta)
	assert.InDelta(t, 200+width+16, cells[1].X, delta)
}

func TestLayoutRowWrapsWholeColumns(t *testing.T) {
	t.Parallel()

	cells, err := LayoutRow(
		NewRow().WithGutter(Gap(10)),
		[]ColumnSpec{Col(10), Col(10), Col(10), Col(24)},
		1000,
	)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0, 1, 2}, []int{cells[0].Line, cells[1].Line, cells[2].Line, cells[3].Line})
	assert.InDelta(t, 0, cells[2].X, delta)
	assert.InDelta(t, 1000, cells[3].Width, delta)
	assert.Len(t, Lines(cells), 3)
}

func TestLayoutRowWithoutWrapKeepsOneLine(t *testing.T) {
	t.Parallel()

	cells, err := LayoutRow(NewRow().WithWrap(false), []ColumnSpec{Col(16), Col(16)}, 960)
	require.NoError(t, err)
	assert.Equal(t, 0, cells[1].Line)
	assert.Greater(t, cells[1].Right(), 960.0)
}

func TestLayoutRowJustify(t *testing.T) {
	t.Parallel()

	cols := []ColumnSpec{Col(6), Col(6)}
	// (1000-40)/24*6 = 240 per column, leaving 480 to distribute.
	tests := []struct {
		justify Justify
		xs      []float64
	}{
		{justify: JustifyStart, xs: []float64{0, 280}},
		{justify: JustifyEnd, xs: []float64{480, 760}},
		{justify: JustifyCenter, xs: []float64{240, 520}},
		{justify: JustifySpaceBetween, xs: []float64{0, 760}},
		{justify: JustifySpaceAround, xs: []float64{120, 640}},
		{justify: JustifySpaceEvenly, xs: []float64{160, 600}},
	}

	for _, tt := range tests {
		t.Run(tt.justify.String(), func(t *testing.T) {
			cells, err := LayoutRow(NewRow().WithGutter(Gap(40)).WithJustify(tt.justify), cols, 1000)
			require.NoError(t, err)
			for i, want := range tt.xs {
				assert.InDelta(t, 240, cells[i].Width, delta)
				assert.InDelta(t, want, cells[i].X, delta, "column %d", i)
			}
		})
	}
}

func TestLayoutRowSpaceBetweenSingleColumn(t *testing.T) {
	t.Parallel()

	cells, err := LayoutRow(NewRow().WithJustify(JustifySpaceBetween), []ColumnSpec{Col(6)}, 1200)
	require.NoError(t, err)
	assert.InDelta(t, 0, cells[0].X, delta)
}

func TestLayoutRowOrderIsStable(t *testing.T) {
	t.Parallel()

	cols := []ColumnSpec{Col(6).WithOrder(2), Col(6).WithOrder(1), Col(6).WithOrder(1), Col(6)}
	cells, err := LayoutRow(NewRow(), cols, 2400)
	require.NoError(t, err)

	// Visual order: #3 (order 0), #1, #2 (ties keep declaration order), #0.
	assert.InDelta(t, 0, cells[3].X, delta)
	assert.InDelta(t, 600, cells[1].X, delta)
	assert.InDelta(t, 1200, cells[2].X, delta)
	assert.InDelta(t, 1800, cells[0].X, delta)
	for i, cell := range cells {
		assert.Equal(t, i, cell.Index)
	}
}

func TestLayoutRowPullPush(t *testing.T) {
	t.Parallel()

	cols := []ColumnSpec{Col(18).WithPush(6), Col(6).WithPull(18)}
	cells, err := LayoutRow(NewRow(), cols, 2400)
	require.NoError(t, err)

	assert.InDelta(t, 600, cells[0].X, delta)
	assert.InDelta(t, 0, cells[1].X, delta)
}

func TestLayoutRowHiddenColumns(t *testing.T) {
	t.Parallel()

	cols := []ColumnSpec{Col(12), Col(0).WithOrder(-1), Col(12)}
	cells, err := LayoutRow(NewRow().WithGutter(Gap(20)), cols, 1220)
	require.NoError(t, err)

	assert.True(t, cells[1].Hidden)
	assert.Zero(t, cells[1].Width)
	assert.InDelta(t, 0, cells[1].X, delta)
	assert.InDelta(t, 600, cells[0].Width, delta)
	assert.InDelta(t, 620, cells[2].X, delta)
	assert.InDelta(t, 1220, cells[2].Right(), delta)
}

func TestLayoutRowResponsive(t *testing.T) {
	t.Parallel()

	cols := []ColumnSpec{
		Col(24).At(MD, Col(12)),
		Col(24).At(MD, Col(12)),
	}
	row := NewRow().WithGutter(Gap(0).At(LG, 24, 24))

	narrow, err := LayoutRow(row, cols, 600)
	require.NoError(t, err)
	assert.Equal(t, 1, narrow[1].Line)
	assert.InDelta(t, 600, narrow[0].Width, delta)

	wide, err := LayoutRow(row, cols, 1000)
	require.NoError(t, err)
	assert.Equal(t, 0, wide[1].Line)
	assert.InDelta(t, 488, wide[0].Width, delta)
	assert.InDelta(t, 512, wide[1].X, delta)

	forced, err := LayoutRowAt(row, cols, 600, XXL)
	require.NoError(t, err)
	assert.Equal(t, 0, forced[1].Line)
}

func TestLayoutRowRejectsInvalidSpecs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		row   RowSpec
		cols  []ColumnSpec
		width float64
	}{
		{name: "span", row: NewRow(), cols: []ColumnSpec{Col(8), Col(26)}, width: 100},
		{name: "negative offset", row: NewRow(), cols: []ColumnSpec{Col(8).WithOffset(-4)}, width: 100},
		{name: "span plus offset", row: NewRow(), cols: []ColumnSpec{Col(20).WithOffset(6)}, width: 100},
		{name: "responsive span plus offset", row: NewRow(), cols: []ColumnSpec{Col(12).WithOffset(6).At(XS, Col(20))}, width: 100},
		{name: "gutter", row: NewRow().WithGutter(Gap(-8)), cols: []ColumnSpec{Col(8)}, width: 100},
		{name: "zero width", row: NewRow(), cols: []ColumnSpec{Col(8)}, width: 0},
		{name: "gutters wider than row", row: NewRow().WithWrap(false).WithGutter(Gap(200)), cols: []ColumnSpec{Col(6), Col(6), Col(6), Col(6)}, width: 300},
		{name: "gutters fill row exactly", row: NewRow().WithWrap(false).WithGutter(Gap(50)), cols: []ColumnSpec{Col(6), Col(6), Col(6)}, width: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, err := LayoutRow(tt.row, tt.cols, tt.width)
			assert.Nil(t, cells)
			assert.ErrorIs(t, err, antuierrors.ErrInvalidSpec)
		})
	}
}

func TestLayoutRowErrorNamesColumn(t *testing.T) {
	t.Parallel()

	_, err := LayoutRow(NewRow(), []ColumnSpec{Col(8), Col(8).WithOffset(30)}, 100)
	var specErr *antuierrors.InvalidSpecError
	require.ErrorAs(t, err, &specErr)
	assert.Equal(t, "columns[1].offset", specErr.Field)
}

func TestLayoutRowEmpty(t *testing.T) {
	t.Parallel()

	cells, err := LayoutRow(NewRow(), nil, 100)
	require.NoError(t, err)
	assert.Empty(t, cells)
}

func TestLayoutRowSingleLineFillsContainer(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		cols := randomSpansSummingTo(rng, 24)
		gutter := float64(rng.Intn(40))
		width := 1000 + float64(rng.Intn(2000))

		cells, err := LayoutRow(NewRow().WithWrap(false).WithGutter(Gap(gutter)), cols, width)
		require.NoError(t, err)

		last := cells[len(cells)-1]
		assert.InDelta(t, width, last.Right(), 1e-6)
		for _, cell := range cells {
			assert.Equal(t, 0, cell.Line)
		}
	}
}

func TestLayoutRowWrapNeverOverflows(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	justifies := []Justify{JustifyStart, JustifyEnd, JustifyCenter, JustifySpaceBetween, JustifySpaceAround, JustifySpaceEvenly}
	for iter := 0; iter < 300; iter++ {
		n := 2 + rng.Intn(8)
		cols := make([]ColumnSpec, n)
		total := 0
		for i := range cols {
			span := 1 + rng.Intn(24)
			offset := rng.Intn(Columns - span + 1)
			if rng.Intn(3) > 0 {
				offset = 0
			}
			cols[i] = Col(span).WithOffset(offset)
			total += span
		}
		if total <= Columns {
			cols = append(cols, Col(Columns))
		}
		row := NewRow().WithGutter(Gap(float64(rng.Intn(48)))).WithJustify(justifies[rng.Intn(len(justifies))])
		width := 200 + float64(rng.Intn(1800))

		cells, err := LayoutRow(row, cols, width)
		require.NoError(t, err)
		for _, cell := range cells {
			assert.LessOrEqual(t, cell.Right(), width+1e-6)
			assert.GreaterOrEqual(t, cell.X, -1e-6)
		}
	}
}

func TestLayoutRowIsDeterministic(t *testing.T) {
	t.Parallel()

	row := NewRow().WithGutter(Gaps(12, 8)).WithJustify(JustifySpaceAround)
	cols := []ColumnSpec{Col(5).WithOrder(2), Col(7).WithOffset(1), Col(0), Col(9).At(LG, Col(4))}

	first, err := LayoutRow(row, cols, 1111)
	require.NoError(t, err)
	second, err := LayoutRow(row, cols, 1111)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func randomSpansSummingTo(rng *rand.Rand, total int) []ColumnSpec {
	var cols []ColumnSpec
	remaining := total
	for remaining > 0 {
		span := 1 + rng.Intn(remaining)
		cols = append(cols, Col(span))
		remaining -= span
	}
	return cols
}
