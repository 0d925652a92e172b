package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	antuierrors "github.com/alexisbeaulieu97/antui/pkg/errors"
)

func TestResolveBreakpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width float64
		want  Breakpoint
	}{
		{width: 0, want: XS},
		{width: -10, want: XS},
		{width: 575.9, want: XS},
		{width: 576, want: SM},
		{width: 767, want: SM},
		{width: 768, want: MD},
		{width: 992, want: LG},
		{width: 1199, want: LG},
		{width: 1200, want: XL},
		{width: 1600, want: XXL},
		{width: 10000, want: XXL},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveBreakpoint(tt.width), "width %v", tt.width)
	}
}

func TestTerminalBreakpointsResolve(t *testing.T) {
	t.Parallel()

	table := TerminalBreakpoints()
	require.NoError(t, table.Validate())
	assert.Equal(t, XS, table.Resolve(40))
	assert.Equal(t, MD, table.Resolve(80))
	assert.Equal(t, XXL, table.Resolve(200))
}

func TestBreakpointsZeroValueUsesDefaults(t *testing.T) {
	t.Parallel()

	var table Breakpoints
	assert.True(t, table.IsZero())
	assert.NoError(t, table.Validate())
	assert.Equal(t, LG, table.Resolve(1000))
	assert.Equal(t, 768.0, table.Min(MD))
}

func TestBreakpointsValidateRejectsNonIncreasing(t *testing.T) {
	t.Parallel()

	table := Breakpoints{0, 500, 500, 900, 1000, 1100}
	err := table.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, antuierrors.ErrInvalidSpec))
	assert.Contains(t, err.Error(), "breakpoints.md")
}

func TestParseBreakpoint(t *testing.T) {
	t.Parallel()

	for _, bp := range AllBreakpoints() {
		parsed, err := ParseBreakpoint(bp.String())
		require.NoError(t, err)
		assert.Equal(t, bp, parsed)
	}

	parsed, err := ParseBreakpoint(" XXL ")
	require.NoError(t, err)
	assert.Equal(t, XXL, parsed)

	_, err = ParseBreakpoint("huge")
	assert.ErrorIs(t, err, antuierrors.ErrInvalidSpec)
}

func TestBreakpointText(t *testing.T) {
	t.Parallel()

	text, err := MD.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "md", string(text))

	var bp Breakpoint
	require.NoError(t, bp.UnmarshalText([]byte("xl")))
	assert.Equal(t, XL, bp)

	_, err = Breakpoint(42).MarshalText()
	assert.Error(t, err)
}
